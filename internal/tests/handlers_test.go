package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "dishcovery/internal/api/http"
	"dishcovery/internal/domain"
	"dishcovery/internal/mocks"
	"dishcovery/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testMocks struct {
	dishes  *mocks.DishServiceInterface
	users   *mocks.UserServiceInterface
	reviews *mocks.ReviewServiceInterface
	feed    *mocks.FeedServiceInterface
}

func setupTestRouter(t *testing.T) (*mux.Router, testMocks) {
	m := testMocks{
		dishes:  mocks.NewDishServiceInterface(t),
		users:   mocks.NewUserServiceInterface(t),
		reviews: mocks.NewReviewServiceInterface(t),
		feed:    mocks.NewFeedServiceInterface(t),
	}
	handler := &httpapi.Handler{
		Dishes:    m.dishes,
		Users:     m.users,
		Reviews:   m.reviews,
		Feed:      m.feed,
		UploadDir: t.TempDir(),
	}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, m
}

func TestHandler_healthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"healthy"`)
}

func TestHandler_createDish(t *testing.T) {
	router, m := setupTestRouter(t)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"name":"Pho","restaurant":"Hanoi Corner","category":"Main Dish"}`,
			prepareMocks: func() {
				m.dishes.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "unknown_category",
			payload: `{"name":"Pho","restaurant":"Hanoi Corner","category":"Snack"}`,
			prepareMocks: func() {
				m.dishes.On("Create", mock.Anything, mock.Anything).
					Return(service.ErrInvalidCategory).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "backend_unavailable",
			payload: `{"name":"Pho","restaurant":"Hanoi Corner","category":"Main Dish"}`,
			prepareMocks: func() {
				m.dishes.On("Create", mock.Anything, mock.Anything).
					Return(domain.ErrBackendUnavailable).Once()
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/dishes", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_getDish(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("success", func(t *testing.T) {
		m.dishes.On("Get", mock.Anything, "d1").
			Return(&domain.Dish{ID: "d1", Name: "Pho", Category: domain.CategoryMainDish}, nil).Once()

		req := httptest.NewRequest("GET", "/api/dishes/d1", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"name":"Pho"`)
	})

	t.Run("not_found", func(t *testing.T) {
		m.dishes.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound).Once()

		req := httptest.NewRequest("GET", "/api/dishes/missing", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestHandler_getDishQRCode(t *testing.T) {
	router, m := setupTestRouter(t)

	m.dishes.On("QRCode", mock.Anything, "d1").
		Return([]byte("\x89PNG fake png bytes"), nil).Once()

	req := httptest.NewRequest("GET", "/api/dishes/d1/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
}

func TestHandler_createReview(t *testing.T) {
	router, m := setupTestRouter(t)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"dish_id":"d1","user_id":"u1","rating":9,"comment":"Great!"}`,
			prepareMocks: func() {
				m.reviews.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "missing_fields",
			payload: `{"rating":5}`,
			prepareMocks: func() {
				m.reviews.On("Create", mock.Anything, mock.Anything).
					Return(domain.MissingFields("dish_id", "user_id")).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "rating_out_of_range",
			payload: `{"dish_id":"d1","user_id":"u1","rating":11}`,
			prepareMocks: func() {
				m.reviews.On("Create", mock.Anything, mock.Anything).
					Return(service.ErrInvalidRating).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "dish_not_found",
			payload: `{"dish_id":"missing","user_id":"u1","rating":5}`,
			prepareMocks: func() {
				m.reviews.On("Create", mock.Anything, mock.Anything).
					Return(service.ErrDishNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "backend_unavailable",
			payload: `{"dish_id":"d1","user_id":"u1","rating":5}`,
			prepareMocks: func() {
				m.reviews.On("Create", mock.Anything, mock.Anything).
					Return(domain.ErrBackendUnavailable).Once()
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/reviews", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_getReviews_QueryParamSwitch(t *testing.T) {
	router, m := setupTestRouter(t)

	feed := []domain.Review{{ID: "r1", DishID: "d1", UserID: "u1", Rating: 8}}

	t.Run("by_dish", func(t *testing.T) {
		m.feed.On("ByDish", mock.Anything, "d1").Return(feed, nil).Once()

		req := httptest.NewRequest("GET", "/api/reviews?dishId=d1", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("by_user", func(t *testing.T) {
		m.feed.On("ByUser", mock.Anything, "u1").Return(feed, nil).Once()

		req := httptest.NewRequest("GET", "/api/reviews?userId=u1", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("unfiltered", func(t *testing.T) {
		m.feed.On("Global", mock.Anything).Return(feed, nil).Once()

		req := httptest.NewRequest("GET", "/api/reviews", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestHandler_deleteReview(t *testing.T) {
	router, m := setupTestRouter(t)

	tests := []struct {
		name         string
		target       string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "success",
			target: "/api/reviews/r1?userId=u1",
			prepareMocks: func() {
				m.reviews.On("Delete", mock.Anything, "r1", "u1").Return(nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"success":true`,
		},
		{
			name:         "missing_user_id",
			target:       "/api/reviews/r1",
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "not_owner",
			target: "/api/reviews/r1?userId=intruder",
			prepareMocks: func() {
				m.reviews.On("Delete", mock.Anything, "r1", "intruder").
					Return(domain.ErrNotOwner).Once()
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "not_found",
			target: "/api/reviews/gone?userId=u1",
			prepareMocks: func() {
				m.reviews.On("Delete", mock.Anything, "gone", "u1").
					Return(domain.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("DELETE", testCase.target, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_getFeed(t *testing.T) {
	router, m := setupTestRouter(t)

	feed := []domain.Review{
		{ID: "r2", DishID: "d1", UserID: "u2", Rating: 7},
		{ID: "r1", DishID: "d2", UserID: "u1", Rating: 9},
	}
	m.feed.On("Global", mock.Anything).Return(feed, nil).Once()

	req := httptest.NewRequest("GET", "/api/feed", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var reviews []domain.Review
	json.NewDecoder(recorder.Body).Decode(&reviews)
	assert.Len(t, reviews, 2)
	assert.Equal(t, "r2", reviews[0].ID)
}

func TestHandler_getDiscoveryFeed(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("success", func(t *testing.T) {
		m.feed.On("Discovery", mock.Anything, "u1").
			Return([]domain.Review{}, nil).Once()

		req := httptest.NewRequest("GET", "/api/feed/discovery?userId=u1", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing_user_id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/feed/discovery", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("user_not_found", func(t *testing.T) {
		m.feed.On("Discovery", mock.Anything, "missing").
			Return(nil, service.ErrUserNotFound).Once()

		req := httptest.NewRequest("GET", "/api/feed/discovery?userId=missing", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestHandler_upsertUser(t *testing.T) {
	router, m := setupTestRouter(t)

	m.users.On("Upsert", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == "u1" && u.Name == "Alice"
	})).Return(nil).Once()

	payload := `{"id":"u1","name":"Alice"}`
	req := httptest.NewRequest("POST", "/api/users", bytes.NewBufferString(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_recomputeVariety(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("success", func(t *testing.T) {
		m.reviews.On("Recompute", mock.Anything, "u1").
			Return(&domain.User{ID: "u1", Name: "Alice", VarietyScore: 2}, nil).Once()

		req := httptest.NewRequest("POST", "/api/users/u1/recompute", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"variety_score":2`)
	})

	t.Run("user_not_found", func(t *testing.T) {
		m.reviews.On("Recompute", mock.Anything, "missing").
			Return(nil, service.ErrUserNotFound).Once()

		req := httptest.NewRequest("POST", "/api/users/missing/recompute", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
