package tests

import (
	"context"
	"testing"

	"dishcovery/internal/domain"
	"dishcovery/internal/mocks"
	"dishcovery/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDishService_Create(t *testing.T) {
	store := mocks.NewEntityStore(t)
	svc := service.NewDishService(store, service.DefaultQRGenerator{BaseURL: "http://localhost:8080"})

	ctx := context.Background()

	tests := []struct {
		name          string
		dish          *domain.Dish
		prepareMocks  func()
		expectedError error
	}{
		{
			name: "success",
			dish: &domain.Dish{Name: "Ramen", Restaurant: "Ichiran", Category: domain.CategoryMainDish},
			prepareMocks: func() {
				store.On("CreateDish", ctx, mock.MatchedBy(func(d *domain.Dish) bool {
					return d.ID != "" && d.Name == "Ramen"
				})).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name:          "error_unknown_category",
			dish:          &domain.Dish{Name: "Ramen", Restaurant: "Ichiran", Category: "Snack"},
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidCategory,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := svc.Create(ctx, testCase.dish)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestDishService_Create_MissingFields(t *testing.T) {
	store := mocks.NewEntityStore(t)
	svc := service.NewDishService(store, service.DefaultQRGenerator{})

	err := svc.Create(context.Background(), &domain.Dish{Category: domain.CategoryOther})
	assert.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "restaurant")
}

func TestDishService_QRCode(t *testing.T) {
	store := mocks.NewEntityStore(t)
	svc := service.NewDishService(store, service.DefaultQRGenerator{BaseURL: "http://localhost:8080"})

	ctx := context.Background()

	t.Run("success_returns_png", func(t *testing.T) {
		store.On("GetDish", ctx, "d1").
			Return(&domain.Dish{ID: "d1", Category: domain.CategoryMainDish}, nil).Once()

		png, err := svc.QRCode(ctx, "d1")
		assert.NoError(t, err)
		assert.Equal(t, []byte("\x89PNG"), png[:4])
	})

	t.Run("error_dish_not_found", func(t *testing.T) {
		store.On("GetDish", ctx, "missing").Return(nil, domain.ErrNotFound).Once()

		_, err := svc.QRCode(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserService_Upsert(t *testing.T) {
	store := mocks.NewEntityStore(t)
	svc := service.NewUserService(store)

	ctx := context.Background()

	t.Run("derives_username_from_id", func(t *testing.T) {
		store.On("UpsertUser", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "@google-1"
		})).Return(nil).Once()

		user := &domain.User{ID: "google-123456", Name: "Alice"}
		assert.NoError(t, svc.Upsert(ctx, user))
	})

	t.Run("keeps_explicit_username", func(t *testing.T) {
		store.On("UpsertUser", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "@alice"
		})).Return(nil).Once()

		user := &domain.User{ID: "google-123456", Name: "Alice", Username: "@alice"}
		assert.NoError(t, svc.Upsert(ctx, user))
	})

	t.Run("missing_fields_rejected", func(t *testing.T) {
		err := svc.Upsert(ctx, &domain.User{})
		assert.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestUserService_GetOrCreate(t *testing.T) {
	store := mocks.NewEntityStore(t)
	svc := service.NewUserService(store)

	ctx := context.Background()

	t.Run("creates_zero_variety_user_on_first_sight", func(t *testing.T) {
		store.On("GetUser", ctx, "new-user").Return(nil, domain.ErrNotFound).Once()
		store.On("UpsertUser", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == "new-user" && u.VarietyScore == 0 && u.Username == "@new-user"
		})).Return(nil).Once()

		user, err := svc.GetOrCreate(ctx, "new-user", "Bob", "")
		assert.NoError(t, err)
		assert.Equal(t, "Bob", user.Name)
		assert.Empty(t, user.ReviewedCategories)
	})

	t.Run("refreshes_name_from_provider", func(t *testing.T) {
		store.On("GetUser", ctx, "u1").
			Return(&domain.User{ID: "u1", Name: "Old Name", Username: "@u1", VarietyScore: 2}, nil).Once()
		store.On("UpsertUser", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Name == "New Name" && u.VarietyScore == 2
		})).Return(nil).Once()

		user, err := svc.GetOrCreate(ctx, "u1", "New Name", "")
		assert.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
	})

	t.Run("no_write_when_nothing_changed", func(t *testing.T) {
		store.On("GetUser", ctx, "u1").
			Return(&domain.User{ID: "u1", Name: "Alice", Username: "@u1"}, nil).Once()

		user, err := svc.GetOrCreate(ctx, "u1", "Alice", "")
		assert.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
	})
}

func TestFeedService_Global(t *testing.T) {
	ctx := context.Background()

	feed := []domain.Review{
		{ID: "r2", DishID: "d1", UserID: "u2", Rating: 7},
		{ID: "r1", DishID: "d2", UserID: "u1", Rating: 9},
	}

	t.Run("cache_miss_reads_store_then_fills_cache", func(t *testing.T) {
		store := mocks.NewEntityStore(t)
		cache := mocks.NewFeedCache(t)
		svc := service.NewFeedService(store, cache)

		cache.On("GetFeed", ctx).Return(nil, false).Once()
		store.On("ListAllReviews", ctx).Return(feed, nil).Once()
		cache.On("SetFeed", ctx, feed).Return(nil).Once()

		reviews, err := svc.Global(ctx)
		assert.NoError(t, err)
		assert.Equal(t, feed, reviews)
	})

	t.Run("cache_hit_skips_store", func(t *testing.T) {
		store := mocks.NewEntityStore(t)
		cache := mocks.NewFeedCache(t)
		svc := service.NewFeedService(store, cache)

		cache.On("GetFeed", ctx).Return(feed, true).Once()

		reviews, err := svc.Global(ctx)
		assert.NoError(t, err)
		assert.Equal(t, feed, reviews)
	})

	t.Run("no_cache_configured", func(t *testing.T) {
		store := mocks.NewEntityStore(t)
		svc := service.NewFeedService(store, nil)

		store.On("ListAllReviews", ctx).Return(feed, nil).Once()

		reviews, err := svc.Global(ctx)
		assert.NoError(t, err)
		assert.Equal(t, feed, reviews)
	})
}

func TestFeedService_Discovery(t *testing.T) {
	ctx := context.Background()

	feed := []domain.Review{
		{ID: "r3", DishID: "d1", UserID: "u3", Rating: 6},
		{ID: "r2", DishID: "d1", UserID: "u2", Rating: 7},
		{ID: "r1", DishID: "d2", UserID: "u1", Rating: 9},
	}

	t.Run("filters_to_followed_authors", func(t *testing.T) {
		store := mocks.NewEntityStore(t)
		svc := service.NewFeedService(store, nil)

		store.On("GetUser", ctx, "u1").
			Return(&domain.User{ID: "u1", Following: []string{"u2"}}, nil).Once()
		store.On("ListAllReviews", ctx).Return(feed, nil).Once()

		reviews, err := svc.Discovery(ctx, "u1")
		assert.NoError(t, err)
		assert.Len(t, reviews, 1)
		assert.Equal(t, "r2", reviews[0].ID)
	})

	t.Run("following_nobody_yields_empty_feed", func(t *testing.T) {
		store := mocks.NewEntityStore(t)
		svc := service.NewFeedService(store, nil)

		store.On("GetUser", ctx, "u1").Return(&domain.User{ID: "u1"}, nil).Once()
		store.On("ListAllReviews", ctx).Return(feed, nil).Once()

		reviews, err := svc.Discovery(ctx, "u1")
		assert.NoError(t, err)
		assert.NotNil(t, reviews)
		assert.Empty(t, reviews)
	})

	t.Run("error_user_not_found", func(t *testing.T) {
		store := mocks.NewEntityStore(t)
		svc := service.NewFeedService(store, nil)

		store.On("GetUser", ctx, "missing").Return(nil, domain.ErrNotFound).Once()

		_, err := svc.Discovery(ctx, "missing")
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}
