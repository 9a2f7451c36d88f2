package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "dishcovery/internal/api/http"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiter(t *testing.T) {
	limiter := httpapi.NewRateLimiter(rate.Limit(0), 2)
	defer limiter.Stop()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := limiter.Middleware(ok)

	send := func(method string) int {
		req := httptest.NewRequest(method, "/api/reviews", nil)
		req.RemoteAddr = "10.0.0.1:44321"
		recorder := httptest.NewRecorder()
		wrapped.ServeHTTP(recorder, req)
		return recorder.Code
	}

	// Burst of 2 mutating requests passes, the third is rejected.
	assert.Equal(t, http.StatusOK, send("POST"))
	assert.Equal(t, http.StatusOK, send("POST"))
	assert.Equal(t, http.StatusTooManyRequests, send("POST"))

	// Reads are never limited, even with the bucket drained.
	assert.Equal(t, http.StatusOK, send("GET"))
}

func TestRateLimiter_PerClientBuckets(t *testing.T) {
	limiter := httpapi.NewRateLimiter(rate.Limit(0), 1)
	defer limiter.Stop()

	wrapped := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest("POST", "/api/reviews", nil)
		req.RemoteAddr = addr
		recorder := httptest.NewRecorder()
		wrapped.ServeHTTP(recorder, req)
		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1111"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:2222"))
}
