package httpapi

import (
	"log"
	"net/http"

	"dishcovery/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, limiter *RateLimiter, gatherer prometheus.Gatherer) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	if gatherer != nil {
		r.Handle("/metrics", metrics.Handler(gatherer)).Methods("GET")
	}

	var wrapped http.Handler = r
	if limiter != nil {
		wrapped = limiter.Middleware(wrapped)
	}
	wrapped = RequestLogger(wrapped)
	return cors.Default().Handler(wrapped)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("dishcovery starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
