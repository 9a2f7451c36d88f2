package main

import (
	"log"
	"time"

	"dishcovery/config"
	httpapi "dishcovery/internal/api/http"
	"dishcovery/internal/metrics"
	"dishcovery/internal/service"
	"dishcovery/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

func main() {
	var store service.EntityStore
	switch backend := config.DetectBackend(); backend {
	case config.BackendPostgres:
		if err := storage.RunMigrations(config.PostgresURL()); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		store = storage.NewPostgresStore(config.MustInitPostgres())
		log.Println("Using Postgres backend")
	case config.BackendGorm:
		gormStore, err := storage.NewGormStore(config.MustInitGorm())
		if err != nil {
			log.Fatal("Failed to migrate schema:", err)
		}
		store = gormStore
		log.Println("Using GORM Postgres backend")
	case config.BackendMongo:
		store = storage.NewMongoStore(config.MustInitMongo())
		log.Println("Using MongoDB backend")
	case config.BackendMemory:
		store = storage.NewMemoryStore()
		log.Println("WARNING: using in-memory backend, data is lost on exit")
	default:
		store = storage.UnavailableStore{}
		log.Println("WARNING: no storage backend configured, all entity operations will fail with a configuration hint")
	}

	var cache service.FeedCache
	if client := config.InitRedis(); client != nil {
		cache = storage.NewRedisFeedCache(client, 30*time.Second)
	}

	var publisher service.ReviewPublisher
	if writer := config.NewKafkaWriter("reviews"); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	dishSvc := service.NewDishService(store, service.DefaultQRGenerator{BaseURL: config.BaseURL()})
	userSvc := service.NewUserService(store)
	reviewSvc := service.NewReviewService(store, cache, publisher, collector)
	feedSvc := service.NewFeedService(store, cache)

	handler := httpapi.NewHandler(dishSvc, userSvc, reviewSvc, feedSvc, config.UploadDir())

	limiter := httpapi.NewRateLimiter(rate.Limit(2), 60)
	defer limiter.Stop()

	router := httpapi.NewRouter(handler, limiter, registry)
	httpapi.StartServer(":"+config.Port(), router)
}
