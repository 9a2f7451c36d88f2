package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Backend identifies the storage engine wired in at startup.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendGorm     Backend = "gorm"
	BackendMongo    Backend = "mongo"
	BackendMemory   Backend = "memory"
	BackendNone     Backend = ""
)

// DetectBackend picks the storage backend: an explicit STORAGE_BACKEND
// wins, otherwise the first configured connection source. When nothing is
// configured the caller wires in the unavailable store.
func DetectBackend() Backend {
	switch Backend(os.Getenv("STORAGE_BACKEND")) {
	case BackendPostgres, BackendGorm, BackendMongo, BackendMemory:
		return Backend(os.Getenv("STORAGE_BACKEND"))
	}
	if PostgresURL() != "" {
		return BackendPostgres
	}
	if os.Getenv("MONGODB_URI") != "" {
		return BackendMongo
	}
	return BackendNone
}

// PostgresURL resolves the Postgres connection string: DATABASE_URL, then
// POSTGRES_URL, then the discrete DB_* variables.
func PostgresURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	if url := os.Getenv("POSTGRES_URL"); url != "" {
		return url
	}
	if os.Getenv("DB_HOST") == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_NAME"))
}

func MustInitPostgres() *sql.DB {
	db, err := sql.Open("postgres", PostgresURL())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitGorm() *gorm.DB {
	db, err := gorm.Open(gormpostgres.Open(PostgresURL()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	return db
}

func MustInitMongo() *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGODB_URI")))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	name := os.Getenv("MONGODB_DB")
	if name == "" {
		name = "dishcovery"
	}
	return client.Database(name)
}

// InitRedis returns a connected client, or nil when REDIS_HOST is unset
// or unreachable. The feed cache is optional.
func InitRedis() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return nil
	}

	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + port,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARNING: Redis unreachable, feed cache disabled: %v", err)
		return nil
	}

	return client
}

// NewKafkaWriter returns a writer for topic, or nil when KAFKA_BROKER is
// unset. Review event publishing is optional.
func NewKafkaWriter(topic string) *kafka.Writer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

func BaseURL() string {
	if url := os.Getenv("BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:" + Port()
}

func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}
