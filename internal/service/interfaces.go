package service

import (
	"context"

	"dishcovery/internal/domain"
)

// EntityStore is the persistence contract covering Dish, User and Review
// CRUD. Exactly one concrete adapter is wired in at startup.
type EntityStore interface {
	GetDish(ctx context.Context, id string) (*domain.Dish, error)
	ListDishes(ctx context.Context) ([]domain.Dish, error)
	CreateDish(ctx context.Context, dish *domain.Dish) error

	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpsertUser(ctx context.Context, user *domain.User) error

	ListReviewsByDish(ctx context.Context, dishID string) ([]domain.Review, error)
	ListReviewsByUser(ctx context.Context, userID string) ([]domain.Review, error)
	ListAllReviews(ctx context.Context) ([]domain.Review, error)
	CreateReview(ctx context.Context, review *domain.Review) error
	DeleteReview(ctx context.Context, id, requestingUserID string) error
}

// FeedCache caches the global review feed.
type FeedCache interface {
	GetFeed(ctx context.Context) ([]domain.Review, bool)
	SetFeed(ctx context.Context, reviews []domain.Review) error
	Invalidate(ctx context.Context) error
}

// ReviewPublisher publishes review lifecycle events.
type ReviewPublisher interface {
	PublishReview(ctx context.Context, event domain.ReviewEvent) error
}

// Metrics records service-level counters.
type Metrics interface {
	RecordReviewCreated()
	RecordReviewDeleted()
	RecordVarietyRecompute()
	RecordInconsistency()
}

type ReviewServiceInterface interface {
	Create(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, reviewID, requestingUserID string) error
	Recompute(ctx context.Context, userID string) (*domain.User, error)
}

type DishServiceInterface interface {
	Create(ctx context.Context, dish *domain.Dish) error
	Get(ctx context.Context, id string) (*domain.Dish, error)
	List(ctx context.Context) ([]domain.Dish, error)
	QRCode(ctx context.Context, id string) ([]byte, error)
}

type UserServiceInterface interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Upsert(ctx context.Context, user *domain.User) error
	GetOrCreate(ctx context.Context, id, name, avatar string) (*domain.User, error)
}

type FeedServiceInterface interface {
	Global(ctx context.Context) ([]domain.Review, error)
	ByDish(ctx context.Context, dishID string) ([]domain.Review, error)
	ByUser(ctx context.Context, userID string) ([]domain.Review, error)
	Discovery(ctx context.Context, userID string) ([]domain.Review, error)
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
var _ DishServiceInterface = (*DishService)(nil)
var _ UserServiceInterface = (*UserService)(nil)
var _ FeedServiceInterface = (*FeedService)(nil)
