package storage

import (
	"context"

	"dishcovery/internal/domain"
)

// UnavailableStore is wired in when no backend is configured. Every
// operation fails with ErrBackendUnavailable without attempting a call,
// which the HTTP layer turns into a configuration hint.
type UnavailableStore struct{}

func (UnavailableStore) GetDish(context.Context, string) (*domain.Dish, error) {
	return nil, domain.ErrBackendUnavailable
}

func (UnavailableStore) ListDishes(context.Context) ([]domain.Dish, error) {
	return nil, domain.ErrBackendUnavailable
}

func (UnavailableStore) CreateDish(context.Context, *domain.Dish) error {
	return domain.ErrBackendUnavailable
}

func (UnavailableStore) GetUser(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrBackendUnavailable
}

func (UnavailableStore) ListUsers(context.Context) ([]domain.User, error) {
	return nil, domain.ErrBackendUnavailable
}

func (UnavailableStore) UpsertUser(context.Context, *domain.User) error {
	return domain.ErrBackendUnavailable
}

func (UnavailableStore) ListReviewsByDish(context.Context, string) ([]domain.Review, error) {
	return nil, domain.ErrBackendUnavailable
}

func (UnavailableStore) ListReviewsByUser(context.Context, string) ([]domain.Review, error) {
	return nil, domain.ErrBackendUnavailable
}

func (UnavailableStore) ListAllReviews(context.Context) ([]domain.Review, error) {
	return nil, domain.ErrBackendUnavailable
}

func (UnavailableStore) CreateReview(context.Context, *domain.Review) error {
	return domain.ErrBackendUnavailable
}

func (UnavailableStore) DeleteReview(context.Context, string, string) error {
	return domain.ErrBackendUnavailable
}
