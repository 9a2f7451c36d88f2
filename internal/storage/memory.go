package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"dishcovery/internal/domain"
)

// MemoryStore is the development/test fallback backend. State lives in
// process memory and is lost on exit.
type MemoryStore struct {
	mu      sync.RWMutex
	dishes  []domain.Dish
	users   []domain.User
	reviews []domain.Review
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) GetDish(ctx context.Context, id string) (*domain.Dish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, dish := range s.dishes {
		if dish.ID == id {
			d := dish
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dishes := make([]domain.Dish, len(s.dishes))
	copy(dishes, s.dishes)
	sort.SliceStable(dishes, func(i, j int) bool { return dishes[i].CreatedAt.After(dishes[j].CreatedAt) })
	return dishes, nil
}

func (s *MemoryStore) CreateDish(ctx context.Context, dish *domain.Dish) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dish.CreatedAt.IsZero() {
		dish.CreatedAt = time.Now().UTC()
	}
	s.dishes = append(s.dishes, *dish)
	return nil
}

func (s *MemoryStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.ID == id {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]domain.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

func (s *MemoryStore) UpsertUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	user.UpdatedAt = now
	for i := range s.users {
		if s.users[i].ID == user.ID {
			user.CreatedAt = s.users[i].CreatedAt
			s.users[i] = *user
			return nil
		}
	}
	user.CreatedAt = now
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStore) ListReviewsByDish(ctx context.Context, dishID string) ([]domain.Review, error) {
	return s.filterReviews(func(r domain.Review) bool { return r.DishID == dishID }), nil
}

func (s *MemoryStore) ListReviewsByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	return s.filterReviews(func(r domain.Review) bool { return r.UserID == userID }), nil
}

func (s *MemoryStore) ListAllReviews(ctx context.Context) ([]domain.Review, error) {
	return s.filterReviews(func(domain.Review) bool { return true }), nil
}

func (s *MemoryStore) filterReviews(keep func(domain.Review) bool) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reviews := []domain.Review{}
	for _, review := range s.reviews {
		if keep(review) {
			reviews = append(reviews, review)
		}
	}
	sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].CreatedAt.After(reviews[j].CreatedAt) })
	return reviews
}

func (s *MemoryStore) CreateReview(ctx context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}
	s.reviews = append(s.reviews, *review)
	return nil
}

func (s *MemoryStore) DeleteReview(ctx context.Context, id, requestingUserID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, review := range s.reviews {
		if review.ID != id {
			continue
		}
		if review.UserID != requestingUserID {
			return domain.ErrNotOwner
		}
		s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
		return nil
	}
	return domain.ErrNotFound
}
