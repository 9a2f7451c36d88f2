package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"dishcovery/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrDishNotFound  = errors.New("dish not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 10")
)

// ReviewService orchestrates review creation and deletion, keeping the
// author's variety state in step with their surviving reviews. The user
// write and the review write are two independent round trips; a failure
// between them leaves the user's derived state stale until Recompute runs.
type ReviewService struct {
	store     EntityStore
	cache     FeedCache
	publisher ReviewPublisher
	metrics   Metrics
}

func NewReviewService(store EntityStore, cache FeedCache, publisher ReviewPublisher, metrics Metrics) *ReviewService {
	return &ReviewService{
		store:     store,
		cache:     cache,
		publisher: publisher,
		metrics:   metrics,
	}
}

func (s *ReviewService) Create(ctx context.Context, review *domain.Review) error {
	var missing []string
	if review.DishID == "" {
		missing = append(missing, "dish_id")
	}
	if review.UserID == "" {
		missing = append(missing, "user_id")
	}
	if review.Rating == 0 {
		missing = append(missing, "rating")
	}
	if err := domain.MissingFields(missing...); err != nil {
		return err
	}
	if review.Rating < 1 || review.Rating > 10 {
		return ErrInvalidRating
	}

	dish, err := s.store.GetDish(ctx, review.DishID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrDishNotFound
		}
		return fmt.Errorf("resolve dish: %w", err)
	}

	user, err := s.store.GetUser(ctx, review.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("resolve user: %w", err)
	}

	// The user's category set grows before the review is inserted. The two
	// writes are not atomic: if the insert below fails the user keeps a
	// category with no backing review until the next recompute.
	if !hasCategory(user.ReviewedCategories, dish.Category) {
		user.ReviewedCategories = append(user.ReviewedCategories, dish.Category)
		user.VarietyScore = len(user.ReviewedCategories)
		if err := s.store.UpsertUser(ctx, user); err != nil {
			return fmt.Errorf("update variety state: %w", err)
		}
	}

	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if err := s.store.CreateReview(ctx, review); err != nil {
		log.Printf("[review-svc] WARNING: review insert failed after variety update, user %s state may be stale: %v", review.UserID, err)
		if s.metrics != nil {
			s.metrics.RecordInconsistency()
		}
		return err
	}

	if s.metrics != nil {
		s.metrics.RecordReviewCreated()
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
	if s.publisher != nil {
		if err := s.publisher.PublishReview(ctx, domain.ReviewEvent{
			Type:      domain.EventReviewCreated,
			ReviewID:  review.ID,
			DishID:    review.DishID,
			UserID:    review.UserID,
			Rating:    review.Rating,
			Timestamp: time.Now(),
		}); err != nil {
			log.Printf("[review-svc] failed to publish review event: %v", err)
		}
	}

	return nil
}

func (s *ReviewService) Delete(ctx context.Context, reviewID, requestingUserID string) error {
	if err := s.store.DeleteReview(ctx, reviewID, requestingUserID); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.RecordReviewDeleted()
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
	if s.publisher != nil {
		if err := s.publisher.PublishReview(ctx, domain.ReviewEvent{
			Type:      domain.EventReviewDeleted,
			ReviewID:  reviewID,
			UserID:    requestingUserID,
			Timestamp: time.Now(),
		}); err != nil {
			log.Printf("[review-svc] failed to publish review event: %v", err)
		}
	}

	// Full recomputation rather than an incremental decrement: the user may
	// hold other reviews in the deleted review's category.
	if _, err := s.Recompute(ctx, requestingUserID); err != nil {
		log.Printf("[review-svc] WARNING: variety recompute failed after deleting review %s, user %s state may be stale: %v", reviewID, requestingUserID, err)
		if s.metrics != nil {
			s.metrics.RecordInconsistency()
		}
	}

	return nil
}

// Recompute rebuilds a user's reviewed-category set and variety score from
// their surviving reviews. It is idempotent and doubles as the repair
// operation for the non-atomic create/delete paths.
func (s *ReviewService) Recompute(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	reviews, err := s.store.ListReviewsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	dishesByID := make(map[string]domain.Dish, len(reviews))
	for _, review := range reviews {
		if _, ok := dishesByID[review.DishID]; ok {
			continue
		}
		dish, err := s.store.GetDish(ctx, review.DishID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("resolve dish %s: %w", review.DishID, err)
		}
		dishesByID[review.DishID] = *dish
	}

	user.ReviewedCategories, user.VarietyScore = ComputeVarietyState(dishesByID, reviews)
	if err := s.store.UpsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("persist variety state: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordVarietyRecompute()
	}

	return user, nil
}

func hasCategory(categories []domain.FoodCategory, category domain.FoodCategory) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
