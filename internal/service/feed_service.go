package service

import (
	"context"
	"errors"
	"fmt"

	"dishcovery/internal/domain"
)

// FeedService is the read-side facade over the entity store. The global
// feed is chronological and unfiltered; Discovery narrows it to reviews
// authored by users the requester follows.
type FeedService struct {
	store EntityStore
	cache FeedCache
}

func NewFeedService(store EntityStore, cache FeedCache) *FeedService {
	return &FeedService{store: store, cache: cache}
}

func (s *FeedService) Global(ctx context.Context) ([]domain.Review, error) {
	if s.cache != nil {
		if reviews, ok := s.cache.GetFeed(ctx); ok {
			return reviews, nil
		}
	}

	reviews, err := s.store.ListAllReviews(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetFeed(ctx, reviews)
	}

	return reviews, nil
}

func (s *FeedService) ByDish(ctx context.Context, dishID string) ([]domain.Review, error) {
	return s.store.ListReviewsByDish(ctx, dishID)
}

func (s *FeedService) ByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	return s.store.ListReviewsByUser(ctx, userID)
}

func (s *FeedService) Discovery(ctx context.Context, userID string) ([]domain.Review, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	all, err := s.Global(ctx)
	if err != nil {
		return nil, err
	}

	followed := make(map[string]struct{}, len(user.Following))
	for _, id := range user.Following {
		followed[id] = struct{}{}
	}

	feed := []domain.Review{}
	for _, review := range all {
		if _, ok := followed[review.UserID]; ok {
			feed = append(feed, review)
		}
	}

	return feed, nil
}
