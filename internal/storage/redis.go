package storage

import (
	"context"
	"encoding/json"
	"time"

	"dishcovery/internal/domain"

	"github.com/redis/go-redis/v9"
)

const feedKey = "feed:all"

// RedisFeedCache caches the global review feed for a short TTL. Misses
// and cache errors both fall through to the entity store.
type RedisFeedCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisFeedCache(client *redis.Client, ttl time.Duration) *RedisFeedCache {
	return &RedisFeedCache{Client: client, TTL: ttl}
}

func (c *RedisFeedCache) GetFeed(ctx context.Context) ([]domain.Review, bool) {
	payload, err := c.Client.Get(ctx, feedKey).Bytes()
	if err != nil {
		return nil, false
	}
	var reviews []domain.Review
	if err := json.Unmarshal(payload, &reviews); err != nil {
		return nil, false
	}
	return reviews, true
}

func (c *RedisFeedCache) SetFeed(ctx context.Context, reviews []domain.Review) error {
	payload, err := json.Marshal(reviews)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, feedKey, payload, c.TTL).Err()
}

func (c *RedisFeedCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, feedKey).Err()
}
