package doctors

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/medibook/medibook-platform/pkg/logging"
)

const cacheKey = "doctors:all"

// CachedRepository layers a Redis read-through cache over a Repository for
// full-directory listings. Doctor records never change after seeding, so the
// cache only has to survive a TTL, not invalidation. Every cache failure
// degrades to the inner repository; callers never see a Redis error.
type CachedRepository struct {
	Repository

	redis  *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

// NewCachedRepository wraps repo with a Redis cache for GetAll.
func NewCachedRepository(repo Repository, redisClient *redis.Client, ttl time.Duration, logger *logging.Logger) *CachedRepository {
	return &CachedRepository{
		Repository: repo,
		redis:      redisClient,
		ttl:        ttl,
		logger:     logger,
	}
}

// GetAll serves the listing from Redis when present, falling back to the
// inner repository and repopulating the cache on a miss.
func (c *CachedRepository) GetAll(ctx context.Context) ([]*Doctor, error) {
	if cached, err := c.fetch(ctx); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		c.logger.Warn("doctor cache read failed", "error", err)
	}

	list, err := c.Repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.store(ctx, list); err != nil {
		c.logger.Warn("doctor cache write failed", "error", err)
	}
	return list, nil
}

func (c *CachedRepository) fetch(ctx context.Context) ([]*Doctor, error) {
	data, err := c.redis.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return nil, err
	}
	var list []*Doctor
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("doctors: unmarshal cached listing: %w", err)
	}
	return list, nil
}

func (c *CachedRepository) store(ctx context.Context, list []*Doctor) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("doctors: marshal listing: %w", err)
	}
	if err := c.redis.Set(ctx, cacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("doctors: cache listing: %w", err)
	}
	return nil
}
