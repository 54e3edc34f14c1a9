package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moviehub/movies-api/internal/core/domain"
)

const cacheTTL = 10 * time.Minute

// MovieCache caches single-movie lookups in Redis as JSON.
// Key format: movie:<id>
type MovieCache struct {
	client *redis.Client
}

// NewMovieCache creates a MovieCache wrapping the given Redis client.
func NewMovieCache(client *redis.Client) *MovieCache {
	return &MovieCache{client: client}
}

// Get returns the cached movie, or (nil, nil) on a miss.
func (c *MovieCache) Get(ctx context.Context, id int) (*domain.Movie, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("movie cache get: %w", err)
	}

	var movie domain.Movie
	if err := json.Unmarshal(raw, &movie); err != nil {
		// Stale or corrupt entry: treat as a miss.
		_ = c.client.Del(ctx, c.key(id)).Err()
		return nil, nil
	}
	return &movie, nil
}

// Set stores the movie with a fixed TTL.
func (c *MovieCache) Set(ctx context.Context, m *domain.Movie) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("movie cache set: %w", err)
	}
	return c.client.Set(ctx, c.key(m.ID), raw, cacheTTL).Err()
}

// Invalidate removes the cached entry after an update or delete.
func (c *MovieCache) Invalidate(ctx context.Context, id int) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *MovieCache) key(id int) string {
	return fmt.Sprintf("movie:%d", id)
}
