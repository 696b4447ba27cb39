// Package cache implements the summary cache on Redis.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// generationKey tracks the current cache generation. Every expense write bumps
// it, which orphans all previously written summary keys; the orphans expire
// through their TTL.
const generationKey = "expenses:summary:gen"

// summaryCache implements adapter.SummaryCache on a Redis client.
type summaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a new Redis-backed summary cache.
func NewSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &summaryCache{
		client: client,
	}
}

// Get returns the cached payload for key, or ok=false on a miss. Redis
// failures are logged and reported as misses.
func (c *summaryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, c.versionedKey(ctx, key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Summary cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores a payload under key with the given TTL.
func (c *summaryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, c.versionedKey(ctx, key), payload, ttl).Err(); err != nil {
		slog.Warn("Summary cache write failed", "key", key, "error", err)
	}
}

// Invalidate bumps the generation counter, detaching every cached summary.
func (c *summaryCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		slog.Warn("Summary cache invalidation failed", "error", err)
	}
}

func (c *summaryCache) versionedKey(ctx context.Context, key string) string {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && err != redis.Nil {
		slog.Warn("Summary cache generation read failed", "error", err)
	}
	return fmt.Sprintf("expenses:summary:%d:%s", gen, key)
}
