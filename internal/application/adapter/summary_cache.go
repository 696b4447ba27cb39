package adapter

import (
	"context"
	"time"
)

// SummaryCache caches rendered summary payloads keyed by the query that
// produced them. Entries are best-effort: a miss or a cache failure must never
// fail the request.
type SummaryCache interface {
	// Get returns the cached payload for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (payload []byte, ok bool)

	// Set stores a payload under key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)

	// Invalidate discards all cached summaries. Called after any write to the
	// expense store.
	Invalidate(ctx context.Context)
}
