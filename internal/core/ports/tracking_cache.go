package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by TrackingCache.Get when no entry exists for the
// key.
var ErrCacheMiss = errors.New("cache miss")

// TrackingCache is a short-lived read cache for public tracking lookups,
// keyed by tracking code. Entries are invalidated by TTL only; a stale read
// within the TTL window is acceptable for tracking pages.
type TrackingCache interface {
	// Get returns the cached payload for the key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the payload under the key for the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
