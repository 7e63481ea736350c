// Package rediscache implements the tracking cache port on Redis. Entries
// expire by TTL only; the write path never invalidates, so the TTL is the
// upper bound on tracking-page staleness.
package rediscache

import (
	"context"
	"errors"
	"time"

	"parcels/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// TrackingCache is a Redis-backed implementation of ports.TrackingCache.
type TrackingCache struct {
	client *redis.Client
}

// NewTrackingCache creates a cache on an existing Redis client.
func NewTrackingCache(client *redis.Client) *TrackingCache {
	return &TrackingCache{client: client}
}

// Get returns the cached payload for the key, or ports.ErrCacheMiss.
func (c *TrackingCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Set stores the payload under the key for the given TTL.
func (c *TrackingCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, payload, ttl).Err()
}
