// Package cache provides a small key/value cache with expiry, backed either
// by process memory or by Redis so several API instances can share it.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrClosed is returned by a memory cache after Close
var ErrClosed = errors.New("cache closed")

// Cache stores JSON-encoded values under string keys with a TTL
type Cache interface {
	// Get decodes the value under key into dest. It reports false when the
	// key is missing or expired.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores value under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Delete removes keys; missing keys are ignored
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
