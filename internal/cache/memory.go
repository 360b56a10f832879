package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
)

type memoryEntry struct {
	data    []byte
	expires time.Time // zero means no expiry
}

// MemoryCache is a process-local Cache
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

// NewMemoryCache creates a memory cache that sweeps expired entries every
// cleanupInterval. A non-positive interval disables the sweeper.
func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	c := &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go c.cleanup(cleanupInterval)
	}
	return c
}

// cleanup removes expired entries periodically
func (c *MemoryCache) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
		}

		c.mu.Lock()
		now := c.now()
		cleaned := 0
		for key, e := range c.entries {
			if !e.expires.IsZero() && now.After(e.expires) {
				delete(c.entries, key)
				cleaned++
			}
		}
		remaining := len(c.entries)
		c.mu.Unlock()

		if cleaned > 0 {
			logger.Default().Debug("cache cleanup completed",
				logger.Int("cleaned", cleaned),
				logger.Int("remaining", remaining),
			)
		}
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if !e.expires.IsZero() && c.now().After(e.expires) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return false, nil
	}

	if err := json.Unmarshal(e.data, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	e := memoryEntry{data: data}
	if ttl > 0 {
		e.expires = c.now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	c.entries[key] = e
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

// Close stops the sweeper
func (c *MemoryCache) Close() error {
	c.once.Do(func() { close(c.done) })
	return nil
}
