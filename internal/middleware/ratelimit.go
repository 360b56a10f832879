package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrack/backend/internal/apierror"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
)

// RateLimiter provides fixed-window request limiting per caller. Callers
// are keyed by authenticated user id, falling back to client IP.
type RateLimiter struct {
	requests map[string]*clientInfo
	mu       sync.Mutex
	rate     int           // requests per window
	window   time.Duration // time window
	name     string        // identifier for logging

	done     chan struct{}
	stopOnce sync.Once
}

type clientInfo struct {
	count       int
	windowStart time.Time
	lastSeen    time.Time
}

// NewRateLimiter creates a new rate limiter and starts its cleanup loop.
// Call Stop to release it.
func NewRateLimiter(rate int, window time.Duration, name string) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string]*clientInfo),
		rate:     rate,
		window:   window,
		name:     name,
		done:     make(chan struct{}),
	}

	go rl.cleanup()

	logger.Default().Debug("rate limiter initialized",
		logger.String("name", name),
		logger.Int("rate", rate),
		logger.Duration("window", window),
	)

	return rl
}

// Stop ends the cleanup loop
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

// cleanup removes stale entries periodically
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
		}

		rl.mu.Lock()
		now := time.Now()
		cleaned := 0
		for key, info := range rl.requests {
			if now.Sub(info.lastSeen) > rl.window*2 {
				delete(rl.requests, key)
				cleaned++
			}
		}
		remaining := len(rl.requests)
		rl.mu.Unlock()

		if cleaned > 0 {
			logger.Default().Debug("rate limiter cleanup completed",
				logger.String("name", rl.name),
				logger.Int("cleaned", cleaned),
				logger.Int("remaining", remaining),
			)
		}
	}
}

// allow records a request for key and reports whether it fits the window,
// along with the count so far and the time until the window resets.
func (rl *RateLimiter) allow(key string) (bool, int, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	info, exists := rl.requests[key]
	if !exists || now.Sub(info.windowStart) >= rl.window {
		rl.requests[key] = &clientInfo{count: 1, windowStart: now, lastSeen: now}
		return true, 1, rl.window
	}

	info.count++
	info.lastSeen = now
	return info.count <= rl.rate, info.count, rl.window - now.Sub(info.windowStart)
}

// Middleware returns the gin handler enforcing this limiter
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := UserID(c)
		if key == "" {
			key = c.ClientIP()
		}

		allowed, count, reset := rl.allow(key)
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(rl.rate-count, 0)))

		if !allowed {
			logger.FromContext(c.Request.Context()).Warn("rate limit exceeded",
				logger.String("limiter", rl.name),
				logger.String("key", key),
				logger.Int("request_count", count),
				logger.Int("limit", rl.rate),
				logger.Duration("window", rl.window),
			)

			retryAfter := int(math.Ceil(reset.Seconds()))
			apierror.WriteProblem(c, apierror.NewRateLimitError(apierror.GetRequestID(c), max(retryAfter, 1)))
			c.Abort()
			return
		}

		c.Next()
	}
}
