package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrack/backend/internal/apierror"
	"github.com/JonnyWalker81/moodtrack/backend/internal/cache"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"

	// HeaderIdempotencyReplayed marks a response served from the cache
	HeaderIdempotencyReplayed = "X-Idempotency-Replayed"

	// DefaultIdempotencyTTL is how long a stored response can be replayed
	DefaultIdempotencyTTL = 24 * time.Hour
)

// idempotentResponse is the cached outcome of a request
type idempotentResponse struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// idempotencyBodyWriter wraps gin.ResponseWriter to capture the response body for idempotency caching
type idempotencyBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *idempotencyBodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a mutating request that
// carries an Idempotency-Key already seen for the same route and user.
// A retried POST /moods/days/:date therefore cannot log the same mood twice.
// Only 2xx responses are stored. Cache failures never block the request.
func Idempotency(store cache.Cache, ttl time.Duration) gin.HandlerFunc {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}

	return func(c *gin.Context) {
		method := c.Request.Method
		if method != http.MethodPost && method != http.MethodPut && method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		userID := UserID(c)
		if userID == "" {
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		log := logger.Ctx(ctx)

		// c.Request.URL.Path keeps the concrete date so keys are per-day
		route := method + " " + c.Request.URL.Path
		cacheKey := "idempotency:" + userID + ":" + route + ":" + key

		var existing idempotentResponse
		found, err := store.Get(ctx, cacheKey, &existing)
		if err != nil {
			log.Error("failed to check idempotency key",
				logger.Err(err),
				logger.String("key", key),
			)
			c.Next()
			return
		}

		if found {
			log.Info("replaying idempotent response",
				logger.String("key", key),
				logger.String("route", route),
				logger.Int("status_code", existing.StatusCode),
			)

			c.Header(HeaderIdempotencyReplayed, "true")
			c.Data(existing.StatusCode, existing.ContentType, existing.Body)
			c.Abort()
			return
		}

		blw := &idempotencyBodyWriter{
			body:           bytes.NewBuffer(nil),
			ResponseWriter: c.Writer,
		}
		c.Writer = blw

		c.Next()

		statusCode := c.Writer.Status()
		if statusCode < 200 || statusCode >= 300 {
			return
		}

		record := idempotentResponse{
			StatusCode:  statusCode,
			ContentType: c.Writer.Header().Get("Content-Type"),
			Body:        blw.body.Bytes(),
		}
		if err := store.Set(ctx, cacheKey, record, ttl); err != nil {
			// the request already succeeded
			log.Warn("failed to store idempotency key",
				logger.Err(err),
				logger.String("key", key),
			)
			return
		}

		log.Debug("stored idempotency key",
			logger.String("key", key),
			logger.String("route", route),
			logger.Int("status_code", statusCode),
		)
	}
}
