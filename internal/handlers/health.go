package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
)

// Pinger reports whether a backing service is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
	env   string
}

// NewHealthHandler creates a health handler that pings store
func NewHealthHandler(store Pinger, env string) *HealthHandler {
	return &HealthHandler{store: store, env: env}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.Ctx(ctx).Warn("health check failed", logger.Err(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"env":    h.env,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"env":    h.env,
	})
}
