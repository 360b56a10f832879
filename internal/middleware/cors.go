package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS middleware to handle cross-origin requests. An empty origin list
// allows every origin without credentials. Origins may use a single
// leading wildcard such as https://*.example.com.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept",
			"Authorization", "Cache-Control", "X-Requested-With", HeaderRequestID,
		},
		ExposeHeaders: []string{HeaderRequestID, "Retry-After"},
		MaxAge:        12 * time.Hour,
		AllowWildcard: true,
	}

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}
