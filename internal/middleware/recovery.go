package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrack/backend/internal/apierror"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
)

// Recovery turns handler panics into a problem response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Ctx(c.Request.Context()).Error("panic recovered",
			logger.String("panic", fmt.Sprint(recovered)),
			logger.String("path", c.Request.URL.Path),
		)
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		c.Abort()
	})
}
