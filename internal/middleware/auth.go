package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrack/backend/internal/apierror"
	"github.com/JonnyWalker81/moodtrack/backend/internal/auth"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrack/backend/internal/repository"
)

// Gin context keys set by the auth middleware
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextGrant     = "grant"
)

// Auth middleware to verify bearer tokens
func Auth(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Debug("authentication failed: missing authorization header")
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			log.Debug("authentication failed: invalid authorization format")
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			log.Warn("authentication failed: token verification error",
				logger.Err(err),
			)
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		c.Set(ContextUserID, identity.UID)
		c.Set(ContextUserEmail, identity.Email)

		// Add user ID to request context for logging
		ctx := logger.WithUserID(c.Request.Context(), identity.UID)
		c.Request = c.Request.WithContext(ctx)

		log.Debug("authentication successful",
			logger.String("user_id", identity.UID),
		)

		c.Next()
	}
}

// RequirePermission rejects callers whose grant lacks perm
func RequirePermission(resolver *auth.Resolver, perm auth.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		grant, ok := resolveGrant(c, resolver)
		if !ok {
			return
		}
		if !grant.Has(perm) {
			forbid(c, perm)
			return
		}
		c.Next()
	}
}

// RequireSelfOrPermission lets a caller through when the path parameter
// param names themselves and they hold self, or when they hold other.
func RequireSelfOrPermission(resolver *auth.Resolver, param string, self, other auth.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		grant, ok := resolveGrant(c, resolver)
		if !ok {
			return
		}
		if c.Param(param) == grant.UserID && grant.Has(self) {
			c.Next()
			return
		}
		if !grant.Has(other) {
			forbid(c, other)
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// GrantFrom returns the grant resolved earlier in the chain, if any
func GrantFrom(c *gin.Context) *auth.Grant {
	if v, ok := c.Get(ContextGrant); ok {
		if g, ok := v.(*auth.Grant); ok {
			return g
		}
	}
	return nil
}

func resolveGrant(c *gin.Context, resolver *auth.Resolver) (*auth.Grant, bool) {
	if g := GrantFrom(c); g != nil {
		return g, true
	}

	uid := UserID(c)
	if uid == "" {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		c.Abort()
		return nil, false
	}

	grant, err := resolver.Resolve(c.Request.Context(), uid)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, repository.ErrNotFound) {
			logger.Ctx(c.Request.Context()).Warn("authenticated user missing from directory")
			apierror.WriteProblem(c, apierror.NewForbiddenError(requestID))
		} else {
			logger.Ctx(c.Request.Context()).Error("permission resolution failed", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewServiceUnavailableError(requestID, 5))
		}
		c.Abort()
		return nil, false
	}

	c.Set(ContextGrant, grant)
	return grant, true
}

func forbid(c *gin.Context, perm auth.Permission) {
	logger.Ctx(c.Request.Context()).Debug("permission denied",
		logger.String("permission", string(perm)),
	)
	apierror.WriteProblem(c, apierror.NewForbiddenError(apierror.GetRequestID(c)))
	c.Abort()
}
