package handlers

import (
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrack/backend/internal/auth"
	"github.com/JonnyWalker81/moodtrack/backend/internal/cache"
	"github.com/JonnyWalker81/moodtrack/backend/internal/middleware"
)

// Routes holds everything needed to mount the API
type Routes struct {
	Moods    *MoodHandler
	Reports  *ReportHandler
	Health   *HealthHandler
	Verifier auth.TokenVerifier
	Resolver *auth.Resolver
	// GenerateLimiter throttles on-demand weekly report generation; nil disables it
	GenerateLimiter *middleware.RateLimiter
	// IdempotencyCache stores replayable mood write responses; nil disables it
	IdempotencyCache cache.Cache
}

// Register mounts /health and the /api/v1 routes on router
func (rt Routes) Register(router gin.IRouter) {
	router.GET("/health", rt.Health.Health)

	v1 := router.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(middleware.Auth(rt.Verifier))

	perm := func(p auth.Permission) gin.HandlerFunc {
		return middleware.RequirePermission(rt.Resolver, p)
	}

	write := []gin.HandlerFunc{perm(auth.PermMoodsWriteSelf)}
	if rt.IdempotencyCache != nil {
		write = append(write, middleware.Idempotency(rt.IdempotencyCache, middleware.DefaultIdempotencyTTL))
	}

	// Mood routes
	moods := protected.Group("/moods")
	{
		moods.GET("/catalog", rt.Moods.GetCatalog)
		moods.GET("/months/:month", perm(auth.PermMoodsReadSelf), rt.Moods.GetMonth)
		moods.GET("/days/:date", perm(auth.PermMoodsReadSelf), rt.Moods.GetDay)
		moods.POST("/days/:date", append(slices.Clone(write), rt.Moods.AddMood)...)
		moods.PUT("/days/:date", append(slices.Clone(write), rt.Moods.UpsertDay)...)
		moods.DELETE("/days/:date", perm(auth.PermMoodsWriteSelf), rt.Moods.DeleteDay)
		moods.GET("/analytics", perm(auth.PermAnalyticsReadSelf), rt.Moods.GetAnalytics)
	}

	protected.GET("/me/evolution", perm(auth.PermAnalyticsReadSelf), rt.Reports.GetMyEvolution)

	// Report routes
	reports := protected.Group("/reports")
	{
		generate := []gin.HandlerFunc{perm(auth.PermReportsGenerate)}
		if rt.GenerateLimiter != nil {
			generate = append(generate, rt.GenerateLimiter.Middleware())
		}
		reports.POST("/weekly", append(generate, rt.Reports.GenerateWeekly)...)
		reports.GET("/weekly", perm(auth.PermReportsRead), rt.Reports.ListWeekly)
		reports.GET("/weekly/:id", perm(auth.PermReportsRead), rt.Reports.GetWeekly)

		reports.GET("/patients/groups", perm(auth.PermPatientsRead), rt.Reports.GetPatientGroups)
		reports.GET("/patients/:id/evolution",
			middleware.RequireSelfOrPermission(rt.Resolver, "id", auth.PermAnalyticsReadSelf, auth.PermPatientsRead),
			rt.Reports.GetPatientEvolution)
	}
}
