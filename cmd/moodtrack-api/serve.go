package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/moodtrack/backend/internal/auth"
	"github.com/JonnyWalker81/moodtrack/backend/internal/handlers"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrack/backend/internal/middleware"
	"github.com/JonnyWalker81/moodtrack/backend/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and the weekly report scheduler.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	cfg := a.cfg
	log := a.log
	ctx = logger.WithLogger(ctx, log)

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log.Info("starting moodtrack api",
		logger.String("env", cfg.Server.Env),
		logger.String("store", cfg.Store.Driver),
		logger.String("cache", cfg.Cache.Driver),
	)

	if cfg.Sentry.DSN != "" {
		env := cfg.Sentry.Environment
		if env == "" {
			env = cfg.Server.Env
		}
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      env,
			SampleRate:       cfg.Sentry.SampleRate,
			AttachStacktrace: true,
		}); err != nil {
			log.Error("sentry init failed", logger.Err(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	permCache, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer permCache.Close()

	resolver := auth.NewResolver(a.store.Users(), permCache, cfg.Cache.PermissionTTL)
	verifier := auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	generateLimiter := middleware.NewRateLimiter(6, time.Hour, "report-generate")
	defer generateLimiter.Stop()

	// Set Gin mode based on environment
	isProduction := cfg.Server.Env == "production"
	if isProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(middleware.Recovery())
	router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.SecurityHeaders(isProduction))

	handlers.Routes{
		Moods:            handlers.NewMoodHandler(a.moods),
		Reports:          handlers.NewReportHandler(a.reports),
		Health:           handlers.NewHealthHandler(a.store, cfg.Server.Env),
		Verifier:         verifier,
		Resolver:         resolver,
		GenerateLimiter:  generateLimiter,
		IdempotencyCache: permCache,
	}.Register(router)

	sched := scheduler.New(a.reports, scheduler.Options{Disabled: cfg.Reports.SchedulerDisabled})
	sched.Start(ctx)
	defer sched.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", logger.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
