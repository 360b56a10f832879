package main

import (
	"context"
	"fmt"
	"time"

	"github.com/JonnyWalker81/moodtrack/backend/internal/cache"
	"github.com/JonnyWalker81/moodtrack/backend/internal/config"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrack/backend/internal/repository"
	"github.com/JonnyWalker81/moodtrack/backend/internal/service"
)

// app holds the long-lived dependencies shared by every subcommand
type app struct {
	cfg     *config.Config
	log     logger.Logger
	store   repository.Store
	moods   service.MoodService
	reports service.ReportService
}

func newApp(ctx context.Context) (*app, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:     logger.ParseLevel(cfg.Log.Level),
		Format:    cfg.Log.Format,
		Backend:   cfg.Log.Backend,
		AddSource: cfg.Log.AddSource,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.SetDefault(log)

	store, err := openStore(logger.WithLogger(ctx, log), cfg)
	if err != nil {
		return nil, err
	}

	moods := service.NewMoodService(store.Moods(), nil)
	reports := service.NewReportService(store.Users(), store.Reports(), store.Moods(), moods, service.ReportOptions{
		TrendThreshold:  cfg.Reports.TrendThreshold,
		UpperPercentile: cfg.Reports.UpperPercentile,
		LowerPercentile: cfg.Reports.LowerPercentile,
		DefaultMonths:   cfg.Reports.DefaultMonths,
		Concurrency:     cfg.Reports.Concurrency,
	})

	return &app{
		cfg:     cfg,
		log:     log,
		store:   store,
		moods:   moods,
		reports: reports,
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.Store.Driver {
	case "memory":
		store := repository.NewMemoryStore()
		if cfg.Store.SeedFile != "" {
			if err := store.LoadSeed(cfg.Store.SeedFile); err != nil {
				return nil, err
			}
		}
		logger.Ctx(ctx).Warn("using in-memory store; data is lost on exit",
			logger.String("seed_file", cfg.Store.SeedFile),
		)
		return store, nil
	default:
		store, err := repository.ConnectMongo(ctx, repository.MongoOptions{
			URI:         cfg.Mongo.URI,
			Database:    cfg.Mongo.Database,
			MaxPoolSize: cfg.Mongo.MaxPoolSize,
			Timeout:     cfg.Mongo.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = store.Close(context.Background())
			return nil, fmt.Errorf("failed to create indexes: %w", err)
		}
		return store, nil
	}
}

func openCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	if cfg.Cache.Driver != "redis" {
		return cache.NewMemoryCache(time.Minute), nil
	}

	c := cache.NewRedisCache(cache.RedisOptions{
		Addr:      cfg.Redis.Addr,
		Password:  cfg.Redis.Password,
		DB:        cfg.Redis.DB,
		KeyPrefix: cfg.Redis.KeyPrefix,
	})
	if err := c.Ping(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return c, nil
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.store.Close(ctx); err != nil {
		a.log.Warn("failed to close store", logger.Err(err))
	}
}
