package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Store   StoreConfig   `mapstructure:"store"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Log     LogConfig     `mapstructure:"log"`
	Reports ReportsConfig `mapstructure:"reports"`
	Sentry  SentryConfig  `mapstructure:"sentry"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port        string   `mapstructure:"port"`
	Env         string   `mapstructure:"env"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// StoreConfig selects the storage backend
type StoreConfig struct {
	Driver   string `mapstructure:"driver"` // "mongo" or "memory"
	SeedFile string `mapstructure:"seed_file"`
}

// MongoConfig holds MongoDB connection settings
type MongoConfig struct {
	URI         string        `mapstructure:"uri"`
	Database    string        `mapstructure:"database"`
	MaxPoolSize uint64        `mapstructure:"max_pool_size"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// CacheConfig selects the permission cache backend
type CacheConfig struct {
	Driver        string        `mapstructure:"driver"` // "memory" or "redis"
	PermissionTTL time.Duration `mapstructure:"permission_ttl"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// AuthConfig holds token verification settings
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	Backend   string `mapstructure:"backend"`
	AddSource bool   `mapstructure:"add_source"`
}

// ReportsConfig holds aggregation thresholds and scheduler settings
type ReportsConfig struct {
	SchedulerDisabled bool    `mapstructure:"scheduler_disabled"`
	TrendThreshold    float64 `mapstructure:"trend_threshold"`
	UpperPercentile   float64 `mapstructure:"upper_percentile"`
	LowerPercentile   float64 `mapstructure:"lower_percentile"`
	DefaultMonths     int     `mapstructure:"default_months"`
	Concurrency       int     `mapstructure:"concurrency"`
}

// SentryConfig holds error reporting settings
type SentryConfig struct {
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	// A local .env fills in variables the environment does not already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("MOODTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without a default are unknown to Unmarshal unless bound
	_ = v.BindEnv("store.seed_file")
	_ = v.BindEnv("redis.password")
	_ = v.BindEnv("auth.jwt_secret")
	_ = v.BindEnv("log.add_source")
	_ = v.BindEnv("sentry.environment")

	// Also bind to common non-prefixed variables
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("mongo.uri", "MONGO_URI")
	_ = v.BindEnv("sentry.dsn", "SENTRY_DSN")

	// Read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.cors_origins", []string{})

	v.SetDefault("store.driver", "mongo")

	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "moodtrack")
	v.SetDefault("mongo.max_pool_size", 50)
	v.SetDefault("mongo.timeout", "5s")

	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.permission_ttl", "5m")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "moodtrack:")

	v.SetDefault("auth.issuer", "moodtrack")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.backend", "slog")

	v.SetDefault("reports.scheduler_disabled", false)
	v.SetDefault("reports.trend_threshold", 5.0)
	v.SetDefault("reports.upper_percentile", 0.75)
	v.SetDefault("reports.lower_percentile", 0.25)
	v.SetDefault("reports.default_months", 3)
	v.SetDefault("reports.concurrency", 8)

	v.SetDefault("sentry.sample_rate", 1.0)
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Comma-separated origins from the environment arrive as one string
	if len(config.Server.CORSOrigins) == 1 && strings.Contains(config.Server.CORSOrigins[0], ",") {
		config.Server.CORSOrigins = splitCSV(config.Server.CORSOrigins[0])
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks that all required configuration values are present
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "mongo":
		if c.Mongo.URI == "" {
			return fmt.Errorf("MOODTRACK_MONGO_URI is required for the mongo store")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	switch c.Cache.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("MOODTRACK_AUTH_JWT_SECRET is required")
	}

	r := c.Reports
	if r.TrendThreshold < 0 {
		return fmt.Errorf("reports.trend_threshold must not be negative")
	}
	if r.LowerPercentile < 0 || r.UpperPercentile >= 1 || r.LowerPercentile > r.UpperPercentile {
		return fmt.Errorf("reports percentiles must satisfy 0 <= lower <= upper < 1")
	}
	if r.DefaultMonths < 1 || r.DefaultMonths > 12 {
		return fmt.Errorf("reports.default_months must be between 1 and 12")
	}
	if r.Concurrency < 1 {
		return fmt.Errorf("reports.concurrency must be at least 1")
	}
	return nil
}
