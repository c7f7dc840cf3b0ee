package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/godilite/catalyst360/internal/framework"
	"go.uber.org/zap"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	DBPath                string
	DBDriver              string
	RedisAddr             string
	RedisPassword         string
	RedisDB               int
	CacheEnabled          bool
	CacheTTL              time.Duration
	GRPCPort              int
	GRPCReflectionEnabled bool
	GRPCLoggingEnabled    bool

	AnonymityThreshold    int
	HighScoreThreshold    float64
	SignificantGap        float64
	MinResponsesForReport int

	parseErr error
}

// LoadFromEnv loads configuration from environment variables.
// Unparseable values fall back to their defaults and are reported by Validate.
func LoadFromEnv() *Config {
	defaults := framework.DefaultPolicy()
	env := &envReader{}

	cfg := &Config{
		AppEnv:                env.getEnv("APP_ENV", "development"),
		DBPath:                env.getEnv("DB_PATH", "./data/database.db"),
		RedisAddr:             env.getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:         env.getEnv("REDIS_PASSWORD", ""),
		RedisDB:               env.getInt("REDIS_DB", 0),
		CacheEnabled:          env.getBool("CACHE_ENABLED", true),
		CacheTTL:              env.getDuration("CACHE_TTL", 10*time.Minute),
		DBDriver:              env.getEnv("DB_DRIVER", "sqlite3"),
		GRPCPort:              env.getInt("GRPC_PORT", 50051),
		GRPCReflectionEnabled: env.getBool("GRPC_REFLECTION_ENABLED", false),
		GRPCLoggingEnabled:    env.getBool("GRPC_LOGGING_ENABLED", true),

		AnonymityThreshold:    env.getInt("ANONYMITY_THRESHOLD", defaults.AnonymityThreshold),
		HighScoreThreshold:    env.getFloat("HIGH_SCORE_THRESHOLD", defaults.HighScoreThreshold),
		SignificantGap:        env.getFloat("SIGNIFICANT_GAP", defaults.SignificantGap),
		MinResponsesForReport: env.getInt("MIN_RESPONSES_FOR_REPORT", defaults.MinResponsesForReport),
	}
	cfg.parseErr = errors.Join(env.errs...)
	return cfg
}

// Policy returns the aggregation thresholds.
func (c *Config) Policy() framework.Policy {
	return framework.Policy{
		AnonymityThreshold:    c.AnonymityThreshold,
		HighScoreThreshold:    c.HighScoreThreshold,
		SignificantGap:        c.SignificantGap,
		MinResponsesForReport: c.MinResponsesForReport,
	}
}

func (c *Config) Validate() error {
	if c.parseErr != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.parseErr)
	}
	if err := c.Policy().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.GRPCPort < 1 || c.GRPCPort > 65535 {
		return fmt.Errorf("%w: GRPC_PORT %d out of range", ErrInvalidConfig, c.GRPCPort)
	}
	if c.DBDriver == "" || c.DBPath == "" {
		return fmt.Errorf("%w: DB_DRIVER and DB_PATH are required", ErrInvalidConfig)
	}
	if c.CacheEnabled && c.RedisAddr == "" {
		return fmt.Errorf("%w: REDIS_ADDR is required when the cache is enabled", ErrInvalidConfig)
	}
	if c.CacheEnabled && c.CacheTTL <= 0 {
		return fmt.Errorf("%w: CACHE_TTL must be positive", ErrInvalidConfig)
	}
	return nil
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// envReader reads typed values and keeps every parse failure.
type envReader struct {
	errs []error
}

func (r *envReader) getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func (r *envReader) fail(key, val string, err error) {
	r.errs = append(r.errs, fmt.Errorf("%s=%q: %w", key, val, err))
}

func (r *envReader) getInt(key string, fallback int) int {
	val := r.getEnv(key, "")
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		r.fail(key, val, err)
		return fallback
	}
	return n
}

func (r *envReader) getFloat(key string, fallback float64) float64 {
	val := r.getEnv(key, "")
	if val == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		r.fail(key, val, err)
		return fallback
	}
	return f
}

func (r *envReader) getBool(key string, fallback bool) bool {
	val := r.getEnv(key, "")
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		r.fail(key, val, err)
		return fallback
	}
	return b
}

func (r *envReader) getDuration(key string, fallback time.Duration) time.Duration {
	val := r.getEnv(key, "")
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		r.fail(key, val, err)
		return fallback
	}
	return d
}
