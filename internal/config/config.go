package config

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/vyper/fermybot/internal/logging"
	"github.com/vyper/fermybot/internal/metrics"
	"github.com/vyper/fermybot/internal/store"
)

// Counter is the atomic increment primitive of the key-value store.
// Absent keys start at zero, so the first Incr returns 1.
type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
}

// Config holds the configuration for the function
type Config struct {
	RedisURL       string
	LogLevel       string
	LogDevelopment bool
	Counter        Counter
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
}

// LoadConfig loads configuration from environment variables
func LoadConfig(getenv func(string) string) (*Config, error) {
	redisURL := getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL environment variable is required")
	}

	logLevel := getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logDevelopment := false
	if v := getenv("LOG_DEVELOPMENT"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("LOG_DEVELOPMENT must be a boolean: %w", err)
		}
		logDevelopment = parsed
	}

	logger, err := logging.New(logLevel, logDevelopment)
	if err != nil {
		return nil, err
	}

	counter, err := store.NewRedisCounter(redisURL)
	if err != nil {
		return nil, err
	}

	return &Config{
		RedisURL:       redisURL,
		LogLevel:       logLevel,
		LogDevelopment: logDevelopment,
		Counter:        counter,
		Logger:         logger,
		Metrics:        metrics.New(),
	}, nil
}
