// Package cache wires Redis-backed components with sensible fallbacks.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/safe/backend/internal/infrastructure/auth"
	"github.com/safe/backend/internal/infrastructure/config"
)

// BlacklistFactory creates token blacklists based on configuration
type BlacklistFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// BlacklistFactoryOption is a functional option for configuring the factory
type BlacklistFactoryOption func(*BlacklistFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) BlacklistFactoryOption {
	return func(f *BlacklistFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory
// blacklist when Redis is unavailable. Default is true. Disable it in
// multi-instance deployments, where an in-memory blacklist on one instance
// would not revoke tokens on the others.
func WithInMemoryFallback(allow bool) BlacklistFactoryOption {
	return func(f *BlacklistFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewBlacklistFactory creates a new factory
func NewBlacklistFactory(cfg config.RedisConfig, opts ...BlacklistFactoryOption) *BlacklistFactory {
	f := &BlacklistFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns a Redis-backed token blacklist, falling back to an
// in-memory one when Redis is unreachable and fallback is allowed
func (f *BlacklistFactory) Create() (auth.TokenBlacklist, error) {
	client, err := f.dialRedis()
	if err == nil {
		f.logger.Info("Using Redis token blacklist",
			zap.String("host", f.redisConfig.Host),
			zap.Int("port", f.redisConfig.Port))
		return auth.NewRedisTokenBlacklist(client), nil
	}

	if !f.allowInMemoryFallback {
		return nil, err
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory token blacklist",
		zap.Error(err))
	return auth.NewInMemoryTokenBlacklist(), nil
}

func (f *BlacklistFactory) dialRedis() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", f.redisConfig.Host, f.redisConfig.Port),
		Password:     f.redisConfig.Password,
		DB:           f.redisConfig.DB,
		PoolSize:     10,
		MinIdleConns: 3,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}
