package cache

import (
	"context"
	"fmt"
	"time"

	"fx-rate-service/internal/domain/interfaces"
	"fx-rate-service/internal/infrastructure/logging"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
)

// CacheType represents the type of cache implementation
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeRedis  CacheType = "redis"
)

// Config holds cache backend options
type Config struct {
	Type           CacheType
	RedisAddr      string
	RedisDB        int
	Password       string
	KeyPrefix      string
	ConnectRetries uint
	RetryDelay     time.Duration
}

// Factory provides methods to create cache backends
type Factory struct{}

// NewFactory creates a new cache factory
func NewFactory() *Factory {
	return &Factory{}
}

// CreateCache creates a cache backend based on configuration
func (f *Factory) CreateCache(ctx context.Context, config Config) (interfaces.Cache, error) {
	switch config.Type {
	case CacheTypeMemory:
		logging.Info(ctx, "Creating memory cache", logging.Fields{"type": "memory"})
		return NewMemoryCache(), nil

	case CacheTypeRedis:
		logging.Info(ctx, "Creating Redis cache", logging.Fields{
			"type":     "redis",
			"addr":     config.RedisAddr,
			"database": config.RedisDB,
		})
		redisCache, err := f.createRedisCache(ctx, config)
		if err != nil {
			return nil, err
		}
		return redisCache, nil

	default:
		return nil, fmt.Errorf("unsupported cache type: %s", config.Type)
	}
}

// createRedisCache crea el cliente y verifica la conexión con reintentos acotados
func (f *Factory) createRedisCache(ctx context.Context, config Config) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.Password,
		DB:       config.RedisDB,
	})

	attempts := config.ConnectRetries
	if attempts == 0 {
		attempts = 1
	}
	delay := config.RetryDelay
	if delay <= 0 {
		delay = 200 * time.Millisecond
	}

	err := retry.Do(
		func() error {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return rdb.Ping(pingCtx).Err()
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logging.Warn(ctx, "Redis ping failed, retrying", logging.Fields{
				"attempt": n + 1,
				"addr":    config.RedisAddr,
				"error":   err.Error(),
			})
		}),
	)
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", config.RedisAddr, err)
	}

	logging.Info(ctx, "Redis connection established successfully", logging.Fields{
		"addr":     config.RedisAddr,
		"database": config.RedisDB,
	})
	return NewRedisCacheWithClient(rdb, config.KeyPrefix), nil
}
