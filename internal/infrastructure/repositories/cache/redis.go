package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisClient es lo que RedisCache necesita de *redis.Client; permite mockearlo
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisCache guarda los sobres del RateStore en Redis, bajo un prefijo común
// para poder compartir la instancia con otros servicios.
type RedisCache struct {
	client redisClient
	prefix string
}

// NewRedisCache abre un cliente sin verificar la conexión; el Factory es quien hace el ping
func NewRedisCache(addr, password string, db int, prefix string) *RedisCache {
	return NewRedisCacheWithClient(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), prefix)
}

func NewRedisCacheWithClient(client redisClient, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

// Get traduce redis.Nil a ErrKeyNotFound
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", ErrKeyNotFound
	case err != nil:
		return "", err
	}
	return val, nil
}

// Set con ttl <= 0 deja la clave sin expiración
func (r *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, r.prefix+key, value, max(ttl, 0)).Err()
}

func (r *RedisCache) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
