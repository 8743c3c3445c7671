package cache

import (
	"context"
	"sync"
	"time"

	"fx-rate-service/pkg/utils"
)

// cacheItem representa un elemento en el cache con su valor y tiempo de expiración
type cacheItem struct {
	value     string
	expiresAt time.Time // zero: sin expiración
}

func (item *cacheItem) isExpired(now time.Time) bool {
	return !item.expiresAt.IsZero() && now.After(item.expiresAt)
}

// MemoryCache implementa interfaces.Cache usando memoria local
type MemoryCache struct {
	items map[string]*cacheItem
	mu    sync.RWMutex
	clock utils.Clock
}

// NewMemoryCache crea una nueva instancia de cache en memoria
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithClock(utils.SystemClock())
}

// NewMemoryCacheWithClock permite inyectar el reloj usado para expirar claves
func NewMemoryCacheWithClock(clock utils.Clock) *MemoryCache {
	return &MemoryCache{
		items: make(map[string]*cacheItem),
		clock: clock,
	}
}

// Get obtiene un valor del cache
func (c *MemoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	if !exists {
		return "", ErrKeyNotFound
	}

	if item.isExpired(c.clock.Now()) {
		_ = c.Delete(ctx, key)
		return "", ErrKeyExpired
	}

	return item.value, nil
}

// Set almacena un valor; ttl <= 0 lo guarda sin expiración
func (c *MemoryCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	item := &cacheItem{value: value}
	if ttl > 0 {
		item.expiresAt = c.clock.Now().Add(ttl)
	}

	c.mu.Lock()
	c.items[key] = item
	c.mu.Unlock()

	return nil
}

// Delete elimina un valor del cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	return nil
}

// Ping siempre tiene éxito para el backend en memoria
func (c *MemoryCache) Ping(ctx context.Context) error {
	return nil
}

// Size retorna el número de elementos en el cache
func (c *MemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Cleanup elimina elementos expirados del cache
func (c *MemoryCache) Cleanup() {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, item := range c.items {
		if item.isExpired(now) {
			delete(c.items, key)
		}
	}
}
