package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock permite avanzar el tiempo manualmente en tests
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	require.NoError(t, cache.Set(ctx, "spot:USD", "5.23", 0))

	got, err := cache.Get(ctx, "spot:USD")
	require.NoError(t, err)
	assert.Equal(t, "5.23", got)
	assert.Equal(t, 1, cache.Size())
}

func TestMemoryCache_MissingKey(t *testing.T) {
	_, err := NewMemoryCache().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.True(t, IsMiss(err))
}

func TestMemoryCache_Expiration(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	cache := NewMemoryCacheWithClock(clock)

	require.NoError(t, cache.Set(ctx, "short", "v", time.Minute))
	require.NoError(t, cache.Set(ctx, "forever", "v", 0))

	clock.Advance(2 * time.Minute)

	_, err := cache.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrKeyExpired)
	assert.Equal(t, 1, cache.Size(), "expired key is removed on read")

	got, err := cache.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestMemoryCache_Cleanup(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	cache := NewMemoryCacheWithClock(clock)

	for i := 0; i < 5; i++ {
		require.NoError(t, cache.Set(ctx, fmt.Sprintf("k%d", i), "v", time.Second))
	}
	require.NoError(t, cache.Set(ctx, "keep", "v", 0))

	clock.Advance(time.Minute)
	cache.Cleanup()

	assert.Equal(t, 1, cache.Size())
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	require.NoError(t, cache.Set(ctx, "k", "v", 0))

	require.NoError(t, cache.Delete(ctx, "k"))
	require.NoError(t, cache.Delete(ctx, "missing"))

	assert.Equal(t, 0, cache.Size())
	assert.NoError(t, cache.Ping(ctx))
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			_ = cache.Set(ctx, key, "v", 0)
			_, _ = cache.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, cache.Size())
}
