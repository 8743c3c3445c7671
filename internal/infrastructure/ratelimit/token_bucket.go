package ratelimit

import (
	"sync"
	"time"

	"fx-rate-service/pkg/utils"
)

const (
	cleanupInterval = 10 * time.Minute
	idleTimeout     = 30 * time.Minute
)

// tokenBucket recarga refillRate tokens por segundo hasta capacity.
// Los tokens se llevan en float para no perder recargas fraccionarias.
type tokenBucket struct {
	mu         sync.Mutex
	clock      utils.Clock
	capacity   float64
	refillRate float64
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

func newTokenBucket(capacity, refillRate int, clock utils.Clock) *tokenBucket {
	now := clock.Now()
	return &tokenBucket{
		clock:      clock,
		capacity:   float64(capacity),
		refillRate: float64(refillRate),
		tokens:     float64(capacity),
		lastRefill: now,
		lastSeen:   now,
	}
}

// Allow consume un token si hay disponible
func (b *tokenBucket) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.refill()
	b.lastSeen = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Tokens retorna los tokens enteros disponibles
func (b *tokenBucket) Tokens() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()
	return int(b.tokens)
}

// refill requiere b.mu tomado
func (b *tokenBucket) refill() time.Time {
	now := b.clock.Now()
	if elapsed := now.Sub(b.lastRefill).Seconds(); elapsed > 0 {
		b.tokens += elapsed * b.refillRate
		if b.tokens > b.capacity {
			b.tokens = b.capacity
		}
		b.lastRefill = now
	}
	return now
}

func (b *tokenBucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// RateLimiterCollection mantiene un bucket por cliente (IP)
type RateLimiterCollection struct {
	mu          sync.Mutex
	clock       utils.Clock
	buckets     map[string]*tokenBucket
	capacity    int
	refillRate  int
	lastCleanup time.Time
}

func NewRateLimiterCollection(capacity, refillRate int) *RateLimiterCollection {
	return NewRateLimiterCollectionWithClock(capacity, refillRate, utils.SystemClock())
}

func NewRateLimiterCollectionWithClock(capacity, refillRate int, clock utils.Clock) *RateLimiterCollection {
	return &RateLimiterCollection{
		clock:       clock,
		buckets:     make(map[string]*tokenBucket),
		capacity:    capacity,
		refillRate:  refillRate,
		lastCleanup: clock.Now(),
	}
}

// Allow consume un token del bucket de clientID
func (c *RateLimiterCollection) Allow(clientID string) bool {
	return c.bucket(clientID).Allow()
}

// Tokens retorna los tokens restantes de clientID
func (c *RateLimiterCollection) Tokens(clientID string) int {
	return c.bucket(clientID).Tokens()
}

// Clients retorna cuántos clientes tienen bucket
func (c *RateLimiterCollection) Clients() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.buckets)
}

func (c *RateLimiterCollection) bucket(clientID string) *tokenBucket {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b, ok := c.buckets[clientID]; ok {
		return b
	}

	c.evictIdle()

	b := newTokenBucket(c.capacity, c.refillRate, c.clock)
	c.buckets[clientID] = b
	return b
}

// evictIdle corre como mucho una vez por cleanupInterval; requiere c.mu tomado
func (c *RateLimiterCollection) evictIdle() {
	now := c.clock.Now()
	if now.Sub(c.lastCleanup) < cleanupInterval {
		return
	}
	c.lastCleanup = now

	cutoff := now.Add(-idleTimeout)
	for id, b := range c.buckets {
		if b.idleSince(cutoff) {
			delete(c.buckets, id)
		}
	}
}
