// Package cache is a goroutine-safe in-memory cache with per-entry expiry.
package cache

import (
	"sync"
	"time"

	"github.com/gabrieltaylor/qpx/internal/infrastructure/timeutil"
)

type entry[T any] struct {
	value  T
	expiry time.Time
}

// Cache stores values of type T under string keys until their TTL elapses.
// Expired entries are dropped when read, and swept by Set at most once per sweep interval.
type Cache[T any] struct {
	mu            sync.RWMutex
	entries       map[string]entry[T]
	clone         func(T) T
	clock         timeutil.Clock
	sweepInterval time.Duration
	nextSweep     time.Time
}

// DefaultSweepInterval is how often Set sweeps expired entries unless overridden.
const DefaultSweepInterval = time.Minute

// Option configures a Cache.
type Option[T any] func(*Cache[T])

// WithClone copies values on the way in and out so callers cannot mutate cached data.
func WithClone[T any](clone func(T) T) Option[T] {
	return func(c *Cache[T]) {
		c.clone = clone
	}
}

// WithClock overrides the clock used for expiry.
func WithClock[T any](clock timeutil.Clock) Option[T] {
	return func(c *Cache[T]) {
		c.clock = clock
	}
}

// WithSweepInterval sets the minimum time between sweeps of expired entries.
// A non-positive interval sweeps on every Set.
func WithSweepInterval[T any](d time.Duration) Option[T] {
	return func(c *Cache[T]) {
		c.sweepInterval = d
	}
}

// New creates an empty cache.
func New[T any](opts ...Option[T]) *Cache[T] {
	c := &Cache[T]{
		entries:       make(map[string]entry[T]),
		clock:         timeutil.NewRealClock(),
		sweepInterval: DefaultSweepInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key if present and not expired.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	var zero T
	if !ok {
		return zero, false
	}
	if !c.clock.Now().Before(e.expiry) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the entry.
		if cur, ok := c.entries[key]; ok && !c.clock.Now().Before(cur.expiry) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return zero, false
	}
	return c.cloneValue(e.value), true
}

// Set stores value under key for ttl. A non-positive ttl is a no-op.
func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	now := c.clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	if !now.Before(c.nextSweep) {
		c.purgeLocked(now)
		c.nextSweep = now.Add(c.sweepInterval)
	}
	c.entries[key] = entry[T]{value: c.cloneValue(value), expiry: now.Add(ttl)}
}

// Delete removes key.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len returns the number of stored entries, including expired ones not yet evicted.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge drops every expired entry and returns how many were removed.
func (c *Cache[T]) Purge() int {
	now := c.clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.purgeLocked(now)
}

func (c *Cache[T]) purgeLocked(now time.Time) int {
	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.expiry) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

func (c *Cache[T]) cloneValue(value T) T {
	if c.clone == nil {
		return value
	}
	return c.clone(value)
}
