package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrieltaylor/qpx/internal/infrastructure/timeutil"
)

func newTestCache(clock timeutil.Clock) *Cache[[]byte] {
	return New(
		WithClock[[]byte](clock),
		WithClone(func(b []byte) []byte { return append([]byte(nil), b...) }),
	)
}

func TestCache_GetMiss(t *testing.T) {
	c := New[string]()

	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestCache_SetAndGet(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2016, 4, 1, 12, 0, 0, 0, time.UTC))
	c := newTestCache(clock)

	c.Set("k", []byte("value"), time.Minute)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), got)
}

func TestCache_Expiry(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2016, 4, 1, 12, 0, 0, 0, time.UTC))
	c := newTestCache(clock)

	c.Set("k", []byte("value"), time.Minute)

	clock.Advance(59 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_CloneIsolatesCallers(t *testing.T) {
	c := newTestCache(timeutil.NewRealClock())

	original := []byte("abc")
	c.Set("k", original, time.Minute)
	original[0] = 'x'

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("abc"), got)

	got[1] = 'y'
	again, _ := c.Get("k")
	assert.Equal(t, []byte("abc"), again)
}

func TestCache_NonPositiveTTLIsNoop(t *testing.T) {
	c := New[int]()

	c.Set("zero", 1, 0)
	c.Set("negative", 2, -time.Second)

	assert.Equal(t, 0, c.Len())
}

func TestCache_DeleteAndPurge(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2016, 4, 1, 12, 0, 0, 0, time.UTC))
	c := New(WithClock[int](clock))

	c.Set("short", 1, time.Second)
	c.Set("long", 2, time.Hour)
	c.Set("gone", 3, time.Hour)
	c.Delete("gone")

	clock.Advance(time.Minute)

	assert.Equal(t, 1, c.Purge())
	assert.Equal(t, 1, c.Len())
	v, ok := c.Get("long")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int]()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			c.Set(key, i, time.Minute)
			_, _ = c.Get(key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, c.Len())
}

func TestCache_SetSweepsExpiredEntries(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2016, 4, 1, 12, 0, 0, 0, time.UTC))
	c := New(WithClock[int](clock))

	for i := 0; i < 1000; i++ {
		c.Set(fmt.Sprintf("k%d", i), i, time.Minute)
		clock.Advance(time.Hour)
	}

	assert.Less(t, c.Len(), 10)
}

func TestCache_SweepWaitsForInterval(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2016, 4, 1, 12, 0, 0, 0, time.UTC))
	c := New(WithClock[int](clock), WithSweepInterval[int](time.Hour))

	c.Set("a", 1, time.Second)
	clock.Advance(time.Minute)
	c.Set("b", 2, time.Second)
	assert.Equal(t, 2, c.Len())

	clock.Advance(time.Hour)
	c.Set("c", 3, time.Second)
	assert.Equal(t, 1, c.Len())
}
