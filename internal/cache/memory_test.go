package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marchkeep/marchkeep/internal/cache"
)

func TestInMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := cache.NewInMemoryCache(time.Minute, time.Minute)

	_, found := c.Get(ctx, "missing")
	assert.False(t, found)

	c.Set(ctx, "k", "v")
	got, found := c.Get(ctx, "k")
	assert.True(t, found)
	assert.Equal(t, "v", got)

	c.Delete(ctx, "k")
	_, found = c.Get(ctx, "k")
	assert.False(t, found)
}

func TestInMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := cache.NewInMemoryCache(time.Minute, time.Minute)

	c.SetWithTTL(ctx, "short", 1, 10*time.Millisecond)
	_, found := c.Get(ctx, "short")
	assert.True(t, found)

	time.Sleep(25 * time.Millisecond)
	_, found = c.Get(ctx, "short")
	assert.False(t, found, "expired entries count as misses")
}

func TestInMemoryCacheStoredNilIsAHit(t *testing.T) {
	ctx := context.Background()
	c := cache.NewInMemoryCache(time.Minute, time.Minute)

	// Negative caching stores a typed nil; the hit must be distinguishable
	// from plain absence.
	c.Set(ctx, "gone", (*struct{})(nil))
	got, found := c.Get(ctx, "gone")
	assert.True(t, found)
	assert.Equal(t, (*struct{})(nil), got)
}

func TestNilRedisCacheDegradesToMiss(t *testing.T) {
	ctx := context.Background()
	var c *cache.RedisCache

	var out struct{ A int }
	found, negative, err := c.Get(ctx, "k", &out)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.False(t, negative)

	assert.NoError(t, c.Set(ctx, "k", out, time.Minute))
	assert.NoError(t, c.SetNegative(ctx, "k", time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
}
