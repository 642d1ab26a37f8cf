package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-text-toolkit/models"
)

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		cache := NewInMemoryCache(10, time.Minute)
		defer cache.Stop()

		result := &models.DetectionResult{ID: "run-1", WordCount: 42}
		cache.Set(ctx, "digest-1", result, time.Minute)

		got, ok := cache.Get(ctx, "digest-1")
		require.True(t, ok)
		assert.Equal(t, "run-1", got.ID)
		assert.Equal(t, 42, got.WordCount)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		cache := NewInMemoryCache(10, time.Minute)
		defer cache.Stop()

		_, ok := cache.Get(ctx, "nope")
		assert.False(t, ok)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		cache := NewInMemoryCache(10, time.Minute)
		defer cache.Stop()

		cache.Set(ctx, "digest-1", &models.DetectionResult{ID: "run-1"}, -time.Second)

		_, ok := cache.Get(ctx, "digest-1")
		assert.False(t, ok)
		assert.Equal(t, 0, cache.Stats().Size)
	})

	t.Run("oldest entry evicted when full", func(t *testing.T) {
		cache := NewInMemoryCache(2, time.Minute)
		defer cache.Stop()

		cache.Set(ctx, "a", &models.DetectionResult{ID: "a"}, time.Minute)
		time.Sleep(2 * time.Millisecond)
		cache.Set(ctx, "b", &models.DetectionResult{ID: "b"}, time.Minute)
		time.Sleep(2 * time.Millisecond)
		cache.Set(ctx, "c", &models.DetectionResult{ID: "c"}, time.Minute)

		_, ok := cache.Get(ctx, "a")
		assert.False(t, ok)
		_, ok = cache.Get(ctx, "b")
		assert.True(t, ok)
		_, ok = cache.Get(ctx, "c")
		assert.True(t, ok)
		assert.Equal(t, int64(1), cache.Stats().Evictions)
	})

	t.Run("delete removes entry", func(t *testing.T) {
		cache := NewInMemoryCache(10, time.Minute)
		defer cache.Stop()

		cache.Set(ctx, "digest-1", &models.DetectionResult{ID: "run-1"}, time.Minute)
		cache.Delete(ctx, "digest-1")

		_, ok := cache.Get(ctx, "digest-1")
		assert.False(t, ok)
	})

	t.Run("clear empties the cache", func(t *testing.T) {
		cache := NewInMemoryCache(10, time.Minute)
		defer cache.Stop()

		cache.Set(ctx, "a", &models.DetectionResult{ID: "a"}, time.Minute)
		cache.Set(ctx, "b", &models.DetectionResult{ID: "b"}, time.Minute)
		cache.Clear(ctx)

		assert.Equal(t, 0, cache.Stats().Size)
	})

	t.Run("hit rate tracks hits and misses", func(t *testing.T) {
		cache := NewInMemoryCache(10, time.Minute)
		defer cache.Stop()

		cache.Set(ctx, "a", &models.DetectionResult{ID: "a"}, time.Minute)
		cache.Get(ctx, "a")
		cache.Get(ctx, "missing")

		stats := cache.Stats()
		assert.Equal(t, int64(1), stats.Hits)
		assert.Equal(t, int64(1), stats.Misses)
		assert.InDelta(t, 0.5, stats.HitRate, 0.001)
	})
}
