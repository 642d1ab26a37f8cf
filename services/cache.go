package services

import (
	"context"
	"sync"
	"time"

	"ai-text-toolkit/models"
)

// AnalysisCache stores finished detection analyses keyed by document
// digest, so re-uploading the same PDF does not hit the classifier
// again.
type AnalysisCache interface {
	Get(ctx context.Context, key string) (*models.DetectionResult, bool)
	Set(ctx context.Context, key string, result *models.DetectionResult, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Clear(ctx context.Context)
	Stats() CacheStats
}

// CacheStats provides cache performance metrics
type CacheStats struct {
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	HitRate     float64   `json:"hit_rate"`
	Size        int       `json:"size"`
	MaxSize     int       `json:"max_size"`
	Evictions   int64     `json:"evictions"`
	LastCleared time.Time `json:"last_cleared"`
}

type cacheEntry struct {
	result    *models.DetectionResult
	expiresAt time.Time
	createdAt time.Time
}

// InMemoryCache implements AnalysisCache using in-memory storage.
type InMemoryCache struct {
	mu       sync.RWMutex
	data     map[string]*cacheEntry
	maxSize  int
	stats    CacheStats
	janitor  *time.Ticker
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewInMemoryCache creates a new in-memory cache and starts its cleanup
// goroutine.
func NewInMemoryCache(maxSize int, cleanupInterval time.Duration) *InMemoryCache {
	cache := &InMemoryCache{
		data:     make(map[string]*cacheEntry),
		maxSize:  maxSize,
		stats:    CacheStats{MaxSize: maxSize, LastCleared: time.Now()},
		janitor:  time.NewTicker(cleanupInterval),
		stopChan: make(chan struct{}),
	}

	go cache.cleanup()

	return cache
}

// Get retrieves a cached analysis. Expired entries count as misses and
// are removed immediately.
func (c *InMemoryCache) Get(_ context.Context, key string) (*models.DetectionResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.data[key]
	if !exists {
		c.stats.Misses++
		c.updateHitRate()
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		c.stats.Misses++
		delete(c.data, key)
		c.stats.Size = len(c.data)
		c.updateHitRate()
		return nil, false
	}

	c.stats.Hits++
	c.updateHitRate()

	return entry.result, true
}

// Set stores an analysis, evicting the oldest entry when the cache is
// full.
func (c *InMemoryCache) Set(_ context.Context, key string, result *models.DetectionResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists && len(c.data) >= c.maxSize {
		c.evictOldest()
	}

	c.data[key] = &cacheEntry{
		result:    result,
		expiresAt: time.Now().Add(ttl),
		createdAt: time.Now(),
	}
	c.stats.Size = len(c.data)
}

// Delete removes a key from cache
func (c *InMemoryCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
	c.stats.Size = len(c.data)
}

// Clear removes all entries from cache
func (c *InMemoryCache) Clear(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[string]*cacheEntry)
	c.stats.Size = 0
	c.stats.LastCleared = time.Now()
}

// Stats returns cache statistics
func (c *InMemoryCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := c.stats
	stats.Size = len(c.data)
	return stats
}

// Stop stops the cache cleanup goroutine
func (c *InMemoryCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
		c.janitor.Stop()
	})
}

// cleanup removes expired entries periodically
func (c *InMemoryCache) cleanup() {
	for {
		select {
		case <-c.janitor.C:
			c.removeExpired()
		case <-c.stopChan:
			return
		}
	}
}

func (c *InMemoryCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.data {
		if now.After(entry.expiresAt) {
			delete(c.data, key)
		}
	}
	c.stats.Size = len(c.data)
}

// evictOldest removes the oldest entry to make room for new ones.
// Caller must hold the write lock.
func (c *InMemoryCache) evictOldest() {
	var oldestKey string
	var oldestTime time.Time

	for key, entry := range c.data {
		if oldestKey == "" || entry.createdAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.createdAt
		}
	}

	if oldestKey != "" {
		delete(c.data, oldestKey)
		c.stats.Evictions++
	}
}

// updateHitRate calculates the current hit rate. Caller must hold the
// write lock.
func (c *InMemoryCache) updateHitRate() {
	total := c.stats.Hits + c.stats.Misses
	if total > 0 {
		c.stats.HitRate = float64(c.stats.Hits) / float64(total)
	}
}
