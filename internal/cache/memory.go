// internal/cache/memory.go
package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// InMemoryCache is a process-local TTL cache. It is initialized once per
// process and makes no cross-process coherency guarantees; the distributed
// tier is the coherency backstop.
type InMemoryCache struct {
	mu          sync.RWMutex
	entries     map[string]entry
	defaultTTL  time.Duration
	cleanupFreq time.Duration
	stopChan    chan struct{}
	stopOnce    sync.Once
}

func NewInMemoryCache(defaultTTL, cleanupFreq time.Duration) *InMemoryCache {
	return &InMemoryCache{
		entries:     make(map[string]entry),
		defaultTTL:  defaultTTL,
		cleanupFreq: cleanupFreq,
		stopChan:    make(chan struct{}),
	}
}

// Get returns the stored value for key. Expired entries count as misses.
// Callers that need negative caching store a typed nil sentinel; a stored
// nil is returned with found=true, which is how a negative hit is
// distinguished from absence.
func (c *InMemoryCache) Get(ctx context.Context, key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the default TTL.
func (c *InMemoryCache) Set(ctx context.Context, key string, value interface{}) {
	c.SetWithTTL(ctx, key, value, c.defaultTTL)
}

// SetWithTTL stores value under key with an explicit TTL.
func (c *InMemoryCache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
}

// Delete removes key from the cache.
func (c *InMemoryCache) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// StartCleanup begins the background eviction routine.
func (c *InMemoryCache) StartCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(c.cleanupFreq)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.evictExpired()
			case <-c.stopChan:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// StopCleanup halts the background eviction routine.
func (c *InMemoryCache) StopCleanup() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
}

func (c *InMemoryCache) evictExpired() {
	now := time.Now()
	c.mu.Lock()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}
