// Package cache provides the bounded in-memory response cache.
package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Cache is a capacity-bounded string cache with least-recently-used
// eviction. Get refreshes recency; Set at capacity evicts the entry with
// the oldest access time before inserting. Eviction and insertion happen
// under one lock so the cache never exceeds its capacity.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]string
	access   map[string]time.Time
	capacity int
	hits     atomic.Int64
	misses   atomic.Int64

	now func() time.Time // replaced in tests
}

// New creates a Cache holding at most capacity entries.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = 1000
	}
	return &Cache{
		entries:  make(map[string]string),
		access:   make(map[string]time.Time),
		capacity: capacity,
		now:      time.Now,
	}
}

// ContentKey builds the cache key for static per-topic content.
func ContentKey(topic, language string) string {
	return fmt.Sprintf("content:%s:%s", topic, language)
}

// ResponseKey builds the cache key for a computed bot response. The message
// is hashed so the key is stable across processes and restarts.
func ResponseKey(message, language string) string {
	return fmt.Sprintf("response:%s:%s", HashMessage(message), language)
}

// HashMessage returns a short stable hex digest of a message.
func HashMessage(message string) string {
	sum := sha256.Sum256([]byte(message))
	return fmt.Sprintf("%x", sum[:8])
}

// Get returns the cached value for key and refreshes its recency.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return "", false
	}
	c.access[key] = c.now()
	c.hits.Add(1)
	return v, true
}

// Set stores value under key, evicting the least-recently-used entry first
// when the cache is full.
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictOldest()
	}
	c.entries[key] = value
	c.access[key] = c.now()
}

// evictOldest removes the entry with the smallest access time. Ties break
// on the smaller key so eviction is deterministic. Caller holds the lock.
func (c *Cache) evictOldest() {
	var oldestKey string
	var oldest time.Time
	first := true
	for k, at := range c.access {
		if first || at.Before(oldest) || (at.Equal(oldest) && k < oldestKey) {
			oldestKey, oldest = k, at
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
		delete(c.access, oldestKey)
	}
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
	c.access = make(map[string]time.Time)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns hit and miss counts since process start.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
