// Package cache provides a bounded in-memory TTL cache.
//
// The cache is injected into the components that need it rather than held as
// a package global, so each instance has an explicit capacity, TTL, and
// owner. Entries expire after the configured TTL and the oldest entry is
// evicted when the capacity is reached. An optional janitor goroutine sweeps
// expired entries between reads.
package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Cache is a bounded string-keyed, string-valued TTL cache safe for
// concurrent use.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*entry
	capacity int
	ttl      time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

type entry struct {
	value      string
	insertedAt time.Time
	expiresAt  time.Time
}

// New creates a cache with the given capacity and TTL. Capacity must be
// positive; a zero or negative TTL means entries never expire.
func New(capacity int, ttl time.Duration) *Cache {
	if capacity <= 0 {
		capacity = 1
	}
	return &Cache{
		entries:  make(map[string]*entry),
		capacity: capacity,
		ttl:      ttl,
	}
}

// Key builds a deterministic cache key from parts.
func Key(parts ...string) string {
	joined := strings.Join(parts, "|")
	sum := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("%x", sum[:12])
}

// Get returns the value for key if present and not expired. Expired entries
// are removed on read.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return "", false
	}
	if c.ttl > 0 && time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		c.misses.Add(1)
		return "", false
	}

	c.hits.Add(1)
	return e.value, true
}

// Set stores a value under key. If the cache is full and the key is new, the
// oldest entry is evicted to make room.
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictOldestLocked()
	}

	e := &entry{value: value, insertedAt: now}
	if c.ttl > 0 {
		e.expiresAt = now.Add(c.ttl)
	}
	c.entries[key] = e
}

// Delete removes a key if present.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of entries currently stored, including entries that
// have expired but not yet been swept.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Hits returns the number of cache hits since creation.
func (c *Cache) Hits() int64 { return c.hits.Load() }

// Misses returns the number of cache misses since creation.
func (c *Cache) Misses() int64 { return c.misses.Load() }

// StartJanitor launches a goroutine that sweeps expired entries every
// interval until ctx is cancelled. It is optional: Get already removes
// expired entries lazily.
func (c *Cache) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 || c.ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

func (c *Cache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// evictOldestLocked removes the entry with the earliest insertion time.
// Caller must hold c.mu.
func (c *Cache) evictOldestLocked() {
	var oldestKey string
	var oldestTime time.Time
	for key, e := range c.entries {
		if oldestKey == "" || e.insertedAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = e.insertedAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
