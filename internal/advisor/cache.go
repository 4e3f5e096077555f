package advisor

import (
	"sync"
	"time"
)

// ResponseCache is the short-lived cache the advisor wraps around its
// backends to avoid redundant external calls for identical consultations.
// Values are serialized strings (JSON for consultations, plain text for
// advice), which keeps the interface shared between the in-memory and Redis
// implementations.
type ResponseCache interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

type memoryEntry struct {
	value    string
	storedAt time.Time
}

// MemoryCache is the default in-process ResponseCache: entries expire on
// read after the TTL, and a capacity bound evicts the oldest entry so memory
// stays bounded. The exact eviction order is not a contract, only the bound.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// NewMemoryCache creates an in-memory cache with the given TTL and capacity.
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns the cached value for key. An entry older than the TTL is
// treated as absent and evicted. Get never mutates a live entry, so repeated
// reads return the same value.
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return "", false
	}
	return entry.value, true
}

// Set inserts or overwrites an entry, evicting the oldest one when the
// capacity bound would otherwise be exceeded.
func (c *MemoryCache) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.entries[key] = memoryEntry{value: value, storedAt: c.now()}
	return nil
}

// Len returns the number of live entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *MemoryCache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for key, entry := range c.entries {
		if first || entry.storedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.storedAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
