package feed

import (
	"sync"
	"time"
)

// Entry holds the last fetched content for one feed URL together with the
// HTTP validators needed for conditional re-fetching.
type Entry struct {
	Content      []byte
	ETag         string
	LastModified string
	FetchedAt    time.Time
}

// Cache stores one Entry per feed URL for the lifetime of the process.
// There is no eviction and no TTL; staleness is resolved through
// conditional requests, and the number of configured feeds is small.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return new(Cache{
		entries: make(map[string]Entry),
	})
}

// Get returns the cached entry for url and whether one exists.
func (c *Cache) Get(url string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[url]
	return entry, ok
}

// Put overwrites the entry for url.
func (c *Cache) Put(url string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[url] = entry
}

// Len returns the number of cached feeds.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
