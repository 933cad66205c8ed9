package rest

import (
	"sync"
	"time"
)

type cacheItem struct {
	content   []byte
	expiresAt time.Time
}

// memoryCache is a TTL cache for public GET responses.
type memoryCache struct {
	mu    sync.Mutex
	items map[string]cacheItem
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		items: make(map[string]cacheItem),
	}
}

// Get returns the cached content or nil.
func (c *memoryCache) Get(key string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok {
		return nil
	}

	if time.Now().After(item.expiresAt) {
		delete(c.items, key)
		return nil
	}

	return item.content
}

// Set stores content under key for the given duration.
func (c *memoryCache) Set(key string, content []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = cacheItem{
		content:   content,
		expiresAt: time.Now().Add(ttl),
	}
}
