package fetch

import (
	"context"
	"sync"
)

// Cache provides thread-safe caching of fetched source bytes so a URL
// repeated within one pack is retrieved only once.
//
// Cached buffers remain in memory until explicitly removed via Evict or
// Clear. Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	client *Client

	mu   sync.RWMutex
	data map[string][]byte
}

// NewCache creates an empty cache backed by the given client.
func NewCache(client *Client) *Cache {
	return &Cache{
		client: client,
		data:   make(map[string][]byte),
	}
}

// Load returns the bytes for url, fetching and caching them on a miss.
//
// Buffers are cached by the exact URL string; fetch failures are not
// cached, so a later Load for the same URL retries the request.
func (c *Cache) Load(ctx context.Context, url string) ([]byte, error) {
	c.mu.RLock()
	if data, ok := c.data[url]; ok {
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	data, err := c.client.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.data[url] = data
	c.mu.Unlock()

	return data, nil
}

// Evict removes a single URL from the cache. Unknown URLs are a no-op.
func (c *Cache) Evict(url string) {
	c.mu.Lock()
	delete(c.data, url)
	c.mu.Unlock()
}

// Clear removes all cached buffers, freeing the associated memory.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.data = make(map[string][]byte)
	c.mu.Unlock()
}
