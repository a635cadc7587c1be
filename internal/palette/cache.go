package palette

import "sync"

// Cache is a concurrency-safe palette image cache.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	load  func(string) (Palette, error)
}

type cacheEntry struct {
	pal Palette
	err error
}

// NewCache creates an empty cache that loads with LoadImage.
func NewCache() *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		load:  LoadImage,
	}
}

// Resolve loads and caches a palette image. Failures are cached too, so a
// bad path is only read once.
func (c *Cache) Resolve(path string) (Palette, error) {
	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.pal, entry.err
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	pal, err := c.load(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.pal, entry.err
	}
	c.items[path] = &cacheEntry{pal: pal, err: err}
	return pal, err
}

// Len reports how many paths have been resolved.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
