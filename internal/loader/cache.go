package loader

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Faultbox/meshkit/pkg/formats"
)

// Cache loads meshes through a shared Options and keeps results keyed by path.
// An entry is reused only while the file's size and modification time are unchanged.
// Safe for concurrent use.
type Cache struct {
	opts    Options
	entries map[string]cacheEntry
	mu      sync.RWMutex

	// Stats
	hits   int
	misses int
}

type cacheEntry struct {
	result  *Result
	size    int64
	modTime time.Time
}

// NewCache creates an empty cache that loads with opts.
func NewCache(opts Options) *Cache {
	return &Cache{
		opts:    opts,
		entries: make(map[string]cacheEntry),
	}
}

// Load returns the cached result for path, reloading it if the file changed.
func (c *Cache) Load(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", formats.ErrIO, err)
	}

	c.mu.Lock()
	e, ok := c.entries[path]
	if ok && e.size == info.Size() && e.modTime.Equal(info.ModTime()) {
		c.hits++
		c.mu.Unlock()
		return e.result, nil
	}
	c.misses++
	c.mu.Unlock()

	res, err := LoadFile(path, c.opts)
	if err != nil {
		c.Invalidate(path)
		return nil, err
	}

	c.mu.Lock()
	c.entries[path] = cacheEntry{result: res, size: info.Size(), modTime: info.ModTime()}
	c.mu.Unlock()
	return res, nil
}

// Invalidate drops the entry for path.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// Len returns the number of cached meshes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns cache hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Clear empties the cache and resets its stats.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
	c.hits = 0
	c.misses = 0
}
