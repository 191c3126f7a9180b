package server

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mj1618/dashpanel/internal/layout"
	"github.com/mj1618/dashpanel/internal/model"
)

// cacheKey identifies one revision of a layout file.
type cacheKey struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// cacheEntry holds a decoded layout with its timestamp.
type cacheEntry struct {
	doc       *model.LayoutSpec
	timestamp time.Time
}

// LayoutCache provides a TTL-based cache for decoded layout files. An
// edited file gets a new key, so stale documents are never served.
type LayoutCache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
	load    func(path string) (*model.LayoutSpec, error)
}

// NewLayoutCache creates a new cache. A ttl of 0 disables caching.
func NewLayoutCache(ttl time.Duration) *LayoutCache {
	return &LayoutCache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
		load:    layout.Load,
	}
}

// Load returns the cached document if within TTL, otherwise decodes the
// file again. Callers must not modify the returned document.
func (c *LayoutCache) Load(path string) (*model.LayoutSpec, error) {
	if c.ttl == 0 {
		return c.load(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	key := cacheKey{Path: path, ModTime: info.ModTime(), Size: info.Size()}

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && time.Since(entry.timestamp) < c.ttl {
		doc := entry.doc
		c.mu.Unlock()
		return doc, nil
	}
	c.mu.Unlock()

	doc, err := c.load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{doc: doc, timestamp: time.Now()}
	c.mu.Unlock()

	return doc, nil
}

// Len returns the number of cached revisions.
func (c *LayoutCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Invalidate removes all cached revisions of path.
func (c *LayoutCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.Path == path {
			delete(c.entries, k)
		}
	}
}

// InvalidateAll clears the entire cache.
func (c *LayoutCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}
