package shacl

import "sync"

// Cache is the process-lifetime shape-dataset cache, keyed by profile
// selection. It is an explicit service rather than a hidden global so tests
// and hosts can clear it deterministically.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*ShapeDataset
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*ShapeDataset)}
}

// Get returns the cached dataset for key.
func (c *Cache) Get(key string) (*ShapeDataset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ds, ok := c.entries[key]
	return ds, ok
}

// Set stores a dataset. Concurrent double-loads are harmless; the datasets
// are identical and last write wins.
func (c *Cache) Set(key string, ds *ShapeDataset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = ds
}

// Clear drops every cached dataset.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*ShapeDataset)
}

// Len returns the number of cached datasets.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
