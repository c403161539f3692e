package catalog

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCacheSize bounds the per-process component cache. Build commands
// resolve catalog ids repeatedly while assembling a configuration; the
// cache keeps those lookups off the wire without ever being a source of
// truth.
const defaultCacheSize = 256

// Cache is a bounded in-process cache of normalized components keyed by id.
type Cache struct {
	entries *lru.Cache[string, Component]
}

// NewCache creates a component cache with the default size.
func NewCache() (*Cache, error) {
	return NewCacheWithSize(defaultCacheSize)
}

// NewCacheWithSize creates a component cache with a custom size.
func NewCacheWithSize(size int) (*Cache, error) {
	entries, err := lru.New[string, Component](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Get returns a cached component by id.
func (c *Cache) Get(id string) (Component, bool) {
	return c.entries.Get(id)
}

// Put stores a component. Components without an id are not cacheable.
func (c *Cache) Put(component Component) {
	if component.ID == "" {
		return
	}
	c.entries.Add(component.ID, component)
}

// PutAll stores a list of components, typically after a catalog fetch.
func (c *Cache) PutAll(components []Component) {
	for _, component := range components {
		c.Put(component)
	}
}

// Len returns the number of cached components.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops all cached components.
func (c *Cache) Purge() {
	c.entries.Purge()
}
