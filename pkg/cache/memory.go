package cache

import (
	"bytes"
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultCleanupInterval is how often [MemoryCache] purges expired entries.
const DefaultCleanupInterval = 10 * time.Minute

// MemoryCache keeps entries in process memory. It suits a long-running
// `serve` process that should not touch the disk.
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates an empty memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: gocache.New(gocache.NoExpiration, DefaultCleanupInterval)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.items.Get(key)
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v.([]byte)), true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	exp := gocache.NoExpiration
	if ttl > 0 {
		exp = ttl
	}
	c.items.Set(key, bytes.Clone(data), exp)
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.items.Delete(key)
	return nil
}

func (c *MemoryCache) Clear(context.Context) error {
	c.items.Flush()
	return nil
}

// Len counts the stored entries, expired ones not yet purged included.
func (c *MemoryCache) Len() int { return c.items.ItemCount() }

func (c *MemoryCache) Close() error { return nil }

var _ Cache = (*MemoryCache)(nil)
