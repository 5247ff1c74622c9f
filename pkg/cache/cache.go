// Package cache stores rendered network maps between runs.
//
// Four backends implement [Cache]:
//   - [FileCache]: one file per key under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance, for several `serve` processes
//   - [MemoryCache]: process memory, for a single `serve` process
//   - [NullCache]: stores nothing (--no-cache)
//
// Keys are built with [Key] from the inputs that determine the output, so a
// changed network file or a different route never hits a stale entry.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry owned by this cache.
	Clear(ctx context.Context) error

	// Close releases the backend.
	Close() error
}

// Options selects and configures a backend for [Open].
type Options struct {
	Disabled bool   // use NullCache
	Dir      string // FileCache directory
	RedisURL string // RedisCache URL; takes precedence over Memory and Dir
	Memory   bool   // use MemoryCache instead of a FileCache
	Prefix   string // RedisCache key prefix
}

// Open returns the backend described by opts.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch {
	case opts.Disabled:
		return NewNullCache(), nil
	case opts.RedisURL != "":
		c, err := NewRedisCache(ctx, opts.RedisURL, opts.Prefix)
		if err != nil {
			return nil, err
		}
		return c, nil
	case opts.Memory:
		return NewMemoryCache(), nil
	default:
		c, err := NewFileCache(opts.Dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}
