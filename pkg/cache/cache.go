// Package cache stores rendered artifacts so repeated renders of an
// unchanged document skip Graphviz and rsvg-convert.
//
// Keys are built with [Key] from the inputs that determine the output, so
// an entry never needs invalidating; it is simply no longer asked for once
// the document changes. [FileCache] keeps entries under a directory with an
// optional expiry, and [NullCache] disables caching.
//
//	c, _ := cache.NewFileCache(dir)
//	key := cache.Key("graph", dot, "svg")
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data, nil
//	}
package cache

import (
	"context"
	"time"
)

// Cache is a byte store keyed by string.
type Cache interface {
	// Get returns the entry for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
