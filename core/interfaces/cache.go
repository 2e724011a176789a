// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// Cache defines the interface for cache operations.
// Implementations are Redis and an in-memory go-cache store.
// Keys are derived from URLs and search queries, never from video ids.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//
//	// Store a fetched channel feed
//	err := cache.Set(ctx, "feed:"+feedURL, payload, 5*time.Minute)
//
//	// Retrieve it; a miss is reported as an error
//	data, err := cache.Get(ctx, "feed:"+feedURL)
//
//	// Drop it
//	err = cache.Delete(ctx, "feed:"+feedURL)
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}