package cache

import (
	"context"
	"time"
)

// Cache is the key/value store behind token revocation. The abstraction
// allows swapping between the in-memory store (development, single instance)
// and Redis (production) without changing business logic.
type Cache interface {
	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value by key. Returns ErrCacheMiss if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Exists checks if a key exists.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error
}

// CacheError is a sentinel error type for cache operations.
type CacheError string

func (e CacheError) Error() string { return string(e) }

// ErrCacheMiss indicates the key was not found.
const ErrCacheMiss CacheError = "cache miss"
