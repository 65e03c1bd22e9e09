// Package interfaces defines the contracts used across the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations. Implementations can be
// in-memory or Redis; the ingestion fetcher uses it to avoid re-downloading
// a source that was fetched moments ago.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns an error when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A zero TTL stores indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
