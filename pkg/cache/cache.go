package cache

import (
	"context"
	"time"
)

// Cache is the read-path cache contract. Repositories depend on this
// interface so tests can run without a running Redis.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found=false means a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value (JSON-encoded) under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}
