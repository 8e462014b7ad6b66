// Package cache provides a pluggable byte cache for computed plans and
// rendered artifacts.
//
// Three backends implement [Cache]:
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: snappy-compressed entries under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//
// Keys are produced by a [Keyer] so that every consumer agrees on how plan
// and artifact parameters map to cache entries. [Instrument] wraps any cache
// with observability hooks.
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes. Plans and artifacts are pure functions of their
// key, so they only expire to bound disk and memory use.
const (
	TTLPlan     = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value stored under key and whether it was found.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
