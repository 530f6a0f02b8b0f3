// Package cache provides byte caches for resolved style responses.
//
// Style resolution is cheap, but the HTTP server answers the same chart
// configuration over and over from dashboards that poll. Responses are
// cached under a key derived from the request body and interaction so that
// identical requests skip decoding and resolution entirely.
//
// # Implementations
//
//   - [NullCache]: caching disabled
//   - [FileCache]: a directory of JSON entries, for single-instance use
//   - [RedisCache]: shared cache for multi-instance deployments
//
// Wrap any implementation with [Observe] to report hits, misses and writes
// through the observability cache hooks.
//
// # Keys
//
// A [Keyer] derives keys; [NewScopedKeyer] prefixes them, e.g. with the
// build version so that a deploy never serves responses produced by a
// different engine.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values with an optional TTL.
// A miss is reported as (nil, false, nil), not as an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
