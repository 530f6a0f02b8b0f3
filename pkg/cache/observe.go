package cache

import (
	"context"
	"time"

	"github.com/matzehuels/chartstyle/pkg/observability"
)

// observed reports cache traffic through the observability hooks.
type observed struct {
	Cache
}

// Observe wraps c so that hits, misses and writes reach
// observability.Cache().
func Observe(c Cache) Cache {
	if c == nil {
		c = NewNullCache()
	}
	return &observed{Cache: c}
}

func (o *observed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := o.Cache.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(ctx, keyType(key))
		} else {
			observability.Cache().OnCacheMiss(ctx, keyType(key))
		}
	}
	return data, ok, err
}

func (o *observed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := o.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, keyType(key), len(data))
	return nil
}
