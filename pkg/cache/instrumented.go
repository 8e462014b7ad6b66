package cache

import (
	"context"
	"time"

	"github.com/matzehuels/ledwire/pkg/observability"
)

// instrumented reports hits, misses and writes of a wrapped cache to the
// registered observability hooks.
type instrumented struct {
	Cache
}

// Instrument wraps c so that every Get and Set is reported through
// observability.Cache(). Clear is forwarded when c supports it.
func Instrument(c Cache) Cache {
	if clearer, ok := c.(Clearer); ok {
		return &instrumentedClearer{instrumented{c}, clearer}
	}
	return &instrumented{c}
}

func (c *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := c.Cache.Get(ctx, key)
	if err == nil {
		if hit {
			observability.Cache().OnCacheHit(ctx, KeyType(key))
		} else {
			observability.Cache().OnCacheMiss(ctx, KeyType(key))
		}
	}
	return data, hit, err
}

func (c *instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := c.Cache.Set(ctx, key, data, ttl)
	if err == nil {
		observability.Cache().OnCacheSet(ctx, KeyType(key), len(data))
	}
	return err
}

type instrumentedClearer struct {
	instrumented
	clearer Clearer
}

func (c *instrumentedClearer) Clear(ctx context.Context) (int, error) {
	return c.clearer.Clear(ctx)
}
