package provider

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Cached decorates a Provider with an in-process LRU memo and collapses
// concurrent lookups for the same query into a single inner call. Failed
// lookups are never cached, so a retry of the same query reaches the inner
// provider again.
//
// Cached result slices are shared between callers; they must be treated as
// read-only.
type Cached struct {
	inner Provider
	cache *lru.Cache[string, []string]
	group singleflight.Group
}

// NewCached wraps inner with a memo cache of the given size.
func NewCached(inner Provider, size int) (*Cached, error) {
	cache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, fmt.Errorf("create lookup cache: %w", err)
	}
	return &Cached{inner: inner, cache: cache}, nil
}

// Search implements Provider. Note the singleflight caveat: when several
// callers collapse onto one inner call, that call runs under the first
// caller's context.
func (c *Cached) Search(ctx context.Context, query string) ([]string, error) {
	if items, ok := c.cache.Get(query); ok {
		return items, nil
	}

	v, err, _ := c.group.Do(query, func() (any, error) {
		items, err := c.inner.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		c.cache.Add(query, items)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// Close implements Provider. It purges the memo and closes the inner provider.
func (c *Cached) Close() error {
	c.cache.Purge()
	return c.inner.Close()
}
