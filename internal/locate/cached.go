// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package locate

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of definitions kept by NewCached callers
// that have no better estimate.
const DefaultCacheSize = 256

// Cached memoizes successful lookups of another Locator. Failures are not cached.
type Cached struct {
	next  Locator
	cache *lru.Cache[string, string]
}

// NewCached wraps next with an LRU cache holding up to size definitions.
func NewCached(next Locator, size int) (*Cached, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Cached{next: next, cache: cache}, nil
}

// Resolve implements Locator.
func (c *Cached) Resolve(ctx context.Context, pkg, name string) (string, error) {
	key := pkg + "/" + name
	if text, ok := c.cache.Get(key); ok {
		return text, nil
	}
	text, err := c.next.Resolve(ctx, pkg, name)
	if err != nil {
		return "", err
	}
	c.cache.Add(key, text)
	return text, nil
}
