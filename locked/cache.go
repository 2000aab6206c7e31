// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

// Package locked provides a decorator that serializes every operation
// on the cache it wraps under one mutex, making lock-free layers such
// as MapCache and the eviction decorators safe to share between
// goroutines.
package locked

import (
	"context"
	"sync"

	"github.com/luxfi/cachekit"
)

var _ cachekit.Cache[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache forwards all operations to the wrapped cache while holding a
// single mutex.
type Cache[K comparable, V any] struct {
	mu    sync.Mutex
	inner cachekit.Cache[K, V]
}

// New wraps inner.
func New[K comparable, V any](inner cachekit.Cache[K, V]) *Cache[K, V] {
	return &Cache[K, V]{inner: inner}
}

func (c *Cache[K, V]) ID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.ID()
}

func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Len()
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Put(key, value)
}

func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Get(ctx, key)
}

func (c *Cache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Remove(key)
}

func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Clear()
}
