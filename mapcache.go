// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package cachekit

import "context"

var _ Cache[struct{}, struct{}] = (*MapCache[struct{}, struct{}])(nil)

// MapCache is the basic store: an unordered, unbounded mapping with no
// eviction and no locking of its own. When shared across goroutines it
// must be wrapped by a synchronizing decorator (package locked, or
// package blocking for per-key coordination); ShardedCache is the
// internally synchronized alternative.
type MapCache[K comparable, V any] struct {
	id    string
	items map[K]V
}

// NewMapCache creates an empty store with the given namespace id.
func NewMapCache[K comparable, V any](id string) *MapCache[K, V] {
	return &MapCache[K, V]{
		id:    id,
		items: make(map[K]V),
	}
}

func (c *MapCache[K, V]) ID() string {
	return c.id
}

func (c *MapCache[K, V]) Len() int {
	return len(c.items)
}

// Put inserts or replaces an entry.
func (c *MapCache[K, V]) Put(key K, value V) {
	c.items[key] = value
}

// Get returns the entry with the key, if it exists.
func (c *MapCache[K, V]) Get(_ context.Context, key K) (V, bool, error) {
	value, ok := c.items[key]
	return value, ok, nil
}

// Remove deletes the entry and returns the previous value.
func (c *MapCache[K, V]) Remove(key K) (V, bool) {
	value, ok := c.items[key]
	if ok {
		delete(c.items, key)
	}
	return value, ok
}

// Clear removes all entries.
func (c *MapCache[K, V]) Clear() {
	c.items = make(map[K]V)
}
