// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fifo provides a first-in-first-out eviction decorator: keys
// are evicted in insertion order, and reads do not affect the order.
package fifo

import (
	"container/list"
	"context"

	"github.com/luxfi/cachekit"
)

// DefaultCapacity is the bound used when none is configured.
const DefaultCapacity = 1024

var _ cachekit.Cache[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache keeps a queue of keys in insertion order, oldest at the front.
// Every Put appends, including overwrites of a key already queued, so
// a rewritten key occupies an extra slot until its older entries cycle
// out.
//
// Like the lru decorator it performs no locking of its own.
type Cache[K comparable, V any] struct {
	inner    cachekit.Cache[K, V]
	capacity int
	keys     *list.List
}

// New wraps inner with the default capacity.
func New[K comparable, V any](inner cachekit.Cache[K, V]) *Cache[K, V] {
	return &Cache[K, V]{
		inner:    inner,
		capacity: DefaultCapacity,
		keys:     list.New(),
	}
}

func (c *Cache[K, V]) ID() string {
	return c.inner.ID()
}

func (c *Cache[K, V]) Len() int {
	return c.inner.Len()
}

// SetCapacity adjusts the bound. The queue is kept; a shrink takes
// effect one eviction at a time as later puts overflow.
func (c *Cache[K, V]) SetCapacity(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	c.capacity = capacity
}

// Capacity returns the configured bound.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Put forwards to the wrapped cache and queues the key; if the queue
// then exceeds capacity, the oldest queued key is removed from both
// the queue and the wrapped cache.
func (c *Cache[K, V]) Put(key K, value V) {
	c.inner.Put(key, value)
	c.keys.PushBack(key)
	if c.keys.Len() > c.capacity {
		oldest := c.keys.Remove(c.keys.Front()).(K)
		c.inner.Remove(oldest)
	}
}

// Get forwards the lookup; reads never reorder the queue.
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	return c.inner.Get(ctx, key)
}

// Remove forwards to the wrapped cache; the queue entry, if any, is
// left behind and cycles out through normal eviction.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	return c.inner.Remove(key)
}

// Clear empties the wrapped cache and the queue.
func (c *Cache[K, V]) Clear() {
	c.inner.Clear()
	c.keys.Init()
}
