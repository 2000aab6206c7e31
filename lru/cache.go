// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lru provides a least-recently-used eviction decorator. It
// bounds the number of entries in the cache it wraps by evicting the
// key touched longest ago whenever an insert pushes the count past the
// configured capacity.
package lru

import (
	"container/list"
	"context"

	"github.com/luxfi/cachekit"
)

// DefaultCapacity is the bound used when none is configured.
const DefaultCapacity = 1024

var _ cachekit.Cache[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache tracks access recency in a ledger kept alongside the wrapped
// cache: a list of keys, most recently used at the front, with one
// entry per key it has seen. Both reads and writes count as use; there
// is a single recency axis.
//
// Cache performs no locking of its own. When shared across goroutines
// it must be wrapped by a synchronizing layer (package locked, or
// package blocking placed outside it).
type Cache[K comparable, V any] struct {
	inner    cachekit.Cache[K, V]
	capacity int
	elements map[K]*list.Element
	order    *list.List
}

// New wraps inner with the default capacity.
func New[K comparable, V any](inner cachekit.Cache[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{inner: inner}
	c.SetCapacity(DefaultCapacity)
	return c
}

func (c *Cache[K, V]) ID() string {
	return c.inner.ID()
}

func (c *Cache[K, V]) Len() int {
	return c.inner.Len()
}

// SetCapacity reconfigures the bound and resets the recency ledger.
// Entries already in the wrapped cache are left in place but are no
// longer tracked; they rejoin the ledger when next written.
func (c *Cache[K, V]) SetCapacity(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	c.capacity = capacity
	c.elements = make(map[K]*list.Element)
	c.order = list.New()
}

// Capacity returns the configured bound.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Put forwards to the wrapped cache and records key as most recently
// used. If the ledger then exceeds capacity, the least recently used
// key is removed from both the ledger and the wrapped cache. A single
// insert overflows by at most one, so at most one entry is evicted.
func (c *Cache[K, V]) Put(key K, value V) {
	c.inner.Put(key, value)

	if elem, ok := c.elements[key]; ok {
		c.order.MoveToFront(elem)
	} else {
		c.elements[key] = c.order.PushFront(key)
	}

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		eldest := oldest.Value.(K)
		c.order.Remove(oldest)
		delete(c.elements, eldest)
		c.inner.Remove(eldest)
	}
}

// Get marks the key as most recently used before the forwarded lookup,
// so recency moves even when the wrapped cache misses. Keys the ledger
// has never seen are not inserted by a read.
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	if elem, ok := c.elements[key]; ok {
		c.order.MoveToFront(elem)
	}
	return c.inner.Get(ctx, key)
}

// Remove forwards to the wrapped cache. The ledger entry, if any, is
// left behind and ages out through normal eviction.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	return c.inner.Remove(key)
}

// Clear empties the wrapped cache and the ledger.
func (c *Cache[K, V]) Clear() {
	c.inner.Clear()
	c.elements = make(map[K]*list.Element)
	c.order.Init()
}
