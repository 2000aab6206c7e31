// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

// Package expiring provides a decorator that flushes the wrapped cache
// wholesale once a configured interval has elapsed. The check runs
// lazily on access; there is no background sweeper.
package expiring

import (
	"context"
	"time"

	"github.com/luxfi/cachekit"
)

// DefaultInterval is the flush interval used when none is configured.
const DefaultInterval = time.Hour

var _ cachekit.Cache[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache forwards to the wrapped cache, clearing it first whenever more
// than the configured interval has passed since the last clear. A Get
// that triggers the flush reports a miss without consulting the
// wrapped cache.
//
// Not synchronized; wrap with package locked for concurrent use.
type Cache[K comparable, V any] struct {
	inner     cachekit.Cache[K, V]
	interval  time.Duration
	lastClear time.Time
	now       func() time.Time
}

// New wraps inner with the default interval.
func New[K comparable, V any](inner cachekit.Cache[K, V]) *Cache[K, V] {
	return &Cache[K, V]{
		inner:     inner,
		interval:  DefaultInterval,
		lastClear: time.Now(),
		now:       time.Now,
	}
}

// SetInterval reconfigures the flush interval.
func (c *Cache[K, V]) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	c.interval = d
}

// Interval returns the configured flush interval.
func (c *Cache[K, V]) Interval() time.Duration {
	return c.interval
}

func (c *Cache[K, V]) ID() string {
	return c.inner.ID()
}

func (c *Cache[K, V]) Len() int {
	c.flushStale()
	return c.inner.Len()
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.flushStale()
	c.inner.Put(key, value)
}

func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	if c.flushStale() {
		var zero V
		return zero, false, nil
	}
	return c.inner.Get(ctx, key)
}

func (c *Cache[K, V]) Remove(key K) (V, bool) {
	c.flushStale()
	return c.inner.Remove(key)
}

// Clear empties the wrapped cache and restarts the interval.
func (c *Cache[K, V]) Clear() {
	c.lastClear = c.now()
	c.inner.Clear()
}

func (c *Cache[K, V]) flushStale() bool {
	if c.now().Sub(c.lastClear) > c.interval {
		c.Clear()
		return true
	}
	return false
}
