// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metered provides a Prometheus instrumentation decorator.
package metered

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/cachekit"
)

var _ cachekit.Cache[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache wraps a cache with hit/miss, put, and size metrics.
type Cache[K comparable, V any] struct {
	cachekit.Cache[K, V]
	metrics *metrics
}

// New creates a metered wrapper around c, registering its collectors
// under the given namespace.
func New[K comparable, V any](
	namespace string,
	registerer prometheus.Registerer,
	c cachekit.Cache[K, V],
) (*Cache[K, V], error) {
	m, err := newMetrics(namespace, registerer)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{
		Cache:   c,
		metrics: m,
	}, nil
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.Cache.Put(key, value)
	c.metrics.puts.Inc()
	c.metrics.entries.Set(float64(c.Cache.Len()))
}

func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	value, ok, err := c.Cache.Get(ctx, key)
	if ok {
		c.metrics.gets.With(hitLabels).Inc()
	} else {
		c.metrics.gets.With(missLabels).Inc()
	}
	return value, ok, err
}

func (c *Cache[K, V]) Remove(key K) (V, bool) {
	value, ok := c.Cache.Remove(key)
	c.metrics.removes.Inc()
	c.metrics.entries.Set(float64(c.Cache.Len()))
	return value, ok
}

func (c *Cache[_, _]) Clear() {
	c.Cache.Clear()
	c.metrics.entries.Set(float64(c.Cache.Len()))
}
