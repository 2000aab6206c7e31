// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package cachekit

import (
	"context"
	"hash/maphash"
	"sync"
)

const (
	numShards = 64
	shardMask = numShards - 1
)

var _ Cache[struct{}, struct{}] = (*ShardedCache[struct{}, struct{}])(nil)

// ShardedCache is a basic store split across a fixed number of
// independently locked shards to reduce contention. Like MapCache it
// is unbounded; bounding is the eviction decorators' job.
type ShardedCache[K comparable, V any] struct {
	id     string
	seed   maphash.Seed
	shards [numShards]shard[K, V]
}

type shard[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// NewShardedCache creates an empty sharded store with the given
// namespace id.
func NewShardedCache[K comparable, V any](id string) *ShardedCache[K, V] {
	c := &ShardedCache[K, V]{
		id:   id,
		seed: maphash.MakeSeed(),
	}
	for i := range c.shards {
		c.shards[i].items = make(map[K]V)
	}
	return c
}

func (c *ShardedCache[K, V]) shard(key K) *shard[K, V] {
	return &c.shards[maphash.Comparable(c.seed, key)&shardMask]
}

func (c *ShardedCache[K, V]) ID() string {
	return c.id
}

func (c *ShardedCache[K, V]) Len() int {
	total := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		total += len(s.items)
		s.mu.RUnlock()
	}
	return total
}

// Put inserts or replaces an entry.
func (c *ShardedCache[K, V]) Put(key K, value V) {
	s := c.shard(key)
	s.mu.Lock()
	s.items[key] = value
	s.mu.Unlock()
}

// Get returns the entry with the key, if it exists.
func (c *ShardedCache[K, V]) Get(_ context.Context, key K) (V, bool, error) {
	s := c.shard(key)
	s.mu.RLock()
	value, ok := s.items[key]
	s.mu.RUnlock()
	return value, ok, nil
}

// Remove deletes the entry and returns the previous value.
func (c *ShardedCache[K, V]) Remove(key K) (V, bool) {
	s := c.shard(key)
	s.mu.Lock()
	value, ok := s.items[key]
	if ok {
		delete(s.items, key)
	}
	s.mu.Unlock()
	return value, ok
}

// Clear removes all entries from every shard.
func (c *ShardedCache[K, V]) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.items = make(map[K]V)
		s.mu.Unlock()
	}
}
