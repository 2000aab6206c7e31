// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cachekit provides a composable in-process caching layer: a
// minimal key/value store contract plus decorators that add eviction,
// locking, expiry, and metrics policies on top of it.
//
// Every layer implements Cache, so policies stack by construction:
//
//	store := cachekit.NewMapCache[string, []byte]("results")
//	c := blocking.New(locked.New(lru.New(store)))
//
// The intended order is store innermost, eviction next, blocking
// outermost, so that lock-protected misses and populates pass through
// eviction bookkeeping. Other orders are legal but change observable
// behavior; in particular, placing an eviction layer outside the
// blocking layer lets it evict an entry whose lock a caller is still
// waiting to populate.
package cachekit

import "context"

// Cache acts as a best effort key value store. It is the uniform
// contract implemented by the basic stores and every decorator; a
// decorator wraps a Cache and is itself a Cache.
type Cache[K comparable, V any] interface {
	// ID returns the stable namespace identifier of the cache.
	// Decorators forward it unchanged.
	ID() string

	// Len returns the number of live entries as seen by the innermost
	// store.
	Len() int

	// Put inserts or overwrites an entry. It never fails.
	Put(key K, value V)

	// Get returns the entry with the key, if it exists. A plain miss
	// is (zero, false, nil), never an error; layers that can fail for
	// other reasons (lock timeout, cancellation) report those through
	// the error. The context is honored only by layers that suspend.
	Get(ctx context.Context, key K) (V, bool, error)

	// Remove deletes the entry if present and returns the previous
	// value. Layers may repurpose it; see package blocking.
	Remove(key K) (V, bool)

	// Clear removes all entries; each layer also resets its own
	// bookkeeping.
	Clear()
}
