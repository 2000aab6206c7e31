// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

// Package blocking provides a dogpile-prevention decorator: concurrent
// lookups of the same missing key are serialized so that exactly one
// caller loads the value while the rest wait for it.
package blocking

import (
	"context"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/petermattis/goid"

	"github.com/luxfi/cachekit"
)

var _ cachekit.Cache[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache wraps a cache with per-key mutual exclusion around misses.
//
// Get acquires the key's lock before consulting the wrapped cache. A
// hit releases the lock immediately. A miss leaves the calling
// goroutine holding it: that caller owns resolution and must
// eventually Put (populate and release) or Remove (release without
// populating) the key. Every other Get for the key blocks until then,
// and afterwards observes whatever the holder did.
//
// The per-key lock is not reentrant: a goroutine that holds a key
// after a miss and calls Get for the same key again waits on itself
// until the configured timeout fires, or forever without one. Resolve
// the miss with Put or Remove before looking the key up again.
//
// One lock is created per distinct key on first use and reused for the
// lifetime of the decorator; the table is never reclaimed, so it grows
// with the set of keys ever requested.
type Cache[K comparable, V any] struct {
	inner   cachekit.Cache[K, V]
	timeout atomic.Int64 // acquisition bound in nanoseconds, 0 = wait forever

	mu    sync.Mutex
	locks map[K]*keyLock
}

// New wraps inner. The acquisition timeout defaults to zero, meaning
// Get waits indefinitely for a held lock.
func New[K comparable, V any](inner cachekit.Cache[K, V]) *Cache[K, V] {
	return &Cache[K, V]{
		inner: inner,
		locks: make(map[K]*keyLock),
	}
}

// SetTimeout bounds how long Get waits to acquire a key's lock. Zero
// restores unbounded waiting.
func (c *Cache[K, V]) SetTimeout(d time.Duration) {
	c.timeout.Store(int64(d))
}

// Timeout returns the configured acquisition bound.
func (c *Cache[K, V]) Timeout() time.Duration {
	return time.Duration(c.timeout.Load())
}

func (c *Cache[K, V]) ID() string {
	return c.inner.ID()
}

func (c *Cache[K, V]) Len() int {
	return c.inner.Len()
}

// Put forwards to the wrapped cache and releases the key's lock. The
// release runs on every exit path, so a populate that panics in the
// wrapped cache cannot strand waiters.
func (c *Cache[K, V]) Put(key K, value V) {
	defer c.lockFor(key).release()
	c.inner.Put(key, value)
}

// Get acquires the key's lock, then forwards the lookup. On a hit the
// lock is released before returning; on a miss it is retained and the
// caller must resolve the key via Put or Remove. Failure to acquire
// within the configured timeout reports cachekit.ErrLockTimeout;
// cancellation of ctx while waiting reports
// cachekit.ErrLockInterrupted. Neither failure affects the lock's
// current holder or other waiters.
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	lock := c.lockFor(key)
	if err := c.acquire(ctx, lock, key); err != nil {
		var zero V
		return zero, false, err
	}
	value, ok, err := c.inner.Get(ctx, key)
	if ok && err == nil {
		lock.release()
	}
	// A miss, or an error from the wrapped cache, leaves the lock with
	// the caller: the resolution obligation stands either way.
	return value, ok, err
}

// Remove, despite its name, deletes nothing from the wrapped cache.
// Its sole effect is releasing the key's lock, letting a caller that
// observed a miss give up without populating. Callers wanting actual
// deletion must address a layer below this one.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	c.lockFor(key).release()
	var zero V
	return zero, false
}

// Clear forwards to the wrapped cache. Held locks are untouched; their
// holders still own resolution of the keys they observed missing.
func (c *Cache[K, V]) Clear() {
	c.inner.Clear()
}

func (c *Cache[K, V]) lockFor(key K) *keyLock {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.locks[key]
	if !ok {
		lock = newKeyLock()
		c.locks[key] = lock
	}
	return lock
}

func (c *Cache[K, V]) acquire(ctx context.Context, lock *keyLock, key K) error {
	if timeout := c.Timeout(); timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case lock.sem <- struct{}{}:
		case <-timer.C:
			return errors.Wrapf(cachekit.ErrLockTimeout,
				"key %v in cache %s after %s", key, c.inner.ID(), timeout)
		case <-ctx.Done():
			return errors.Wrapf(cachekit.ErrLockInterrupted,
				"key %v in cache %s: %v", key, c.inner.ID(), ctx.Err())
		}
	} else {
		select {
		case lock.sem <- struct{}{}:
		case <-ctx.Done():
			return errors.Wrapf(cachekit.ErrLockInterrupted,
				"key %v in cache %s: %v", key, c.inner.ID(), ctx.Err())
		}
	}
	lock.holder.Store(gid())
	return nil
}

// noHolder marks a lock nobody holds. Goroutine ids are positive, so
// a release can never match it against a real id; in particular a
// zero id from a failed lookup cannot validate a release of an
// unheld lock.
const noHolder = -1

// keyLock is a non-reentrant mutex that knows which goroutine holds
// it. Acquisition goes through the semaphore channel so it can race a
// timer and a context in one select; holder records the owning
// goroutine so that a release by any other goroutine is a no-op.
type keyLock struct {
	sem    chan struct{}
	holder atomic.Int64
}

func newKeyLock() *keyLock {
	l := &keyLock{sem: make(chan struct{}, 1)}
	l.holder.Store(noHolder)
	return l
}

func (l *keyLock) release() {
	if l.holder.CompareAndSwap(gid(), noHolder) {
		<-l.sem
	}
}

// gid returns the calling goroutine's id. goid's fast path reads it
// off the runtime's g struct; on a toolchain whose layout goid does
// not know it reports zero, and the id is recovered from the stack
// header ("goroutine 123 [running]:") instead.
func gid() int64 {
	if id := goid.Get(); id != 0 {
		return id
	}
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if i := strings.IndexByte(header, ' '); i > 0 {
		if id, err := strconv.ParseInt(header[:i], 10, 64); err == nil {
			return id
		}
	}
	return 0
}
