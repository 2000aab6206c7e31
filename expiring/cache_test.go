// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package expiring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/cachekit"
)

func TestFlushAfterInterval(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	now := time.Now()
	store := cachekit.NewMapCache[string, int]("scheduled")
	c := New(store)
	c.SetInterval(time.Minute)
	c.now = func() time.Time { return now }
	c.lastClear = now

	c.Put("a", 1)
	v, ok, err := c.Get(ctx, "a")
	require.NoError(err)
	require.True(ok)
	require.Equal(1, v)

	// Within the interval nothing is flushed.
	now = now.Add(30 * time.Second)
	_, ok, _ = c.Get(ctx, "a")
	require.True(ok)

	// Past the interval the whole store flushes and the lookup that
	// noticed reports a miss.
	now = now.Add(31 * time.Second)
	_, ok, err = c.Get(ctx, "a")
	require.NoError(err)
	require.False(ok)
	require.Zero(store.Len())
}

func TestPutAndLenTriggerFlush(t *testing.T) {
	require := require.New(t)

	now := time.Now()
	store := cachekit.NewMapCache[string, int]("lazy")
	c := New(store)
	c.SetInterval(time.Minute)
	c.now = func() time.Time { return now }
	c.lastClear = now

	c.Put("a", 1)
	c.Put("b", 2)

	now = now.Add(2 * time.Minute)
	c.Put("c", 3)
	require.Equal(1, store.Len())

	now = now.Add(2 * time.Minute)
	require.Zero(c.Len())
}

func TestRemoveAfterIntervalSeesFlush(t *testing.T) {
	require := require.New(t)

	now := time.Now()
	store := cachekit.NewMapCache[string, int]("staleremove")
	c := New(store)
	c.SetInterval(time.Minute)
	c.now = func() time.Time { return now }
	c.lastClear = now

	c.Put("a", 1)

	// A stale-interval Remove flushes first, so it cannot hand back
	// an entry the next Get would report gone.
	now = now.Add(2 * time.Minute)
	prev, ok := c.Remove("a")
	require.False(ok)
	require.Zero(prev)
	require.Zero(store.Len())
}

func TestClearRestartsInterval(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	now := time.Now()
	store := cachekit.NewMapCache[string, int]("restart")
	c := New(store)
	c.SetInterval(time.Minute)
	c.now = func() time.Time { return now }
	c.lastClear = now

	now = now.Add(50 * time.Second)
	c.Clear()

	c.Put("a", 1)
	now = now.Add(50 * time.Second)

	// Only 50s since the explicit clear, so the entry survives.
	_, ok, _ := c.Get(ctx, "a")
	require.True(ok)
}

func TestDefaultInterval(t *testing.T) {
	require := require.New(t)
	c := New(cachekit.NewMapCache[string, int]("default"))
	require.Equal(DefaultInterval, c.Interval())

	c.SetInterval(-1)
	require.Equal(DefaultInterval, c.Interval())
}
