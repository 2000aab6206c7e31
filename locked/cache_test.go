// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package locked

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/luxfi/cachekit"
)

func TestForwarding(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	c := New(cachekit.NewMapCache[string, int]("guarded"))
	require.Equal("guarded", c.ID())

	c.Put("a", 1)
	require.Equal(1, c.Len())

	v, ok, err := c.Get(ctx, "a")
	require.NoError(err)
	require.True(ok)
	require.Equal(1, v)

	prev, ok := c.Remove("a")
	require.True(ok)
	require.Equal(1, prev)

	c.Clear()
	require.Zero(c.Len())
}

func TestConcurrentMixedOps(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	// MapCache alone would race; the mutex layer makes it shareable.
	c := New(cachekit.NewMapCache[int, int]("mixed"))

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < 200; i++ {
				key := (w*200 + i) % 64
				switch i % 4 {
				case 0, 1:
					c.Put(key, i)
				case 2:
					if _, _, err := c.Get(ctx, key); err != nil {
						return err
					}
				case 3:
					c.Remove(key)
				}
			}
			return nil
		})
	}
	require.NoError(g.Wait())
	require.LessOrEqual(c.Len(), 64)
}
