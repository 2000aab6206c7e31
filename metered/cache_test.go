// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package metered

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/cachekit"
)

func TestMeteredCache(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	registry := prometheus.NewRegistry()
	c, err := New("test", registry, cachekit.NewMapCache[string, int]("metered"))
	require.NoError(err)
	require.Equal("metered", c.ID())

	c.Put("a", 1)
	c.Put("b", 2)
	require.Equal(float64(2), testutil.ToFloat64(c.metrics.puts))
	require.Equal(float64(2), testutil.ToFloat64(c.metrics.entries))

	_, ok, err := c.Get(ctx, "a")
	require.NoError(err)
	require.True(ok)
	_, ok, _ = c.Get(ctx, "missing")
	require.False(ok)
	_, ok, _ = c.Get(ctx, "b")
	require.True(ok)

	require.Equal(float64(2), testutil.ToFloat64(c.metrics.gets.With(hitLabels)))
	require.Equal(float64(1), testutil.ToFloat64(c.metrics.gets.With(missLabels)))

	c.Remove("a")
	require.Equal(float64(1), testutil.ToFloat64(c.metrics.removes))
	require.Equal(float64(1), testutil.ToFloat64(c.metrics.entries))

	c.Clear()
	require.Equal(float64(0), testutil.ToFloat64(c.metrics.entries))
}

func TestDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	_, err := New("dup", registry, cachekit.NewMapCache[string, int]("first"))
	require.NoError(err)

	_, err = New("dup", registry, cachekit.NewMapCache[string, int]("second"))
	require.Error(err)
}
