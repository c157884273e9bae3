package atomic_test

import (
	"testing"

	"github.com/Tianpingan/tinysql/lib/atomic"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCounter(t *testing.T) {
	c := atomic.NewCounter(5, 8)

	for _, want := range []uint64{5, 6, 7} {
		got, ok := c.Incr()
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := c.Incr()
	require.False(t, ok)
	require.EqualValues(t, 8, c.Get())
}

func TestCounterConcurrent(t *testing.T) {
	c := atomic.NewCounter(0, 1000)

	ids := make([][]uint64, 10)
	var g errgroup.Group
	for i := range ids {
		i := i
		g.Go(func() error {
			for {
				id, ok := c.Incr()
				if !ok {
					return nil
				}
				ids[i] = append(ids[i], id)
			}
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[uint64]bool)
	for _, l := range ids {
		for _, id := range l {
			require.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}
	}
	require.Len(t, seen, 1000)
}
