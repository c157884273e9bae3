package index_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Tianpingan/tinysql/internal/index"
	"github.com/Tianpingan/tinysql/internal/testutil"
	"github.com/Tianpingan/tinysql/internal/testutil/assert"
	"github.com/Tianpingan/tinysql/internal/types"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestIndexOrder(t *testing.T) {
	idx := testutil.NewIndex(t, types.TypeSmallint)

	values := testutil.MakeValues(t, types.TypeSmallint, "10", "-1", "300", "-32768", "0", "1", "32767", "-300")
	for i, v := range values {
		require.NoError(t, idx.Set(v, uint64(i)))
	}

	require.Equal(t, []string{
		"-32768:3",
		"-300:7",
		"-1:1",
		"0:4",
		"1:5",
		"10:0",
		"300:2",
		"32767:6",
	}, testutil.DumpIndex(t, idx))
}

func TestIndexDuplicates(t *testing.T) {
	idx := testutil.NewIndex(t, types.TypeTinyint)

	v := testutil.MakeValue(t, "-5", types.TypeTinyint)
	for _, id := range []uint64{30, 1, 1 << 40, 2} {
		require.NoError(t, idx.Set(v, id))
	}
	require.NoError(t, idx.Set(testutil.MakeValue(t, "-4", types.TypeTinyint), 0))
	require.NoError(t, idx.Set(testutil.MakeValue(t, "-6", types.TypeTinyint), 99))

	ids, err := idx.Lookup(v)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 30, 1 << 40}, ids)

	require.NoError(t, idx.Delete(v, 30))
	require.NoError(t, idx.Delete(v, 12345))

	ids, err = idx.Lookup(v)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 1 << 40}, ids)

	ids, err = idx.Lookup(testutil.MakeValue(t, "100", types.TypeTinyint))
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestIndexIterate(t *testing.T) {
	idx := testutil.NewIndex(t, types.TypeInteger)

	for i := -5; i <= 5; i++ {
		require.NoError(t, idx.Set(types.NewIntegerValue(int32(i*1000)), uint64(i+5)))
	}

	t.Run("from pivot", func(t *testing.T) {
		var got []int32
		err := idx.Iterate(types.NewIntegerValue(-1500), func(v types.Value, _ uint64) error {
			got = append(got, types.AsInt32(v))
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []int32{-1000, 0, 1000, 2000, 3000, 4000, 5000}, got)
	})

	t.Run("stop", func(t *testing.T) {
		stop := errors.New("stop")
		var n int
		err := idx.Iterate(nil, func(v types.Value, _ uint64) error {
			n++
			if n == 3 {
				return stop
			}
			return nil
		})
		require.ErrorIs(t, err, stop)
		require.Equal(t, 3, n)
	})

	t.Run("past the end", func(t *testing.T) {
		err := idx.Iterate(types.NewIntegerValue(5001), func(v types.Value, _ uint64) error {
			return errors.Newf("unexpected value %s", v)
		})
		require.NoError(t, err)
	})
}

func TestIndexTypeMismatch(t *testing.T) {
	idx := testutil.NewIndex(t, types.TypeSmallint)

	assert.ErrorIs(t, idx.Set(types.NewIntegerValue(1), 1), types.ErrTypeMismatch)
	assert.ErrorIs(t, idx.Delete(types.NewBooleanValue(true), 1), types.ErrTypeMismatch)
	assert.ErrorIs(t, idx.Set(nil, 1), types.ErrTypeMismatch)

	_, err := idx.Lookup(types.NewTinyintValue(1))
	assert.ErrorIs(t, err, types.ErrTypeMismatch)

	err = idx.Iterate(types.NewTinyintValue(1), func(types.Value, uint64) error { return nil })
	assert.ErrorIs(t, err, types.ErrTypeMismatch)
}

func TestOpenUnsupportedType(t *testing.T) {
	_, err := index.Open("", types.TypeText, &index.Options{InMemory: true})
	assert.ErrorIs(t, err, types.ErrUnsupportedType)
}

func TestIndexReopen(t *testing.T) {
	dir := t.TempDir()

	idx, err := index.Open(dir, types.TypeBoolean, &index.Options{Sync: true})
	require.NoError(t, err)
	require.Equal(t, types.TypeBoolean, idx.Type())
	require.NoError(t, idx.Set(types.NewBooleanValue(true), 1))
	require.NoError(t, idx.Set(types.NewBooleanValue(false), 2))
	require.NoError(t, idx.Close())

	idx, err = index.Open(dir, types.TypeBoolean, nil)
	require.NoError(t, err)
	defer idx.Close()

	require.Equal(t, []string{"false:2", "true:1"}, testutil.DumpIndex(t, idx))

	// the comparer name is persisted: another type cannot reuse the store
	_, err = index.Open(dir, types.TypeTinyint, nil)
	require.Error(t, err)
}

func TestIndexConcurrentWrites(t *testing.T) {
	idx := testutil.NewIndex(t, types.TypeInteger)

	var g errgroup.Group
	var mu sync.Mutex
	want := make(map[string]struct{})

	for w := 0; w < 8; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				v := types.NewIntegerValue(int32((i - 50) * (w + 1)))
				id := uint64(w*1000 + i)
				if err := idx.Set(v, id); err != nil {
					return err
				}
				mu.Lock()
				want[fmt.Sprintf("%s:%d", v, id)] = struct{}{}
				mu.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	pairs := testutil.DumpIndex(t, idx)
	require.Len(t, pairs, len(want))
	for _, p := range pairs {
		require.Contains(t, want, p)
	}

	var prev types.Value
	err := idx.Iterate(nil, func(v types.Value, _ uint64) error {
		if prev != nil {
			gt, err := types.IsGreaterThan(prev, v)
			if err != nil {
				return err
			}
			if gt {
				return errors.Newf("%s after %s", v, prev)
			}
		}
		prev = v
		return nil
	})
	require.NoError(t, err)
}

func TestIndexBatch(t *testing.T) {
	idx := testutil.NewIndex(t, types.TypeTinyint)
	require.NoError(t, idx.Set(testutil.MakeValue(t, "0", types.TypeTinyint), 0))

	t.Run("commit", func(t *testing.T) {
		b := idx.NewBatch()
		defer b.Close()

		for i, v := range testutil.MakeValues(t, types.TypeTinyint, "3", "-3") {
			require.NoError(t, b.Set(v, uint64(i+1)))
		}
		require.Equal(t, 2, b.Len())

		// nothing is visible before the commit
		require.Equal(t, []string{"0:0"}, testutil.DumpIndex(t, idx))

		require.NoError(t, b.Commit())
		require.Equal(t, []string{"-3:2", "0:0", "3:1"}, testutil.DumpIndex(t, idx))
	})

	t.Run("discard", func(t *testing.T) {
		b := idx.NewBatch()
		require.NoError(t, b.Set(testutil.MakeValue(t, "100", types.TypeTinyint), 9))

		err := b.Set(types.NewSmallintValue(1), 10)
		assert.ErrorIs(t, err, types.ErrTypeMismatch)
		require.Equal(t, 1, b.Len())

		require.NoError(t, b.Close())
		require.Equal(t, []string{"-3:2", "0:0", "3:1"}, testutil.DumpIndex(t, idx))
	})
}
