package testutil

import (
	"fmt"
	"testing"

	"github.com/Tianpingan/tinysql/internal/index"
	"github.com/Tianpingan/tinysql/internal/testutil/assert"
	"github.com/Tianpingan/tinysql/internal/types"
)

// NewIndex opens an in-memory index closed at the end of the test.
func NewIndex(t testing.TB, typ types.Type) *index.Index {
	t.Helper()

	idx, err := index.Open("", typ, &index.Options{InMemory: true})
	assert.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, idx.Close())
	})

	return idx
}

// DumpIndex returns every pair of the index, in order, formatted as value:rowid.
func DumpIndex(t testing.TB, idx *index.Index) []string {
	t.Helper()

	var pairs []string
	err := idx.Iterate(nil, func(v types.Value, rowID uint64) error {
		pairs = append(pairs, fmt.Sprintf("%s:%d", v, rowID))
		return nil
	})
	assert.NoError(t, err)

	return pairs
}
