package index

import (
	"bytes"
	"math"

	"github.com/Tianpingan/tinysql/internal/types"
	"github.com/cockroachdb/pebble"
)

// NewComparer returns a pebble comparer ordering index keys of type t.
// Keys are compared by value first, then by their raw bytes, which
// orders entries sharing a value by row id.
// Keys too short to hold a value of type t sort before all others.
func NewComparer(t types.Type) *pebble.Comparer {
	c := newKeyComparer(t)

	return &pebble.Comparer{
		Compare:        c.Compare,
		Equal:          bytes.Equal,
		AbbreviatedKey: c.AbbreviatedKey,
		FormatKey:      pebble.DefaultComparer.FormatKey,
		Separator: func(dst, a, b []byte) []byte {
			return append(dst, a...)
		},
		Successor: func(dst, a []byte) []byte {
			return append(dst, a...)
		},
		ImmediateSuccessor: c.ImmediateSuccessor,
		Split: func(a []byte) int {
			return len(a)
		},
		// The name is persisted in the store and checked when it is reopened.
		Name: "tinysql.index." + t.String() + ".v1",
	}
}

type keyComparer struct {
	t types.Type
	// size of the value prefix, 0 when t has no fixed size.
	size int
	// smallest decodable key: the lowest value of t alone.
	first []byte
}

func newKeyComparer(t types.Type) keyComparer {
	c := keyComparer{t: t}

	var low types.Value
	switch t {
	case types.TypeBoolean:
		low = types.NewBooleanValue(false)
	case types.TypeTinyint:
		low = types.NewTinyintValue(math.MinInt8)
	case types.TypeSmallint:
		low = types.NewSmallintValue(math.MinInt16)
	case types.TypeInteger:
		low = types.NewIntegerValue(math.MinInt32)
	default:
		return c
	}

	c.first = low.Encode(nil)
	c.size = len(c.first)
	return c
}

func (c keyComparer) value(k []byte) types.Value {
	v, err := types.Decode(k, c.t)
	if err != nil {
		return nil
	}
	return v
}

func (c keyComparer) Compare(a, b []byte) int {
	va, vb := c.value(a), c.value(b)

	switch {
	case va == nil && vb == nil:
		return bytes.Compare(a, b)
	case va == nil:
		return -1
	case vb == nil:
		return 1
	}

	// both values share the index type, Compare cannot fail
	if n, err := types.Compare(va, vb); err == nil && n != 0 {
		return n
	}

	return bytes.Compare(a, b)
}

// ImmediateSuccessor returns the smallest key greater than a.
// Appending a zero byte works unless it would turn a short key into a
// decodable one: the next short key in byte order is then a with its
// last byte below 0xFF incremented and the rest dropped.
func (c keyComparer) ImmediateSuccessor(dst, a []byte) []byte {
	if len(a)+1 != c.size {
		return append(append(dst, a...), 0x00)
	}

	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0xFF {
			dst = append(dst, a[:i+1]...)
			dst[len(dst)-1]++
			return dst
		}
	}

	// a is the greatest short key, the first decodable key follows it.
	return append(dst, c.first...)
}

// AbbreviatedKey maps the value prefix of k to an unsigned integer
// with the same order.
func (c keyComparer) AbbreviatedKey(k []byte) uint64 {
	v := c.value(k)
	if v == nil {
		return 0
	}

	var x int64
	if b, ok := v.V().(bool); ok {
		if b {
			x = 1
		}
	} else {
		x, _ = types.AsInt64(v)
	}

	// flipping the sign bit turns two's complement order into unsigned order.
	// No value maps to 0, which is kept for undecodable keys.
	return uint64(x) ^ (1 << 63)
}
