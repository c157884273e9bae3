// Package row stores tuples of scalar values as the concatenation of
// their fixed-width encodings, in schema order.
package row

import (
	"github.com/Tianpingan/tinysql/internal/types"
	"github.com/cockroachdb/errors"
)

// Row holds one value per schema column.
type Row []types.Value

// Encode appends the encoding of r to dst. Every value must match
// the type of its column.
func Encode(dst []byte, s Schema, r Row) ([]byte, error) {
	if len(r) != len(s) {
		return nil, errors.Errorf("expected %d values, got %d", len(s), len(r))
	}

	for i, c := range s {
		v := r[i]
		if v == nil || v.Type() != c.Type {
			return nil, errors.Wrapf(types.ErrTypeMismatch, "column %q expects %s, got %s", c.Name, c.Type, typeName(v))
		}
		dst = v.Encode(dst)
	}

	return dst, nil
}

// Decode reads a row from b. Unlike types.Decode, the input must be
// exactly as long as the schema width: short or trailing bytes
// are reported as types.ErrCorruptedValue.
func Decode(b []byte, s Schema) (Row, error) {
	r := make(Row, 0, len(s))

	for _, c := range s {
		def := c.Type.Def()
		if def == nil {
			return nil, errors.Wrapf(types.ErrUnsupportedType, "column %q", c.Name)
		}

		v, err := def.Decode(b)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q", c.Name)
		}
		r = append(r, v)
		b = b[def.Size():]
	}

	if len(b) > 0 {
		return nil, errors.Wrapf(types.ErrCorruptedValue, "%d unexpected trailing bytes", len(b))
	}

	return r, nil
}

// FromLiterals builds a row out of a list of literals, such as the
// tuple of an INSERT ... VALUES statement.
func FromLiterals(s Schema, lits []types.Literal) (Row, error) {
	if len(lits) != len(s) {
		return nil, errors.Errorf("expected %d values, got %d", len(s), len(lits))
	}

	r := make(Row, 0, len(s))
	for i, c := range s {
		v, err := types.FromLiteral(lits[i], c.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q", c.Name)
		}
		if v.Type() != c.Type {
			return nil, errors.Wrapf(types.ErrTypeMismatch, "column %q expects %s, got %s", c.Name, c.Type, v.Type())
		}
		r = append(r, v)
	}

	return r, nil
}

// Compare compares two rows column by column.
func Compare(a, b Row) (int, error) {
	if len(a) != len(b) {
		return 0, errors.Errorf("cannot compare rows of %d and %d columns", len(a), len(b))
	}

	for i := range a {
		c, err := types.Compare(a[i], b[i])
		if err != nil || c != 0 {
			return c, err
		}
	}

	return 0, nil
}

func typeName(v types.Value) string {
	if v == nil {
		return "nil"
	}

	return v.Type().String()
}
