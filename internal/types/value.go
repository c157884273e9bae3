package types

import (
	"github.com/cockroachdb/errors"
)

// Decode reads a value of type t from the leading bytes of src.
// Only t.Size() bytes are consulted; the rest of src is ignored.
func Decode(src []byte, t Type) (Value, error) {
	def := t.Def()
	if def == nil {
		return nil, errors.Wrapf(ErrUnsupportedType, "cannot decode %s", t)
	}

	return def.Decode(src)
}

// Encode returns the canonical encoding of v.
// The result is always 1, 1, 2 or 4 bytes long depending on the type of v.
func Encode(v Value) []byte {
	return v.Encode(nil)
}

func AsBool(v Value) bool {
	return v.V().(bool)
}

func AsInt8(v Value) int8 {
	return v.V().(int8)
}

func AsInt16(v Value) int16 {
	return v.V().(int16)
}

func AsInt32(v Value) int32 {
	return v.V().(int32)
}

// AsInt64 widens any integer value to an int64.
func AsInt64(v Value) (int64, error) {
	switch x := v.(type) {
	case TinyintValue:
		return int64(x), nil
	case SmallintValue:
		return int64(x), nil
	case IntegerValue:
		return int64(x), nil
	}

	return 0, errors.Wrapf(ErrTypeMismatch, "%s is not an integer", typeOf(v))
}
