package types

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Type represents a logical data type declared by the catalog for a column.
// Only some of the declared types can be represented as a Value;
// see IsRepresentable.
type Type uint8

// List of declared types.
const (
	TypeBoolean Type = iota + 1
	TypeTinyint
	TypeSmallint
	TypeInteger
	TypeBigint
	TypeDouble
	TypeTimestamp
	TypeText
	TypeBlob
)

// Def returns the definition of t, or nil if t cannot be represented as a Value.
func (t Type) Def() TypeDefinition {
	switch t {
	case TypeBoolean:
		return BooleanTypeDef{}
	case TypeTinyint:
		return TinyintTypeDef{}
	case TypeSmallint:
		return SmallintTypeDef{}
	case TypeInteger:
		return IntegerTypeDef{}
	}

	return nil
}

func (t Type) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeTinyint:
		return "tinyint"
	case TypeSmallint:
		return "smallint"
	case TypeInteger:
		return "integer"
	case TypeBigint:
		return "bigint"
	case TypeDouble:
		return "double"
	case TypeTimestamp:
		return "timestamp"
	case TypeText:
		return "text"
	case TypeBlob:
		return "blob"
	}

	return fmt.Sprintf("type(%d)", uint8(t))
}

// IsRepresentable returns true if values of type t can be decoded, encoded and compared.
func (t Type) IsRepresentable() bool {
	return t.Def() != nil
}

// IsInteger returns true if t is one of the fixed-width signed integer types.
func (t Type) IsInteger() bool {
	return t == TypeTinyint || t == TypeSmallint || t == TypeInteger
}

// Size returns the number of bytes used to encode a value of type t.
func (t Type) Size() (int, error) {
	def := t.Def()
	if def == nil {
		return 0, errors.Wrapf(ErrUnsupportedType, "%s has no fixed size", t)
	}

	return def.Size(), nil
}

// TypeDefinition describes how values of a representable type
// are decoded from bytes and parsed from numeric literal text.
type TypeDefinition interface {
	Type() Type
	Size() int
	Decode(src []byte) (Value, error)
	ParseNumeric(text string) (Value, error)
}

// Value is a scalar stored by the database. The set of implementations is
// closed: BooleanValue, TinyintValue, SmallintValue and IntegerValue.
// Values are immutable and safe for concurrent use.
//
// There is no NULL value. If one is introduced, it will either become a new
// implementation of this interface or an optional wrapper around it,
// and NULL is expected to sort below every non-NULL value.
type Value interface {
	Type() Type
	// V returns the underlying Go value: bool, int8, int16 or int32.
	V() any
	String() string
	// Encode appends the canonical encoding of the value to dst.
	Encode(dst []byte) []byte
	MarshalText() ([]byte, error)
	MarshalJSON() ([]byte, error)

	value()
}

// checkSize returns ErrCorruptedValue if src holds fewer than size bytes.
func checkSize(src []byte, t Type, size int) error {
	if len(src) < size {
		return errors.Wrapf(ErrCorruptedValue, "%s requires %d bytes, got %d", t, size, len(src))
	}

	return nil
}

