package types

import (
	"strconv"

	"github.com/Tianpingan/tinysql/internal/encoding"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// parseInt parses text as a base 10 signed integer that must fit in bitSize bits.
func parseInt[T constraints.Signed](text string, t Type, bitSize int) (T, error) {
	x, err := strconv.ParseInt(text, 10, bitSize)
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "cannot parse %q as %s", text, t), ErrLiteralParse)
	}

	return T(x), nil
}

var _ TypeDefinition = TinyintTypeDef{}

type TinyintTypeDef struct{}

func (TinyintTypeDef) Type() Type {
	return TypeTinyint
}

func (TinyintTypeDef) Size() int {
	return encoding.Int8Size
}

func (TinyintTypeDef) Decode(src []byte) (Value, error) {
	if err := checkSize(src, TypeTinyint, encoding.Int8Size); err != nil {
		return nil, err
	}

	return NewTinyintValue(encoding.DecodeInt8(src)), nil
}

func (TinyintTypeDef) ParseNumeric(text string) (Value, error) {
	x, err := parseInt[int8](text, TypeTinyint, 8)
	if err != nil {
		return nil, err
	}

	return NewTinyintValue(x), nil
}

var _ Value = NewTinyintValue(0)

type TinyintValue int8

// NewTinyintValue returns a SQL TINYINT value.
func NewTinyintValue(x int8) TinyintValue {
	return TinyintValue(x)
}

func (v TinyintValue) V() any {
	return int8(v)
}

func (v TinyintValue) Type() Type {
	return TypeTinyint
}

func (v TinyintValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v TinyintValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v TinyintValue) MarshalJSON() ([]byte, error) {
	return v.MarshalText()
}

func (v TinyintValue) Encode(dst []byte) []byte {
	return encoding.EncodeInt8(dst, int8(v))
}

func (TinyintValue) value() {}

var _ TypeDefinition = SmallintTypeDef{}

type SmallintTypeDef struct{}

func (SmallintTypeDef) Type() Type {
	return TypeSmallint
}

func (SmallintTypeDef) Size() int {
	return encoding.Int16Size
}

func (SmallintTypeDef) Decode(src []byte) (Value, error) {
	if err := checkSize(src, TypeSmallint, encoding.Int16Size); err != nil {
		return nil, err
	}

	return NewSmallintValue(encoding.DecodeInt16(src)), nil
}

func (SmallintTypeDef) ParseNumeric(text string) (Value, error) {
	x, err := parseInt[int16](text, TypeSmallint, 16)
	if err != nil {
		return nil, err
	}

	return NewSmallintValue(x), nil
}

var _ Value = NewSmallintValue(0)

type SmallintValue int16

// NewSmallintValue returns a SQL SMALLINT value.
func NewSmallintValue(x int16) SmallintValue {
	return SmallintValue(x)
}

func (v SmallintValue) V() any {
	return int16(v)
}

func (v SmallintValue) Type() Type {
	return TypeSmallint
}

func (v SmallintValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v SmallintValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v SmallintValue) MarshalJSON() ([]byte, error) {
	return v.MarshalText()
}

func (v SmallintValue) Encode(dst []byte) []byte {
	return encoding.EncodeInt16(dst, int16(v))
}

func (SmallintValue) value() {}

var _ TypeDefinition = IntegerTypeDef{}

type IntegerTypeDef struct{}

func (IntegerTypeDef) Type() Type {
	return TypeInteger
}

func (IntegerTypeDef) Size() int {
	return encoding.Int32Size
}

func (IntegerTypeDef) Decode(src []byte) (Value, error) {
	if err := checkSize(src, TypeInteger, encoding.Int32Size); err != nil {
		return nil, err
	}

	return NewIntegerValue(encoding.DecodeInt32(src)), nil
}

func (IntegerTypeDef) ParseNumeric(text string) (Value, error) {
	x, err := parseInt[int32](text, TypeInteger, 32)
	if err != nil {
		return nil, err
	}

	return NewIntegerValue(x), nil
}

var _ Value = NewIntegerValue(0)

type IntegerValue int32

// NewIntegerValue returns a SQL INTEGER value.
func NewIntegerValue(x int32) IntegerValue {
	return IntegerValue(x)
}

func (v IntegerValue) V() any {
	return int32(v)
}

func (v IntegerValue) Type() Type {
	return TypeInteger
}

func (v IntegerValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v IntegerValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v IntegerValue) MarshalJSON() ([]byte, error) {
	return v.MarshalText()
}

func (v IntegerValue) Encode(dst []byte) []byte {
	return encoding.EncodeInt32(dst, int32(v))
}

func (IntegerValue) value() {}
