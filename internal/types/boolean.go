package types

import (
	"strconv"

	"github.com/Tianpingan/tinysql/internal/encoding"
	"github.com/cockroachdb/errors"
)

var _ TypeDefinition = BooleanTypeDef{}

type BooleanTypeDef struct{}

func (BooleanTypeDef) Type() Type {
	return TypeBoolean
}

func (BooleanTypeDef) Size() int {
	return encoding.BooleanSize
}

// Decode reads the first byte of src. Any nonzero byte decodes to true.
func (t BooleanTypeDef) Decode(src []byte) (Value, error) {
	if err := checkSize(src, TypeBoolean, encoding.BooleanSize); err != nil {
		return nil, err
	}

	return NewBooleanValue(encoding.DecodeBoolean(src)), nil
}

func (BooleanTypeDef) ParseNumeric(text string) (Value, error) {
	return nil, errors.Wrapf(ErrUnsupportedType, "cannot convert numeric literal %q to boolean", text)
}

var _ Value = NewBooleanValue(false)

type BooleanValue bool

// NewBooleanValue returns a SQL BOOLEAN value.
func NewBooleanValue(x bool) BooleanValue {
	return BooleanValue(x)
}

func (v BooleanValue) V() any {
	return bool(v)
}

func (v BooleanValue) Type() Type {
	return TypeBoolean
}

func (v BooleanValue) String() string {
	return strconv.FormatBool(bool(v))
}

func (v BooleanValue) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatBool(bool(v))), nil
}

func (v BooleanValue) MarshalJSON() ([]byte, error) {
	return v.MarshalText()
}

// Encode always writes 0x00 or 0x01.
func (v BooleanValue) Encode(dst []byte) []byte {
	return encoding.EncodeBoolean(dst, bool(v))
}

func (BooleanValue) value() {}
