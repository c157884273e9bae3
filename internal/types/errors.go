package types

import "github.com/cockroachdb/errors"

var (
	// ErrUnsupportedType is returned when a declared type cannot be represented as a Value.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrLiteralParse is returned when the text of a numeric literal
	// doesn't fit the signed integer width required by the target type.
	ErrLiteralParse = errors.New("cannot parse literal")

	// ErrUnsupportedLiteral is returned for literal kinds that have no Value counterpart,
	// such as strings or floating point numbers.
	ErrUnsupportedLiteral = errors.New("unsupported literal")

	// ErrTypeMismatch is returned when comparing or storing values of incompatible types.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrCorruptedValue is returned when the bytes to decode are too short for the declared type.
	ErrCorruptedValue = errors.New("corrupted value")
)

func mismatch(a, b Value) error {
	return errors.Wrapf(ErrTypeMismatch, "cannot compare %s with %s", typeOf(a), typeOf(b))
}

func typeOf(v Value) string {
	if v == nil {
		return "nil"
	}

	return v.Type().String()
}
