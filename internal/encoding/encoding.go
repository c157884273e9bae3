// Package encoding implements the fixed-width big-endian byte layouts used
// to store scalar values. Functions in this package do not check the length
// of their input: callers must slice correctly.
package encoding

// Sizes, in bytes, of every fixed-width layout.
const (
	BooleanSize = 1
	Int8Size    = 1
	Int16Size   = 2
	Int32Size   = 4
	Uint64Size  = 8
)

// Canonical boolean bytes.
const (
	FalseValue byte = 0x00
	TrueValue  byte = 0x01
)

// EncodeBoolean appends the canonical encoding of x to dst.
// It always writes TrueValue or FalseValue.
func EncodeBoolean(dst []byte, x bool) []byte {
	if x {
		return append(dst, TrueValue)
	}

	return append(dst, FalseValue)
}

// DecodeBoolean decodes the first byte of b. Any nonzero byte is true.
func DecodeBoolean(b []byte) bool {
	return b[0] != FalseValue
}
