package types

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Literal is the minimal view of a parsed SQL literal needed to build a Value.
// SQL front ends map their own syntax trees onto it.
// A literal that is neither numeric nor boolean is unsupported.
type Literal interface {
	// Numeric returns the text of an integer literal, sign included.
	Numeric() (text string, ok bool)
	// Boolean returns the value of a TRUE or FALSE literal.
	Boolean() (value bool, ok bool)
}

// NumericLiteral is an integer literal, as written in the query.
type NumericLiteral string

func (l NumericLiteral) Numeric() (string, bool) { return string(l), true }
func (l NumericLiteral) Boolean() (bool, bool)   { return false, false }
func (l NumericLiteral) String() string          { return string(l) }

// BooleanLiteral is a TRUE or FALSE literal.
type BooleanLiteral bool

func (l BooleanLiteral) Numeric() (string, bool) { return "", false }
func (l BooleanLiteral) Boolean() (bool, bool)   { return bool(l), true }
func (l BooleanLiteral) String() string          { return strconv.FormatBool(bool(l)) }

// FromLiteral converts lit into a value of type t.
// Boolean literals always produce a BooleanValue, whatever t is.
// Numeric literals are parsed with the width of t, which must be an integer type.
func FromLiteral(lit Literal, t Type) (Value, error) {
	if lit == nil {
		return nil, errors.Wrap(ErrUnsupportedLiteral, "missing literal")
	}

	if b, ok := lit.Boolean(); ok {
		return NewBooleanValue(b), nil
	}

	text, ok := lit.Numeric()
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedLiteral, "cannot convert %v to %s", lit, t)
	}

	def := t.Def()
	if def == nil {
		return nil, errors.Wrapf(ErrUnsupportedType, "cannot convert numeric literal %q to %s", text, t)
	}

	return def.ParseNumeric(text)
}
