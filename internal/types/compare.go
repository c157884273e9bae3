package types

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Compare returns -1, 0 or +1 depending on whether a is lesser than, equal to
// or greater than b. Both values must be of the same type, otherwise
// ErrTypeMismatch is returned. For a given type the order is total and matches
// Go's ordering of the underlying values, with false < true.
func Compare(a, b Value) (int, error) {
	switch x := a.(type) {
	case BooleanValue:
		y, ok := b.(BooleanValue)
		if !ok {
			return 0, mismatch(a, b)
		}
		return compareBooleans(bool(x), bool(y)), nil
	case TinyintValue:
		y, ok := b.(TinyintValue)
		if !ok {
			return 0, mismatch(a, b)
		}
		return compareIntegers(x, y), nil
	case SmallintValue:
		y, ok := b.(SmallintValue)
		if !ok {
			return 0, mismatch(a, b)
		}
		return compareIntegers(x, y), nil
	case IntegerValue:
		y, ok := b.(IntegerValue)
		if !ok {
			return 0, mismatch(a, b)
		}
		return compareIntegers(x, y), nil
	case nil:
		return 0, mismatch(a, b)
	}

	return 0, errors.Wrapf(ErrUnsupportedType, "cannot compare %s", a.Type())
}

// IsEqual returns true if v is equal to the given value.
func IsEqual(v, other Value) (bool, error) {
	c, err := Compare(v, other)
	return c == 0 && err == nil, err
}

// IsGreaterThan returns true if v is greather than the given value.
func IsGreaterThan(v, other Value) (bool, error) {
	c, err := Compare(v, other)
	return c > 0 && err == nil, err
}

// IsLesserThan returns true if v is lesser than the given value.
func IsLesserThan(v, other Value) (bool, error) {
	c, err := Compare(v, other)
	return c < 0 && err == nil, err
}

func compareBooleans(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	}

	return 1
}

func compareIntegers[T constraints.Signed](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
