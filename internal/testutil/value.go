package testutil

import (
	"testing"

	"github.com/Tianpingan/tinysql/internal/row"
	"github.com/Tianpingan/tinysql/internal/sql/parser"
	"github.com/Tianpingan/tinysql/internal/testutil/assert"
	"github.com/Tianpingan/tinysql/internal/types"
)

// MakeValue parses a literal, such as -3 or true, into a value of type typ.
func MakeValue(t testing.TB, lit string, typ types.Type) types.Value {
	t.Helper()

	l, err := parser.ParseLiteral(lit)
	assert.NoError(t, err)

	v, err := types.FromLiteral(l, typ)
	assert.NoError(t, err)
	return v
}

// MakeValues parses a list of literals into values of type typ.
func MakeValues(t testing.TB, typ types.Type, lits ...string) []types.Value {
	t.Helper()

	values := make([]types.Value, 0, len(lits))
	for _, l := range lits {
		values = append(values, MakeValue(t, l, typ))
	}
	return values
}

// MakeSchema parses a column list, such as "a TINYINT, b BOOL".
func MakeSchema(t testing.TB, s string) row.Schema {
	t.Helper()

	sc, err := parser.ParseSchema(s)
	assert.NoError(t, err)
	return sc
}

// MakeRow parses a list of literals, such as "(1, true)", into a row of schema s.
func MakeRow(t testing.TB, s row.Schema, values string) row.Row {
	t.Helper()

	list, err := parser.ParseLiteralList(values)
	assert.NoError(t, err)

	r, err := row.FromLiterals(s, parser.Literals(list))
	assert.NoError(t, err)
	return r
}
