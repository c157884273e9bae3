package row

import (
	"bytes"
	"encoding/json"

	"github.com/Tianpingan/tinysql/internal/types"
	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
)

// jsonLiteral exposes a raw JSON value as a types.Literal.
// Only integral numbers and booleans are convertible.
type jsonLiteral struct {
	dataType jsonparser.ValueType
	data     []byte
}

func (l jsonLiteral) Numeric() (string, bool) {
	if l.dataType != jsonparser.Number || bytes.ContainsAny(l.data, ".eE") {
		return "", false
	}

	return string(l.data), true
}

func (l jsonLiteral) Boolean() (bool, bool) {
	if l.dataType != jsonparser.Boolean {
		return false, false
	}

	b, err := jsonparser.ParseBoolean(l.data)
	if err != nil {
		return false, false
	}
	return b, true
}

func (l jsonLiteral) String() string {
	return "JSON value " + string(l.data)
}

// ParseJSON builds a row from a JSON object whose keys are column names.
// Every column must be present.
func ParseJSON(data []byte, s Schema) (Row, error) {
	lits := make([]types.Literal, len(s))

	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		i := s.ColumnIndex(string(key))
		if i < 0 {
			return errors.Errorf("unknown column %q", key)
		}

		lits[i] = jsonLiteral{dataType: dataType, data: value}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i, c := range s {
		if lits[i] == nil {
			return nil, errors.Errorf("missing column %q", c.Name)
		}
	}

	return FromLiterals(s, lits)
}

// MarshalJSON writes r as a JSON object, keys following the schema order.
func MarshalJSON(s Schema, r Row) ([]byte, error) {
	if len(r) != len(s) {
		return nil, errors.Errorf("expected %d values, got %d", len(s), len(r))
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, c := range s {
		if i > 0 {
			buf.WriteString(", ")
		}

		v := r[i]
		if v == nil || v.Type() != c.Type {
			return nil, errors.Wrapf(types.ErrTypeMismatch, "column %q expects %s, got %s", c.Name, c.Type, typeName(v))
		}

		name, err := json.Marshal(c.Name)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		buf.Write(name)
		buf.WriteString(": ")

		data, err := v.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
