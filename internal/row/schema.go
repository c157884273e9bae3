package row

import (
	"strings"

	"github.com/Tianpingan/tinysql/internal/types"
	"github.com/cockroachdb/errors"
)

// Column is a named column with its declared type.
type Column struct {
	Name string
	Type types.Type
}

func (c Column) String() string {
	return c.Name + " " + strings.ToUpper(c.Type.String())
}

// Schema lists the columns of a fixed-width row, in storage order.
type Schema []Column

// Validate makes sure every column can be stored and that column names are unique.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return errors.New("schema has no columns")
	}

	seen := make(map[string]struct{}, len(s))
	for _, c := range s {
		if c.Name == "" {
			return errors.New("column name cannot be empty")
		}
		if _, ok := seen[c.Name]; ok {
			return errors.Errorf("duplicate column %q", c.Name)
		}
		seen[c.Name] = struct{}{}

		if !c.Type.IsRepresentable() {
			return errors.Wrapf(types.ErrUnsupportedType, "column %q", c.Name)
		}
	}

	return nil
}

// Width returns the number of bytes used by an encoded row.
func (s Schema) Width() (int, error) {
	var n int
	for _, c := range s {
		size, err := c.Type.Size()
		if err != nil {
			return 0, errors.Wrapf(err, "column %q", c.Name)
		}
		n += size
	}

	return n, nil
}

// ColumnIndex returns the position of the given column, or -1.
func (s Schema) ColumnIndex(name string) int {
	for i, c := range s {
		if c.Name == name {
			return i
		}
	}

	return -1
}

func (s Schema) String() string {
	var sb strings.Builder
	for i, c := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}

	return sb.String()
}
