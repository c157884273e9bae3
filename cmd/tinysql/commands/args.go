package commands

import (
	"encoding/hex"
	"strings"

	"github.com/Tianpingan/tinysql/internal/row"
	"github.com/Tianpingan/tinysql/internal/sql/parser"
	"github.com/Tianpingan/tinysql/internal/types"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

func typeFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "type",
		Aliases:  []string{"t"},
		Usage:    "type of the values, such as BOOLEAN, TINYINT, SMALLINT or INTEGER.",
		Required: true,
	}
}

func schemaFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "schema",
		Aliases:  []string{"s"},
		Usage:    `list of columns, such as "a TINYINT, b BOOL".`,
		Required: true,
	}
}

func typeArg(c *cli.Context, name string) (types.Type, error) {
	t, err := parser.ParseType(c.String(name))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid --%s", name)
	}
	return t, nil
}

func schemaArg(c *cli.Context) (row.Schema, error) {
	s, err := parser.ParseSchema(c.String("schema"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid --schema")
	}
	return s, nil
}

// parseValue parses a literal and converts it to a value of type t.
func parseValue(s string, t types.Type) (types.Value, error) {
	lit, err := parser.ParseLiteral(s)
	if err != nil {
		return nil, err
	}

	return types.FromLiteral(lit, t)
}

// parseHex accepts hexadecimal strings with an optional 0x prefix.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hexadecimal string %q", s)
	}
	return b, nil
}

func exactArgs(c *cli.Context, n int) error {
	if c.NArg() != n {
		return errors.Errorf("expected %d argument(s), got %d\n\nusage: %s", n, c.NArg(), c.Command.UsageText)
	}
	return nil
}
