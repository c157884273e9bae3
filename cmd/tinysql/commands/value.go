package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Tianpingan/tinysql/internal/sql/parser"
	"github.com/Tianpingan/tinysql/internal/types"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"
)

// NewDecodeCommand returns a cli.Command for "tinysql decode".
func NewDecodeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "decode",
		Usage:     "Decode a stored value",
		UsageText: `tinysql decode -t type hex`,
		Description: `The decode command reads the hexadecimal representation of a stored value
and prints it.

$ tinysql decode -t SMALLINT 07e8
2024`,
		Flags: []cli.Flag{typeFlag()},
	}

	cmd.Action = func(c *cli.Context) error {
		if err := exactArgs(c, 1); err != nil {
			return err
		}

		e, err := getEnv(c)
		if err != nil {
			return err
		}

		t, err := typeArg(c, "type")
		if err != nil {
			return err
		}

		b, err := parseHex(c.Args().First())
		if err != nil {
			return err
		}

		v, err := types.Decode(b, t)
		if err != nil {
			return err
		}

		if size := len(types.Encode(v)); len(b) > size {
			e.log.WithField("ignored", len(b)-size).Debug("trailing bytes")
		}

		_, err = fmt.Fprintln(c.App.Writer, v)
		return err
	}

	return &cmd
}

// NewEncodeCommand returns a cli.Command for "tinysql encode".
func NewEncodeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "encode",
		Usage:     "Encode a literal",
		UsageText: `tinysql encode -t type literal`,
		Description: `The encode command converts a SQL literal to a value of the given type
and prints its stored representation in hexadecimal.
Use -- before negative numbers.

$ tinysql encode -t SMALLINT -- -2
fffe`,
		Flags: []cli.Flag{typeFlag()},
	}

	cmd.Action = func(c *cli.Context) error {
		if err := exactArgs(c, 1); err != nil {
			return err
		}

		t, err := typeArg(c, "type")
		if err != nil {
			return err
		}

		v, err := parseValue(c.Args().First(), t)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(c.App.Writer, hex.EncodeToString(types.Encode(v)))
		return err
	}

	return &cmd
}

// NewCompareCommand returns a cli.Command for "tinysql compare".
func NewCompareCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "compare",
		Usage:     "Compare two literals",
		UsageText: `tinysql compare -t type [--right-type type] left right`,
		Description: `The compare command prints -1, 0 or 1 if the left value is respectively
lower than, equal to or greater than the right value.
Both values must have the same type.

$ tinysql compare -t TINYINT -- -1 1
-1`,
		Flags: []cli.Flag{
			typeFlag(),
			&cli.StringFlag{
				Name:  "right-type",
				Usage: "type of the right value. Defaults to --type.",
			},
		},
	}

	cmd.Action = func(c *cli.Context) error {
		if err := exactArgs(c, 2); err != nil {
			return err
		}

		lt, err := typeArg(c, "type")
		if err != nil {
			return err
		}

		rt := lt
		if c.IsSet("right-type") {
			rt, err = typeArg(c, "right-type")
			if err != nil {
				return err
			}
		}

		left, err := parseValue(c.Args().Get(0), lt)
		if err != nil {
			return errors.Wrap(err, "left")
		}
		right, err := parseValue(c.Args().Get(1), rt)
		if err != nil {
			return errors.Wrap(err, "right")
		}

		n, err := types.Compare(left, right)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(c.App.Writer, n)
		return err
	}

	return &cmd
}

// NewSortCommand returns a cli.Command for "tinysql sort".
func NewSortCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "sort",
		Usage:     "Sort a list of literals",
		UsageText: `tinysql sort -t type literal [literal...]`,
		Description: `The sort command converts every literal to the given type and prints them
in ascending order, one per line. Literals can also be given as a single
comma separated list.

$ tinysql sort -t INTEGER "(3, -1, 2)"
-1
2
3`,
		Flags: []cli.Flag{
			typeFlag(),
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "sort in descending order.",
			},
		},
	}

	cmd.Action = func(c *cli.Context) error {
		if c.NArg() == 0 {
			return errors.Errorf("missing literals\n\nusage: %s", cmd.UsageText)
		}

		t, err := typeArg(c, "type")
		if err != nil {
			return err
		}

		list, err := parser.ParseLiteralList(strings.Join(c.Args().Slice(), ", "))
		if err != nil {
			return err
		}

		values := make([]types.Value, 0, len(list))
		for _, l := range list {
			v, err := types.FromLiteral(l, t)
			if err != nil {
				return err
			}
			if v.Type() != t {
				return errors.Wrapf(types.ErrTypeMismatch, "cannot sort %s among %s values", l, t)
			}
			values = append(values, v)
		}

		// every value has type t, compare cannot fail
		slices.SortStableFunc(values, func(a, b types.Value) int {
			n, _ := types.Compare(a, b)
			return n
		})
		if c.Bool("reverse") {
			slices.Reverse(values)
		}

		for _, v := range values {
			if _, err := fmt.Fprintln(c.App.Writer, v); err != nil {
				return err
			}
		}
		return nil
	}

	return &cmd
}
