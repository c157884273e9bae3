package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/Tianpingan/tinysql/internal/row"
	"github.com/Tianpingan/tinysql/internal/sql/parser"
	"github.com/urfave/cli/v2"
)

// NewRowCommand returns a cli.Command for "tinysql row".
func NewRowCommand() *cli.Command {
	return &cli.Command{
		Name:  "row",
		Usage: "Encode and decode fixed-width rows",
		Subcommands: []*cli.Command{
			newRowEncodeCommand(),
			newRowDecodeCommand(),
			newRowJSONCommand(),
		},
	}
}

func newRowEncodeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "encode",
		Usage:     "Encode a list of literals as a row",
		UsageText: `tinysql row encode -s schema "(literal, ...)"`,
		Description: `$ tinysql row encode -s "a BOOL, b SMALLINT" "(true, -2)"
01fffe`,
		Flags: []cli.Flag{schemaFlag()},
	}

	cmd.Action = func(c *cli.Context) error {
		if err := exactArgs(c, 1); err != nil {
			return err
		}

		s, err := schemaArg(c)
		if err != nil {
			return err
		}

		list, err := parser.ParseLiteralList(c.Args().First())
		if err != nil {
			return err
		}

		r, err := row.FromLiterals(s, parser.Literals(list))
		if err != nil {
			return err
		}

		return writeRow(c, s, r)
	}

	return &cmd
}

func newRowDecodeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "decode",
		Usage:     "Decode a row and print it as JSON",
		UsageText: `tinysql row decode -s schema hex`,
		Description: `$ tinysql row decode -s "a BOOL, b SMALLINT" 01fffe
{"a": true, "b": -2}`,
		Flags: []cli.Flag{schemaFlag()},
	}

	cmd.Action = func(c *cli.Context) error {
		if err := exactArgs(c, 1); err != nil {
			return err
		}

		s, err := schemaArg(c)
		if err != nil {
			return err
		}

		b, err := parseHex(c.Args().First())
		if err != nil {
			return err
		}

		r, err := row.Decode(b, s)
		if err != nil {
			return err
		}

		data, err := row.MarshalJSON(s, r)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(c.App.Writer, string(data))
		return err
	}

	return &cmd
}

func newRowJSONCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "json",
		Usage:     "Encode a JSON object as a row",
		UsageText: `tinysql row json -s schema object`,
		Description: `$ tinysql row json -s "a BOOL, b SMALLINT" '{"b": -2, "a": true}'
01fffe`,
		Flags: []cli.Flag{schemaFlag()},
	}

	cmd.Action = func(c *cli.Context) error {
		if err := exactArgs(c, 1); err != nil {
			return err
		}

		s, err := schemaArg(c)
		if err != nil {
			return err
		}

		r, err := row.ParseJSON([]byte(c.Args().First()), s)
		if err != nil {
			return err
		}

		return writeRow(c, s, r)
	}

	return &cmd
}

func writeRow(c *cli.Context, s row.Schema, r row.Row) error {
	b, err := row.Encode(nil, s, r)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, hex.EncodeToString(b))
	return err
}
