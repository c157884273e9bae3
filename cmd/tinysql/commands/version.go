package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v2"
)

// NewVersionCommand returns a cli.Command for "tinysql version".
func NewVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Shows tinysql version",
		Action: func(c *cli.Context) error {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				_, err := fmt.Fprintln(c.App.Writer, `version not available in GOPATH mode; use "go install" with Go modules enabled`)
				return err
			}

			version := info.Main.Version
			// a replace directive or a local build means development mode
			if version == "" || version == "(devel)" || info.Main.Replace != nil {
				version = "(devel)"
			}

			_, err := fmt.Fprintf(c.App.Writer, "tinysql %s\n", version)
			return err
		},
	}
}
