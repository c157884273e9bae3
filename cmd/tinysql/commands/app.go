package commands

import (
	"github.com/Tianpingan/tinysql/internal/config"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// NewApp creates the tinysql CLI app.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "tinysql"
	app.Usage = "Encode, decode and compare tinysql values"
	app.EnableBashCompletion = true

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path of the configuration file. Defaults to " + config.DefaultFile + " if it exists.",
			EnvVars: []string{"TINYSQL_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "overrides the log level of the configuration file.",
			EnvVars: []string{"TINYSQL_LOG_LEVEL"},
		},
	}

	app.Commands = []*cli.Command{
		NewDecodeCommand(),
		NewEncodeCommand(),
		NewCompareCommand(),
		NewSortCommand(),
		NewRowCommand(),
		NewIndexCommand(),
		NewVersionCommand(),
	}

	app.Before = func(c *cli.Context) error {
		cfg, err := config.Load(c.String("config"))
		if err != nil {
			return err
		}

		if c.IsSet("log-level") {
			cfg.Log.Level = c.String("log-level")
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		log, err := cfg.NewLogger(c.App.ErrWriter)
		if err != nil {
			return err
		}

		if c.App.Metadata == nil {
			c.App.Metadata = make(map[string]interface{})
		}
		c.App.Metadata[envKey] = &env{cfg: cfg, log: log}

		log.WithField("config", c.String("config")).Debug("configuration loaded")
		return nil
	}

	return app
}

const envKey = "env"

// env holds what every command shares.
type env struct {
	cfg *config.Config
	log *logrus.Logger
}

func getEnv(c *cli.Context) (*env, error) {
	e, ok := c.App.Metadata[envKey].(*env)
	if !ok {
		return nil, errors.New("command called without configuration")
	}
	return e, nil
}
