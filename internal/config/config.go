// Package config loads the tinysql configuration file.
//
// The file is TOML. Missing keys take their default value:
//
//	[log]
//	level = "info"   # any logrus level
//	format = "text"  # text or json
//
//	[index]
//	path = "tinysql.idx"
//	in_memory = false
//	sync = false
package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Tianpingan/tinysql/internal/index"
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/sirupsen/logrus"
)

// DefaultFile is the configuration file looked up in the working directory
// when none is given explicitly.
const DefaultFile = "tinysql.toml"

// Config holds the settings shared by every command.
type Config struct {
	Log   LogConfig   `toml:"log"`
	Index IndexConfig `toml:"index"`
}

type LogConfig struct {
	Level  string `toml:"level" default:"info"`
	Format string `toml:"format" default:"text"`
}

type IndexConfig struct {
	Path     string `toml:"path" default:"tinysql.idx"`
	InMemory bool   `toml:"in_memory"`
	Sync     bool   `toml:"sync"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var c Config
	// only fails on a malformed default tag
	if err := defaults.Set(&c); err != nil {
		panic(err)
	}
	return &c
}

// Load reads the configuration at path on top of the defaults.
// An empty path loads DefaultFile if it exists, the defaults otherwise.
func Load(path string) (*Config, error) {
	c := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err != nil {
			return c, nil
		}
		path = DefaultFile
	}

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read configuration %q", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("unknown configuration keys in %q: %s", path, strings.Join(keys, ", "))
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid configuration %q", path)
	}

	return c, nil
}

// Validate checks the values that cannot be checked by the decoder.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.WithStack(err)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("unknown log format %q", c.Log.Format)
	}

	if !c.Index.InMemory && c.Index.Path == "" {
		return errors.New("index path cannot be empty")
	}

	return nil
}

// NewLogger returns a logger writing to w with the configured level and format.
func (c *Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	if c.Log.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	return l, nil
}

// IndexOptions returns the options used to open the configured index.
func (c *Config) IndexOptions(l logrus.FieldLogger) *index.Options {
	return &index.Options{
		InMemory: c.Index.InMemory,
		Sync:     c.Index.Sync,
		Logger:   l,
	}
}
