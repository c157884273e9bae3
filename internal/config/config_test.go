package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tianpingan/tinysql/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tinysql.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c := config.Default()
	require.Equal(t, "info", c.Log.Level)
	require.Equal(t, "text", c.Log.Format)
	require.Equal(t, "tinysql.idx", c.Index.Path)
	require.False(t, c.Index.InMemory)
	require.NoError(t, c.Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    func(c *config.Config)
		fails   bool
	}{
		{"empty", "", func(c *config.Config) {}, false},
		{"partial", "[log]\nlevel = \"debug\"\n", func(c *config.Config) {
			c.Log.Level = "debug"
		}, false},
		{"full", `
[log]
level = "warn"
format = "json"

[index]
path = "/tmp/idx"
in_memory = true
sync = true
`, func(c *config.Config) {
			c.Log.Level = "warn"
			c.Log.Format = "json"
			c.Index.Path = "/tmp/idx"
			c.Index.InMemory = true
			c.Index.Sync = true
		}, false},
		{"unknown key", "[log]\ncolor = true\n", nil, true},
		{"bad level", "[log]\nlevel = \"loud\"\n", nil, true},
		{"bad format", "[log]\nformat = \"xml\"\n", nil, true},
		{"bad toml", "[log\n", nil, true},
		{"wrong type", "[index]\nsync = \"yes\"\n", nil, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := config.Load(writeFile(t, test.content))
			if test.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := config.Default()
			test.want(want)
			require.Equal(t, want, c)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	c := config.Default()
	c.Log.Level = "warn"
	c.Log.Format = "json"

	var buf bytes.Buffer
	l, err := c.NewLogger(&buf)
	require.NoError(t, err)
	require.Equal(t, logrus.WarnLevel, l.GetLevel())

	l.Info("hidden")
	require.Zero(t, buf.Len())

	l.WithField("k", 1).Warn("shown")
	require.Contains(t, buf.String(), `"msg":"shown"`)
	require.Contains(t, buf.String(), `"k":1`)
}

func TestIndexOptions(t *testing.T) {
	c := config.Default()
	c.Index.InMemory = true
	c.Index.Sync = true

	l := logrus.New()
	opts := c.IndexOptions(l)
	require.True(t, opts.InMemory)
	require.True(t, opts.Sync)
	require.Equal(t, logrus.FieldLogger(l), opts.Logger)
}
