package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/ledwire/pkg/core/cable"
	"github.com/matzehuels/ledwire/pkg/errors"
	"github.com/matzehuels/ledwire/pkg/pipeline"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, pipeline.DefaultCols, c.Grid.Cols)
	assert.Equal(t, pipeline.DefaultRows, c.Grid.Rows)
	assert.Equal(t, []string{"svg"}, c.Render.Formats)
	require.NotNil(t, c.Render.ShowNumbers)
	assert.True(t, *c.Render.ShowNumbers)
	assert.Equal(t, pipeline.DefaultScale, c.Render.Scale)
	assert.Equal(t, BackendFile, c.Cache.Backend)
	assert.Equal(t, DefaultAddr, c.Server.Addr)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[grid]
cols = 12
rows = 3

[harness.lan]

[harness.power]
max_run_length = 4
feed_points = 2

[render]
formats = ["svg", "dot"]
show_numbers = false
scale = 1.5

[cache]
backend = "redis"
redis_addr = "localhost:6379"
redis_db = 2

[server]
addr = "127.0.0.1:9090"
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, c.Grid.Cols)
	assert.Equal(t, 3, c.Grid.Rows)
	assert.Equal(t, []string{"svg", "dot"}, c.Render.Formats)
	assert.False(t, *c.Render.ShowNumbers)
	assert.Equal(t, 1.5, c.Render.Scale)
	assert.Equal(t, BackendRedis, c.Cache.Backend)
	assert.Equal(t, "localhost:6379", c.Cache.RedisAddr)
	assert.Equal(t, 2, c.Cache.RedisDB)
	assert.Equal(t, "127.0.0.1:9090", c.Server.Addr)

	policies := c.Policies()
	require.Len(t, policies, 2)
	assert.Equal(t, cable.LAN, policies[0].Harness)
	assert.False(t, policies[0].Policy.Bounded(), "empty lan section means no run grouping")
	assert.Equal(t, cable.Power, policies[1].Harness)
	require.True(t, policies[1].Policy.Bounded())
	assert.Equal(t, 4, *policies[1].Policy.MaxRunLength)
	assert.Equal(t, 2, policies[1].Policy.Feeds())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
grid:
  cols: 20
harness:
  lan:
    max_run_length: 8
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, c.Grid.Cols)
	assert.Equal(t, pipeline.DefaultRows, c.Grid.Rows)

	policies := c.Policies()
	assert.Equal(t, 8, *policies[0].Policy.MaxRunLength)
	assert.Equal(t, cable.DefaultPowerRunLength, *policies[1].Policy.MaxRunLength, "power keeps its default")
}

func TestLoadFormats(t *testing.T) {
	for format := range pipeline.ValidFormats {
		t.Run(format, func(t *testing.T) {
			c, err := Load(writeFile(t, "config.toml", "[render]\nformats = [\""+format+"\"]"))
			require.NoError(t, err)
			assert.Equal(t, []string{format}, c.Render.Formats)
		})
	}

	_, err := Load(writeFile(t, "config.toml", "[render]\nformats = [\"gif\"]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain.svg")
}

func TestLoadEmpty(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yml"} {
		t.Run(name, func(t *testing.T) {
			c, err := Load(writeFile(t, name, ""))
			require.NoError(t, err)
			assert.Equal(t, Default(), c)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode errors.Code
		wantMsg  string
	}{
		{"syntax", "c.toml", "[grid\ncols = 1", errors.ErrCodeInvalidConfig, ""},
		{"unknown key", "c.toml", "[grid]\ncolumns = 4", errors.ErrCodeInvalidConfig, "grid.columns"},
		{"unknown yaml key", "c.yaml", "grid:\n  columns: 4", errors.ErrCodeInvalidConfig, ""},
		{"rows too large", "c.toml", "[grid]\nrows = 5", errors.ErrCodeInvalidConfig, "grid.rows"},
		{"negative cols", "c.toml", "[grid]\ncols = -1", errors.ErrCodeInvalidConfig, "grid.cols"},
		{"zero run", "c.toml", "[harness.lan]\nmax_run_length = 0", errors.ErrCodeInvalidConfig, "harness.lan.max_run_length"},
		{"negative feeds", "c.toml", "[harness.power]\nfeed_points = -1", errors.ErrCodeInvalidConfig, "harness.power.feed_points"},
		{"unknown harness", "c.toml", "[harness.dmx]\nmax_run_length = 3", errors.ErrCodeInvalidConfig, "harness.dmx"},
		{"bad format", "c.toml", "[render]\nformats = [\"gif\"]", errors.ErrCodeInvalidConfig, "render.formats"},
		{"scale", "c.toml", "[render]\nscale = 4.0", errors.ErrCodeInvalidConfig, "render.scale"},
		{"bad backend", "c.toml", "[cache]\nbackend = \"memcached\"", errors.ErrCodeInvalidConfig, "cache.backend"},
		{"redis without addr", "c.toml", "[cache]\nbackend = \"redis\"", errors.ErrCodeInvalidConfig, "cache.redis_addr"},
		{"redis db", "c.toml", "[cache]\nredis_db = 16", errors.ErrCodeInvalidConfig, "cache.redis_db"},
		{"server addr", "c.toml", "[server]\naddr = \"nope\"", errors.ErrCodeInvalidConfig, "server.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantCode), "got %v", err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "got %v", err)
}

func TestResolve(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		path := writeFile(t, "custom.toml", "[grid]\ncols = 7")
		c, got, err := Resolve(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
		assert.Equal(t, 7, c.Grid.Cols)
	})

	t.Run("explicit missing", func(t *testing.T) {
		_, _, err := Resolve(filepath.Join(t.TempDir(), "nope.toml"))
		assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
	})

	t.Run("xdg", func(t *testing.T) {
		home := t.TempDir()
		dir := filepath.Join(home, "ledwire")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("[grid]\nrows = 2"), 0o644))
		t.Setenv("XDG_CONFIG_HOME", home)

		c, got, err := Resolve("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, FileName), got)
		assert.Equal(t, 2, c.Grid.Rows)
	})

	t.Run("none", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())

		c, got, err := Resolve("")
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, Default(), c)
	})
}

func TestOptions(t *testing.T) {
	path := writeFile(t, "config.toml", `
[grid]
cols = 3
rows = 2

[render]
formats = ["json"]
`)
	c, err := Load(path)
	require.NoError(t, err)

	opts := c.Options()
	assert.Equal(t, 3, opts.Cols)
	assert.Equal(t, 2, opts.Rows)
	assert.Equal(t, []string{"json"}, opts.Formats)
	assert.False(t, opts.HideNumbers)
	require.Len(t, opts.Policies, 2)

	require.NoError(t, opts.ValidateAndSetDefaults())
}

func TestConfigKey(t *testing.T) {
	tests := map[string]string{
		"Config.Grid.Cols":                 "grid.cols",
		"Config.Harness[lan].MaxRunLength": "harness.lan.max_run_length",
		"Config.Cache.RedisDB":             "cache.redis_db",
		"Config.Render.Formats[0]":         "render.formats.0",
		"Config.Harness[power].FeedPoints": "harness.power.feed_points",
	}
	for in, want := range tests {
		assert.Equal(t, want, configKey(in), in)
	}
}

func TestLoadExamples(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "examples", "ledwire.toml"))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Policies()[1].Policy.Feeds())

	c, err = Load(filepath.Join("..", "..", "examples", "ledwire.yaml"))
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, c.Cache.Backend)
	assert.False(t, c.Policies()[1].Policy.Bounded())
	opts := c.Options()
	require.NoError(t, opts.ValidateAndSetDefaults())
}
