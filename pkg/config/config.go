// Package config loads ledwire's configuration file.
//
// A configuration file supplies defaults for the CLI and the HTTP server.
// Command-line flags and query parameters always override it. TOML is the
// primary format; YAML is accepted for files ending in .yaml or .yml:
//
//	[grid]
//	cols = 10
//	rows = 4
//
//	[harness.lan]
//	max_run_length = 11
//
//	[harness.power]
//	max_run_length = 5
//	feed_points = 2
//
//	[render]
//	formats = ["svg", "pdf"]
//	show_numbers = true
//	scale = 1.0
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//
// A harness section without max_run_length plans that harness without run
// grouping. Leaving a harness out entirely keeps its built-in policy.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ledwire/pkg/core/cable"
	"github.com/matzehuels/ledwire/pkg/errors"
	"github.com/matzehuels/ledwire/pkg/pipeline"
	"github.com/matzehuels/ledwire/pkg/plan"
)

// FileName is the configuration file looked up in the user config directory.
const FileName = "config.toml"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// DefaultAddr is the listen address of `ledwire serve`.
const DefaultAddr = ":8080"

// =============================================================================
// Types
// =============================================================================

// Config is the decoded configuration file.
type Config struct {
	Grid    GridConfig               `toml:"grid" yaml:"grid"`
	Harness map[string]HarnessConfig `toml:"harness" yaml:"harness" validate:"dive,keys,oneof=lan power,endkeys"`
	Render  RenderConfig             `toml:"render" yaml:"render"`
	Cache   CacheConfig              `toml:"cache" yaml:"cache"`
	Server  ServerConfig             `toml:"server" yaml:"server"`
}

// GridConfig is the default wall size.
type GridConfig struct {
	Cols int `toml:"cols" yaml:"cols" validate:"omitempty,min=1"`
	Rows int `toml:"rows" yaml:"rows" validate:"omitempty,min=1,max=4"`
}

// HarnessConfig overrides one harness's run policy.
type HarnessConfig struct {
	MaxRunLength *int `toml:"max_run_length" yaml:"max_run_length" validate:"omitempty,min=1"`
	FeedPoints   int  `toml:"feed_points" yaml:"feed_points" validate:"min=0"`
}

// RenderConfig holds diagram defaults.
type RenderConfig struct {
	Formats     []string `toml:"formats" yaml:"formats" validate:"dive,output_format"`
	ShowNumbers *bool    `toml:"show_numbers" yaml:"show_numbers"`
	Scale       float64  `toml:"scale" yaml:"scale" validate:"omitempty,min=0.5,max=2"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend" yaml:"backend" validate:"omitempty,oneof=file redis none"`
	Dir           string `toml:"dir" yaml:"dir"`
	RedisAddr     string `toml:"redis_addr" yaml:"redis_addr" validate:"required_if=Backend redis"`
	RedisPassword string `toml:"redis_password" yaml:"redis_password"`
	RedisDB       int    `toml:"redis_db" yaml:"redis_db" validate:"min=0,max=15"`
}

// ServerConfig configures `ledwire serve`.
type ServerConfig struct {
	Addr string `toml:"addr" yaml:"addr" validate:"omitempty,hostname_port"`
}

// =============================================================================
// Loading
// =============================================================================

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads, validates and defaults the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	var c Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &c)
	default:
		err = decodeTOML(data, &c)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.applyDefaults()
	return &c, nil
}

// Resolve loads the explicit path if one is given, otherwise the first file
// on the default search path. It returns the defaults and an empty path
// when no file exists. An explicit path that does not exist is an error.
func Resolve(explicit string) (*Config, string, error) {
	if explicit != "" {
		c, err := Load(explicit)
		return c, explicit, err
	}
	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err == nil {
			c, err := Load(path)
			return c, path, err
		}
	}
	return Default(), "", nil
}

// SearchPaths lists the default configuration locations in lookup order:
// $XDG_CONFIG_HOME/ledwire/config.toml, then ~/.config/ledwire/config.toml.
func SearchPaths() []string {
	var paths []string
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		paths = append(paths, filepath.Join(configHome, "ledwire", FileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ledwire", FileName))
	}
	return paths
}

func decodeTOML(data []byte, c *Config) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, c *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(c)
}

func (c *Config) applyDefaults() {
	if c.Grid.Cols == 0 {
		c.Grid.Cols = pipeline.DefaultCols
	}
	if c.Grid.Rows == 0 {
		c.Grid.Rows = pipeline.DefaultRows
	}
	if len(c.Render.Formats) == 0 {
		c.Render.Formats = []string{pipeline.FormatSVG}
	}
	if c.Render.ShowNumbers == nil {
		show := true
		c.Render.ShowNumbers = &show
	}
	if c.Render.Scale == 0 {
		c.Render.Scale = pipeline.DefaultScale
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = BackendFile
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
}

// =============================================================================
// Mapping
// =============================================================================

// Policies returns one policy per known harness, in presentation order.
// Harnesses without a section keep [cable.DefaultPolicy].
func (c *Config) Policies() []plan.HarnessPolicy {
	policies := make([]plan.HarnessPolicy, 0, len(cable.Harnesses))
	for _, h := range cable.Harnesses {
		policy := cable.DefaultPolicy(h)
		if hc, ok := c.Harness[string(h)]; ok {
			policy = cable.RunPolicy{MaxRunLength: hc.MaxRunLength, FeedPoints: hc.FeedPoints}
		}
		policies = append(policies, plan.HarnessPolicy{Harness: h, Policy: policy})
	}
	return policies
}

// Options maps the configuration onto pipeline options.
func (c *Config) Options() pipeline.Options {
	return pipeline.Options{
		Cols:        c.Grid.Cols,
		Rows:        c.Grid.Rows,
		Policies:    c.Policies(),
		Formats:     append([]string(nil), c.Render.Formats...),
		HideNumbers: c.Render.ShowNumbers != nil && !*c.Render.ShowNumbers,
		Scale:       c.Render.Scale,
	}
}
