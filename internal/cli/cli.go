package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ledwire/pkg/buildinfo"
	"github.com/matzehuels/ledwire/pkg/cache"
	"github.com/matzehuels/ledwire/pkg/config"
	"github.com/matzehuels/ledwire/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "ledwire"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the --config flag; empty searches the default locations.
	configPath string

	// config is loaded once per invocation, before any command runs.
	config *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "ledwire plans the cabling of serpentine LED panel walls",
		Long: `ledwire computes the daisy-chain order of an LED panel wall and counts the
short, medium and long cables each harness (LAN and power) needs.

Panels are visited in a serpentine: left to right on the bottom row, right to
left on the next, and so on. Every harness is classified under its own run
policy and always gets at least one trunk cable back to its source.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/ledwire/config.toml)")

	// Register all subcommands
	root.AddCommand(c.planCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig resolves the configuration file. Flags read from c.config only
// for values the user did not set on the command line.
func (c *CLI) loadConfig() error {
	cfg, path, err := config.Resolve(c.configPath)
	if err != nil {
		return err
	}
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	c.config = cfg
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cache, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

// newCache opens the backend named in the config file. Caching problems
// never block planning: an unreachable Redis falls back to no cache.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	switch c.config.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     c.config.Cache.RedisAddr,
			Password: c.config.Cache.RedisPassword,
			DB:       c.config.Cache.RedisDB,
		})
		if err != nil {
			c.Logger.Warn("redis cache unavailable, continuing without cache", "addr", c.config.Cache.RedisAddr, "error", err)
			return cache.NewNullCache(), nil
		}
		return cache.Instrument(rc), nil
	}

	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return cache.Instrument(fc), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.config != nil && c.config.Cache.Dir != "" {
		return c.config.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/ledwire/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	formats := strings.Split(s, ",")
	for i, f := range formats {
		formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	return formats
}
