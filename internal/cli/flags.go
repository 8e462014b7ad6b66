package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ledwire/pkg/core/cable"
	"github.com/matzehuels/ledwire/pkg/config"
	"github.com/matzehuels/ledwire/pkg/pipeline"
)

// wallFlags are the grid and harness policy flags shared by plan and render.
type wallFlags struct {
	cols       int
	rows       int
	lanRun     int
	powerRun   int
	noLanRun   bool
	noPowerRun bool
	feeds      int
}

func (f *wallFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&f.cols, "cols", "c", pipeline.DefaultCols, "panels per row")
	fs.IntVarP(&f.rows, "rows", "r", pipeline.DefaultRows, "rows of panels (1-4)")
	fs.IntVar(&f.lanRun, "lan-run", cable.DefaultLANRunLength, "panels per LAN run")
	fs.IntVar(&f.powerRun, "power-run", cable.DefaultPowerRunLength, "panels per power run")
	fs.BoolVar(&f.noLanRun, "no-lan-run", false, "do not split the LAN harness into runs")
	fs.BoolVar(&f.noPowerRun, "no-power-run", false, "do not split the power harness into runs")
	fs.IntVar(&f.feeds, "feeds", cable.DefaultFeedPoints, "trunk feed cables per harness")

	cmd.MarkFlagsMutuallyExclusive("lan-run", "no-lan-run")
	cmd.MarkFlagsMutuallyExclusive("power-run", "no-power-run")
}

// apply overlays the flags the user set on top of the config defaults.
func (f *wallFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	fs := cmd.Flags()
	if fs.Changed("cols") {
		opts.Cols = f.cols
	}
	if fs.Changed("rows") {
		opts.Rows = f.rows
	}

	for i := range opts.Policies {
		p := &opts.Policies[i].Policy
		switch opts.Policies[i].Harness {
		case cable.LAN:
			overlayRun(p, fs.Changed("lan-run"), f.lanRun, f.noLanRun)
		case cable.Power:
			overlayRun(p, fs.Changed("power-run"), f.powerRun, f.noPowerRun)
		}
		if fs.Changed("feeds") {
			p.FeedPoints = f.feeds
		}
	}
}

func overlayRun(p *cable.RunPolicy, changed bool, n int, unbounded bool) {
	switch {
	case unbounded:
		p.MaxRunLength = nil
	case changed:
		p.MaxRunLength = cable.RunLength(n)
	}
}

// renderFlags are the diagram flags shared by render and visualize.
type renderFlags struct {
	formats string
	numbers bool
	scale   float64
	output  string
	noCache bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, yaml, dot, chain.svg (comma-separated)")
	fs.BoolVar(&f.numbers, "numbers", true, "draw the chain order on every panel")
	fs.Float64Var(&f.scale, "scale", pipeline.DefaultScale, "diagram scale (0.5-2.0)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	fs := cmd.Flags()
	if fs.Changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if fs.Changed("numbers") {
		opts.HideNumbers = !f.numbers
	}
	if fs.Changed("scale") {
		opts.Scale = f.scale
	}
}

// baseOptions returns the pipeline options described by the config file.
func (c *CLI) baseOptions() pipeline.Options {
	cfg := c.config
	if cfg == nil {
		cfg = config.Default()
	}
	opts := cfg.Options()
	opts.Logger = c.Logger
	return opts
}
