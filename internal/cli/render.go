package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ledwire/pkg/pipeline"
)

// renderCommand creates the render command: plan and draw in one step.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		wall wallFlags
		out  renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Plan a wall and render its wiring diagrams",
		Long: `Plan a wall and render its wiring diagrams.

The SVG diagram draws the wall once per harness, with every link coloured by
its cable tier and the trunk feed drawn back to the source. PNG and PDF are
converted from the SVG and need rsvg-convert. JSON and YAML write the plan
document; DOT writes a Graphviz view of the chain.

Results are cached locally for faster subsequent runs.`,
		Example: `  ledwire render -c 10 -r 4
  ledwire render -c 10 -r 4 -f svg,pdf -o out/wall
  ledwire render -c 24 -r 3 --power-run 8 --scale 0.75 --numbers=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			wall.apply(cmd, &opts)
			out.apply(cmd, &opts)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, out)
		},
	}

	wall.register(cmd)
	out.register(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, out renderFlags) error {
	runner, err := c.newRunner(ctx, out.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering wiring diagrams...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printStats(result.Stats.Panels, result.Stats.Connections, result.CacheInfo.PlanHit)
	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		base:      fmt.Sprintf("wall-%dx%d", opts.Cols, opts.Rows),
		output:    out.output,
		cacheHit:  result.CacheInfo.RenderHit,
	})
}
