package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ledwire/pkg/pipeline"
	"github.com/matzehuels/ledwire/pkg/plan"
)

// visualizeCommand creates the visualize command for rendering a saved plan.
func (c *CLI) visualizeCommand() *cobra.Command {
	var out renderFlags

	cmd := &cobra.Command{
		Use:   "visualize [plan.json|plan.yaml]",
		Short: "Render diagrams from a saved plan",
		Long: `Render diagrams from a saved plan.

The visualize command takes a plan document (produced by 'plan -o' or
'render -f json') and renders it. The plan is checked for consistency
before anything is drawn, so hand-edited plans with miscounted cables are
rejected.

Use 'render' as a shortcut to go directly from a wall size to diagrams.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			out.apply(cmd, &opts)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), args[0], opts, out)
		},
	}

	out.register(cmd)

	return cmd
}

// runVisualize loads the plan and renders it.
func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, out renderFlags) error {
	p, err := plan.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", input, err)
	}
	prog := newProgress(c.Logger)

	runner, err := c.newRunner(ctx, out.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, p, opts)
	if err != nil {
		return fmt.Errorf("visualize: %w", err)
	}
	prog.done(fmt.Sprintf("Rendered %dx%d plan", p.Cols, p.Rows))

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      strings.TrimSuffix(input, filepath.Ext(input)),
		output:    out.output,
		cacheHit:  cacheHit,
	})
}
