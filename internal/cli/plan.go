package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ledwire/pkg/errors"
	"github.com/matzehuels/ledwire/pkg/pipeline"
	"github.com/matzehuels/ledwire/pkg/plan"
)

// planCommand creates the plan command, which prints the chain and cable counts.
func (c *CLI) planCommand() *cobra.Command {
	var (
		wall    wallFlags
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the daisy chain and cable counts of a wall",
		Long: `Compute the daisy chain and cable counts of a wall.

The plan command prints the order in which panels are chained, top row
first as in the diagrams, and a table with the small, medium and large cables every harness
needs. With -o the full plan document is written as JSON or YAML (chosen by
the file extension) for later use with 'visualize'.`,
		Example: `  ledwire plan --cols 10 --rows 4
  ledwire plan -c 12 -r 2 --lan-run 6 --no-power-run
  ledwire plan -c 10 -r 4 -o wall.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			wall.apply(cmd, &opts)
			return c.runPlan(cmd.Context(), opts, output, noCache)
		},
	}

	wall.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the plan document (.json, .yaml)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runPlan(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	if output != "" {
		if err := errors.ValidateOutputPath(output); err != nil {
			return err
		}
		if _, err := plan.EncodingFor(output); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	p, cacheHit, err := runner.PlanWithCacheInfo(ctx, opts)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}
	if opts.WideWall() {
		printWarning("%d columns is more than the %d the diagrams are designed for", opts.Cols, pipeline.RecommendedMaxCols)
	}

	printSuccess("Planned %s wall", StyleTitle.Render(fmt.Sprintf("%dx%d", p.Cols, p.Rows)))
	printStats(len(p.Panels), len(p.Connections), cacheHit)
	printNewline()
	writeMatrix(os.Stdout, p)
	printNewline()
	writeTierTable(os.Stdout, p)

	if output == "" {
		printNewline()
		printNextStep("Save", "ledwire plan -o wall.json")
		return nil
	}

	if err := plan.WriteFile(p, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	printNewline()
	printSuccess("Plan written")
	printFile(output)
	printNextStep("Render", "ledwire visualize "+output)
	return nil
}
