package pipeline

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/ledwire/pkg/core/cable"
	"github.com/matzehuels/ledwire/pkg/core/grid"
	"github.com/matzehuels/ledwire/pkg/core/wiring"
	"github.com/matzehuels/ledwire/pkg/observability"
	"github.com/matzehuels/ledwire/pkg/plan"
)

// =============================================================================
// Plan Generation
// =============================================================================

// BuildPlan computes a plan without caching. opts must already have passed
// ValidateForPlan.
//
// Grid addressing and wiring run once; each harness is then classified in
// its own goroutine on a private copy of the connection list. Results are
// stored by index so harness order always matches opts.Policies.
func BuildPlan(ctx context.Context, opts Options) (*plan.Plan, error) {
	panels, err := grid.Build(opts.Cols, opts.Rows)
	if err != nil {
		return nil, err
	}
	conns, err := wiring.Derive(panels, opts.Cols, opts.Rows)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	harnesses := make([]plan.Harness, len(opts.Policies))
	g, gctx := errgroup.WithContext(ctx)
	for i, hp := range opts.Policies {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			h, err := classify(slices.Clone(conns), hp)
			if err != nil {
				return err
			}
			harnesses[i] = h
			observability.Pipeline().OnClassify(gctx, string(hp.Harness), h.Counts.Small, h.Counts.Medium, h.Counts.Large)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p := plan.New(opts.Cols, opts.Rows, panels, conns)
	p.Harnesses = harnesses
	return p, nil
}

func classify(conns []wiring.Connection, hp plan.HarnessPolicy) (plan.Harness, error) {
	assignments, err := cable.Assign(conns, hp.Policy)
	if err != nil {
		return plan.Harness{}, fmt.Errorf("%s harness: %w", hp.Harness, err)
	}
	if err := cable.Validate(conns, hp.Policy, cable.Tally(assignments)); err != nil {
		return plan.Harness{}, fmt.Errorf("%s harness: %w", hp.Harness, err)
	}
	return plan.NewHarness(hp.Harness, hp.Policy, assignments), nil
}
