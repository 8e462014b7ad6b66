package plan

import (
	"fmt"

	"github.com/matzehuels/ledwire/pkg/core/cable"
	"github.com/matzehuels/ledwire/pkg/core/grid"
	"github.com/matzehuels/ledwire/pkg/core/wiring"
	"github.com/matzehuels/ledwire/pkg/errors"
)

// Version is the plan document format version.
const Version = 1

// =============================================================================
// Types
// =============================================================================

// Plan is a computed cabling plan for one wall.
type Plan struct {
	Version     int          `json:"version" yaml:"version"`
	Cols        int          `json:"cols" yaml:"cols"`
	Rows        int          `json:"rows" yaml:"rows"`
	Panels      []grid.Panel `json:"panels" yaml:"panels"`
	Connections []Link       `json:"connections" yaml:"connections"`
	Harnesses   []Harness    `json:"harnesses" yaml:"harnesses"`
}

// Link is a serialised connection. From and To are panel ids.
type Link struct {
	From int    `json:"from" yaml:"from"`
	To   int    `json:"to" yaml:"to"`
	Axis string `json:"axis" yaml:"axis"`
}

// Harness is the classification of the chain under one harness policy.
type Harness struct {
	Name   cable.Harness   `json:"name" yaml:"name"`
	Policy cable.RunPolicy `json:"policy" yaml:"policy"`
	Counts cable.Counts    `json:"counts" yaml:"counts"`
	Cables []Cable         `json:"cables" yaml:"cables"`
}

// Cable is one physical cable of a harness.
type Cable struct {
	Tier   cable.Tier   `json:"tier" yaml:"tier"`
	Reason cable.Reason `json:"reason" yaml:"reason"`
	Link   int          `json:"link" yaml:"link"`   // 1-based link number, 0 for a feed
	Panel  int          `json:"panel" yaml:"panel"` // destination panel id, or the panel a feed leaves from
}

// IsFeed reports whether the cable is a trunk feed.
func (c Cable) IsFeed() bool { return c.Link == 0 }

// HarnessPolicy pairs a harness with the policy to classify it under.
type HarnessPolicy struct {
	Harness cable.Harness   `json:"harness" yaml:"harness"`
	Policy  cable.RunPolicy `json:"policy" yaml:"policy"`
}

// DefaultPolicies returns the built-in policy of every harness, in
// presentation order.
func DefaultPolicies() []HarnessPolicy {
	out := make([]HarnessPolicy, len(cable.Harnesses))
	for i, h := range cable.Harnesses {
		out[i] = HarnessPolicy{Harness: h, Policy: cable.DefaultPolicy(h)}
	}
	return out
}

// =============================================================================
// Construction
// =============================================================================

// New returns a plan holding the wall and its chain but no harnesses.
func New(cols, rows int, panels []grid.Panel, conns []wiring.Connection) *Plan {
	p := &Plan{
		Version:     Version,
		Cols:        cols,
		Rows:        rows,
		Panels:      append([]grid.Panel(nil), panels...),
		Connections: make([]Link, len(conns)),
		Harnesses:   []Harness{},
	}
	for i, c := range conns {
		p.Connections[i] = Link{From: c.From.ID, To: c.To.ID, Axis: c.Axis.String()}
	}
	return p
}

// AddHarness appends a harness built from its cable assignments. Assignments
// must come from the same connection list the plan was created from.
func (p *Plan) AddHarness(h cable.Harness, policy cable.RunPolicy, assignments []cable.Assignment) {
	p.Harnesses = append(p.Harnesses, NewHarness(h, policy, assignments))
}

// NewHarness converts cable assignments to their serialised form. Link
// numbers follow assignment order, which is connection order.
func NewHarness(h cable.Harness, policy cable.RunPolicy, assignments []cable.Assignment) Harness {
	out := Harness{
		Name:   h,
		Policy: policy,
		Counts: cable.Tally(assignments),
		Cables: make([]Cable, len(assignments)),
	}
	for i, a := range assignments {
		c := Cable{Tier: a.Tier, Reason: a.Reason, Panel: a.Panel.ID}
		if !a.IsFeed() {
			c.Link = i + 1
		}
		out.Cables[i] = c
	}
	return out
}

// Compute runs the planning core for a cols x rows wall and classifies the
// chain under every given harness policy, sequentially.
func Compute(cols, rows int, policies []HarnessPolicy) (*Plan, error) {
	panels, err := grid.Build(cols, rows)
	if err != nil {
		return nil, err
	}
	conns, err := wiring.Derive(panels, cols, rows)
	if err != nil {
		return nil, err
	}

	p := New(cols, rows, panels, conns)
	for _, hp := range policies {
		assignments, err := cable.Assign(conns, hp.Policy)
		if err != nil {
			return nil, fmt.Errorf("%s harness: %w", hp.Harness, err)
		}
		p.AddHarness(hp.Harness, hp.Policy, assignments)
	}
	return p, nil
}

// =============================================================================
// Queries
// =============================================================================

// Harness returns the entry for h.
func (p *Plan) Harness(h cable.Harness) (Harness, bool) {
	for _, entry := range p.Harnesses {
		if entry.Name == h {
			return entry, true
		}
	}
	return Harness{}, false
}

// Matrix returns the traversal orders laid out as rows of columns.
func (p *Plan) Matrix() [][]int {
	return grid.Matrix(p.Panels, p.Cols, p.Rows)
}

// PanelByID returns the panel with the given id.
func (p *Plan) PanelByID(id int) (grid.Panel, bool) {
	i := id - 1
	if i >= 0 && i < len(p.Panels) && p.Panels[i].ID == id {
		return p.Panels[i], true
	}
	for _, panel := range p.Panels {
		if panel.ID == id {
			return panel, true
		}
	}
	return grid.Panel{}, false
}

// Core converts the plan back into core values. Panels are returned in the
// order they were stored; connections are resolved from panel ids.
func (p *Plan) Core() ([]grid.Panel, []wiring.Connection, error) {
	conns := make([]wiring.Connection, len(p.Connections))
	for i, l := range p.Connections {
		from, ok := p.PanelByID(l.From)
		if !ok {
			return nil, nil, errors.New(errors.ErrCodeInvalidPlan, "link %d: unknown panel %d", i+1, l.From)
		}
		to, ok := p.PanelByID(l.To)
		if !ok {
			return nil, nil, errors.New(errors.ErrCodeInvalidPlan, "link %d: unknown panel %d", i+1, l.To)
		}
		axis, err := wiring.ParseAxis(l.Axis)
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidPlan, err, "link %d", i+1)
		}
		conns[i] = wiring.Connection{From: from, To: to, Axis: axis}
	}
	return append([]grid.Panel(nil), p.Panels...), conns, nil
}

// Validate checks that a plan, typically one read from disk, is internally
// consistent: the chain matches the wall and every harness's counts tally
// its cables. Failures carry INVALID_PLAN.
func (p *Plan) Validate() error {
	if p.Version != Version {
		return errors.New(errors.ErrCodeInvalidPlan, "unsupported plan version %d", p.Version)
	}
	if err := errors.ValidateDimensions(p.Cols, p.Rows); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPlan, err, "plan dimensions")
	}

	panels, conns, err := p.Core()
	if err != nil {
		return err
	}
	derived, err := wiring.Derive(panels, p.Cols, p.Rows)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPlan, err, "plan panels")
	}
	if len(derived) != len(conns) {
		return errors.New(errors.ErrCodeInvalidPlan, "plan has %d links, wall needs %d", len(conns), len(derived))
	}
	for i := range derived {
		if derived[i] != conns[i] {
			return errors.New(errors.ErrCodeInvalidPlan, "link %d does not follow the serpentine chain", i+1)
		}
	}

	for _, h := range p.Harnesses {
		if err := h.validate(len(conns)); err != nil {
			return err
		}
	}
	return nil
}

func (h Harness) validate(links int) error {
	if err := h.Policy.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPlan, err, "%s harness", h.Name)
	}
	var tally cable.Counts
	feeds := 0
	for _, c := range h.Cables {
		if c.Link < 0 || c.Link > links {
			return errors.New(errors.ErrCodeInvalidPlan, "%s harness: cable refers to link %d of %d", h.Name, c.Link, links)
		}
		if c.IsFeed() {
			feeds++
		}
		switch c.Tier {
		case cable.Small:
			tally.Small++
		case cable.Medium:
			tally.Medium++
		case cable.Large:
			tally.Large++
		default:
			return errors.New(errors.ErrCodeInvalidPlan, "%s harness: unknown tier %q", h.Name, c.Tier)
		}
	}
	if tally != h.Counts {
		return errors.New(errors.ErrCodeInvalidPlan, "%s harness: counts %+v do not match cables %+v", h.Name, h.Counts, tally)
	}
	if feeds != h.Policy.Feeds() || len(h.Cables)-feeds != links {
		return errors.New(errors.ErrCodeInvalidPlan, "%s harness: %d cables for %d links and %d feeds",
			h.Name, len(h.Cables), links, h.Policy.Feeds())
	}
	return nil
}
