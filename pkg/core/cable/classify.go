package cable

import (
	"github.com/matzehuels/ledwire/pkg/core/grid"
	"github.com/matzehuels/ledwire/pkg/core/wiring"
	"github.com/matzehuels/ledwire/pkg/errors"
)

// Tier is a physical cable size class.
type Tier string

const (
	Small  Tier = "small"
	Medium Tier = "medium"
	Large  Tier = "large"
)

// Tiers lists the tiers from shortest to longest cable.
var Tiers = []Tier{Small, Medium, Large}

// Reason records why a cable landed in its tier.
type Reason string

const (
	ReasonInRow       Reason = "in_row"       // horizontal link inside a run
	ReasonRowChange   Reason = "row_change"   // vertical hop
	ReasonRunBoundary Reason = "run_boundary" // horizontal link replaced at the end of a run
	ReasonTrunkFeed   Reason = "trunk_feed"   // feed from the last panel back to the source
)

// Assignment is one physical cable. Feed cables have no connection; their
// Panel is the last panel of the chain the trunk returns from.
type Assignment struct {
	Tier       Tier
	Reason     Reason
	Connection *wiring.Connection
	Panel      grid.Panel
}

// IsFeed reports whether the assignment is a trunk feed rather than a link.
func (a Assignment) IsFeed() bool { return a.Connection == nil }

// Counts is the number of cables per tier for one harness.
type Counts struct {
	Small  int `json:"small" yaml:"small"`
	Medium int `json:"medium" yaml:"medium"`
	Large  int `json:"large" yaml:"large"`
}

// Total returns the number of cables of all tiers.
func (c Counts) Total() int { return c.Small + c.Medium + c.Large }

// Get returns the count of a single tier.
func (c Counts) Get(t Tier) int {
	switch t {
	case Small:
		return c.Small
	case Medium:
		return c.Medium
	case Large:
		return c.Large
	}
	return 0
}

// Map returns the counts keyed by tier name.
func (c Counts) Map() map[Tier]int {
	return map[Tier]int{Small: c.Small, Medium: c.Medium, Large: c.Large}
}

func (c *Counts) add(t Tier) {
	switch t {
	case Small:
		c.Small++
	case Medium:
		c.Medium++
	case Large:
		c.Large++
	}
}

// Classify returns the per-tier cable counts of conns under policy p.
// It fails with INVALID_POLICY before counting anything when p is invalid.
func Classify(conns []wiring.Connection, p RunPolicy) (Counts, error) {
	assignments, err := Assign(conns, p)
	if err != nil {
		return Counts{}, err
	}
	return Tally(assignments), nil
}

// Assign returns one assignment per connection, in connection order, followed
// by the policy's feed cables.
func Assign(conns []wiring.Connection, p RunPolicy) ([]Assignment, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := make([]Assignment, 0, len(conns)+p.Feeds())
	for i := range conns {
		c := &conns[i]
		tier, reason := classifyOne(*c, p)
		out = append(out, Assignment{Tier: tier, Reason: reason, Connection: c, Panel: c.To})
	}

	var last grid.Panel
	if len(conns) > 0 {
		last = conns[len(conns)-1].To
	} else {
		// A single-panel wall has no links; its only panel is both ends of the chain.
		last = grid.Panel{ID: 1, Order: 1}
	}
	for i := 0; i < p.Feeds(); i++ {
		out = append(out, Assignment{Tier: Large, Reason: ReasonTrunkFeed, Panel: last})
	}
	return out, nil
}

// Tally counts assignments per tier.
func Tally(assignments []Assignment) Counts {
	var c Counts
	for _, a := range assignments {
		c.add(a.Tier)
	}
	return c
}

// classifyOne applies the tier rules to a single link. Link k of the chain
// runs from order k to order k+1, so a run of L panels ends on the link whose
// source order is a multiple of L. Vertical wins over a run boundary.
func classifyOne(c wiring.Connection, p RunPolicy) (Tier, Reason) {
	if c.Axis == wiring.Vertical {
		return Medium, ReasonRowChange
	}
	if p.isBoundary(c.From.Order) {
		return Large, ReasonRunBoundary
	}
	return Small, ReasonInRow
}

// Validate checks a result against the conservation rule: every connection
// and every feed is counted exactly once.
func Validate(conns []wiring.Connection, p RunPolicy, c Counts) error {
	if want := len(conns) + p.Feeds(); c.Total() != want {
		return errors.New(errors.ErrCodeInternal,
			"cable counts %+v account for %d cables, want %d", c, c.Total(), want)
	}
	return nil
}
