package cable

import (
	"fmt"
	"strings"

	"github.com/matzehuels/ledwire/pkg/errors"
)

// Harness names an independent cabling system laid along the same chain.
type Harness string

const (
	// LAN is the data harness fed from a network switch.
	LAN Harness = "lan"
	// Power is the power harness fed from a distribution box.
	Power Harness = "power"
)

// Harnesses lists every known harness in presentation order.
var Harnesses = []Harness{LAN, Power}

// Default run lengths: a LAN run carries 11 panels, a power run 5.
const (
	DefaultLANRunLength   = 11
	DefaultPowerRunLength = 5

	// DefaultFeedPoints is the number of trunk cables per harness when a
	// policy leaves FeedPoints at zero.
	DefaultFeedPoints = 1
)

// Title returns a display name for the harness ("LAN", "Power").
func (h Harness) Title() string {
	switch h {
	case LAN:
		return "LAN"
	case Power:
		return "Power"
	}
	return string(h)
}

// ParseHarness parses a harness name case-insensitively.
func ParseHarness(s string) (Harness, error) {
	switch Harness(strings.ToLower(strings.TrimSpace(s))) {
	case LAN:
		return LAN, nil
	case Power:
		return Power, nil
	}
	return "", errors.New(errors.ErrCodeInvalidHarness, "unknown harness %q (must be 'lan' or 'power')", s)
}

// RunPolicy is a harness's grouping rule.
type RunPolicy struct {
	// MaxRunLength is the number of panels per run. Nil means the harness is
	// never broken into runs.
	MaxRunLength *int `json:"max_run_length,omitempty" yaml:"max_run_length,omitempty" toml:"max_run_length,omitempty"`

	// FeedPoints is the number of trunk feed cables required regardless of
	// grid size. Zero selects DefaultFeedPoints.
	FeedPoints int `json:"feed_points,omitempty" yaml:"feed_points,omitempty" toml:"feed_points,omitempty"`
}

// RunLength returns a pointer to n, for building policies inline:
//
//	cable.RunPolicy{MaxRunLength: cable.RunLength(11)}
func RunLength(n int) *int { return &n }

// Unbounded is the policy with no run grouping and a single feed.
func Unbounded() RunPolicy { return RunPolicy{} }

// DefaultPolicy returns the built-in policy of a harness. Unknown harnesses
// get [Unbounded].
func DefaultPolicy(h Harness) RunPolicy {
	switch h {
	case LAN:
		return RunPolicy{MaxRunLength: RunLength(DefaultLANRunLength)}
	case Power:
		return RunPolicy{MaxRunLength: RunLength(DefaultPowerRunLength)}
	}
	return Unbounded()
}

// Validate rejects non-positive run lengths and negative feed counts with
// INVALID_POLICY.
func (p RunPolicy) Validate() error {
	if p.MaxRunLength != nil {
		if err := errors.ValidateRunLength(*p.MaxRunLength); err != nil {
			return err
		}
	}
	return errors.ValidateFeedPoints(p.FeedPoints)
}

// Feeds returns the effective number of trunk feed cables.
func (p RunPolicy) Feeds() int {
	if p.FeedPoints == 0 {
		return DefaultFeedPoints
	}
	return p.FeedPoints
}

// Bounded reports whether the policy splits the chain into runs.
func (p RunPolicy) Bounded() bool { return p.MaxRunLength != nil }

// String renders the policy for logs, e.g. "run=11 feeds=1" or "run=none feeds=1".
func (p RunPolicy) String() string {
	run := "none"
	if p.MaxRunLength != nil {
		run = fmt.Sprint(*p.MaxRunLength)
	}
	return fmt.Sprintf("run=%s feeds=%d", run, p.Feeds())
}

// isBoundary reports whether order ends a run under p.
func (p RunPolicy) isBoundary(order int) bool {
	return p.MaxRunLength != nil && order%*p.MaxRunLength == 0
}
