package cache

import (
	"fmt"
	"strings"
)

// Key prefixes, also used as the key type reported to observability hooks.
const (
	KeyTypePlan     = "plan"
	KeyTypeArtifact = "artifact"
)

// Keyer builds cache keys for pipeline stages.
type Keyer interface {
	// PlanKey returns the key of a computed plan.
	PlanKey(opts PlanKeyOpts) string

	// ArtifactKey returns the key of one rendered artifact of a plan.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// PlanKeyOpts holds everything a plan depends on.
type PlanKeyOpts struct {
	Cols     int
	Rows     int
	Policies []string // one "harness:policy" entry per harness, in order
}

// ArtifactKeyOpts holds the render settings an artifact depends on.
type ArtifactKeyOpts struct {
	Format      string
	ShowNumbers bool
	Scale       float64
}

// DefaultKeyer is the standard [Keyer]. Keys have the form "type:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PlanKey hashes the grid size and harness policies.
func (DefaultKeyer) PlanKey(opts PlanKeyOpts) string {
	return hashKey(KeyTypePlan, opts.Cols, opts.Rows, strings.Join(opts.Policies, ";"))
}

// ArtifactKey hashes the plan hash together with the render settings.
func (DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey(KeyTypeArtifact, planHash, opts.Format, opts.ShowNumbers, fmt.Sprintf("%.3f", opts.Scale))
}

// KeyType returns the prefix of a key up to the first colon, skipping any
// scope prefix added by [ScopedKeyer].
func KeyType(key string) string {
	for _, t := range []string{KeyTypePlan, KeyTypeArtifact} {
		if strings.HasPrefix(key, t+":") || strings.Contains(key, ":"+t+":") {
			return t
		}
	}
	return "unknown"
}
