// Package pipeline provides the plan -> render pipeline for ledwire.
//
// This package implements the complete pipeline that the CLI and the HTTP
// server share. By centralizing this logic, both entry points validate,
// default, cache and log in exactly the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Plan: address the grid, derive the chain and classify it under every
//     harness policy (harnesses are classified concurrently)
//  2. Render: produce artifacts (SVG, PNG, PDF, JSON, YAML, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Cols:    10,
//	    Rows:    4,
//	    Formats: []string{"svg", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	p, err := runner.Plan(ctx, opts)
//	artifacts, err := runner.Render(ctx, p, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ledwire/pkg/cache"
	"github.com/matzehuels/ledwire/pkg/core/cable"
	"github.com/matzehuels/ledwire/pkg/errors"
	"github.com/matzehuels/ledwire/pkg/plan"
	"github.com/matzehuels/ledwire/pkg/render/diagram"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultCols and DefaultRows describe the reference 10 x 4 wall.
	DefaultCols = 10
	DefaultRows = 4

	// RecommendedMaxCols is the widest wall the diagrams stay legible for.
	// Wider walls are planned but logged with a warning.
	RecommendedMaxCols = 50

	// DefaultScale is the default diagram scale.
	DefaultScale = diagram.DefaultScale

	// pngScale is the resolution multiplier of PNG output.
	pngScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatDOT  = "dot"

	// FormatChain is the Graphviz layout of the daisy chain as SVG.
	FormatChain = "chain.svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatYAML: true,
	FormatDOT:  true,

	FormatChain: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Plan options
	Cols     int                  `json:"cols"`
	Rows     int                  `json:"rows"`
	Policies []plan.HarnessPolicy `json:"policies,omitempty"` // empty selects every harness's default
	Refresh  bool                 `json:"refresh,omitempty"`  // skip cache lookups

	// Render options
	Formats     []string `json:"formats,omitempty"`
	HideNumbers bool     `json:"hide_numbers,omitempty"` // order numbers are drawn unless set
	Scale       float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Plan is the computed cabling plan.
	Plan *plan.Plan

	// PlanHash is the content hash of the plan's JSON encoding.
	PlanHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Panels      int
	Connections int
	PlanTime    time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	PlanHit   bool // Whether the plan came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, yaml, dot, chain.svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePolicies checks every policy and rejects a harness listed twice.
func ValidatePolicies(policies []plan.HarnessPolicy) error {
	seen := make(map[cable.Harness]bool, len(policies))
	for _, hp := range policies {
		if _, err := cable.ParseHarness(string(hp.Harness)); err != nil {
			return err
		}
		if seen[hp.Harness] {
			return errors.New(errors.ErrCodeInvalidHarness, "harness %q listed twice", hp.Harness)
		}
		seen[hp.Harness] = true
		if err := hp.Policy.Validate(); err != nil {
			return fmt.Errorf("%s harness: %w", hp.Harness, err)
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForPlan(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForPlan checks the grid size and harness policies and fills in
// default policies. Nothing is computed when it fails.
func (o *Options) ValidateForPlan() error {
	if err := errors.ValidateDimensions(o.Cols, o.Rows); err != nil {
		return err
	}
	if len(o.Policies) == 0 {
		o.Policies = plan.DefaultPolicies()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return ValidatePolicies(o.Policies)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return diagram.ValidateScale(o.Scale)
}

// WideWall reports whether the wall is wider than the diagrams are designed for.
func (o *Options) WideWall() bool {
	return o.Cols > RecommendedMaxCols
}

// PlanKeyOpts returns cache key options for the plan stage.
func (o *Options) PlanKeyOpts() cache.PlanKeyOpts {
	policies := make([]string, len(o.Policies))
	for i, hp := range o.Policies {
		policies[i] = string(hp.Harness) + ":" + hp.Policy.String()
	}
	return cache.PlanKeyOpts{Cols: o.Cols, Rows: o.Rows, Policies: policies}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		ShowNumbers: !o.HideNumbers,
		Scale:       o.Scale,
	}
}
