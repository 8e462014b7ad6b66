package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ledwire/pkg/cache"
	"github.com/matzehuels/ledwire/pkg/observability"
	"github.com/matzehuels/ledwire/pkg/plan"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete plan → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	if opts.WideWall() {
		r.Logger.Warn("wall is wider than diagrams are designed for",
			"cols", opts.Cols, "recommended_max", RecommendedMaxCols)
	}

	result := &Result{}

	// Stage 1: Plan
	planStart := time.Now()
	p, planHit, err := r.PlanWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	result.Plan = p
	result.Stats.PlanTime = time.Since(planStart)
	result.Stats.Panels = len(p.Panels)
	result.Stats.Connections = len(p.Connections)
	result.CacheInfo.PlanHit = planHit

	if data, err := plan.Marshal(p, plan.EncodingJSON); err == nil {
		result.PlanHash = cache.Hash(data)
	}

	for _, h := range p.Harnesses {
		r.Logger.Debug("classified harness",
			"harness", h.Name,
			"policy", h.Policy.String(),
			"small", h.Counts.Small,
			"medium", h.Counts.Medium,
			"large", h.Counts.Large)
	}
	r.Logger.Info("computed plan",
		"cols", p.Cols,
		"rows", p.Rows,
		"links", len(p.Connections),
		"cached", planHit,
		"duration", result.Stats.PlanTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, p, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// PlanWithCacheInfo computes a plan with caching and returns cache hit info.
func (r *Runner) PlanWithCacheInfo(ctx context.Context, opts Options) (p *plan.Plan, hit bool, err error) {
	if err := opts.ValidateForPlan(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnPlanStart(ctx, opts.Cols, opts.Rows)
	defer func() {
		observability.Pipeline().OnPlanComplete(ctx, opts.Cols, opts.Rows, time.Since(start), err)
	}()

	cacheKey := r.Keyer.PlanKey(opts.PlanKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := plan.Unmarshal(data, plan.EncodingJSON)
			if err == nil {
				return cached, true, nil
			}
			r.Logger.Debug("discarding unreadable cached plan", "error", err)
		}
	}

	p, err = BuildPlan(ctx, opts)
	if err != nil {
		return nil, false, err
	}

	if data, err := plan.Marshal(p, plan.EncodingJSON); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLPlan); err != nil {
			r.Logger.Debug("cache write failed", "key", cacheKey, "error", err)
		}
	}

	return p, false, nil
}

// Plan is a convenience wrapper that calls PlanWithCacheInfo and discards the cache hit info.
func (r *Runner) Plan(ctx context.Context, opts Options) (*plan.Plan, error) {
	p, _, err := r.PlanWithCacheInfo(ctx, opts)
	return p, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p *plan.Plan, opts Options) (artifacts map[string][]byte, hit bool, err error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	defer func() {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	planData, err := plan.Marshal(p, plan.EncodingJSON)
	if err != nil {
		return nil, false, fmt.Errorf("serialize plan for cache key: %w", err)
	}
	planHash := cache.Hash(planData)

	// Try to get all formats from cache
	artifacts = make(map[string][]byte, len(opts.Formats))
	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, cacheKey)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	rendered, err := Render(p, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err != nil {
			r.Logger.Debug("cache write failed", "key", cacheKey, "error", err)
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, p *plan.Plan, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, p, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
