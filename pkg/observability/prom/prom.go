// Package prom implements the observability hooks with Prometheus collectors.
package prom

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/ledwire/pkg/observability"
)

// Metrics holds every ledwire collector, registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	PlansTotal      *prometheus.CounterVec
	PlanDuration    prometheus.Histogram
	PanelsPlanned   prometheus.Histogram
	CablesPlanned   *prometheus.CounterVec
	RendersTotal    *prometheus.CounterVec
	RenderDuration  prometheus.Histogram
	CacheOperations *prometheus.CounterVec
	CacheBytes      *prometheus.CounterVec

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
}

// New creates the collectors on reg. A nil reg gets a fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		PlansTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledwire_plans_total",
				Help: "Total number of computed cabling plans",
			},
			[]string{"status"},
		),
		PlanDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledwire_plan_duration_seconds",
				Help:    "Time to address, wire and classify a wall",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
			},
		),
		PanelsPlanned: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledwire_plan_panels",
				Help:    "Number of panels per planned wall",
				Buckets: []float64{1, 4, 10, 25, 50, 100, 200},
			},
		),
		CablesPlanned: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledwire_cables_planned_total",
				Help: "Cables planned, by harness and tier",
			},
			[]string{"harness", "tier"},
		),
		RendersTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledwire_renders_total",
				Help: "Total number of render stage runs",
			},
			[]string{"status"},
		),
		RenderDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledwire_render_duration_seconds",
				Help:    "Render stage latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		CacheOperations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledwire_cache_operations_total",
				Help: "Cache lookups and writes, by key type and result",
			},
			[]string{"type", "result"},
		),
		CacheBytes: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledwire_cache_written_bytes_total",
				Help: "Bytes written to the cache, by key type",
			},
			[]string{"type"},
		),

		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledwire_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledwire_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPRequestsInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledwire_http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
		),
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Install registers m as the pipeline, cache and HTTP hooks.
func (m *Metrics) Install() {
	observability.SetPipelineHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// =============================================================================
// observability.PipelineHooks
// =============================================================================

func (m *Metrics) OnPlanStart(context.Context, int, int) {}

func (m *Metrics) OnPlanComplete(_ context.Context, cols, rows int, d time.Duration, err error) {
	m.PlansTotal.WithLabelValues(status(err)).Inc()
	if err == nil {
		m.PlanDuration.Observe(d.Seconds())
		m.PanelsPlanned.Observe(float64(cols * rows))
	}
}

func (m *Metrics) OnClassify(_ context.Context, harness string, small, medium, large int) {
	m.CablesPlanned.WithLabelValues(harness, "small").Add(float64(small))
	m.CablesPlanned.WithLabelValues(harness, "medium").Add(float64(medium))
	m.CablesPlanned.WithLabelValues(harness, "large").Add(float64(large))
}

func (m *Metrics) OnRenderStart(context.Context, []string) {}

func (m *Metrics) OnRenderComplete(_ context.Context, _ []string, d time.Duration, err error) {
	m.RendersTotal.WithLabelValues(status(err)).Inc()
	m.RenderDuration.Observe(d.Seconds())
}

// =============================================================================
// observability.CacheHooks
// =============================================================================

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.CacheOperations.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.CacheOperations.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.CacheOperations.WithLabelValues(keyType, "set").Inc()
	m.CacheBytes.WithLabelValues(keyType).Add(float64(size))
}

// =============================================================================
// observability.HTTPHooks
// =============================================================================

func (m *Metrics) OnRequest(context.Context, string, string) {
	m.HTTPRequestsInFlight.Inc()
}

func (m *Metrics) OnResponse(_ context.Context, method, route string, code int, d time.Duration) {
	m.HTTPRequestsInFlight.Dec()
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ observability.PipelineHooks = (*Metrics)(nil)
	_ observability.CacheHooks    = (*Metrics)(nil)
	_ observability.HTTPHooks     = (*Metrics)(nil)
)
