// Package server exposes the ledwire pipeline over HTTP.
//
// Routes:
//
//	GET /healthz                     liveness and build information
//	GET /api/v1/plan                 the plan document as JSON
//	GET /api/v1/diagram.{format}     a rendered artifact (svg, png, pdf, json, yaml, dot, chain.svg)
//	GET /metrics                     Prometheus exposition (when a registry is set)
//
// Plan and diagram endpoints accept the query parameters cols, rows, lan,
// power, feeds, numbers, scale and refresh. Parameters that are omitted fall
// back to the server's defaults, which normally come from the config file.
//
// Every response carries an X-Request-ID header. Validation failures are
// returned as 400 with a JSON body {"code": ..., "message": ...}.
package server

import (
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/ledwire/pkg/pipeline"
)

// shutdownTimeout bounds how long in-flight requests may drain on shutdown.
const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	// Runner executes the pipeline. Nil selects an uncached runner.
	Runner *pipeline.Runner

	// Defaults supplies values for omitted query parameters.
	Defaults pipeline.Options

	// Gatherer backs /metrics. Nil disables the route.
	Gatherer prometheus.Gatherer

	// Logger receives request logs. Nil discards them.
	Logger *log.Logger
}

// Server is the HTTP front end of the pipeline.
type Server struct {
	runner   *pipeline.Runner
	defaults pipeline.Options
	logger   *log.Logger
	router   chi.Router
}

// New builds a Server and its routes.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	runner := opts.Runner
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}

	s := &Server{
		runner:   runner,
		defaults: opts.Defaults,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/plan", s.handlePlan)
		r.Get("/diagram.{format}", s.handleDiagram)
	})
	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "no route for "+r.URL.Path)
	})

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
