package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ledwire/pkg/observability/prom"
	"github.com/matzehuels/ledwire/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve plans and diagrams over HTTP",
		Long: `Serve plans and diagrams over HTTP.

Endpoints:
  GET /healthz
  GET /api/v1/plan?cols=10&rows=4&lan=11&power=5&feeds=1
  GET /api/v1/diagram.svg?cols=10&rows=4&numbers=true&scale=1
  GET /metrics

Defaults for omitted parameters come from the config file. The server
stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.config.Server.Addr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	metrics := prom.New(nil)
	metrics.Install()

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv := server.New(server.Options{
		Runner:   runner,
		Defaults: c.baseOptions(),
		Gatherer: metrics.Registry(),
		Logger:   c.Logger,
	})

	printInfo("Serving on %s", StyleValue.Render(addr))
	printDetail("Metrics: %s/metrics", addr)
	return srv.ListenAndServe(ctx, addr)
}
