// Package pkg provides the libraries behind ledwire, a cabling planner for
// serpentine LED panel walls.
//
// # Overview
//
// A wall of cols x rows panels is daisy-chained in a serpentine: the bottom
// row left to right, the next row right to left, and so on. Each harness
// (LAN and power) follows the same chain. ledwire counts the cables each
// harness needs in three tiers: small jumpers between neighbours in a row,
// medium cables between rows, and large cables that close a run or feed the
// chain from its source.
//
// The pkg directory is organized into four main areas:
//
//  1. [core] - The planning core (grid addressing, chain derivation, cable classification)
//  2. [plan] - The serialisable plan document
//  3. [pipeline] - Orchestration (plan → render) with caching
//  4. [render] - Diagram output (SVG, PNG, PDF, DOT)
//
// # Architecture
//
// The typical data flow through ledwire:
//
//	cols, rows, harness policies
//	         ↓
//	    [core/grid] package (serpentine panel sequence)
//	         ↓
//	    [core/wiring] package (Hamiltonian chain of connections)
//	         ↓
//	    [core/cable] package (small / medium / large per harness)
//	         ↓
//	    [plan] package (plan document)
//	         ↓
//	    SVG/PNG/PDF/JSON/YAML/DOT output
//
// # Quick Start
//
// Count the cables of the reference 10 x 4 wall:
//
//	import (
//	    "github.com/matzehuels/ledwire/pkg/core/cable"
//	    "github.com/matzehuels/ledwire/pkg/core/grid"
//	    "github.com/matzehuels/ledwire/pkg/core/wiring"
//	)
//
//	panels, _ := grid.Build(10, 4)
//	conns, _ := wiring.Derive(panels, 10, 4)
//	counts, _ := cable.Classify(conns, cable.DefaultPolicy(cable.LAN))
//	// counts: small=33 medium=3 large=4
//
// # Main Packages
//
// ## Planning Core
//
// [core/grid] - Assigns every panel its row, column and position in the
// chain. Rows are limited to four; columns are unbounded.
//
// [core/wiring] - Derives the connection list from the panel sequence and
// checks that it forms one continuous path.
//
// [core/cable] - Classifies connections under a run policy. The policy sets
// how many panels share a run and how many feed cables a harness gets.
//
// ## Documents and Orchestration
//
// [plan] - The plan document (panels, links, one entry per harness with its
// cables and counts) with JSON and YAML encodings and consistency checks.
//
// [pipeline] - The plan → render pipeline shared by the CLI and the HTTP
// server. Harnesses are classified concurrently.
//
// [config] - TOML/YAML configuration file handling.
//
// [server] - HTTP API over the pipeline.
//
// ## Visualization
//
// [render/diagram] - Wiring diagrams drawn as SVG, one wall per harness.
//
// [render/nodelink] - The chain as a Graphviz graph.
//
// [render] - Format conversion (SVG to PDF/PNG).
//
// ## Infrastructure
//
// [cache] - File, Redis and null caches for plans and artifacts.
//
// [observability] - Hook registry for pipeline, cache and HTTP events, with a
// Prometheus implementation in [observability/prom].
//
// [errors] - Structured error codes shared by every layer.
//
// [core]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/core
// [core/grid]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/core/grid
// [core/wiring]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/core/wiring
// [core/cable]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/core/cable
// [plan]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/plan
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/server
// [render]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/render
// [render/diagram]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/render/diagram
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/observability
// [observability/prom]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/observability/prom
// [errors]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/errors
package pkg
