// Package nodelink renders the daisy chain of a cabling plan as a
// node-link diagram.
//
// # Overview
//
// Panels become boxes and links become arrows, one Graphviz rank per panel
// row. It's an alternative to the wiring diagram for checking the chain
// itself: the direction of every hop and where each run is re-fed.
//
// # Usage
//
// Convert a plan to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(p, nodelink.Options{Harness: cable.LAN})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Harness: colour edges by that harness's cable tiers and draw its feeds
//   - Detailed: label panels with id and grid position as well as order
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no external tools are needed.
package nodelink
