// Package render provides diagram output for cabling plans.
//
// # Overview
//
// Rendering is a stateless collaborator of the planning core: it reads a
// computed plan and never feeds anything back. This package provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Wiring diagrams, one panel grid per harness (in [diagram] subpackage)
//   - Graphviz views of the daisy chain (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both renderers use them.
//
//	svg, err := diagram.RenderSVG(p, diagram.WithNumbers(true))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the chain as a directed graph with one
// rank per panel row, edges coloured by cable tier.
//
//	dot := nodelink.ToDOT(p, nodelink.Options{Harness: cable.Power})
//	svg, err := nodelink.RenderSVG(dot)
//
// [diagram]: github.com/matzehuels/ledwire/pkg/render/diagram
// [nodelink]: github.com/matzehuels/ledwire/pkg/render/nodelink
package render
