// Package diagram draws cabling plans as SVG wiring diagrams.
//
// One figure is drawn per harness. Each figure shows the wall as a grid of
// portrait panels (0.6 x 1.0) with the first wired row at the top, the chain
// of links between panel centres coloured by cable tier, the trunk feeds
// leaving the last panel towards the source, and a legend with the tier
// counts.
//
//	p, _ := plan.Compute(10, 4, plan.DefaultPolicies())
//	svg, err := diagram.RenderSVG(p, diagram.WithNumbers(true), diagram.WithScale(1.5))
//
// Run-boundary links are dashed so that the points where a run is re-fed
// stand out from ordinary in-row jumpers.
package diagram
