// Package grid addresses the panels of a rectangular LED wall in serpentine
// (boustrophedon) order.
//
// # Overview
//
// A wall of cols x rows panels is wired as a single daisy chain that snakes
// through the array: the first row is visited left to right, the second right
// to left, and so on. Every panel receives two numbers:
//
//   - its ID, assigned row-major (row*cols + col + 1) and independent of wiring
//   - its Order, the 1-based position at which the chain reaches it
//
// The direction of a row depends only on the parity of its index, see
// [Direction]. There is no mutable "current direction" state.
//
// # Usage
//
//	panels, err := grid.Build(10, 4)
//	if err != nil {
//	    return err // INVALID_DIMENSIONS
//	}
//	for _, row := range grid.ByRow(panels) {
//	    // row is in visitation order
//	}
//
// # Display Coordinates
//
// Row 0 is the first wired row. Renderers that draw row 0 at the top of the
// picture must flip the row index with [Panel.DisplayRow] so every consumer
// agrees on which physical edge the chain starts from.
package grid
