// Package wiring derives the daisy-chain connections implied by a serpentine
// panel traversal.
//
// Each row contributes a Horizontal link between every pair of panels visited
// one after the other; each row change contributes one Vertical link from the
// last panel of row r to the first panel of row r+1. The result is a single
// Hamiltonian path through the wall, which is the physical chain the signal
// and power harnesses follow.
package wiring

import (
	"github.com/matzehuels/ledwire/pkg/core/grid"
	"github.com/matzehuels/ledwire/pkg/errors"
)

// Axis tells whether a connection stays in its row or jumps to the next one.
type Axis int

const (
	// Horizontal links two panels adjacent in traversal order within a row.
	Horizontal Axis = iota
	// Vertical is the row-transition hop between two rows.
	Vertical
)

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis is the inverse of [Axis.String].
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidPlan, "unknown axis %q", s)
}

// Connection is one cable link of the chain. From is always the panel visited
// earlier, To the one visited later.
type Connection struct {
	From grid.Panel
	To   grid.Panel
	Axis Axis
}

// Derive returns the connections of a serpentine chain in emission order:
// row 0's horizontal links, the vertical hop to row 1, row 1's horizontal
// links, and so on.
//
// panels must be a complete cols x rows wall as produced by [grid.Build], in
// any order. Anything else fails with INVALID_DIMENSIONS before a single
// connection is produced.
func Derive(panels []grid.Panel, cols, rows int) ([]Connection, error) {
	if err := validate(panels, cols, rows); err != nil {
		return nil, err
	}

	byRow := grid.ByRow(panels)
	conns := make([]Connection, 0, rows*(cols-1)+rows-1)
	for r, row := range byRow {
		for i := 1; i < len(row); i++ {
			conns = append(conns, Connection{From: row[i-1], To: row[i], Axis: Horizontal})
		}
		if r < rows-1 {
			next := byRow[r+1]
			conns = append(conns, Connection{From: row[len(row)-1], To: next[0], Axis: Vertical})
		}
	}
	return conns, nil
}

// validate checks that panels tile a cols x rows wall exactly once with
// contiguous serpentine orders.
func validate(panels []grid.Panel, cols, rows int) error {
	if err := errors.ValidateDimensions(cols, rows); err != nil {
		return err
	}
	if len(panels) != cols*rows {
		return errors.New(errors.ErrCodeInvalidDimensions,
			"expected %d panels for a %dx%d wall, got %d", cols*rows, cols, rows, len(panels))
	}

	seenCell := make(map[[2]int]bool, len(panels))
	seenOrder := make([]bool, len(panels)+1)
	for _, p := range panels {
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			return errors.New(errors.ErrCodeInvalidDimensions,
				"panel %d at (%d,%d) lies outside a %dx%d wall", p.ID, p.Row, p.Col, cols, rows)
		}
		cell := [2]int{p.Row, p.Col}
		if seenCell[cell] {
			return errors.New(errors.ErrCodeInvalidDimensions, "two panels occupy (%d,%d)", p.Row, p.Col)
		}
		seenCell[cell] = true

		if p.Order < 1 || p.Order > len(panels) || seenOrder[p.Order] {
			return errors.New(errors.ErrCodeInvalidDimensions, "panel %d has invalid order %d", p.ID, p.Order)
		}
		seenOrder[p.Order] = true
	}
	return nil
}
