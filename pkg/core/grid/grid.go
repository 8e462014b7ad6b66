package grid

import (
	"github.com/matzehuels/ledwire/pkg/errors"
)

// MaxRows is the tallest wall the planner accepts.
const MaxRows = errors.MaxRows

// Heading is the column-visitation direction of a row.
type Heading int

const (
	// LeftToRight visits columns 0..cols-1.
	LeftToRight Heading = iota
	// RightToLeft visits columns cols-1..0.
	RightToLeft
)

// String returns "ltr" or "rtl".
func (h Heading) String() string {
	if h == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// Direction returns the visitation direction of row r: even rows run left to
// right, odd rows right to left.
func Direction(row int) Heading {
	if row%2 == 0 {
		return LeftToRight
	}
	return RightToLeft
}

// Panel is one LED panel of the wall. Panels are immutable values.
type Panel struct {
	ID    int `json:"id" yaml:"id"`       // row*cols + col + 1
	Row   int `json:"row" yaml:"row"`     // 0 = first wired row
	Col   int `json:"col" yaml:"col"`     // 0 = leftmost column
	Order int `json:"order" yaml:"order"` // 1-based position in the chain
}

// DisplayRow returns the row index flipped for drawing, so that row 0 lands
// at the top of a picture whose y axis grows upwards.
func (p Panel) DisplayRow(rows int) int {
	return rows - 1 - p.Row
}

// PanelID returns the row-major identity of the panel at (row, col).
func PanelID(cols, row, col int) int {
	return row*cols + col + 1
}

// Build returns the cols*rows panels of a wall in traversal order, so that
// panels[i].Order == i+1.
//
// It fails with INVALID_DIMENSIONS when cols < 1 or rows is outside
// [1, MaxRows]. No partial result is returned on error.
func Build(cols, rows int) ([]Panel, error) {
	if err := errors.ValidateDimensions(cols, rows); err != nil {
		return nil, err
	}

	panels := make([]Panel, 0, cols*rows)
	order := 1
	for r := 0; r < rows; r++ {
		for _, c := range columns(cols, Direction(r)) {
			panels = append(panels, Panel{
				ID:    PanelID(cols, r, c),
				Row:   r,
				Col:   c,
				Order: order,
			})
			order++
		}
	}
	return panels, nil
}

// columns lists column indices in the order a row with heading h visits them.
func columns(cols int, h Heading) []int {
	out := make([]int, cols)
	for i := range out {
		if h == LeftToRight {
			out[i] = i
		} else {
			out[i] = cols - 1 - i
		}
	}
	return out
}
