package grid

import (
	"cmp"
	"slices"
)

// ByRow groups panels by row, each row sorted by Order. The outer slice is
// indexed by row; rows without panels are empty. The input is not modified.
func ByRow(panels []Panel) [][]Panel {
	rowCount := 0
	for _, p := range panels {
		if p.Row+1 > rowCount {
			rowCount = p.Row + 1
		}
	}

	out := make([][]Panel, rowCount)
	for _, p := range panels {
		if p.Row < 0 {
			continue
		}
		out[p.Row] = append(out[p.Row], p)
	}
	for _, row := range out {
		slices.SortFunc(row, func(a, b Panel) int { return cmp.Compare(a.Order, b.Order) })
	}
	return out
}

// At returns the panel at (row, col) and whether it exists.
func At(panels []Panel, row, col int) (Panel, bool) {
	for _, p := range panels {
		if p.Row == row && p.Col == col {
			return p, true
		}
	}
	return Panel{}, false
}

// Matrix lays the panels out as a [row][col] table of orders, with 0 where no
// panel exists. It is used for text rendering of the chain.
func Matrix(panels []Panel, cols, rows int) [][]int {
	m := make([][]int, rows)
	for r := range m {
		m[r] = make([]int, cols)
	}
	for _, p := range panels {
		if p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols {
			m[p.Row][p.Col] = p.Order
		}
	}
	return m
}
