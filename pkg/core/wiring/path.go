package wiring

import "github.com/matzehuels/ledwire/pkg/core/grid"

// Count reports how many horizontal and vertical connections conns holds.
func Count(conns []Connection) (horizontal, vertical int) {
	for _, c := range conns {
		if c.Axis == Vertical {
			vertical++
		} else {
			horizontal++
		}
	}
	return horizontal, vertical
}

// Expected returns the connection totals of a fully populated cols x rows
// wall: rows*(cols-1) horizontal and rows-1 vertical.
func Expected(cols, rows int) (horizontal, vertical int) {
	return rows * (cols - 1), rows - 1
}

// Path replays conns from -> to and returns the panels in the order the chain
// reaches them. The first panel is the From of the first connection. A chain
// that breaks (a connection not starting where the previous one ended) stops
// the replay and ok is false.
func Path(conns []Connection) (path []grid.Panel, ok bool) {
	if len(conns) == 0 {
		return nil, true
	}
	path = make([]grid.Panel, 0, len(conns)+1)
	path = append(path, conns[0].From)
	for _, c := range conns {
		if c.From.ID != path[len(path)-1].ID {
			return path, false
		}
		path = append(path, c.To)
	}
	return path, true
}

// Last returns the final panel of the chain, the one the trunk feed returns
// from. For a single-panel wall there are no connections and ok is false.
func Last(conns []Connection) (grid.Panel, bool) {
	if len(conns) == 0 {
		return grid.Panel{}, false
	}
	return conns[len(conns)-1].To, true
}
