package router

import (
	"github.com/katalvlaran/nlsat/geom"
	"github.com/katalvlaran/nlsat/graph"
	"github.com/katalvlaran/nlsat/problem"
)

// slotCount is the number of adjacency slots a cell can have: the six
// cardinal directions plus two synthetic via-column slots (up/down within
// the same via, adc2016 only). Cardinal slot ids match graph.Direction's
// numbering; viaUp/viaDown are reserved beyond it.
const (
	viaUp     = 6
	viaDown   = 7
	slotCount = 8
)

// oppositeSlot returns the slot a move back along step s would occupy.
func oppositeSlot(s int) int {
	switch s {
	case viaUp:
		return viaDown
	case viaDown:
		return viaUp
	default:
		return int(graph.Direction(s).Opposite())
	}
}

// activeDirections returns the cardinal directions the rerouter treats as
// grid adjacency under format: full 6-connectivity for adc2017, and only
// the horizontal four for adc2015/adc2016, whose vertical connectivity
// instead comes from explicit via columns (see buildViaLinks).
func activeDirections(format problem.Format) []graph.Direction {
	if format == problem.FormatADC2017 {
		return []graph.Direction{graph.XMinus, graph.XPlus, graph.YMinus, graph.YPlus, graph.ZMinus, graph.ZPlus}
	}

	return []graph.Direction{graph.XMinus, graph.XPlus, graph.YMinus, graph.YPlus}
}

func delta(dir graph.Direction) (dx, dy, dz int) {
	switch dir {
	case graph.XMinus:
		return -1, 0, 0
	case graph.XPlus:
		return 1, 0, 0
	case graph.YMinus:
		return 0, -1, 0
	case graph.YPlus:
		return 0, 1, 0
	case graph.ZMinus:
		return 0, 0, -1
	case graph.ZPlus:
		return 0, 0, 1
	default:
		return 0, 0, 0
	}
}

// cardinalNeighbor returns the cell index one step from idx in direction
// dir, and false if that step leaves the grid.
func cardinalNeighbor(dim geom.Dimension, idx int, dir graph.Direction) (int, bool) {
	p := dim.PointAt(idx)
	dx, dy, dz := delta(dir)
	np := geom.NewPoint(p.X+dx, p.Y+dy, p.Z+dz)
	if !dim.ContainsPoint(np) {
		return 0, false
	}

	return dim.IndexOf(np), true
}

// buildViaLinks computes, for every via column, the up/down chain links
// between its consecutive-layer cells: viaNext[a] = b and viaPrev[b] = a
// for consecutive column entries (a, b). Cell indices here are grid
// indices (geom.Dimension.Index), the same space graph.Graph node ids
// live in, so a via's node-id column doubles as its cell-index column
// with no translation.
func buildViaLinks(n int, viaColumns [][]int) (next, prev []int) {
	next = make([]int, n)
	prev = make([]int, n)
	for i := range next {
		next[i] = -1
		prev[i] = -1
	}
	for _, col := range viaColumns {
		for i := 0; i+1 < len(col); i++ {
			a, b := col[i], col[i+1]
			next[a] = b
			prev[b] = a
		}
	}

	return next, prev
}
