package solution

import (
	"github.com/katalvlaran/nlsat/decoder"
	"github.com/katalvlaran/nlsat/geom"
)

// Grid is a solved W*H*D cell array: Cells[dim.IndexOf(p)] is net_id+1 for
// a routed cell, 0 for an obstacle.
type Grid struct {
	Dim   geom.Dimension
	Cells []int
}

// NewGrid returns an all-zero Grid of the given size.
func NewGrid(dim geom.Dimension) *Grid {
	return &Grid{Dim: dim, Cells: make([]int, dim.GridSize())}
}

// FromRoutes rasterizes one fully routed net per entry in routes: for
// net_id >= 0, every point on routes[net_id] is written net_id+1 (spec
// §4.5). Later nets are not expected to overlap earlier ones; if they do,
// the last write for a given cell wins.
func FromRoutes(dim geom.Dimension, routes []decoder.Route) *Grid {
	g := NewGrid(dim)
	for netID, route := range routes {
		g.Set(netID, route)
	}

	return g
}

// Set writes net_id+1 into every cell of route, overwriting any prior
// value there.
func (g *Grid) Set(netID int, route decoder.Route) {
	for _, p := range route {
		g.Cells[g.Dim.IndexOf(p)] = netID + 1
	}
}

// At returns the value stored at p.
func (g *Grid) At(p geom.Point) int {
	return g.Cells[g.Dim.IndexOf(p)]
}
