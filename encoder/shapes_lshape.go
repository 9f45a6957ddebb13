package encoder

import (
	"github.com/katalvlaran/nlsat/graph"
	"github.com/katalvlaran/nlsat/satsolver"
)

// lshapeAxisGroups lists every axis pair (x vs y, x vs z, y vs z) whose
// direction combinations form a perpendicular pair at a node; the z
// pairs are simply never satisfied (EdgeAt fails) on 2D/no-z-edge
// graphs, so this list is format-agnostic.
var lshapeAxisGroups = [3][2][2]graph.Direction{
	{{graph.XMinus, graph.XPlus}, {graph.YMinus, graph.YPlus}},
	{{graph.XMinus, graph.XPlus}, {graph.ZMinus, graph.ZPlus}},
	{{graph.YMinus, graph.YPlus}, {graph.ZMinus, graph.ZPlus}},
}

// MakeLShape bans a non-terminal internal cell from simultaneously
// selecting two perpendicular edges, unless one of the two neighbors
// reached by those edges is itself a terminal or via — a local stand-in
// for "a covering terminal discharges the L". Perimeter cells (x or y at
// the grid boundary) carry no such constraint, matching a corner turn
// entering along the edge of the grid.
func (e *Encoder) MakeLShape() {
	if !e.opts.LShape {
		return
	}
	g := e.graph
	for nodeID := range g.Nodes {
		node := &g.Nodes[nodeID]
		if node.IsBlock() {
			continue
		}
		if node.Point.X == 0 || node.Point.X == g.Dim.Width-1 ||
			node.Point.Y == 0 || node.Point.Y == g.Dim.Height-1 {
			continue
		}
		for _, grp := range lshapeAxisGroups {
			for _, d1 := range grp[0] {
				eid1, ok := node.EdgeAt(d1)
				if !ok {
					continue
				}
				for _, d2 := range grp[1] {
					eid2, ok := node.EdgeAt(d2)
					if !ok {
						continue
					}
					other1 := g.Edges[eid1].OtherNode(nodeID)
					other2 := g.Edges[eid2].OtherNode(nodeID)
					if g.Nodes[other1].IsBlock() || g.Nodes[other2].IsBlock() {
						continue
					}
					v1 := satsolver.Pos(e.edgeVars[eid1])
					v2 := satsolver.Pos(e.edgeVars[eid2])
					e.solver.AddClause(v1.Not(), v2.Not())
				}
			}
		}
	}
}
