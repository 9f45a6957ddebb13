package encoder

import (
	"github.com/katalvlaran/nlsat/graph"
	"github.com/katalvlaran/nlsat/satsolver"
)

// MakeYShape bans a T-junction-like pattern: for each axis-aligned unit
// square, if its two parallel "outer" edges are both selected, one of
// its two interior cells must either carry a z-axis escape edge that is
// also selected, or (if no escape exists and a U-variable was
// allocated) be marked unused. Squares whose interior cell is a
// terminal/via are exempt.
func (e *Encoder) MakeYShape() {
	if !e.opts.YShape {
		return
	}
	g := e.graph
	g.SquareEdges(func(e1, e2, e3, e4 int) {
		node10 := g.Edges[e1].Node2
		node01 := g.Edges[e2].Node2

		e.tryYShapeInterior(node10, e1, e4)
		e.tryYShapeInterior(node01, e2, e3)
	})
}

// tryYShapeInterior handles one interior cell of the square, gated by
// the two parallel outer edges outerA/outerB.
func (e *Encoder) tryYShapeInterior(interior, outerA, outerB int) {
	g := e.graph
	node := &g.Nodes[interior]
	if node.IsBlock() {
		return
	}

	vA := satsolver.Pos(e.edgeVars[outerA])
	vB := satsolver.Pos(e.edgeVars[outerB])

	if zEdge, ok := node.EdgeAt(graph.ZMinus); ok {
		e.solver.AddClause(vA.Not(), vB.Not(), satsolver.Pos(e.edgeVars[zEdge]))

		return
	}
	if zEdge, ok := node.EdgeAt(graph.ZPlus); ok {
		e.solver.AddClause(vA.Not(), vB.Not(), satsolver.Pos(e.edgeVars[zEdge]))

		return
	}
	if uvar, ok := e.UVar(interior); ok {
		e.solver.AddClause(vA.Not(), vB.Not(), satsolver.Neg(uvar))
	}
}
