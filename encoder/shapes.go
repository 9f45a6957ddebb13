package encoder

import (
	"github.com/katalvlaran/nlsat/graph"
	"github.com/katalvlaran/nlsat/satsolver"
)

// MakeShapeBans emits every shape-ban family enabled in Options, in the
// fixed order U, W, W2, L, Y.
func (e *Encoder) MakeShapeBans() {
	e.MakeUShape()
	e.MakeWShape()
	e.MakeW2Shape()
	e.MakeLShape()
	e.MakeYShape()
}

// MakeUShape bans any three-of-four edges around an axis-aligned unit
// square from being simultaneously selected, unless the square's corner
// opposite the missing edge is a terminal or via.
func (e *Encoder) MakeUShape() {
	if !e.opts.UShape {
		return
	}
	g := e.graph
	g.SquareEdges(func(e1, e2, e3, e4 int) {
		edge1, edge2, edge3 := &g.Edges[e1], &g.Edges[e2], &g.Edges[e3]
		node00 := edge1.Node1
		node10 := edge1.Node2
		node01 := edge2.Node2
		node11 := edge3.Node2

		v1 := satsolver.Pos(e.edgeVars[e1])
		v2 := satsolver.Pos(e.edgeVars[e2])
		v3 := satsolver.Pos(e.edgeVars[e3])
		v4 := satsolver.Pos(e.edgeVars[e4])

		if !(g.Nodes[node00].IsBlock() || g.Nodes[node10].IsBlock()) {
			e.solver.AddClause(v1.Not(), v2.Not(), v3.Not())
		}
		if !(g.Nodes[node00].IsBlock() || g.Nodes[node01].IsBlock()) {
			e.solver.AddClause(v1.Not(), v2.Not(), v4.Not())
		}
		if !(g.Nodes[node10].IsBlock() || g.Nodes[node11].IsBlock()) {
			e.solver.AddClause(v1.Not(), v3.Not(), v4.Not())
		}
		if !(g.Nodes[node01].IsBlock() || g.Nodes[node11].IsBlock()) {
			e.solver.AddClause(v2.Not(), v3.Not(), v4.Not())
		}
	})
}

// MakeWShape bans the 2x3 L-shaped detour around a non-block middle
// cell, in both the horizontal and vertical orientation.
func (e *Encoder) MakeWShape() {
	if !e.opts.WShape {
		return
	}
	g := e.graph
	for node00 := range g.Nodes {
		for d := 0; d < 2; d++ {
			e.tryWShape(node00, d)
		}
	}
}

func (e *Encoder) tryWShape(node00, d int) {
	g := e.graph
	hDir, vDir := axisDirs(d)

	eH1, ok := g.Nodes[node00].EdgeAt(hDir)
	if !ok {
		return
	}
	node10 := g.Edges[eH1].OtherNode(node00)
	if g.Nodes[node10].IsBlock() {
		return
	}

	eH2, ok := g.Nodes[node10].EdgeAt(hDir)
	if !ok {
		return
	}
	node20 := g.Edges[eH2].OtherNode(node10)

	eV1, ok := g.Nodes[node00].EdgeAt(vDir)
	if !ok {
		return
	}
	eV2, ok := g.Nodes[node20].EdgeAt(vDir)
	if !ok {
		return
	}
	node01 := g.Edges[eV1].OtherNode(node00)
	node21 := g.Edges[eV2].OtherNode(node20)

	eH3, ok := g.Nodes[node01].EdgeAt(hDir)
	if !ok {
		return
	}
	node11 := g.Edges[eH3].OtherNode(node01)
	if g.Nodes[node11].IsBlock() {
		return
	}
	eH4, ok := g.Nodes[node11].EdgeAt(hDir)
	if !ok {
		return
	}

	v1 := satsolver.Pos(e.edgeVars[eV1])
	v4 := satsolver.Pos(e.edgeVars[eV2])

	if !(g.Nodes[node00].IsBlock() || g.Nodes[node20].IsBlock()) {
		v2 := satsolver.Pos(e.edgeVars[eH1])
		v3 := satsolver.Pos(e.edgeVars[eH2])
		e.addWShapeBan(node11, v1, v2, v3, v4)
	}
	if !(g.Nodes[node01].IsBlock() || g.Nodes[node21].IsBlock()) {
		v2 := satsolver.Pos(e.edgeVars[eH3])
		v3 := satsolver.Pos(e.edgeVars[eH4])
		e.addWShapeBan(node10, v1, v2, v3, v4)
	}
}

// addWShapeBan emits the four-literal W-shape ban, relaxed by a z-escape
// literal when the row not traversed by this ban's own horizontal edges
// has a node with both vertical edges present: escapeNode.EdgeAt(ZMinus)
// selected makes the otherwise-banned detour acceptable.
func (e *Encoder) addWShapeBan(escapeNode int, v1, v2, v3, v4 satsolver.Lit) {
	node := &e.graph.Nodes[escapeNode]
	zMinus, okMinus := node.EdgeAt(graph.ZMinus)
	_, okPlus := node.EdgeAt(graph.ZPlus)
	if !okMinus || !okPlus {
		e.solver.AddClause(v1.Not(), v2.Not(), v3.Not(), v4.Not())

		return
	}
	cvar := satsolver.Pos(e.edgeVars[zMinus])
	e.solver.AddClause(cvar, v1.Not(), v2.Not(), v3.Not(), v4.Not())
}

// MakeW2Shape bans the 2x4 analogue of the W-shape pattern.
func (e *Encoder) MakeW2Shape() {
	if !e.opts.W2Shape {
		return
	}
	g := e.graph
	for node00 := range g.Nodes {
		for d := 0; d < 2; d++ {
			e.tryW2Shape(node00, d)
		}
	}
}

func (e *Encoder) tryW2Shape(node00, d int) {
	g := e.graph
	hDir, vDir := axisDirs(d)

	eH1, ok := g.Nodes[node00].EdgeAt(hDir)
	if !ok {
		return
	}
	node10 := g.Edges[eH1].OtherNode(node00)
	if g.Nodes[node10].IsBlock() {
		return
	}
	eH2, ok := g.Nodes[node10].EdgeAt(hDir)
	if !ok {
		return
	}
	node20 := g.Edges[eH2].OtherNode(node10)
	if g.Nodes[node20].IsBlock() {
		return
	}
	eH3, ok := g.Nodes[node20].EdgeAt(hDir)
	if !ok {
		return
	}
	node30 := g.Edges[eH3].OtherNode(node20)

	eV1, ok := g.Nodes[node00].EdgeAt(vDir)
	if !ok {
		return
	}
	node01 := g.Edges[eV1].OtherNode(node00)

	eV2, ok := g.Nodes[node30].EdgeAt(vDir)
	if !ok {
		return
	}

	eH4, ok := g.Nodes[node01].EdgeAt(hDir)
	if !ok {
		return
	}
	node11 := g.Edges[eH4].OtherNode(node01)
	if g.Nodes[node11].IsBlock() {
		return
	}
	eH5, ok := g.Nodes[node11].EdgeAt(hDir)
	if !ok {
		return
	}
	node21 := g.Edges[eH5].OtherNode(node11)
	if g.Nodes[node21].IsBlock() {
		return
	}
	eH6, ok := g.Nodes[node21].EdgeAt(hDir)
	if !ok {
		return
	}
	node31 := g.Edges[eH6].OtherNode(node21)

	vV1 := satsolver.Pos(e.edgeVars[eV1])
	vV2 := satsolver.Pos(e.edgeVars[eV2])

	if !(g.Nodes[node00].IsBlock() || g.Nodes[node30].IsBlock()) {
		h1 := satsolver.Pos(e.edgeVars[eH1])
		h2 := satsolver.Pos(e.edgeVars[eH2])
		h3 := satsolver.Pos(e.edgeVars[eH3])
		e.solver.AddClause(vV1.Not(), vV2.Not(), h1.Not(), h2.Not(), h3.Not())
	}
	if !(g.Nodes[node01].IsBlock() || g.Nodes[node31].IsBlock()) {
		h4 := satsolver.Pos(e.edgeVars[eH4])
		h5 := satsolver.Pos(e.edgeVars[eH5])
		h6 := satsolver.Pos(e.edgeVars[eH6])
		e.solver.AddClause(vV1.Not(), vV2.Not(), h4.Not(), h5.Not(), h6.Not())
	}
}

// axisDirs returns (horizontal, vertical) directional slots for
// orientation d: d==0 uses (x+, y+), d==1 uses (y+, x+) — the W/W2-shape
// sweep runs both orientations of the rectangle.
func axisDirs(d int) (hDir, vDir graph.Direction) {
	if d == 0 {
		return graph.XPlus, graph.YPlus
	}

	return graph.YPlus, graph.XPlus
}
