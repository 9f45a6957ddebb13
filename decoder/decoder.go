package decoder

import (
	"github.com/katalvlaran/nlsat/encoder"
	"github.com/katalvlaran/nlsat/geom"
	"github.com/katalvlaran/nlsat/graph"
	"github.com/katalvlaran/nlsat/satsolver"
)

// Model is the subset of satsolver.Solver the decoder needs after a
// successful Solve: a variable-to-boolean lookup. A *satsolver.Solver
// itself satisfies this.
type Model interface {
	Value(v satsolver.Var) bool
}

// Route is one net's recovered path, start to end inclusive, in walk
// order. Consecutive points are always one axis-step apart.
type Route []geom.Point

// DecodeAll walks every net in g and returns its Route, in net-id order.
func DecodeAll(g *graph.Graph, e *encoder.Encoder, m Model) ([]Route, error) {
	routes := make([]Route, g.NetCount())
	for netID := 0; netID < g.NetCount(); netID++ {
		r, err := decodeNet(g, e, m, netID)
		if err != nil {
			return nil, err
		}
		routes[netID] = r
	}

	return routes, nil
}

// decodeNet walks from the net's start terminal to its end terminal along
// edges whose selection variable is true, never revisiting the previous
// node. When the walk reaches a via cell with no usable outgoing edge and
// the net's terminals lie on different layers, it synthesizes a vertical
// traversal through the via column from the current layer toward the
// end's layer and resumes there.
func decodeNet(g *graph.Graph, e *encoder.Encoder, m Model, netID int) (Route, error) {
	term, err := g.Terminal(netID)
	if err != nil {
		return nil, err
	}
	start, end := term.Node1, term.Node2

	var route Route
	prev := graph.NoNode
	node := start
	for node != end {
		route = append(route, g.Nodes[node].Point)

		next := graph.NoNode
		for _, edgeID := range g.Nodes[node].Incident {
			if !m.Value(e.EdgeVar(edgeID)) {
				continue
			}
			other := g.Edges[edgeID].OtherNode(node)
			if other == prev {
				continue
			}
			next = other
		}

		if next == graph.NoNode {
			startZ, endZ := g.Nodes[start].Point.Z, g.Nodes[end].Point.Z
			if !g.Nodes[node].IsVia || startZ == endZ {
				return nil, ErrStuck
			}
			cur := g.Nodes[node].Point
			step := 1
			if endZ < startZ {
				step = -1
			}
			// The end-layer cell itself is appended by the walk once it
			// resumes there, so the synthesized run stops one layer short.
			for z := cur.Z; z != endZ; z += step {
				if z+step != endZ {
					route = append(route, geom.NewPoint(cur.X, cur.Y, z+step))
				}
			}
			next = g.Dim.Index(cur.X, cur.Y, endZ)
		}

		prev = node
		node = next
	}
	if final := g.Nodes[node].Point; len(route) == 0 || route[len(route)-1] != final {
		route = append(route, final)
	}

	return route, nil
}
