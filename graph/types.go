package graph

import "github.com/katalvlaran/nlsat/geom"

// noIndex marks an absent slot/id reference in the flat index arrays.
const noIndex = -1

// Node is one grid cell. Edges is a fixed six-slot array of edge indices
// keyed by Direction (noIndex when no edge occupies that slot);
// Incident lists every edge index touching this node, in the order
// edges were created. IsTerminal/TerminalID and IsVia/ViaID mark the
// node's role; both may legitimately be set, since a multi-layer net's
// terminal can sit inside a via column. Node-constraint dispatch treats
// IsTerminal as taking priority over IsVia in that case (see
// encoder.makeNodeConstraint).
type Node struct {
	ID       int
	Point    geom.Point
	Edges    [dirCount]int
	Incident []int

	IsTerminal bool
	TerminalID int

	IsVia bool
	ViaID int
}

func newNode(id int, p geom.Point) Node {
	n := Node{ID: id, Point: p, TerminalID: noIndex, ViaID: noIndex}
	for i := range n.Edges {
		n.Edges[i] = noIndex
	}

	return n
}

// EdgeAt returns the edge index in slot dir, or (noIndex, false) if the
// slot is empty.
func (n *Node) EdgeAt(dir Direction) (int, bool) {
	idx := n.Edges[dir]

	return idx, idx != noIndex
}

// IsBlock reports whether this node is a terminal or a via cell; such
// nodes are exempt from several shape-ban constraints.
func (n *Node) IsBlock() bool {
	return n.IsTerminal || n.IsVia
}

// Edge is an undirected adjacency between two nodes, one axis step
// apart. Dir is the direction from Node1 to Node2.
type Edge struct {
	ID    int
	Node1 int
	Node2 int
	Dir   Direction
}

// OtherNode returns the endpoint of e that is not node.
func (e *Edge) OtherNode(node int) int {
	if e.Node1 == node {
		return e.Node2
	}

	return e.Node1
}
