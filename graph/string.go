package graph

import (
	"fmt"
	"strings"
)

// String renders a node as "#0004: (1,2,0) [Net#3] [Via#1]", omitting the
// bracketed tags that don't apply.
func (n *Node) String() string {
	s := fmt.Sprintf("#%04d: %s", n.ID, n.Point.String())
	if n.IsTerminal {
		s += fmt.Sprintf(" [Net#%d]", n.TerminalID)
	}
	if n.IsVia {
		s += fmt.Sprintf(" [Via#%d]", n.ViaID)
	}

	return s
}

// String renders an edge as its id alone, "#12"; Graph.Dump adds the
// endpoints.
func (e *Edge) String() string {
	return fmt.Sprintf("#%d", e.ID)
}

// Dump renders every node and edge, one per line, for debugging.
func (g *Graph) Dump() string {
	var b strings.Builder
	b.WriteString("Nodes:\n")
	for i := range g.Nodes {
		n := &g.Nodes[i]
		b.WriteString(n.String())
		for d := Direction(0); d < dirCount; d++ {
			if idx, ok := n.EdgeAt(d); ok {
				fmt.Fprintf(&b, " %s:#%04d", d, idx)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("Edges:\n")
	for i := range g.Edges {
		e := &g.Edges[i]
		fmt.Fprintf(&b, "#%d: %s - %s\n", e.ID, g.Nodes[e.Node1].String(), g.Nodes[e.Node2].String())
	}

	return b.String()
}
