// Package decoder extracts per-net routes from a satisfied SAT model: for
// each net, walk the edge-true subgraph from its start terminal to its end
// terminal, never revisiting the previous node, synthesizing a vertical
// via-column traversal when no true edge is available at a via cell whose
// net spans multiple layers.
package decoder

import "errors"

// ErrStuck is returned when a net's walk reaches a node with no usable
// next edge and either the node is not a via cell or the net's two
// terminals lie on the same layer — a
// model that should never arise from a correctly encoded, SAT-satisfying
// assignment.
var ErrStuck = errors.New("decoder: walk stuck at a non-via node with no outgoing true edge")
