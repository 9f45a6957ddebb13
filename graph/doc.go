// Package graph builds the routing grid: one Node per problem cell, one
// Edge per axis-aligned adjacency, with terminals and via columns marked
// according to the declared problem format.
//
// A Node exposes up to six directional edge slots, indexed by the fixed
// enumeration {XMinus, XPlus, YMinus, YPlus, ZMinus, ZPlus} (in that
// order, ids 0..5). Node and Edge never hold pointers to each other;
// they hold indices into the flat slices owned by Graph, and Graph is
// immutable once NewGraph returns.
package graph

import "errors"

// NoNode is the sentinel "no such node" value, returned by walks and
// lookups that may legitimately find nothing (a node with no unvisited
// outgoing edge, for instance).
const NoNode = -1

// Sentinel errors for graph construction.
var (
	// ErrFormatMismatch indicates a caller-supplied format override
	// disagreed with the auto-detected format; NewGraph never honors a
	// contradicting override silently.
	ErrFormatMismatch = errors.New("graph: format override disagrees with detected format")

	// ErrNoVia is returned by via-indexed lookups when no via with that
	// id has been registered.
	ErrNoVia = errors.New("graph: via id out of range")

	// ErrNoNet is returned by net-indexed lookups when no net with that
	// id has been registered.
	ErrNoNet = errors.New("graph: net id out of range")
)
