// Package geom defines the coordinate primitives shared by every other
// package in this module: Point, Dimension, and Via.
//
// All three types are immutable once constructed, the same convention
// lvlath/core follows for its Vertex and Edge IDs (fixed at creation even
// though the Graph holding them is mutable). Dimension provides the bijection
// between a (x,y,z) coordinate and a linear cell index used throughout
// graph, encoder, and solution.
//
// Errors:
//
//	ErrOutOfRange - a coordinate lies outside [0,W)x[0,H)x[0,D).
//	ErrBadVia     - a Via's layer range is empty (z2 < z1).
package geom

import "errors"

// Sentinel errors for geom operations.
var (
	// ErrOutOfRange indicates a coordinate fell outside the declared Dimension.
	ErrOutOfRange = errors.New("geom: coordinate out of range")

	// ErrBadVia indicates a Via was constructed with z2 < z1.
	ErrBadVia = errors.New("geom: via upper layer below lower layer")
)
