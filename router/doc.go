// Package router refines a set of decoded routes via Lee-BFS shortest-path
// rerouting with a bend-minimizing backtrace, iterating net by net until a
// full pass over every net improves neither total route length nor total
// bend count.
//
// The router operates on a plain W*H*D cell grid addressed through
// geom.Dimension, independent of graph.Graph: a rerouted net treats every
// other net's current route as an obstacle and searches for the shortest,
// least-bent path between its own two terminals.
package router

import "errors"

// ErrRouteTooShort is returned by NewRouter when a supplied route has
// fewer than two points (a route must have at least a start and an end).
var ErrRouteTooShort = errors.New("router: route must contain at least 2 points")

// ErrNoPath is returned when a net's rerouting BFS cannot reach its own
// end terminal — unreachable from a well-formed decoded route, since the
// route being replaced already proves a path exists, but guarded rather
// than assumed.
var ErrNoPath = errors.New("router: no path found between a net's terminals")
