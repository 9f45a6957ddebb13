// Package satsolver abstracts a boolean SAT backend behind a small
// interface: variable allocation, clause/cardinality constraint
// emission, and a three-valued solve result. The encoder package talks
// only to the Solver interface; a concrete implementation backed by
// github.com/irifrance/gini lives in gini.go and is the only file in
// this module that imports gini directly.
package satsolver

import "errors"

// Sentinel errors for satsolver operations.
var (
	// ErrEmptyClause indicates AddClause was called with zero literals,
	// which is always unsatisfiable and almost certainly a caller bug.
	ErrEmptyClause = errors.New("satsolver: empty clause")

	// ErrVarOutOfRange indicates a Lit referenced a variable this
	// Solver never allocated.
	ErrVarOutOfRange = errors.New("satsolver: variable out of range")
)
