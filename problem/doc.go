// Package problem defines the NumberLink Problem/Net data model and the
// text parser/writer for the ADC2015/2016/2017 problem file format; the
// CLI and tests exercise it behind the solver core.
//
// Problem is immutable once returned by Parse: nets and vias are recorded
// in file order, with Net.ID the zero-based position in that order (the
// file's LINE#k number becomes Net.Label, which differs from Net.ID+1
// whenever the file lists nets out of label order; it is never re-derived
// from position and is carried through verbatim for diagnostics and
// round-tripping).
package problem

import "errors"

// Sentinel errors for Problem construction.
var (
	// ErrNoDimension indicates an operation required a Dimension that has
	// not yet been set.
	ErrNoDimension = errors.New("problem: dimension not set")

	// ErrDuplicateNetLabel indicates add of a net whose label already exists.
	ErrDuplicateNetLabel = errors.New("problem: duplicate net label")

	// ErrDuplicateViaLabel indicates add of a via whose label already exists.
	ErrDuplicateViaLabel = errors.New("problem: duplicate via label")
)
