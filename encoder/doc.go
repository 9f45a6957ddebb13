// Package encoder turns a graph.Graph into a CNF instance over a
// satsolver.Solver: one boolean per edge ("edge selected"), a label
// vector per node (one-hot or binary, per Options), one boolean per
// compatible (net,via) pair for adc2016, and an optional "node used"
// slack variable per non-terminal node. It then emits the base
// connectivity constraints and the optional shape-ban families that
// reduce the solution space.
package encoder

import "errors"

// ErrNoLabelsForNets is returned by NewEncoder if the graph has nets but
// zero distinct labels were computed for them (a construction invariant
// violation, never expected from a well-formed graph.Graph).
var ErrNoLabelsForNets = errors.New("encoder: graph reports nets but zero labels")
