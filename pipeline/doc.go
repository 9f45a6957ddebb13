// Package pipeline drives the encoding-plan cascade: it tries a sequence
// of named encoder.Options ("plans") against a graph.Graph in order,
// accepting the first one that is satisfiable, decoding and rerouting its
// model into a solution.Grid.
//
// Each plan gets a fresh satsolver.Solver and a fresh encoder.Encoder; no
// state carries from one plan to the next. A plan whose
// variable count would exceed a configured ceiling is skipped without
// ever calling Solve; a plan the solver reports UNSAT hands off to the
// next plan in the list; a plan the solver reports UNKNOWN for stops the
// whole cascade immediately.
package pipeline

import "errors"

// ErrNoPlansForFormat indicates a format with an empty plan list, a
// configuration bug rather than a runtime condition.
var ErrNoPlansForFormat = errors.New("pipeline: no plans configured for this format")
