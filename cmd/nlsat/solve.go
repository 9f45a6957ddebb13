package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/nlsat/graph"
	"github.com/katalvlaran/nlsat/pipeline"
	"github.com/katalvlaran/nlsat/problem"
	"github.com/katalvlaran/nlsat/solution"
)

// exitCodes: 0 on success, nonzero on parse failure, on Abort, and on
// an exhausted cascade (NG) with no fallback.
const (
	exitSuccess    = 0
	exitParseError = 1
	exitAbort      = 2
	exitNG         = 3
)

// solve runs the full parse -> pipeline -> write flow: read a problem
// file from in, resolve the plan cascade from cfg, run it over the
// resulting graph, and write a solution.Grid to out on success. It
// returns the process exit code.
func solve(in io.Reader, out io.Writer, cfg solverConfig, verbose bool) int {
	p, err := problem.Parse(in)
	if err != nil {
		log.Printf("parse error: %v", err)

		return exitParseError
	}

	g := graph.NewGraph(p, cfg.Format)
	if g.FormatOverrideMismatch {
		log.Printf("warning: requested format %v disagrees with auto-detected format %v; using %v", cfg.Format, g.Format, g.Format)
	}
	if verbose {
		log.Printf("format=%v nodes=%d edges=%d nets=%d", g.Format, len(g.Nodes), len(g.Edges), g.NetCount())
	}

	plans, err := resolvePlans(g.Format, cfg)
	if err != nil {
		log.Printf("config error: %v", err)

		return exitAbort
	}

	outcome := pipeline.Run(g, pipeline.Config{Plans: plans, VarLimit: cfg.VarLimit})
	if verbose {
		log.Printf("result=%v plan=%s", outcome.Result, outcome.PlanName)
	}

	switch outcome.Result {
	case pipeline.OK:
		if err := solution.Write(out, outcome.Solution); err != nil {
			log.Printf("writing solution: %v", err)

			return exitAbort
		}

		return exitSuccess
	case pipeline.Abort:
		log.Printf("aborted: %v", outcome.Err)

		return exitAbort
	default:
		log.Printf("no plan found a satisfying assignment")

		return exitNG
	}
}

// resolvePlans applies cfg's BinaryEncoding knob to every plan in its
// list (explicit Plans override, or the format's default cascade).
func resolvePlans(format problem.Format, cfg solverConfig) ([]pipeline.Plan, error) {
	var plans []pipeline.Plan
	if len(cfg.PlanNames) > 0 {
		p, err := namedPlans(cfg.PlanNames)
		if err != nil {
			return nil, err
		}
		plans = p
	} else {
		plans = pipeline.DefaultPlans(format)
	}

	out := make([]pipeline.Plan, len(plans))
	for i, p := range plans {
		opts := p.Options
		opts.BinaryEncoding = cfg.BinaryEncoding
		out[i] = pipeline.Plan{Name: p.Name, Options: opts}
	}

	return out, nil
}

// openOutput opens path for writing, or returns os.Stdout for an empty
// path.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}

	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
