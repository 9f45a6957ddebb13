package pipeline

import (
	"errors"

	"github.com/katalvlaran/nlsat/decoder"
	"github.com/katalvlaran/nlsat/encoder"
	"github.com/katalvlaran/nlsat/graph"
	"github.com/katalvlaran/nlsat/router"
	"github.com/katalvlaran/nlsat/satsolver"
	"github.com/katalvlaran/nlsat/solution"
)

// ErrSolverUnknown marks an Abort outcome caused by the backend returning
// Unknown rather than a var-limit overrun or a post-decode inconsistency.
var ErrSolverUnknown = errors.New("pipeline: solver returned an undecided result")

// Result is the three-valued pipeline outcome: OK carries a
// Solution; NG means every plan was tried and none was satisfiable; Abort
// means the cascade stopped early, either because the backend returned
// Unknown or because decoding/rerouting hit an invariant violation.
type Result int

const (
	NG Result = iota
	OK
	Abort
)

func (r Result) String() string {
	switch r {
	case OK:
		return "OK"
	case NG:
		return "NG"
	default:
		return "Abort"
	}
}

// Outcome is the full result of Run: Result plus, on OK, the decoded
// Solution and the name of the plan that produced it, or, on Abort, the
// diagnostic error.
type Outcome struct {
	Result   Result
	Solution *solution.Grid
	PlanName string
	Err      error
}

// Config parameterizes one Run: the plan list to try, in order, and an
// optional variable-count ceiling; VarLimit <= 0 means no ceiling.
type Config struct {
	Plans    []Plan
	VarLimit int
}

// Run tries every plan in cfg.Plans against g in order, returning the
// first satisfiable one's fully routed Solution. A plan whose variable
// count exceeds cfg.VarLimit is skipped before ever calling the solver;
// a plan the solver reports unsatisfiable hands off to the next plan in
// the list; Unknown, or any inconsistency found while turning a model
// into routes, stops the cascade immediately with Abort.
func Run(g *graph.Graph, cfg Config) Outcome {
	if len(cfg.Plans) == 0 {
		return Outcome{Result: Abort, Err: ErrNoPlansForFormat}
	}

	for _, plan := range cfg.Plans {
		s := satsolver.NewGiniSolver()
		enc := encoder.NewEncoder(g, s, plan.Options)
		enc.MakeBaseConstraints()
		enc.MakeShapeBans()

		if cfg.VarLimit > 0 && s.VarCount() > cfg.VarLimit {
			continue
		}

		switch s.Solve() {
		case satsolver.True:
			return decodeAndReroute(g, enc, s, plan.Name)
		case satsolver.False:
			continue
		default:
			return Outcome{Result: Abort, PlanName: plan.Name, Err: ErrSolverUnknown}
		}
	}

	return Outcome{Result: NG}
}

// decodeAndReroute turns a satisfying model into a final Solution: decode
// every net's route, reroute the set for minimum length and bends, then
// rasterize into a Grid. Any failure here is a bug in a supposedly
// SAT-satisfying assignment, surfaced as Abort rather than NG.
func decodeAndReroute(g *graph.Graph, enc *encoder.Encoder, m decoder.Model, planName string) Outcome {
	routes, err := decoder.DecodeAll(g, enc, m)
	if err != nil {
		return Outcome{Result: Abort, PlanName: planName, Err: err}
	}

	viaColumns := viaColumnsOf(g)
	r, err := router.NewRouter(g.Dim, g.Format, routes, viaColumns)
	if err != nil {
		return Outcome{Result: Abort, PlanName: planName, Err: err}
	}
	if err := r.Reroute(); err != nil {
		return Outcome{Result: Abort, PlanName: planName, Err: err}
	}

	grid := solution.FromRoutes(g.Dim, r.Routes())

	return Outcome{Result: OK, Solution: grid, PlanName: planName}
}

// viaColumnsOf collects every via's spanned node ids, low-to-high z, for
// router.NewRouter's synthetic vertical-adjacency slots. Empty for
// formats without vias (ViaCount is 0 in that case).
func viaColumnsOf(g *graph.Graph) [][]int {
	count := g.ViaCount()
	if count == 0 {
		return nil
	}
	cols := make([][]int, count)
	for viaID := 0; viaID < count; viaID++ {
		nodes, _ := g.ViaNodes(viaID)
		cols[viaID] = nodes
	}

	return cols
}
