package encoder

import (
	"testing"

	"github.com/katalvlaran/nlsat/geom"
	"github.com/katalvlaran/nlsat/graph"
	"github.com/katalvlaran/nlsat/problem"
	"github.com/katalvlaran/nlsat/satsolver"
)

// recordingSolver is a Solver test double that only allocates variables
// and records clauses; it never decides satisfiability. Used to check
// variable allocation order and clause-emission shape without running
// an actual SAT search.
type recordingSolver struct {
	nextVar int
	clauses [][]satsolver.Lit
}

func (s *recordingSolver) NewVar() satsolver.Var {
	s.nextVar++

	return satsolver.Var(s.nextVar)
}

func (s *recordingSolver) AddClause(lits ...satsolver.Lit) {
	cp := append([]satsolver.Lit(nil), lits...)
	s.clauses = append(s.clauses, cp)
}

func (s *recordingSolver) Solve(assume ...satsolver.Lit) satsolver.Result {
	return satsolver.Unknown
}

func (s *recordingSolver) Value(v satsolver.Var) bool { return false }
func (s *recordingSolver) VarCount() int              { return s.nextVar }

func twoNetGraph(t *testing.T) *graph.Graph {
	t.Helper()
	p := problem.NewProblem(geom.NewDimension(3, 3, 1))
	if err := p.AddNet(1, geom.NewPoint(0, 0, 0), geom.NewPoint(2, 0, 0)); err != nil {
		t.Fatalf("AddNet: %v", err)
	}
	if err := p.AddNet(2, geom.NewPoint(0, 2, 0), geom.NewPoint(2, 2, 0)); err != nil {
		t.Fatalf("AddNet: %v", err)
	}

	return graph.NewGraph(p, problem.FormatUnknown)
}

func TestNewEncoder_VariableAllocationOrder(t *testing.T) {
	g := twoNetGraph(t)
	s := &recordingSolver{}
	e := NewEncoder(g, s, Options{})

	wantVars := len(g.Edges)
	for i := range g.Nodes {
		wantVars += len(e.NodeVars(i))
	}
	if s.nextVar != wantVars {
		t.Fatalf("expected %d vars allocated (edges+labels), got %d", wantVars, s.nextVar)
	}

	// Edge vars must come first, in edge-id order: var ids 1..len(Edges).
	for i := range g.Edges {
		if int(e.EdgeVar(i)) != i+1 {
			t.Fatalf("edge %d: expected var %d, got %d", i, i+1, e.EdgeVar(i))
		}
	}
}

func TestNewEncoder_OneHotWidthMatchesNetCount(t *testing.T) {
	g := twoNetGraph(t)
	s := &recordingSolver{}
	e := NewEncoder(g, s, Options{})
	for i := range g.Nodes {
		if got := len(e.NodeVars(i)); got != g.NetCount() {
			t.Fatalf("node %d: expected one-hot width %d, got %d", i, g.NetCount(), got)
		}
	}
}

func TestNewEncoder_BinaryWidthIsLogarithmic(t *testing.T) {
	g := twoNetGraph(t)
	s := &recordingSolver{}
	e := NewEncoder(g, s, Options{BinaryEncoding: true})
	// 2 nets -> codes 1,2 fit in 2 bits.
	for i := range g.Nodes {
		if got := len(e.NodeVars(i)); got != 2 {
			t.Fatalf("node %d: expected binary width 2, got %d", i, got)
		}
	}
}

func TestNewEncoder_NoUVarsByDefault(t *testing.T) {
	g := twoNetGraph(t)
	s := &recordingSolver{}
	e := NewEncoder(g, s, Options{Slack: NoSlack})
	for i := range g.Nodes {
		if _, ok := e.UVar(i); ok {
			t.Fatalf("node %d: did not expect a U-var under NoSlack", i)
		}
	}
}

func TestNewEncoder_UVarsAllocatedForNonBlockNodes(t *testing.T) {
	g := twoNetGraph(t)
	s := &recordingSolver{}
	e := NewEncoder(g, s, Options{Slack: SlackWithUVar})
	for i := range g.Nodes {
		_, ok := e.UVar(i)
		if !g.Nodes[i].IsBlock() && !ok {
			t.Fatalf("node %d: expected a U-var under SlackWithUVar", i)
		}
	}
}

func TestMakeBaseConstraints_TerminalFixesLabel(t *testing.T) {
	g := twoNetGraph(t)
	s := &recordingSolver{}
	e := NewEncoder(g, s, Options{})
	e.MakeBaseConstraints()

	// Every terminal node must have its label unit-clamped: one clause
	// per label bit, each a single literal over that node's vars.
	term0, err := g.Terminal(0)
	if err != nil {
		t.Fatalf("Terminal: %v", err)
	}
	vars := e.NodeVars(term0.Node1)
	found := 0
	for _, cl := range s.clauses {
		if len(cl) != 1 {
			continue
		}
		for _, v := range vars {
			if cl[0].V == v {
				found++
			}
		}
	}
	if found != len(vars) {
		t.Fatalf("expected %d unit clauses fixing terminal label, found %d", len(vars), found)
	}
}

func TestMakeBaseConstraints_ViaBindingOneHot(t *testing.T) {
	p := problem.NewProblem(geom.NewDimension(2, 2, 2))
	if err := p.AddNet(1, geom.NewPoint(0, 0, 0), geom.NewPoint(1, 1, 1)); err != nil {
		t.Fatalf("AddNet: %v", err)
	}
	via, err := geom.NewVia("a", 0, 0, 0, 1)
	if err != nil {
		t.Fatalf("NewVia: %v", err)
	}
	if err := p.AddVia(via); err != nil {
		t.Fatalf("AddVia: %v", err)
	}
	g := graph.NewGraph(p, problem.FormatUnknown)
	s := &recordingSolver{}
	e := NewEncoder(g, s, Options{})
	e.MakeBaseConstraints()

	v, ok := e.ViaNetVar(0, 0)
	if !ok {
		t.Fatalf("expected net 0 / via 0 to have a binding var")
	}
	if v == 0 {
		t.Fatalf("expected a nonzero allocated var")
	}
	// The via has a single compatible net, so its exactly-one binding
	// constraint reduces to a unit clause forcing that var true.
	forced := false
	for _, cl := range s.clauses {
		if len(cl) == 1 && cl[0] == satsolver.Pos(v) {
			forced = true
		}
	}
	if !forced {
		t.Fatalf("expected the via's one-hot binding constraint to force net 0's binding var true")
	}
}

// TestEncodeSmallProblem_Satisfiable runs the full base-constraint
// pipeline over a real gini instance for a trivially satisfiable
// 2x2, single-net problem and checks the solver finds a model in which
// the start terminal has exactly one selected incident edge.
func TestEncodeSmallProblem_Satisfiable(t *testing.T) {
	p := problem.NewProblem(geom.NewDimension(2, 2, 1))
	if err := p.AddNet(1, geom.NewPoint(0, 0, 0), geom.NewPoint(1, 0, 0)); err != nil {
		t.Fatalf("AddNet: %v", err)
	}
	g := graph.NewGraph(p, problem.FormatUnknown)

	s := satsolver.NewGiniSolver()
	e := NewEncoder(g, s, Options{Slack: SlackWithoutUVar})
	e.MakeBaseConstraints()

	if res := s.Solve(); res != satsolver.True {
		t.Fatalf("expected SAT, got %v", res)
	}

	start := g.Dim.Index(0, 0, 0)
	// The terminal at (0,0,0) must have exactly one selected incident edge.
	selected := 0
	for _, edgeID := range g.Nodes[start].Incident {
		if s.Value(e.EdgeVar(edgeID)) {
			selected++
		}
	}
	if selected != 1 {
		t.Fatalf("expected exactly 1 selected edge at terminal, got %d", selected)
	}
}

func TestMakeUShape_NoOpWhenDisabled(t *testing.T) {
	g := twoNetGraph(t)
	s := &recordingSolver{}
	e := NewEncoder(g, s, Options{})
	before := len(s.clauses)
	e.MakeUShape()
	if len(s.clauses) != before {
		t.Fatalf("expected no clauses added when UShape disabled")
	}
}

func TestMakeUShape_AddsClausesWhenEnabled(t *testing.T) {
	g := twoNetGraph(t)
	s := &recordingSolver{}
	e := NewEncoder(g, s, Options{UShape: true})
	e.MakeUShape()
	if len(s.clauses) == 0 {
		t.Fatalf("expected U-shape clauses on a 3x3 grid")
	}
	for _, cl := range s.clauses {
		if len(cl) != 3 {
			t.Fatalf("expected every U-shape clause to ban 3 edges, got %d literals", len(cl))
		}
	}
}

func TestMakeLShape_BansPerpendicularPair(t *testing.T) {
	g := twoNetGraph(t)
	s := &recordingSolver{}
	e := NewEncoder(g, s, Options{LShape: true})
	e.MakeLShape()
	if len(s.clauses) == 0 {
		t.Fatalf("expected L-shape clauses on a 3x3 grid with a non-block interior node")
	}
	for _, cl := range s.clauses {
		if len(cl) != 2 {
			t.Fatalf("expected every L-shape clause to ban 2 edges, got %d literals", len(cl))
		}
	}
}

func TestMakeLShape_SkipsPerimeterNodes(t *testing.T) {
	// A 3x1 grid has no non-perimeter node at all (every cell has y==0,
	// which is also y==height-1), so MakeLShape must add nothing.
	p := problem.NewProblem(geom.NewDimension(3, 1, 1))
	if err := p.AddNet(1, geom.NewPoint(0, 0, 0), geom.NewPoint(2, 0, 0)); err != nil {
		t.Fatalf("AddNet: %v", err)
	}
	g := graph.NewGraph(p, problem.FormatUnknown)
	s := &recordingSolver{}
	e := NewEncoder(g, s, Options{LShape: true})
	e.MakeLShape()
	if len(s.clauses) != 0 {
		t.Fatalf("expected no L-shape clauses when every node is on the perimeter, got %d", len(s.clauses))
	}
}

func TestMakeWShape_AddsZEscapeLiteralOnThreeLayerGrid(t *testing.T) {
	// Depth 3 gives the middle layer (z=1) both a ZMinus and a ZPlus edge
	// on every cell, so the W-shape ban around a middle-layer node must
	// carry the z-escape disjunct instead of a bare 4-literal clause.
	p := problem.NewProblem(geom.NewDimension(3, 2, 3))
	if err := p.AddNet(1, geom.NewPoint(0, 0, 0), geom.NewPoint(2, 1, 2)); err != nil {
		t.Fatalf("AddNet: %v", err)
	}
	g := graph.NewGraph(p, problem.FormatUnknown)
	if g.Format != problem.FormatADC2017 {
		t.Fatalf("expected adc2017 format, got %v", g.Format)
	}
	s := &recordingSolver{}
	e := NewEncoder(g, s, Options{WShape: true})
	e.MakeWShape()

	foundFiveLiteral := false
	for _, cl := range s.clauses {
		if len(cl) == 5 {
			foundFiveLiteral = true
		}
		if len(cl) != 4 && len(cl) != 5 {
			t.Fatalf("expected every W-shape clause to have 4 or 5 literals, got %d", len(cl))
		}
	}
	if !foundFiveLiteral {
		t.Fatalf("expected at least one W-shape clause relaxed with a z-escape literal")
	}
}

func TestMakeShapeBans_RunsEveryEnabledFamily(t *testing.T) {
	g := twoNetGraph(t)
	s := &recordingSolver{}
	e := NewEncoder(g, s, Options{
		UShape: true, WShape: true, W2Shape: true, LShape: true, YShape: true,
	})
	e.MakeShapeBans()
	if len(s.clauses) == 0 {
		t.Fatalf("expected shape-ban clauses to be emitted")
	}
}
