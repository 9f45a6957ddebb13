package satsolver

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// giniSolver implements Solver on top of github.com/irifrance/gini, a
// real incremental CDCL SAT engine. gini addresses variables with
// z.Var/z.Lit; this type is the sole translation layer between that
// vocabulary and this package's Var/Lit.
type giniSolver struct {
	g        *gini.Gini
	nextVar  int
	lastVals map[z.Var]bool
}

// NewGiniSolver constructs a Solver backed by a fresh gini instance.
func NewGiniSolver() Solver {
	return &giniSolver{g: gini.New()}
}

func (s *giniSolver) NewVar() Var {
	v := s.g.NewVar()
	s.nextVar++

	return Var(v)
}

func toZLit(l Lit) z.Lit {
	v := z.Var(l.V)
	if l.Positive {
		return v.Pos()
	}

	return v.Neg()
}

func (s *giniSolver) AddClause(lits ...Lit) {
	if len(lits) == 0 {
		panic(ErrEmptyClause)
	}
	for _, l := range lits {
		s.g.Add(toZLit(l))
	}
	s.g.Add(0)
}

func (s *giniSolver) Solve(assume ...Lit) Result {
	for _, l := range assume {
		s.g.Assume(toZLit(l))
	}
	switch s.g.Solve() {
	case 1:
		return True
	case -1:
		return False
	default:
		return Unknown
	}
}

func (s *giniSolver) Value(v Var) bool {
	return s.g.Value(z.Var(v).Pos())
}

func (s *giniSolver) VarCount() int {
	return s.nextVar
}
