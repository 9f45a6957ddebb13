package satsolver

// Var is an opaque SAT variable handle, allocated by Solver.NewVar.
type Var int

// Lit is a literal: a variable paired with a polarity. Negation is pure
// algebra over this pair, never a sentinel value layered onto an int —
// Neg()/Pos() flip the Positive field and nothing else.
type Lit struct {
	V        Var
	Positive bool
}

// Pos returns the positive literal for v.
func Pos(v Var) Lit { return Lit{V: v, Positive: true} }

// Neg returns the negative literal for v.
func Neg(v Var) Lit { return Lit{V: v, Positive: false} }

// Not returns the negation of l.
func (l Lit) Not() Lit { return Lit{V: l.V, Positive: !l.Positive} }

// negateAll returns the element-wise negation of lits.
func negateAll(lits []Lit) []Lit {
	out := make([]Lit, len(lits))
	for i, l := range lits {
		out[i] = l.Not()
	}

	return out
}
