package encoder

import (
	"math/bits"

	"github.com/katalvlaran/nlsat/satsolver"
)

// labelWidth returns the label-vector length for k distinct labels
// under the active encoding: k (one-hot) or ceil(log2(k+1)) (binary).
func (e *Encoder) labelWidth(k int) int {
	if !e.opts.BinaryEncoding {
		return k
	}
	w := bits.Len(uint(k))

	return w
}

// fixLabel asserts that node n's label equals value (0-based), via unit
// clauses.
func (e *Encoder) fixLabel(n, value int) {
	vars := e.nodeVars[n]
	if e.opts.BinaryEncoding {
		code := value + 1
		for i, v := range vars {
			if code&(1<<i) != 0 {
				e.solver.AddClause(satsolver.Pos(v))
			} else {
				e.solver.AddClause(satsolver.Neg(v))
			}
		}

		return
	}
	for i, v := range vars {
		if i == value {
			e.solver.AddClause(satsolver.Pos(v))
		} else {
			e.solver.AddClause(satsolver.Neg(v))
		}
	}
}

// conditionalFixLabel is fixLabel gated by cond.
func (e *Encoder) conditionalFixLabel(cond satsolver.Lit, n, value int) {
	vars := e.nodeVars[n]
	if e.opts.BinaryEncoding {
		code := value + 1
		for i, v := range vars {
			if code&(1<<i) != 0 {
				e.solver.AddClause(cond.Not(), satsolver.Pos(v))
			} else {
				e.solver.AddClause(cond.Not(), satsolver.Neg(v))
			}
		}

		return
	}
	for i, v := range vars {
		if i == value {
			e.solver.AddClause(cond.Not(), satsolver.Pos(v))
		} else {
			e.solver.AddClause(cond.Not(), satsolver.Neg(v))
		}
	}
}

// conditionalEqualLabels asserts that, whenever cond holds, nodes a and
// b carry bitwise-equal labels.
func (e *Encoder) conditionalEqualLabels(cond satsolver.Lit, a, b int) {
	va, vb := e.nodeVars[a], e.nodeVars[b]
	for i := range va {
		x, y := satsolver.Pos(va[i]), satsolver.Pos(vb[i])
		e.solver.AddClause(cond.Not(), x.Not(), y)
		e.solver.AddClause(cond.Not(), x, y.Not())
	}
}

// conditionalDistinctOneHotBits asserts that, whenever cond holds, no
// one-hot bit position is simultaneously true on both a and b. This is
// the one-hot-only complement to conditionalEqualLabels used under
// ¬E[e]: it prevents two adjacent, label-carrying cells from looking
// equal by coincidence when the edge between them was not selected. It
// is a no-op under binary encoding.
func (e *Encoder) conditionalDistinctOneHotBits(cond satsolver.Lit, a, b int) {
	if e.opts.BinaryEncoding {
		return
	}
	va, vb := e.nodeVars[a], e.nodeVars[b]
	for i := range va {
		e.solver.AddClause(cond.Not(), satsolver.Neg(va[i]), satsolver.Neg(vb[i]))
	}
}
