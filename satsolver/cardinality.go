package satsolver

// This file implements the cardinality families generically rather than
// hand-unrolled per arity (an earlier reference implementation hand-coded
// n==2/3/4 special cases for each of one-hot, two-hot, and zero-or-two-hot,
// which is exactly the duplication this file replaces with a single
// combinatorial construction parameterized on k).
//
// Every literal set here is small (S(n), the incident edges of one grid
// node, never exceeds six), so a direct "ban every forbidden (k+1)-subset"
// encoding stays compact and needs no auxiliary variables.

// AtMostK asserts that at most k of lits are true, by banning every
// (k+1)-subset from being simultaneously true.
func AtMostK(s Solver, lits []Lit, k int) {
	if k >= len(lits) {
		return
	}
	if k < 0 {
		for _, l := range lits {
			s.AddClause(l.Not())
		}

		return
	}
	forEachSubset(len(lits), k+1, func(idx []int) {
		clause := make([]Lit, len(idx))
		for i, j := range idx {
			clause[i] = lits[j].Not()
		}
		s.AddClause(clause...)
	})
}

// AtLeastK asserts that at least k of lits are true. It is AtMostK on
// the negated literal set with the complementary bound.
func AtLeastK(s Solver, lits []Lit, k int) {
	if k <= 0 {
		return
	}
	AtMostK(s, negateAll(lits), len(lits)-k)
}

// ExactlyOne asserts exactly one of lits is true.
func ExactlyOne(s Solver, lits []Lit) {
	AtMostK(s, lits, 1)
	AtLeastK(s, lits, 1)
}

// AtMostTwo asserts at most two of lits are true.
func AtMostTwo(s Solver, lits []Lit) {
	AtMostK(s, lits, 2)
}

// AtLeastTwo asserts at least two of lits are true.
func AtLeastTwo(s Solver, lits []Lit) {
	AtLeastK(s, lits, 2)
}

// ExactlyTwo asserts exactly two of lits are true.
func ExactlyTwo(s Solver, lits []Lit) {
	AtMostK(s, lits, 2)
	AtLeastK(s, lits, 2)
}

// NotOne asserts the count of true literals in lits is never exactly
// one: for every literal l_i, if l_i holds then some other literal must
// also hold. Equivalent to n clauses of the form
// (¬l_i ∨ l_0 ∨ ... ∨ l_{i-1} ∨ l_{i+1} ∨ ... ∨ l_{n-1}).
func NotOne(s Solver, lits []Lit) {
	n := len(lits)
	for i := 0; i < n; i++ {
		clause := make([]Lit, 0, n)
		clause = append(clause, lits[i].Not())
		for j := 0; j < n; j++ {
			if j != i {
				clause = append(clause, lits[j])
			}
		}
		s.AddClause(clause...)
	}
}

// ConditionalAtMostK asserts that, whenever cond holds, at most k of
// lits are true: every banned (k+1)-subset clause also carries ¬cond.
func ConditionalAtMostK(s Solver, cond Lit, lits []Lit, k int) {
	if k >= len(lits) {
		return
	}
	forEachSubset(len(lits), k+1, func(idx []int) {
		clause := make([]Lit, 0, len(idx)+1)
		clause = append(clause, cond.Not())
		for _, j := range idx {
			clause = append(clause, lits[j].Not())
		}
		s.AddClause(clause...)
	})
}

// ConditionalAtLeastK asserts that, whenever cond holds, at least k of
// lits are true.
func ConditionalAtLeastK(s Solver, cond Lit, lits []Lit, k int) {
	if k <= 0 {
		return
	}
	ConditionalAtMostK(s, cond, negateAll(lits), len(lits)-k)
}

// ConditionalExactlyOne asserts that, whenever cond holds, exactly one
// of lits is true.
func ConditionalExactlyOne(s Solver, cond Lit, lits []Lit) {
	ConditionalAtMostK(s, cond, lits, 1)
	ConditionalAtLeastK(s, cond, lits, 1)
}

// ConditionalZeroHot asserts that, whenever cond holds, every literal in
// lits is false.
func ConditionalZeroHot(s Solver, cond Lit, lits []Lit) {
	for _, l := range lits {
		s.AddClause(cond.Not(), l.Not())
	}
}

// forEachSubset invokes fn once per r-element subset of {0,...,n-1}, in
// lexicographic index order.
func forEachSubset(n, r int, fn func(idx []int)) {
	if r > n || r < 0 {
		return
	}
	if r == 0 {
		fn(nil)

		return
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := r - 1
		for i >= 0 && idx[i] == i+n-r {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
