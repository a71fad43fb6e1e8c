package store

// Lit is a single clause literal: variable index plus its polarity.
type Lit struct {
	Var     Index
	Negated bool
}

// Clause is a disjunction of literals as handed to ApplyClauses.
type Clause []Lit

// ErrEmptyClause is returned by ApplyClauses when a clause has no literals,
// which is unsatisfiable by definition and not something the bit-encoded
// store can represent as a constraint.
type ErrEmptyClause struct{}

func (ErrEmptyClause) Error() string { return "store: empty clause" }

// ApplyClauses folds every clause into the store's term/pair/basis arrays
// (§4.H). Clauses of width 1-3 clear bits directly. Wider clauses are
// rewritten into a chain of 3-literal clauses using fresh auxiliary
// variables, each appended to the store via Grow, following the standard
// Tseitin-style splitting: a clause (l1,...,lm) for m>3 becomes
// (l1,l2,a1), (¬a1,l3,a2), (¬a2,l4,a3), ..., (¬a(m-3),l(m-1),lm).
func ApplyClauses(s *Store, clauses []Clause) error {
	for _, c := range clauses {
		if err := applyClause(s, c); err != nil {
			return err
		}
	}
	return nil
}

func applyClause(s *Store, c Clause) error {
	switch {
	case len(c) == 0:
		return ErrEmptyClause{}
	case len(c) == 1:
		applyUnit(s, c[0])
		return nil
	case len(c) == 2:
		applyBinary(s, c[0], c[1])
		return nil
	case len(c) == 3:
		applyTernary(s, c[0], c[1], c[2])
		return nil
	default:
		return applyWide(s, c)
	}
}

func applyUnit(s *Store, a Lit) {
	s.Terms[a.Var] &= oneDClearMasks[boolIdx(a.Negated)]
}

func applyBinary(s *Store, a, b Lit) {
	i, j := a.Var, b.Var
	negI, negJ := a.Negated, b.Negated
	if i > j {
		i, j = j, i
		negI, negJ = negJ, negI
	}
	idx := Pair2D(i, j)
	s.Pairs[idx] &= twoDClearMasks[boolIdx(negI)][boolIdx(negJ)]
}

func applyTernary(s *Store, a, b, c Lit) {
	lits := [3]Lit{a, b, c}
	// sort by variable index, carrying each literal's polarity along.
	for p := 0; p < 3; p++ {
		for q := p + 1; q < 3; q++ {
			if lits[q].Var < lits[p].Var {
				lits[p], lits[q] = lits[q], lits[p]
			}
		}
	}
	idx := Pair3D(lits[0].Var, lits[1].Var, lits[2].Var)
	s.Bases[idx] &= threeDClearMasks[boolIdx(lits[0].Negated)][boolIdx(lits[1].Negated)][boolIdx(lits[2].Negated)]
}

// applyWide rewrites a clause of width > 3 into a chain of ternary clauses
// over the clause's own literals plus fresh auxiliary variables, then
// applies each link directly.
func applyWide(s *Store, c Clause) error {
	m := len(c)
	numAux := m - 3
	firstAux := s.NumVars
	s.Grow(numAux)

	aux := func(idx int) Lit {
		return Lit{Var: firstAux + Index(idx), Negated: false}
	}
	notAux := func(idx int) Lit {
		return Lit{Var: firstAux + Index(idx), Negated: true}
	}

	applyTernary(s, c[0], c[1], aux(0))
	for idx := 1; idx < numAux; idx++ {
		applyTernary(s, notAux(idx-1), c[idx+1], aux(idx))
	}
	applyTernary(s, notAux(numAux-1), c[m-2], c[m-1])
	return nil
}
