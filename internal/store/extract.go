package store

import "fmt"

// ExtractionError reports that the store reached a contradiction while
// committing a tentative solution: either a mask was already empty going
// into extraction, or the re-propagation after a commit emptied one.
// Extraction does not backtrack, so this does not show that the instance
// is unsatisfiable (§4.I).
type ExtractionError struct {
	Index Index
}

func (e ExtractionError) Error() string {
	return fmt.Sprintf("store: contradiction committing variable %d during solution extraction", e.Index)
}

// ExtractSolution reads a full sign assignment off a store that
// EnsureGlobalConsistency (or its parallel form) has already driven to a
// fixpoint with no zero mask. Extraction steps through triples in strides
// of three: for each, if the basis mask is not already a singleton it is
// committed to its lowest set bit (the deterministic, monotone choice of
// §4.I), then §4.C re-runs on the triple, then a full §4.C sweep and
// another full §4.F pass re-establish global consistency before the next
// stride is read — a commit's consequences for every other not-yet-
// committed triple must be propagated before it, too, is committed, or
// later strides can be forced into a combination this one's commit
// already ruled out. A final stride of one or two variables is handled
// directly off the pair or term array. It returns one bool per variable,
// true for POS, false for NEG.
func ExtractSolution(s *Store) ([]bool, error) {
	n := s.NumVars
	assignment := make([]bool, n)

	var i Index
	for ; i+3 <= n; i += 3 {
		a, b, c := i, i+1, i+2
		basisIdx := Pair3D(a, b, c)

		if basis := s.Bases[basisIdx]; basis == 0 {
			return nil, ExtractionError{Index: a}
		} else if basis&(basis-1) != 0 {
			// more than one bit set: commit to the lowest surviving pattern.
			s.Bases[basisIdx] = lowestSetBit(basis)
		}

		if res := UpdateBasisStates(s, a, b, c); res.HasZero {
			return nil, ExtractionError{Index: a}
		}

		if res := EnsureGlobalConsistency(s); res.HasZero {
			return nil, ExtractionError{Index: a}
		}

		assignment[a] = commitSign(s, a)
		assignment[b] = commitSign(s, b)
		assignment[c] = commitSign(s, c)
	}

	switch n - i {
	case 2:
		a, b := i, i+1
		pairIdx := Pair2D(a, b)
		if pair := s.Pairs[pairIdx]; pair == 0 {
			return nil, ExtractionError{Index: a}
		} else if pair&(pair-1) != 0 {
			s.Pairs[pairIdx] = lowestSetPairBit(pair)
		}
		if res := UpdatePairStates(s, a, b); res.HasZero {
			return nil, ExtractionError{Index: a}
		}
		assignment[a] = commitSign(s, a)
		assignment[b] = commitSign(s, b)
	case 1:
		a := i
		if s.Terms[a] == TermNone {
			return nil, ExtractionError{Index: a}
		}
		assignment[a] = commitSign(s, a)
	}

	return assignment, nil
}

// commitSign pins a term that may still be ambiguous to POS, reads off its
// sign and returns it; it never widens the mask and is only reached after
// the basis/pair commit above has already made the term a singleton, so in
// practice it is a pure read for strides of three or two.
func commitSign(s *Store, i Index) bool {
	if s.Terms[i]&TermNeg != 0 && s.Terms[i]&TermPos == 0 {
		return false
	}
	if s.Terms[i] == TermAny {
		s.Terms[i] = TermPos
	}
	return s.Terms[i] == TermPos
}

// lowestSetBit returns the lowest set bit of a BasisState, the deterministic
// commit choice of §4.I (basis_states[basis_idx] & -basis_states[basis_idx]
// in the original).
func lowestSetBit(b BasisState) BasisState {
	return b & -b
}

// lowestSetPairBit returns the lowest set bit of a PairState, used for the
// two-variable tail of extraction.
func lowestSetPairBit(p PairState) PairState {
	return p & -p
}
