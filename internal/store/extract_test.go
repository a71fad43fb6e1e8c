package store

import "testing"

func TestExtractSolutionSingleVariable(t *testing.T) {
	s := NewStore(1)
	s.Terms[0] = TermPos

	assignment, err := ExtractSolution(s)
	if err != nil {
		t.Fatalf("ExtractSolution: %v", err)
	}
	if len(assignment) != 1 || !assignment[0] {
		t.Errorf("assignment = %v, want [true]", assignment)
	}
}

func TestExtractSolutionSingleAmbiguousVariableFixesToPos(t *testing.T) {
	s := NewStore(1)
	s.Terms[0] = TermAny

	assignment, err := ExtractSolution(s)
	if err != nil {
		t.Fatalf("ExtractSolution: %v", err)
	}
	if !assignment[0] {
		t.Errorf("assignment[0] = false, want true (ambiguous singleton fixes to POS)")
	}
}

func TestExtractSolutionTwoVariables(t *testing.T) {
	s := NewStore(2)
	s.Terms[0] = TermNeg
	s.Terms[1] = TermAny
	s.Pairs[Pair2D(0, 1)] = PairNegNeg | PairNegPos

	assignment, err := ExtractSolution(s)
	if err != nil {
		t.Fatalf("ExtractSolution: %v", err)
	}
	if assignment[0] {
		t.Errorf("assignment[0] = true, want false")
	}
}

func TestExtractSolutionThreeVariablesWithFullStride(t *testing.T) {
	s := NewStore(3)
	// x0, (!x0 or x1), (!x1 or x2): an implication chain that pins every
	// term to a singleton well before extraction runs.
	ApplyClauses(s, []Clause{
		{{Var: 0}},
		{{Var: 0, Negated: true}, {Var: 1}},
		{{Var: 1, Negated: true}, {Var: 2}},
	})
	if res := EnsureGlobalConsistency(s); res.HasZero {
		t.Fatalf("unexpected contradiction")
	}

	assignment, err := ExtractSolution(s)
	if err != nil {
		t.Fatalf("ExtractSolution: %v", err)
	}
	want := []bool{true, true, true}
	for i := range want {
		if assignment[i] != want[i] {
			t.Errorf("assignment[%d] = %v, want %v", i, assignment[i], want[i])
		}
	}
}

// TestExtractSolutionCommitsBasisNotTermsIndependently exercises the case
// the per-term commit used to get wrong: a basis mask that still allows two
// patterns where every individual term is ambiguous on its own, but the two
// surviving patterns don't include the all-NEG combination. Extraction must
// commit to one of the patterns the basis mask actually allows, not
// independently NEG-first per term (which can land outside the mask).
func TestExtractSolutionCommitsBasisNotTermsIndependently(t *testing.T) {
	s := NewStore(3)
	ApplyClauses(s, []Clause{
		{{Var: 0}, {Var: 1}, {Var: 2}},
		{{Var: 0, Negated: true}, {Var: 1, Negated: true}, {Var: 2, Negated: true}},
	})
	if res := EnsureGlobalConsistency(s); res.HasZero {
		t.Fatalf("unexpected contradiction")
	}

	assignment, err := ExtractSolution(s)
	if err != nil {
		t.Fatalf("ExtractSolution: %v", err)
	}

	satisfied := assignment[0] || assignment[1] || assignment[2]
	if !satisfied {
		t.Errorf("assignment %v falsifies the first clause (all variables NEG)", assignment)
	}
	allPos := assignment[0] && assignment[1] && assignment[2]
	if allPos {
		t.Errorf("assignment %v falsifies the second clause (all variables POS)", assignment)
	}
}

func TestExtractSolutionFailsOnPreexistingContradiction(t *testing.T) {
	s := NewStore(1)
	s.Terms[0] = TermNone

	_, err := ExtractSolution(s)
	if err == nil {
		t.Errorf("expected an extraction error for a zero term mask")
	}
}

func TestExtractSolutionSixVariablesMultipleStrides(t *testing.T) {
	s := NewStore(6)
	for i := Index(0); i < 6; i++ {
		if i%2 == 0 {
			s.Terms[i] = TermPos
		} else {
			s.Terms[i] = TermNeg
		}
	}
	for j := Index(1); j < 6; j++ {
		for i := Index(0); i < j; i++ {
			idx := Pair2D(i, j)
			s.Pairs[idx] = signPair(s.Terms[i] == TermPos, s.Terms[j] == TermPos)
		}
	}
	for k := Index(2); k < 6; k++ {
		for j := Index(1); j < k; j++ {
			for i := Index(0); i < j; i++ {
				idx := Pair3D(i, j, k)
				s.Bases[idx] = threeDSetMasks[boolIdx(s.Terms[i] == TermPos)][boolIdx(s.Terms[j] == TermPos)][boolIdx(s.Terms[k] == TermPos)]
			}
		}
	}

	assignment, err := ExtractSolution(s)
	if err != nil {
		t.Fatalf("ExtractSolution: %v", err)
	}
	want := []bool{true, false, true, false, true, false}
	for i := range want {
		if assignment[i] != want[i] {
			t.Errorf("assignment[%d] = %v, want %v", i, assignment[i], want[i])
		}
	}
}
