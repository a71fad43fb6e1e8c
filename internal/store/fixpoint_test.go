package store

import "testing"

func TestEnsureGlobalConsistencyPropagatesUnitAcrossPair(t *testing.T) {
	s := NewStore(3)
	ApplyClauses(s, []Clause{
		{{Var: 0, Negated: false}},                         // x0
		{{Var: 0, Negated: true}, {Var: 1, Negated: true}}, // !x0 or !x1, i.e. x0 -> !x1
	})

	res := EnsureGlobalConsistency(s)
	if res.HasZero {
		t.Fatalf("unexpected contradiction")
	}
	if s.Terms[0] != TermPos {
		t.Errorf("Terms[0] = %v, want TermPos", s.Terms[0])
	}
	if s.Terms[1] != TermNeg {
		t.Errorf("Terms[1] = %v, want TermNeg", s.Terms[1])
	}
}

func TestEnsureGlobalConsistencyDetectsUnitConflict(t *testing.T) {
	s := NewStore(1)
	ApplyClauses(s, []Clause{
		{{Var: 0, Negated: false}},
		{{Var: 0, Negated: true}},
	})

	res := EnsureGlobalConsistency(s)
	if !res.HasZero {
		t.Errorf("expected a contradiction from x0 and !x0")
	}
}

func TestEnsureGlobalConsistencyReachesFixpointOnSmallSatisfiableInstance(t *testing.T) {
	s := NewStore(3)
	// (x0 or x1 or x2), (!x0 or !x1), (!x1 or !x2): satisfiable, e.g.
	// x0=true, x1=false, x2=false.
	ApplyClauses(s, []Clause{
		{{Var: 0}, {Var: 1}, {Var: 2}},
		{{Var: 0, Negated: true}, {Var: 1, Negated: true}},
		{{Var: 1, Negated: true}, {Var: 2, Negated: true}},
	})

	res := EnsureGlobalConsistency(s)
	if res.HasZero {
		t.Fatalf("unexpected contradiction on a satisfiable instance")
	}
	for i, term := range s.Terms {
		if term == TermNone {
			t.Errorf("Terms[%d] is empty after a consistent fixpoint", i)
		}
	}
}

func TestEnsureGlobalConsistencyIsIdempotent(t *testing.T) {
	s := NewStore(4)
	ApplyClauses(s, []Clause{
		{{Var: 0}, {Var: 1}},
		{{Var: 1}, {Var: 2}, {Var: 3}},
	})
	EnsureGlobalConsistency(s)
	before := s.Clone()

	res := EnsureGlobalConsistency(s)
	if res.Changed {
		t.Errorf("second call at fixpoint reported a change")
	}
	if changed, _ := s.IntersectFrom(before); changed {
		t.Errorf("store differs from its own fixpoint snapshot")
	}
}
