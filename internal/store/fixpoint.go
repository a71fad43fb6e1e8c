package store

import (
	"math/bits"

	"github.com/rhartert/yagh"
)

// EnsureGlobalConsistency drives every local propagator to a fixpoint: it
// repeats full sweeps of UpdatePairStates, UpdateBasisStates and
// EnsureBasisConsistency over every ordered pair of distinct basis triples
// (two, one, or zero shared variables alike) until a sweep leaves every
// array untouched, or until some mask is driven to zero (§4.F).
//
// Within each sweep, the work items are drained from a yagh priority
// worklist ordered by how few candidate bits a pair or basis currently
// holds, so the tightest constraints propagate first; §4.F requires no
// particular order, this is purely a scheduling heuristic.
func EnsureGlobalConsistency(s *Store) UpdateResult {
	n := s.NumVars
	if n < 2 {
		for _, t := range s.Terms {
			if t == TermNone {
				return UpdateResult{true, true}
			}
		}
		return UpdateResult{}
	}

	anyChanged := false
	for {
		changed, hasZero := sweepPairs(s, n)
		if hasZero {
			return UpdateResult{true, true}
		}
		anyChanged = anyChanged || changed

		if n >= 3 {
			bChanged, hasZero := sweepBases(s, n)
			if hasZero {
				return UpdateResult{true, true}
			}
			anyChanged = anyChanged || bChanged
			changed = changed || bChanged

			cChanged, hasZero := sweepConsistency(s, n)
			if hasZero {
				return UpdateResult{true, true}
			}
			anyChanged = anyChanged || cChanged
			changed = changed || cChanged
		}

		if !changed {
			break
		}
	}

	return UpdateResult{Changed: anyChanged}
}

func sweepPairs(s *Store, n Index) (changed, hasZero bool) {
	q := yagh.New[int](int(Choose2(n)))
	for j := Index(1); j < n; j++ {
		for i := Index(0); i < j; i++ {
			idx := Pair2D(i, j)
			q.Put(int(idx), bits.OnesCount8(uint8(s.Pairs[idx])))
		}
	}
	for {
		elem, ok := q.Pop()
		if !ok {
			break
		}
		i, j := Unpair2D(Index(elem.Elem))
		res := UpdatePairStates(s, i, j)
		if res.HasZero {
			return true, true
		}
		changed = changed || res.Changed
	}
	return changed, false
}

func sweepBases(s *Store, n Index) (changed, hasZero bool) {
	return sweepBasesRange(s, n, 0, Choose3(n))
}

// sweepBasesRange is like sweepBases but only processes basis indices in
// [lo, hi); it is what lets ParallelEnsureGlobalConsistency split the basis
// array into segments, one per worker.
func sweepBasesRange(s *Store, n Index, lo, hi Index) (changed, hasZero bool) {
	if hi > Choose3(n) {
		hi = Choose3(n)
	}
	q := yagh.New[int](int(hi))
	for idx := lo; idx < hi; idx++ {
		q.Put(int(idx), bits.OnesCount8(uint8(s.Bases[idx])))
	}
	for {
		elem, ok := q.Pop()
		if !ok {
			break
		}
		i, j, k := Unpair3D(Index(elem.Elem))
		res := UpdateBasisStates(s, i, j, k)
		if res.HasZero {
			return true, true
		}
		changed = changed || res.Changed
	}
	return changed, false
}

// sweepConsistency runs EnsureBasisConsistency over every ordered pair of
// distinct basis triples (§4.F), covering all three of §4.D's sharing
// regimes: two, one, or zero variables in common.
func sweepConsistency(s *Store, n Index) (changed, hasZero bool) {
	return sweepConsistencyRange(s, n, 0, Choose3(n))
}

// sweepConsistencyRange is like sweepConsistency but only uses basis
// indices in [lo, hi) as the anchor of each ordered pair; the triple on
// the other side of each pair ranges over the full basis-index space
// regardless of which segment this worker owns, since the clone being
// swept holds the full array.
func sweepConsistencyRange(s *Store, n Index, lo, hi Index) (changed, hasZero bool) {
	total := Choose3(n)
	if hi > total {
		hi = total
	}
	q := yagh.New[int](int(hi))
	for idx := lo; idx < hi; idx++ {
		q.Put(int(idx), bits.OnesCount8(uint8(s.Bases[idx])))
	}

	for {
		elem, ok := q.Pop()
		if !ok {
			break
		}
		anchorIdx := Index(elem.Elem)
		i, j, k := Unpair3D(anchorIdx)
		for otherIdx := Index(0); otherIdx < total; otherIdx++ {
			if otherIdx == anchorIdx {
				continue
			}
			oi, oj, ok3 := Unpair3D(otherIdx)
			res := EnsureBasisConsistency(s, [3]Index{i, j, k}, [3]Index{oi, oj, ok3})
			if res.HasZero {
				return true, true
			}
			changed = changed || res.Changed
		}
	}
	return changed, false
}
