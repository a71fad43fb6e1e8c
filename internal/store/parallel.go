package store

import "sync"

// ParallelEnsureGlobalConsistency drives the store to a fixpoint the same
// way EnsureGlobalConsistency does, but splits the basis array into
// workers contiguous segments each round and processes them concurrently
// on independent clones, merging the results back with a bitwise AND
// (§4.G). Because every local propagator only clears bits, each worker's
// clone can only be tighter than or equal to the round's starting point,
// so the AND-merge is sound no matter how the segments are drawn — the
// division below exists to balance work, not to preserve correctness.
func ParallelEnsureGlobalConsistency(s *Store, workers int) UpdateResult {
	if workers < 1 {
		workers = 1
	}
	n := s.NumVars
	if workers == 1 || n < 3 {
		return EnsureGlobalConsistency(s)
	}

	numBases := Choose3(n)
	segSize := (numBases + Index(workers) - 1) / Index(workers)

	anyChanged := false
	for {
		pChanged, hasZero := sweepPairs(s, n)
		if hasZero {
			return UpdateResult{true, true}
		}

		clones := make([]*Store, workers)
		results := make([]UpdateResult, workers)

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			lo := Index(w) * segSize
			hi := lo + segSize
			if lo >= numBases {
				clones[w] = nil
				continue
			}
			clones[w] = cloneWithPooledBases(s)
			wg.Add(1)
			go func(w int, lo, hi Index) {
				defer wg.Done()
				bChanged, hasZero := sweepBasesRange(clones[w], n, lo, hi)
				if hasZero {
					results[w] = UpdateResult{true, true}
					return
				}
				cChanged, hasZero := sweepConsistencyRange(clones[w], n, lo, hi)
				if hasZero {
					results[w] = UpdateResult{true, true}
					return
				}
				results[w] = UpdateResult{Changed: bChanged || cChanged}
			}(w, lo, hi)
		}
		wg.Wait()

		roundChanged := pChanged
		for _, r := range results {
			if r.HasZero {
				return UpdateResult{true, true}
			}
			roundChanged = roundChanged || r.Changed
		}

		for _, clone := range clones {
			if clone == nil {
				continue
			}
			changed, hasZero := s.IntersectFrom(clone)
			releaseBases(clone.Bases)
			if hasZero {
				return UpdateResult{true, true}
			}
			roundChanged = roundChanged || changed
		}

		anyChanged = anyChanged || roundChanged
		if !roundChanged {
			break
		}
	}

	return UpdateResult{Changed: anyChanged}
}
