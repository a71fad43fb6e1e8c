package store

// EnsureBasisConsistency computes the consistent "bit-clique" between the
// two basis triples b1 and b2 with respect to every intermediary triple
// drawn from their combined variables (§4.E).
//
// The seven steps below mirror ensure_basis_consistency: (1-2) tighten b1,
// b2 and every intermediary locally via the §4.C projector until quiescent,
// (3-4) test every surviving (x1,x2) pair in b1.state x b2.state against
// every intermediary's current state, using TripleSetMask on the six joint
// term-signs BasisToFactor assigns each bit, (5) install and down-project
// the new b1/b2, (6) install each intermediary's accumulated proposal
// intersected with what survived, (7) report a change when steps 1-2 or
// step 5 changed a mask; narrowing an intermediary in step 6 is not
// counted.
func EnsureBasisConsistency(s *Store, b1, b2 [3]Index) UpdateResult {
	localChanged := false

	res := UpdateBasisStates(s, b1[0], b1[1], b1[2])
	if res.HasZero {
		return res
	}
	localChanged = localChanged || res.Changed

	res = UpdateBasisStates(s, b2[0], b2[1], b2[2])
	if res.HasZero {
		return res
	}
	localChanged = localChanged || res.Changed

	res = UpdateBasisStates(s, b1[0], b1[1], b1[2])
	if res.HasZero {
		return res
	}
	localChanged = localChanged || res.Changed

	intermediaries := GenerateIntermediaries(b1, b2)
	if len(intermediaries) == 0 {
		return UpdateResult{Changed: localChanged}
	}

	for quiescent := false; !quiescent; {
		quiescent = true
		for _, im := range intermediaries {
			res := UpdateBasisStates(s, im.Vars[0], im.Vars[1], im.Vars[2])
			if res.HasZero {
				return res
			}
			if res.Changed {
				localChanged = true
				quiescent = false
			}
		}
	}

	b1Idx := Pair3D(b1[0], b1[1], b1[2])
	b2Idx := Pair3D(b2[0], b2[1], b2[2])
	basis1 := s.Bases[b1Idx]
	basis2 := s.Bases[b2Idx]

	var newB1, newB2 BasisState
	proposals := make([]BasisState, len(intermediaries))

	for _, bit1 := range basisBits {
		x1 := bit1.bit
		if basis1&x1 == 0 {
			continue
		}
		factors1 := basisToFactor[x1]
		var joint [6]TermState
		joint[0] = TermState(factors1[3])
		joint[1] = TermState(factors1[4])
		joint[2] = TermState(factors1[5])

		for _, bit2 := range basisBits {
			x2 := bit2.bit
			if basis2&x2 == 0 {
				continue
			}
			factors2 := basisToFactor[x2]
			joint[3] = TermState(factors2[3])
			joint[4] = TermState(factors2[4])
			joint[5] = TermState(factors2[5])

			consistent := true
			pairProposals := make([]BasisState, len(intermediaries))
			for mi, im := range intermediaries {
				proposal := tripleSetMask[joint[im.Offsets[0]]][joint[im.Offsets[1]]][joint[im.Offsets[2]]]
				pairProposals[mi] = proposal
				if s.Bases[im.BasisIdx]&proposal == 0 {
					consistent = false
					break
				}
			}
			if !consistent {
				continue
			}

			newB1 |= x1
			newB2 |= x2
			for mi, p := range pairProposals {
				proposals[mi] |= p
			}
		}
	}

	if newB1 == 0 || newB2 == 0 {
		return UpdateResult{true, true}
	}

	b1DidChange := newB1 != basis1
	b2DidChange := newB2 != basis2

	if b1DidChange {
		s.Bases[b1Idx] = newB1
		if r := UpdateBasisStates(s, b1[0], b1[1], b1[2]); r.HasZero {
			return r
		}
	}
	if b2DidChange {
		s.Bases[b2Idx] = newB2
		if r := UpdateBasisStates(s, b2[0], b2[1], b2[2]); r.HasZero {
			return r
		}
	}

	for mi, im := range intermediaries {
		cur := s.Bases[im.BasisIdx]
		next := cur & proposals[mi]
		if next == 0 {
			return UpdateResult{true, true}
		}
		if next != cur {
			s.Bases[im.BasisIdx] = next
			if r := UpdateBasisStates(s, im.Vars[0], im.Vars[1], im.Vars[2]); r.HasZero {
				return r
			}
		}
	}

	return UpdateResult{Changed: localChanged || b1DidChange || b2DidChange}
}
