package store

// UpdateResult is the outcome of a single propagation step: whether any
// mask changed, and whether any mask was driven to zero (a contradiction).
type UpdateResult struct {
	Changed bool
	HasZero bool
}

func or(a, b UpdateResult) UpdateResult {
	return UpdateResult{Changed: a.Changed || b.Changed, HasZero: a.HasZero || b.HasZero}
}

// UpdatePairStates projects term i and term j into pair(i,j), then projects
// the resulting pair state back down into the two terms, per §4.C.
func UpdatePairStates(s *Store, i, j Index) UpdateResult {
	termI, termJ := s.Terms[i], s.Terms[j]
	pairIdx := Pair2D(i, j)
	pair := s.Pairs[pairIdx]

	origTermI, origTermJ, origPair := termI, termJ, pair

	switch termI {
	case 0:
		return UpdateResult{true, true}
	case clearTermPos:
		pair &= PairAny &^ pairPosAny
	case clearTermNeg:
		pair &= PairAny &^ pairNegAny
	}

	switch termJ {
	case 0:
		return UpdateResult{true, true}
	case clearTermPos:
		pair &= PairAny &^ pairAnyPos
	case clearTermNeg:
		pair &= PairAny &^ pairAnyNeg
	}

	if pair == 0 {
		return UpdateResult{true, true}
	}

	if pair&pairNegAny == 0 {
		termI &= clearTermNeg
	}
	if pair&pairPosAny == 0 {
		termI &= clearTermPos
	}
	if termI == 0 {
		return UpdateResult{true, true}
	}

	if pair&pairAnyNeg == 0 {
		termJ &= clearTermNeg
	}
	if pair&pairAnyPos == 0 {
		termJ &= clearTermPos
	}
	if termJ == 0 {
		return UpdateResult{true, true}
	}

	s.Terms[i], s.Terms[j], s.Pairs[pairIdx] = termI, termJ, pair

	changed := pair != origPair || termI != origTermI || termJ != origTermJ
	return UpdateResult{Changed: changed}
}

// UpdateBasisStates projects the three terms into their three sub-pairs and
// into the basis, tightens the basis from the sub-pairs via
// pairToBasisMask, then projects the basis back down into the sub-pairs and
// terms via basisToFactor, per §4.C.
func UpdateBasisStates(s *Store, i, j, k Index) UpdateResult {
	ijIdx, ikIdx, jkIdx := Pair2D(i, j), Pair2D(i, k), Pair2D(j, k)
	basisIdx := Pair3D(i, j, k)

	termI, termJ, termK := s.Terms[i], s.Terms[j], s.Terms[k]
	pairIJ, pairIK, pairJK := s.Pairs[ijIdx], s.Pairs[ikIdx], s.Pairs[jkIdx]
	basis := s.Bases[basisIdx]

	origTermI, origTermJ, origTermK := termI, termJ, termK
	origPairIJ, origPairIK, origPairJK := pairIJ, pairIK, pairJK
	origBasis := basis

	switch termI {
	case 0:
		return UpdateResult{true, true}
	case clearTermPos:
		pairIJ &= PairAny &^ pairPosAny
		pairIK &= PairAny &^ pairPosAny
		basis &= BasisAny &^ (BasisPosNegNeg | BasisPosNegPos | BasisPosPosNeg | BasisPosPosPos)
	case clearTermNeg:
		pairIJ &= PairAny &^ pairNegAny
		pairIK &= PairAny &^ pairNegAny
		basis &= BasisAny &^ (BasisNegNegNeg | BasisNegNegPos | BasisNegPosNeg | BasisNegPosPos)
	}

	switch termJ {
	case 0:
		return UpdateResult{true, true}
	case clearTermPos:
		pairIJ &= PairAny &^ pairAnyPos
		pairJK &= PairAny &^ pairPosAny
		basis &= BasisAny &^ (BasisNegPosNeg | BasisNegPosPos | BasisPosPosNeg | BasisPosPosPos)
	case clearTermNeg:
		pairIJ &= PairAny &^ pairAnyNeg
		pairJK &= PairAny &^ pairNegAny
		basis &= BasisAny &^ (BasisNegNegNeg | BasisNegNegPos | BasisPosNegNeg | BasisPosNegPos)
	}

	switch termK {
	case 0:
		return UpdateResult{true, true}
	case clearTermPos:
		pairIK &= PairAny &^ pairAnyPos
		pairJK &= PairAny &^ pairAnyPos
		basis &= BasisAny &^ (BasisNegNegPos | BasisNegPosPos | BasisPosNegPos | BasisPosPosPos)
	case clearTermNeg:
		pairIK &= PairAny &^ pairAnyNeg
		pairJK &= PairAny &^ pairAnyNeg
		basis &= BasisAny &^ (BasisNegNegNeg | BasisNegPosNeg | BasisPosNegNeg | BasisPosPosNeg)
	}

	basis &= pairToBasisMask[0][pairIJ]
	basis &= pairToBasisMask[1][pairIK]
	basis &= pairToBasisMask[2][pairJK]

	factors := basisToFactor[basis]
	pairIJ &= PairState(factors[0])
	pairIK &= PairState(factors[1])
	pairJK &= PairState(factors[2])
	termI &= TermState(factors[3])
	termJ &= TermState(factors[4])
	termK &= TermState(factors[5])

	if basis == 0 || pairIJ == 0 || pairIK == 0 || pairJK == 0 ||
		termI == 0 || termJ == 0 || termK == 0 {
		return UpdateResult{true, true}
	}

	s.Terms[i], s.Terms[j], s.Terms[k] = termI, termJ, termK
	s.Pairs[ijIdx], s.Pairs[ikIdx], s.Pairs[jkIdx] = pairIJ, pairIK, pairJK
	s.Bases[basisIdx] = basis

	changed := basis != origBasis ||
		pairIJ != origPairIJ || pairIK != origPairIK || pairJK != origPairJK ||
		termI != origTermI || termJ != origTermJ || termK != origTermK
	return UpdateResult{Changed: changed}
}
