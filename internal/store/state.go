package store

// TermState is the 2-bit candidate mask over {NEG, POS} for a single
// variable. A value of 0 means the variable has no remaining candidate
// sign, i.e. a contradiction.
type TermState uint8

// PairState is the 4-bit candidate mask over the four sign combinations of
// an ordered pair of variables, bit positions 1, 2, 4, 8 for
// (NEG,NEG), (NEG,POS), (POS,NEG), (POS,POS) respectively.
type PairState uint8

// BasisState is the 8-bit candidate mask over the eight sign patterns of an
// ordered triple (i,j,k) of variables: a pattern's bit index is
// 4*i + 2*j + k, counting a coordinate as 1 when it is POS (so
// BasisNegNegPos is bit 1 and BasisPosNegNeg is bit 4).
type BasisState uint8

const (
	TermNeg TermState = 1 << iota // variable may be negative
	TermPos                       // variable may be positive
	TermAny = TermNeg | TermPos
	TermNone TermState = 0
)

// clearTermPos and clearTermNeg are the masks used to commit a term to the
// opposite sign, i.e. clear the complementary bit.
const (
	clearTermPos = TermAny &^ TermPos
	clearTermNeg = TermAny &^ TermNeg
)

// oneDClearMasks[negated] gives the mask to AND into a term state when a
// unit clause fixes that term's sign.
var oneDClearMasks = [2]TermState{clearTermNeg, clearTermPos}

const (
	PairNegNeg PairState = 1 << iota
	PairNegPos
	PairPosNeg
	PairPosPos
	PairNone PairState = 0
	PairAny            = PairNegNeg | PairNegPos | PairPosNeg | PairPosPos
)

var (
	pairNegAny = PairNegNeg | PairNegPos
	pairPosAny = PairPosNeg | PairPosPos
	pairAnyNeg = PairNegNeg | PairPosNeg
	pairAnyPos = PairNegPos | PairPosPos
)

// twoDClearMasks[negatedI][negatedJ] gives the mask to AND into a pair state
// when a binary clause fixes the signs of both of its literals.
var twoDClearMasks = [2][2]PairState{
	{PairAny &^ PairNegNeg, PairAny &^ PairNegPos},
	{PairAny &^ PairPosNeg, PairAny &^ PairPosPos},
}

const (
	BasisNegNegNeg BasisState = 1 << iota
	BasisNegNegPos
	BasisNegPosNeg
	BasisNegPosPos
	BasisPosNegNeg
	BasisPosNegPos
	BasisPosPosNeg
	BasisPosPosPos
	BasisNone BasisState = 0
	BasisAny             = BasisNegNegNeg | BasisNegNegPos | BasisNegPosNeg | BasisNegPosPos |
		BasisPosNegNeg | BasisPosNegPos | BasisPosPosNeg | BasisPosPosPos
)

// threeDClearMasks[negatedI][negatedJ][negatedK] gives the mask to AND into
// a basis state when a ternary clause fixes the signs of all three of its
// literals.
var threeDClearMasks [2][2][2]BasisState

// threeDSetMasks[isPosI][isPosJ][isPosK] is the single basis bit
// corresponding to that sign pattern.
var threeDSetMasks [2][2][2]BasisState

func init() {
	all := []struct {
		bit          BasisState
		i, j, k bool // true means POS
	}{
		{BasisNegNegNeg, false, false, false},
		{BasisNegNegPos, false, false, true},
		{BasisNegPosNeg, false, true, false},
		{BasisNegPosPos, false, true, true},
		{BasisPosNegNeg, true, false, false},
		{BasisPosNegPos, true, false, true},
		{BasisPosPosNeg, true, true, false},
		{BasisPosPosPos, true, true, true},
	}
	for _, e := range all {
		bi, bj, bk := boolIdx(e.i), boolIdx(e.j), boolIdx(e.k)
		threeDSetMasks[bi][bj][bk] = e.bit
		// negated[x] == true means the literal for coordinate x is negated,
		// i.e. it is satisfied when the coordinate is NEG. threeDClearMasks
		// is indexed by "negated", so a clause (neg_i, neg_j, neg_k) clears
		// every basis bit whose sign pattern equals (neg_i, neg_j, neg_k)
		// after translating "the literal holds" into "the coordinate has
		// that sign".
	}
	for ni := 0; ni < 2; ni++ {
		for nj := 0; nj < 2; nj++ {
			for nk := 0; nk < 2; nk++ {
				// Literal (var, negated) is falsified when the variable's
				// sign is POS if negated, NEG otherwise. The clause clears
				// the one basis bit matching the all-literals-false pattern.
				posI, posJ, posK := ni == 1, nj == 1, nk == 1
				bit := threeDSetMasks[boolIdx(posI)][boolIdx(posJ)][boolIdx(posK)]
				threeDClearMasks[ni][nj][nk] = BasisAny &^ bit
			}
		}
	}
}

func boolIdx(b bool) int {
	if b {
		return 1
	}
	return 0
}
