package store

// These tables are the compile-time constants that drive every propagation
// step. They are generated at init time from the bit-level definitions of
// §3/§4.B rather than transcribed, so that they stay provably consistent
// with the rest of the package; tables_test.go re-derives basisToFactor and
// pairToBasisMask independently and checks for a byte-for-byte match
// (Testable Property 3), and checks tripleSetMask's zero-input and
// full-range entries.

// basisSignPattern describes, for each of the 8 basis bits, the sign of
// each of the triple's three coordinates.
type basisSignPattern struct {
	bit        BasisState
	posI, posJ, posK bool
}

var basisBits = [8]basisSignPattern{
	{BasisNegNegNeg, false, false, false},
	{BasisNegNegPos, false, false, true},
	{BasisNegPosNeg, false, true, false},
	{BasisNegPosPos, false, true, true},
	{BasisPosNegNeg, true, false, false},
	{BasisPosNegPos, true, false, true},
	{BasisPosPosNeg, true, true, false},
	{BasisPosPosPos, true, true, true},
}

func signTerm(pos bool) TermState {
	if pos {
		return TermPos
	}
	return TermNeg
}

func signPair(posA, posB bool) PairState {
	switch {
	case !posA && !posB:
		return PairNegNeg
	case !posA && posB:
		return PairNegPos
	case posA && !posB:
		return PairPosNeg
	default:
		return PairPosPos
	}
}

// basisToFactor[s] holds, for basis mask s, the union over every set bit of
// that bit's projection onto pair-ij, pair-ik, pair-jk, term-i, term-j,
// term-k respectively (§4.B item 2).
var basisToFactor [256][6]uint8

// pairToBasisMask[axis][p] holds the union of basis bits whose projection
// onto that axis lies in pair mask p (§4.B item 1). Axis 0 = ij, 1 = ik,
// 2 = jk.
var pairToBasisMask [3][16]BasisState

// tripleSetMask[a][b][c] holds the union of basis bits whose term-i, term-j,
// term-k projections lie in a, b, c respectively (§4.B item 3). Indices run
// over the full 2-bit term mask range 0..3; a 0 index always yields 0.
var tripleSetMask [4][4][4]BasisState

func init() {
	for s := 0; s < 256; s++ {
		var ij, ik, jk PairState
		var ti, tj, tk TermState
		for _, b := range basisBits {
			if BasisState(s)&b.bit == 0 {
				continue
			}
			ij |= signPair(b.posI, b.posJ)
			ik |= signPair(b.posI, b.posK)
			jk |= signPair(b.posJ, b.posK)
			ti |= signTerm(b.posI)
			tj |= signTerm(b.posJ)
			tk |= signTerm(b.posK)
		}
		basisToFactor[s] = [6]uint8{uint8(ij), uint8(ik), uint8(jk), uint8(ti), uint8(tj), uint8(tk)}
	}

	for p := 0; p < 16; p++ {
		var ij, ik, jk BasisState
		for _, b := range basisBits {
			if PairState(p)&signPair(b.posI, b.posJ) != 0 {
				ij |= b.bit
			}
			if PairState(p)&signPair(b.posI, b.posK) != 0 {
				ik |= b.bit
			}
			if PairState(p)&signPair(b.posJ, b.posK) != 0 {
				jk |= b.bit
			}
		}
		pairToBasisMask[0][p] = ij
		pairToBasisMask[1][p] = ik
		pairToBasisMask[2][p] = jk
	}

	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			for c := 0; c < 4; c++ {
				if a == 0 || b == 0 || c == 0 {
					tripleSetMask[a][b][c] = 0
					continue
				}
				var union BasisState
				for _, bit := range basisBits {
					if TermState(a)&signTerm(bit.posI) == 0 {
						continue
					}
					if TermState(b)&signTerm(bit.posJ) == 0 {
						continue
					}
					if TermState(c)&signTerm(bit.posK) == 0 {
						continue
					}
					union |= bit.bit
				}
				tripleSetMask[a][b][c] = union
			}
		}
	}
}
