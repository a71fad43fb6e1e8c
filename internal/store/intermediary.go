package store

// Intermediary is a triple drawn from the union of two bases' variables,
// used as a consistency bridge between them (§4.D, GLOSSARY).
type Intermediary struct {
	BasisIdx Index
	Vars     [3]Index
	// Offsets[m] is Vars[m]'s position in the concatenation
	// [b1[0],b1[1],b1[2],b2[0],b2[1],b2[2]]: 0..2 if it came from b1, 3..5
	// if it came only from b2. A variable shared by both triples keeps its
	// b1 offset.
	Offsets [3]int
	State   BasisState
}

// GenerateIntermediaries enumerates every 3-combination of the distinct
// variables of b1 and b2 (each sorted ascending), skipping the two
// combinations equal to b1 or b2 themselves. The emitted count is
// C(m,3)-2 where m = |vars(b1) ∪ vars(b2)| (§4.D).
func GenerateIntermediaries(b1, b2 [3]Index) []Intermediary {
	var vars [6]Index
	var offs [6]int
	n := 0

	i, j := 0, 0
	for i < 3 && j < 3 {
		switch {
		case b1[i] < b2[j]:
			vars[n], offs[n] = b1[i], i
			n++
			i++
		case b1[i] > b2[j]:
			vars[n], offs[n] = b2[j], 3+j
			n++
			j++
		default:
			vars[n], offs[n] = b1[i], i
			n++
			i++
			j++
		}
	}
	for ; i < 3; i++ {
		vars[n], offs[n] = b1[i], i
		n++
	}
	for ; j < 3; j++ {
		vars[n], offs[n] = b2[j], 3+j
		n++
	}

	b1Idx := Pair3D(b1[0], b1[1], b1[2])
	b2Idx := Pair3D(b2[0], b2[1], b2[2])

	intermediaries := make([]Intermediary, 0, 18)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				idx := Pair3D(vars[a], vars[b], vars[c])
				if idx == b1Idx || idx == b2Idx {
					continue
				}
				intermediaries = append(intermediaries, Intermediary{
					BasisIdx: idx,
					Vars:     [3]Index{vars[a], vars[b], vars[c]},
					Offsets:  [3]int{offs[a], offs[b], offs[c]},
				})
			}
		}
	}
	return intermediaries
}
