package store

import "testing"

func TestGenerateIntermediariesCountAndExclusion(t *testing.T) {
	b1 := [3]Index{0, 1, 2}
	b2 := [3]Index{2, 3, 4}
	// merged variable set {0,1,2,3,4}, m=5, C(5,3)-2 = 10-2 = 8.
	ims := GenerateIntermediaries(b1, b2)
	if len(ims) != 8 {
		t.Fatalf("got %d intermediaries, want 8", len(ims))
	}

	b1Idx := Pair3D(b1[0], b1[1], b1[2])
	b2Idx := Pair3D(b2[0], b2[1], b2[2])
	for _, im := range ims {
		if im.BasisIdx == b1Idx || im.BasisIdx == b2Idx {
			t.Errorf("intermediary %v duplicates an input triple", im.Vars)
		}
	}
}

func TestGenerateIntermediariesSharedVariableKeepsB1Offset(t *testing.T) {
	b1 := [3]Index{0, 1, 2}
	b2 := [3]Index{0, 3, 4}
	ims := GenerateIntermediaries(b1, b2)

	found := false
	for _, im := range ims {
		if im.Vars != [3]Index{0, 1, 3} {
			continue
		}
		found = true
		// var 0 is shared: keeps its b1 offset (0). var 1 is b1-only
		// (offset 1). var 3 is b2-only, at position 1 of b2 (offset 3+1=4).
		want := [3]int{0, 1, 4}
		if im.Offsets != want {
			t.Errorf("Offsets = %v, want %v", im.Offsets, want)
		}
	}
	if !found {
		t.Fatalf("expected intermediary (0,1,3) to be generated")
	}
}

func TestGenerateIntermediariesDisjointTriplesUseB2Offsets(t *testing.T) {
	b1 := [3]Index{0, 1, 2}
	b2 := [3]Index{3, 4, 5}
	// merged variable set has 6 members, C(6,3)-2 = 20-2 = 18.
	ims := GenerateIntermediaries(b1, b2)
	if len(ims) != 18 {
		t.Fatalf("got %d intermediaries, want 18", len(ims))
	}
	for _, im := range ims {
		for pos, v := range im.Vars {
			off := im.Offsets[pos]
			if v < 3 && off > 2 {
				t.Errorf("var %d (from b1) has offset %d, want 0..2", v, off)
			}
			if v >= 3 && off < 3 {
				t.Errorf("var %d (from b2) has offset %d, want 3..5", v, off)
			}
		}
	}
}
