package bruteforce

import (
	"testing"

	"github.com/hartwell/triadsat"
)

func TestCheckSatisfiabilityFindsWitness(t *testing.T) {
	formula := [][]triadsat.Literal{
		{triadsat.PositiveLiteral(0), triadsat.PositiveLiteral(1)},
		{triadsat.NegativeLiteral(0), triadsat.NegativeLiteral(1)},
	}
	sat, n, witness, err := CheckSatisfiability(formula, 2)
	if err != nil {
		t.Fatalf("CheckSatisfiability: %v", err)
	}
	if !sat {
		t.Fatalf("expected satisfiable")
	}
	if n != 2 {
		t.Errorf("numSolutions = %d, want 2", n)
	}
	if witness[0] == witness[1] {
		t.Errorf("witness = %v, want exactly one of the two variables true", witness)
	}
}

func TestCheckSatisfiabilityUnsatisfiable(t *testing.T) {
	formula := [][]triadsat.Literal{
		{triadsat.PositiveLiteral(0)},
		{triadsat.NegativeLiteral(0)},
	}
	sat, n, witness, err := CheckSatisfiability(formula, 1)
	if err != nil {
		t.Fatalf("CheckSatisfiability: %v", err)
	}
	if sat {
		t.Errorf("expected unsatisfiable")
	}
	if n != 0 {
		t.Errorf("numSolutions = %d, want 0", n)
	}
	if witness != nil {
		t.Errorf("witness = %v, want nil", witness)
	}
}

func TestCheckSatisfiabilityRejectsTooManyVars(t *testing.T) {
	_, _, _, err := CheckSatisfiability(nil, MaxVars+1)
	if err == nil {
		t.Errorf("expected an error above MaxVars")
	}
	if _, ok := err.(ErrTooManyVars); !ok {
		t.Errorf("err = %T, want ErrTooManyVars", err)
	}
}

func TestCheckSatisfiabilityEmptyFormulaIsTriviallySatisfiable(t *testing.T) {
	sat, n, _, err := CheckSatisfiability(nil, 3)
	if err != nil {
		t.Fatalf("CheckSatisfiability: %v", err)
	}
	if !sat || n != 8 {
		t.Errorf("sat=%v n=%d, want sat=true n=8", sat, n)
	}
}
