// Package bruteforce exhaustively checks small CNF formulas by trying
// every sign assignment, independently of the constraint-store propagator,
// so the propagator's results can be cross-checked on instances small
// enough to enumerate.
package bruteforce

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/hartwell/triadsat"
)

// MaxVars bounds the variable counts this package will enumerate; beyond
// it 2^n assignments is no longer a reasonable amount of work.
const MaxVars = 20

// ErrTooManyVars is returned when CheckSatisfiability is asked to
// enumerate more than MaxVars variables.
type ErrTooManyVars struct {
	NumVars int
}

func (e ErrTooManyVars) Error() string {
	return fmt.Sprintf("bruteforce: %d variables exceeds the %d-variable enumeration limit", e.NumVars, MaxVars)
}

// CheckSatisfiability tries every one of the 2^numVars sign assignments
// against formula and reports whether any satisfies it, how many do, and
// one witness assignment (nil if none exists).
func CheckSatisfiability(formula [][]triadsat.Literal, numVars int) (sat bool, numSolutions int, witness []bool, err error) {
	if numVars > MaxVars {
		return false, 0, nil, ErrTooManyVars{NumVars: numVars}
	}

	total := 1 << numVars
	for mask := 0; mask < total; mask++ {
		assignment := assignmentFromMask(mask, numVars)
		if satisfies(formula, assignment) {
			numSolutions++
			if witness == nil {
				witness = assignment
			}
		}
	}
	return numSolutions > 0, numSolutions, witness, nil
}

func assignmentFromMask(mask, numVars int) []bool {
	a := make([]bool, numVars)
	for i := 0; i < numVars; i++ {
		a[i] = mask&(1<<i) != 0
	}
	return a
}

func satisfies(formula [][]triadsat.Literal, assignment []bool) bool {
	return lo.EveryBy(formula, func(clause []triadsat.Literal) bool {
		return lo.SomeBy(clause, func(l triadsat.Literal) bool {
			return assignment[l.VarID()] == l.IsPositive()
		})
	})
}
