// Package validate checks an extracted assignment against the original
// formula it was meant to satisfy, independently of the propagator that
// produced it.
package validate

import (
	"fmt"

	"github.com/hartwell/triadsat/internal/store"
)

// Solution reports whether assignment satisfies every clause in formula. On
// failure it names the first clause found false.
func Solution(formula []store.Clause, assignment []bool) (bool, error) {
	for ci, clause := range formula {
		if !clauseSatisfied(clause, assignment) {
			return false, fmt.Errorf("validate: clause %d (%v) is false under the given assignment", ci, clause)
		}
	}
	return true, nil
}

func clauseSatisfied(clause store.Clause, assignment []bool) bool {
	for _, l := range clause {
		if int(l.Var) >= len(assignment) {
			continue
		}
		if assignment[l.Var] == !l.Negated {
			return true
		}
	}
	return false
}
