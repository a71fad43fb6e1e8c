// Package dimacs reads and writes CNF formulas in DIMACS format and
// generates random CNF instances for testing, on top of the third-party
// line-level DIMACS reader.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/rhartert/dimacs"
	"github.com/samber/lo"

	"github.com/hartwell/triadsat"
)

// Target is anything that can receive variables and clauses parsed from a
// DIMACS file; *triadsat.Solver satisfies it.
type Target interface {
	AddVariable() int
	AddClause(lits ...triadsat.Literal) error
}

func openReader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// Load parses the DIMACS CNF file at filename and loads its formula into
// target, declaring one variable per the problem line's variable count and
// one clause per clause line.
func Load(filename string, gzipped bool, target Target) error {
	r, err := openReader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &builder{target: target}
	return dimacs.ReadBuilder(r, b)
}

// builder adapts a Target to the third-party dimacs.Builder interface.
type builder struct {
	target Target
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacs: not a CNF problem: %q", problem)
	}
	for i := 0; i < nVars; i++ {
		b.target.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]triadsat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			clause[i] = triadsat.NegativeLiteral(-l - 1)
		} else {
			clause[i] = triadsat.PositiveLiteral(l - 1)
		}
	}
	return b.target.AddClause(clause...)
}

func (b *builder) Comment(_ string) error {
	return nil
}

// modelBuilder adapts the dimacs.Builder interface to a solution file, in
// which every clause line is one model expressed as signed literals with no
// preceding problem line.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("dimacs: solution files should not have a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}

// LoadModels parses a solution file, returning one []bool per model.
func LoadModels(filename string) ([][]bool, error) {
	r, err := openReader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

// RandomCNF generates a random CNF formula with numVars variables and
// numClauses clauses, each clause drawing between 1 and maxLitsPerClause
// distinct variables (never repeating a variable within a clause) and
// negating each chosen literal independently with probability negProb.
func RandomCNF(rng *rand.Rand, numVars, numClauses, maxLitsPerClause int, negProb float64) [][]triadsat.Literal {
	formula := make([][]triadsat.Literal, numClauses)
	for c := 0; c < numClauses; c++ {
		width := 1 + rng.Intn(maxLitsPerClause)
		if width > numVars {
			width = numVars
		}
		chosen := rng.Perm(numVars)[:width]

		formula[c] = lo.Map(chosen, func(v int, _ int) triadsat.Literal {
			if rng.Float64() < negProb {
				return triadsat.NegativeLiteral(v)
			}
			return triadsat.PositiveLiteral(v)
		})
	}
	return formula
}

// WriteCNF writes formula to w in DIMACS CNF format.
func WriteCNF(w io.Writer, numVars int, formula [][]triadsat.Literal) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", numVars, len(formula)); err != nil {
		return err
	}
	for _, clause := range formula {
		for _, l := range clause {
			sign := 1
			if !l.IsPositive() {
				sign = -1
			}
			if _, err := fmt.Fprintf(w, "%d ", sign*(l.VarID()+1)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "0"); err != nil {
			return err
		}
	}
	return nil
}
