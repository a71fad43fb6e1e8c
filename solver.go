package triadsat

import (
	"fmt"
	"io"
	"time"

	"github.com/hartwell/triadsat/internal/store"
	"github.com/hartwell/triadsat/internal/validate"
)

// Solver is the public facade over the three-level constraint store: it
// owns variable and clause bookkeeping and drives the fixpoint and
// extraction steps described by the propagator's component model.
type Solver struct {
	st      *store.Store
	numVars int
	clauses []store.Clause

	ops Options

	status     Status
	assignment []bool

	startTime time.Time
	// TotalRounds counts the Solve calls, each of which runs
	// EnsureGlobalConsistency (or its parallel form) once, over this
	// solver's lifetime; the re-propagation inside ExtractSolution is not
	// counted.
	TotalRounds int64

	// lastExtractionErr records why the last Solve call returned
	// Indeterminate after a contradiction-free fixpoint, if it did.
	lastExtractionErr error
	// lastValidationErr records why the last Solve call reported
	// Indeterminate because the post-hoc validator rejected an extracted
	// assignment, if it did.
	lastValidationErr error
}

// Options configures a Solver.
type Options struct {
	// Workers is the number of concurrent fixpoint workers to use. 1 (the
	// default) runs EnsureGlobalConsistency directly with no parallel
	// divide-and-merge.
	Workers int
	// FindSolution, when true, makes Solve attempt ExtractSolution after a
	// contradiction-free fixpoint and report Satisfiable/Indeterminate
	// accordingly. When false, Solve only ever reports Unsatisfiable or
	// Indeterminate.
	FindSolution bool
	// SolutionSink, if non-nil, receives a human-readable rendering of any
	// extracted solution.
	SolutionSink io.Writer
	// Verbose, when true, makes Solve print fixed-format progress lines to
	// standard output around the fixpoint run, mirroring the teacher's
	// printSeparator/printSearchHeader/printSearchStats.
	Verbose bool
}

// DefaultOptions runs a single-worker fixpoint and attempts extraction.
var DefaultOptions = Options{
	Workers:      1,
	FindSolution: true,
}

// NewDefaultSolver returns a solver configured with DefaultOptions. This is
// equivalent to calling NewSolver with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

func NewSolver(ops Options) *Solver {
	if ops.Workers < 1 {
		ops.Workers = 1
	}
	return &Solver{
		st:     store.NewStore(0),
		ops:    ops,
		status: Indeterminate,
	}
}

// AddVariable declares one fresh boolean variable and returns its ID.
func (s *Solver) AddVariable() int {
	id := s.numVars
	s.numVars++
	s.st.Grow(1)
	return id
}

// AddClause adds a disjunction of literals to the store, rewriting it into
// 3-literal links with fresh auxiliary variables if it has more than three
// literals. It returns ErrMalformedClause if a literal names a variable
// that was never declared with AddVariable.
func (s *Solver) AddClause(lits ...Literal) error {
	clause := make(store.Clause, len(lits))
	for i, l := range lits {
		if l.VarID() < 0 || l.VarID() >= s.numVars {
			return ErrMalformedClause{VarID: l.VarID()}
		}
		clause[i] = store.Lit{Var: store.Index(l.VarID()), Negated: !l.IsPositive()}
	}
	if err := store.ApplyClauses(s.st, []store.Clause{clause}); err != nil {
		return fmt.Errorf("triadsat: %w", err)
	}
	s.clauses = append(s.clauses, clause)
	// a wide clause's rewrite may have grown the store with auxiliary
	// variables; keep the solver's own count in sync.
	s.numVars = int(s.st.NumVars)
	return nil
}

// Solve runs the fixpoint to completion (in parallel across ops.Workers
// when greater than 1), then, if ops.FindSolution is set and the fixpoint
// found no contradiction, attempts to extract a full assignment.
func (s *Solver) Solve() Status {
	s.startTime = time.Now()
	s.TotalRounds++
	s.lastExtractionErr = nil
	s.lastValidationErr = nil

	if s.ops.Verbose {
		s.printSeparator()
		s.printSearchHeader()
	}

	var result store.UpdateResult
	if s.ops.Workers > 1 {
		result = store.ParallelEnsureGlobalConsistency(s.st, s.ops.Workers)
	} else {
		result = store.EnsureGlobalConsistency(s.st)
	}

	if s.ops.Verbose {
		s.printSearchStats(result)
		s.printSeparator()
	}

	if result.HasZero {
		s.status = Unsatisfiable
		return s.status
	}

	if !s.ops.FindSolution {
		s.status = Indeterminate
		return s.status
	}

	assignment, err := store.ExtractSolution(s.st)
	if err != nil {
		// The fixpoint alone can leave a variable underconstrained even
		// though no mask went to zero (§4.I); extraction's greedy,
		// no-backtracking commit can then land on a combination a clause
		// forbids. That is reported as Indeterminate, not a crash.
		s.status = Indeterminate
		s.lastExtractionErr = err
		return s.status
	}

	// §6 mandates that a Satisfiable result carry an assignment that
	// actually satisfies the original clauses; the fixpoint's weaker
	// pair-of-triples consistency plus extraction's no-backtracking commit
	// can together produce one that doesn't. §7 lists this "Extraction
	// failure" as distinct from UNSAT: no mask was ever driven to zero, so
	// the propagator never established that the formula has no solution —
	// reporting Unsatisfiable here would be a false negative, not the
	// loud failure §7 requires. Report Indeterminate instead, with the
	// cause available via ValidationFailure().
	if ok, err := validate.Solution(s.clauses, assignment); !ok {
		s.status = Indeterminate
		s.lastValidationErr = err
		return s.status
	}

	s.assignment = assignment
	s.status = Satisfiable
	if s.ops.SolutionSink != nil {
		s.writeSolution()
	}
	return s.status
}

// Assignment returns the last extracted solution, or nil if Solve has not
// returned Satisfiable.
func (s *Solver) Assignment() []bool {
	return s.assignment
}

// IndeterminateCause returns why the last Solve call returned
// Indeterminate after a contradiction-free fixpoint, or nil if Solve has
// not returned Indeterminate for that reason (either FindSolution was off,
// or the last call returned Satisfiable or Unsatisfiable).
func (s *Solver) IndeterminateCause() error {
	if s.lastExtractionErr == nil {
		return nil
	}
	return ErrExtractionFailed{Cause: s.lastExtractionErr}
}

// ValidationFailure returns the post-hoc validator's error from the last
// Solve call, if that call reported Indeterminate because an extracted
// assignment did not actually satisfy the original clauses (§6/§7's
// "Extraction failure" outcome). It returns nil otherwise, including when
// Solve has not been called.
func (s *Solver) ValidationFailure() error {
	return s.lastValidationErr
}

// NumVars returns the number of declared variables, including any
// auxiliary variables introduced by wide-clause rewriting.
func (s *Solver) NumVars() int {
	return s.numVars
}

func (s *Solver) printSeparator() {
	fmt.Println("c ---------------------------------------------------------------------------")
}

func (s *Solver) printSearchHeader() {
	fmt.Println("c            time        variables        workers         rounds")
}

func (s *Solver) printSearchStats(result store.UpdateResult) {
	fmt.Printf(
		"c %14.3fs %14d %14d %14d\n",
		time.Since(s.startTime).Seconds(),
		s.numVars, s.ops.Workers, s.TotalRounds)
	if result.HasZero {
		fmt.Println("c contradiction found")
	}
}

func (s *Solver) writeSolution() {
	for i, v := range s.assignment {
		sign := "-"
		if v {
			sign = "+"
		}
		fmt.Fprintf(s.ops.SolutionSink, "%s%d\n", sign, i)
	}
}
