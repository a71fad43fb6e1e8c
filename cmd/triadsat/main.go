package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hartwell/triadsat"
	"github.com/hartwell/triadsat/internal/bruteforce"
	"github.com/hartwell/triadsat/internal/config"
	"github.com/hartwell/triadsat/internal/dimacs"
	"github.com/hartwell/triadsat/internal/solutionio"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagWorkers = flag.Int(
	"workers",
	1,
	"number of concurrent fixpoint workers (1 = sequential)",
)

var flagSolve = flag.Bool(
	"solve",
	true,
	"attempt to extract a solution once the fixpoint has no contradiction",
)

var flagOutput = flag.String(
	"output",
	"",
	"file to write an extracted solution to, in DIMACS model format",
)

var flagCheck = flag.Bool(
	"check",
	false,
	"report that the extracted solution passed validation against the input formula (Solve always validates it)",
)

var flagVerbose = flag.Bool(
	"verbose",
	false,
	"print fixed-format progress lines around the fixpoint run",
)

var flagBruteForce = flag.Bool(
	"bruteforce",
	false,
	fmt.Sprintf("cross-check the instance by brute force instead (only for instances with up to %d variables)", bruteforce.MaxVars),
)

var flagRandom = flag.Bool(
	"random",
	false,
	"generate a random CNF instance instead of reading a file",
)

var flagRandomVars = flag.Int("rand_vars", 10, "variable count for -random")
var flagRandomClauses = flag.Int("rand_clauses", 20, "clause count for -random")
var flagRandomLiterals = flag.Int("rand_literals", 3, "maximum literals per clause for -random")
var flagRandomSeed = flag.Int64("rand_seed", 1, "RNG seed for -random")

var flagConfigFile = flag.String(
	"config",
	"",
	"optional JSON run-configuration file; explicit flags override its fields",
)

func parseConfig() (*runConfig, error) {
	flag.Parse()

	base := config.Default()
	if *flagConfigFile != "" {
		raw, err := os.ReadFile(*flagConfigFile)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		base, err = config.Decode(fields)
		if err != nil {
			return nil, err
		}
	}

	cfg := &runConfig{
		instanceFile: base.InputPath,
		workers:      base.Workers,
		findSolution: base.FindSolution,
		outputFile:   base.SolutionPath,
		check:        base.Validate,
		verbose:      base.Verbose,
		bruteForce:   *flagBruteForce,
		cpuProfile:   *flagCPUProfile,
		random:       *flagRandom,
		randomVars:   *flagRandomVars,
		randClauses:  *flagRandomClauses,
		randLiterals: *flagRandomLiterals,
		randSeed:     base.Seed,
	}

	// explicit flags take precedence over the config file's corresponding
	// fields.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			cfg.workers = *flagWorkers
		case "solve":
			cfg.findSolution = *flagSolve
		case "output":
			cfg.outputFile = *flagOutput
		case "check":
			cfg.check = *flagCheck
		case "verbose":
			cfg.verbose = *flagVerbose
		case "rand_seed":
			cfg.randSeed = *flagRandomSeed
		}
	})

	if !cfg.random {
		if flag.NArg() > 0 && flag.Arg(0) != "" {
			cfg.instanceFile = flag.Arg(0)
		}
		if cfg.instanceFile == "" {
			return nil, fmt.Errorf("missing instance file (or pass -random)")
		}
	}
	return cfg, nil
}

type runConfig struct {
	instanceFile string
	workers      int
	findSolution bool
	outputFile   string
	check        bool
	verbose      bool
	bruteForce   bool
	cpuProfile   bool

	random       bool
	randomVars   int
	randClauses  int
	randLiterals int
	randSeed     int64
}

func loadFormula(cfg *runConfig) (formula [][]triadsat.Literal, numVars int, err error) {
	if cfg.random {
		rng := rand.New(rand.NewSource(cfg.randSeed))
		return dimacs.RandomCNF(rng, cfg.randomVars, cfg.randClauses, cfg.randLiterals, 0.5), cfg.randomVars, nil
	}

	s := &collector{}
	if err := dimacs.Load(cfg.instanceFile, false, s); err != nil {
		return nil, 0, fmt.Errorf("could not parse instance: %w", err)
	}
	return s.clauses, s.numVars, nil
}

// collector implements dimacs.Target by recording the formula instead of
// feeding it straight into a solver, so -bruteforce and -random can share
// the same loading path as normal solving.
type collector struct {
	numVars int
	clauses [][]triadsat.Literal
}

func (c *collector) AddVariable() int {
	id := c.numVars
	c.numVars++
	return id
}

func (c *collector) AddClause(lits ...triadsat.Literal) error {
	c.clauses = append(c.clauses, lits)
	return nil
}

func run(cfg *runConfig) error {
	formula, numVars, err := loadFormula(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("c variables:  %d\n", numVars)
	fmt.Printf("c clauses:    %d\n", len(formula))

	if cfg.bruteForce {
		t := time.Now()
		sat, numSolutions, witness, err := bruteforce.CheckSatisfiability(formula, numVars)
		if err != nil {
			return err
		}
		fmt.Printf("c time (sec): %f\n", time.Since(t).Seconds())
		fmt.Printf("c solutions:  %d\n", numSolutions)
		fmt.Printf("c status:     %v\n", sat)
		if witness != nil && cfg.outputFile != "" {
			return solutionio.Save(cfg.outputFile, witness)
		}
		return nil
	}

	s := triadsat.NewSolver(triadsat.Options{
		Workers:      cfg.workers,
		FindSolution: cfg.findSolution,
		Verbose:      cfg.verbose,
	})
	for i := 0; i < numVars; i++ {
		s.AddVariable()
	}
	for _, clause := range formula {
		if err := s.AddClause(clause...); err != nil {
			return fmt.Errorf("could not load clause: %w", err)
		}
	}

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c status:     %s\n", status.String())

	if status != triadsat.Satisfiable {
		if cause := s.IndeterminateCause(); cause != nil {
			fmt.Printf("c reason:     %v\n", cause)
		} else if cause := s.ValidationFailure(); cause != nil {
			fmt.Printf("c reason:     %v\n", cause)
		}
		return nil
	}

	assignment := s.Assignment()
	solutionio.Print(os.Stdout, assignment)

	if cfg.outputFile != "" {
		if err := solutionio.Save(cfg.outputFile, assignment); err != nil {
			return fmt.Errorf("could not write solution: %w", err)
		}
	}

	if cfg.check {
		// Solve already runs the same post-hoc validator internally and
		// would have reported Indeterminate instead of reaching here had
		// it failed (§6/§7), so reaching here confirms the assignment
		// holds.
		fmt.Println("c validation: ok")
	}

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
