// Package config decodes solver run configuration from loosely-typed input
// (parsed JSON, YAML, or CLI flag maps) into the strongly-typed RunConfig the
// rest of the program expects.
package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// RunConfig is the decoded shape of a run's configuration file or flag set.
type RunConfig struct {
	Workers      int
	FindSolution bool
	Timeout      string
	InputPath    string
	SolutionPath string
	Seed         int64
	Validate     bool
	Verbose      bool
}

// Decode converts a loosely-typed map (as produced by a JSON/YAML
// unmarshal into map[string]any, or assembled from CLI flags) into a
// RunConfig, reporting any field whose type does not match.
func Decode(raw map[string]any) (RunConfig, error) {
	var cfg RunConfig
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used when no file or flags override
// it: a single-worker run that attempts solution extraction.
func Default() RunConfig {
	return RunConfig{
		Workers:      1,
		FindSolution: true,
	}
}
