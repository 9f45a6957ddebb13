package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nlsat/pipeline"
	"github.com/katalvlaran/nlsat/problem"
)

// solverConfig carries every solver tuning knob, with defaults applied
// first, then an optional YAML file, then explicit CLI flags, each
// layer overriding the one before it.
type solverConfig struct {
	VarLimit       int
	BinaryEncoding bool
	Format         problem.Format
	PlanNames      []string // nil means "use the format's default cascade"
}

// defaultSolverConfig is solverConfig's zero-knob baseline: no variable
// ceiling, one-hot labels, auto-detected format, default plan cascade.
func defaultSolverConfig() solverConfig {
	return solverConfig{
		VarLimit:       0,
		BinaryEncoding: false,
		Format:         problem.FormatUnknown,
	}
}

// fileConfig is the YAML shape read from -c/--config; every field is a
// pointer so an absent key leaves the corresponding solverConfig field at
// its current value rather than zeroing it out.
type fileConfig struct {
	VarLimit       *int     `yaml:"var_limit"`
	BinaryEncoding *bool    `yaml:"binary_encoding"`
	Format         *string  `yaml:"format"`
	Plans          []string `yaml:"plans"`
}

func loadConfigFile(path string, cfg solverConfig) (solverConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	if fc.VarLimit != nil {
		cfg.VarLimit = *fc.VarLimit
	}
	if fc.BinaryEncoding != nil {
		cfg.BinaryEncoding = *fc.BinaryEncoding
	}
	if fc.Format != nil {
		f, ok := problem.ParseFormat(*fc.Format)
		if !ok {
			return cfg, fmt.Errorf("config file: unknown format %q", *fc.Format)
		}
		cfg.Format = f
	}
	if fc.Plans != nil {
		cfg.PlanNames = fc.Plans
	}

	return cfg, nil
}

// namedPlans maps plan names onto pipeline.Plan values, in the order
// given, for a config file's explicit "plans" override.
func namedPlans(names []string) ([]pipeline.Plan, error) {
	all := map[string]pipeline.Plan{
		"A":   planByName("A"),
		"B11": planByName("B11"),
		"B10": planByName("B10"),
		"B01": planByName("B01"),
		"C":   planByName("C"),
	}
	plans := make([]pipeline.Plan, 0, len(names))
	for _, n := range names {
		p, ok := all[n]
		if !ok {
			return nil, fmt.Errorf("unknown plan name %q", n)
		}
		plans = append(plans, p)
	}

	return plans, nil
}

// planByName finds the named plan inside the full adc2016 cascade, the
// superset of every plan this package knows about.
func planByName(name string) pipeline.Plan {
	for _, p := range pipeline.DefaultPlans(problem.FormatADC2016) {
		if p.Name == name {
			return p
		}
	}

	return pipeline.Plan{}
}
