// Package config holds the solver tuning configuration. The problem-level
// parameters (alpha, beta, density) live on the ProblemInstance; this
// package covers everything the embedding application may want to tune
// about the search itself.
package config

import (
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/aurumlabs/goldrush/pkg/errors"
)

// SolverConfig contains the tunable knobs of the adaptive solver.
type SolverConfig struct {
	// Evolutionary parameters.
	PopulationSize int     `yaml:"population_size" validate:"min=2"`
	MaxGenerations int     `yaml:"max_generations" validate:"min=1"`
	ElitismRate    float64 `yaml:"elitism_rate" validate:"gte=0,lte=0.5"`
	TournamentSize int     `yaml:"tournament_size" validate:"min=2"`

	// Convergence parameters.
	StagnationLimit      int     `yaml:"stagnation_limit" validate:"min=1"`
	ConvergenceThreshold float64 `yaml:"convergence_threshold" validate:"gte=0"`
	ImprovementWindow    int     `yaml:"improvement_window" validate:"min=1"`

	// Hill climbing parameters.
	HillClimbBudget int `yaml:"hill_climb_budget" validate:"min=1"`

	// Resource parameters.
	MaxGoroutines int           `yaml:"max_goroutines" validate:"min=1"`
	TimeBudget    time.Duration `yaml:"time_budget" validate:"gte=0"`
	CacheEntries  int           `yaml:"cache_entries" validate:"gte=0"`

	// Determinism. Seed 0 selects a fixed default seed.
	Seed int64 `yaml:"seed"`
}

// DefaultSolverConfig returns the default configuration.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		PopulationSize:       40,
		MaxGenerations:       120,
		ElitismRate:          0.1,
		TournamentSize:       3,
		StagnationLimit:      25,
		ConvergenceThreshold: 1e-6,
		ImprovementWindow:    5,
		HillClimbBudget:      60,
		MaxGoroutines:        4,
		TimeBudget:           0,
		CacheEntries:         0,
		Seed:                 0,
	}
}

// fillDefaults replaces zero fields with their default values so a partial
// YAML file only overrides what it names.
func (c *SolverConfig) fillDefaults() {
	defaults := DefaultSolverConfig()
	if c.PopulationSize == 0 {
		c.PopulationSize = defaults.PopulationSize
	}
	if c.MaxGenerations == 0 {
		c.MaxGenerations = defaults.MaxGenerations
	}
	if c.ElitismRate == 0 {
		c.ElitismRate = defaults.ElitismRate
	}
	if c.TournamentSize == 0 {
		c.TournamentSize = defaults.TournamentSize
	}
	if c.StagnationLimit == 0 {
		c.StagnationLimit = defaults.StagnationLimit
	}
	if c.ConvergenceThreshold == 0 {
		c.ConvergenceThreshold = defaults.ConvergenceThreshold
	}
	if c.ImprovementWindow == 0 {
		c.ImprovementWindow = defaults.ImprovementWindow
	}
	if c.HillClimbBudget == 0 {
		c.HillClimbBudget = defaults.HillClimbBudget
	}
	if c.MaxGoroutines == 0 {
		c.MaxGoroutines = defaults.MaxGoroutines
	}
}

// Global validator instance.
var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate validates the configuration using the singleton validator.
func (c *SolverConfig) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return errors.WithFields(
				errors.New(errors.ValidationFailed, "invalid solver configuration"),
				errors.Fields{"field": first.Field(), "tag": first.Tag(), "value": first.Value()},
			)
		}
		return errors.Wrap(err, errors.ValidationFailed, "invalid solver configuration")
	}
	return nil
}

// Load reads a YAML solver configuration from path, fills defaults for
// omitted fields and validates the result.
func Load(path string) (SolverConfig, error) {
	var cfg SolverConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, errors.InvalidInput, "failed to read config file")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, errors.InvalidInput, "failed to parse config file")
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
