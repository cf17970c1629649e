package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumlabs/goldrush/pkg/errors"
)

func TestDefaultSolverConfigIsValid(t *testing.T) {
	cfg := DefaultSolverConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SolverConfig)
	}{
		{"population below minimum", func(c *SolverConfig) { c.PopulationSize = 1 }},
		{"no generations", func(c *SolverConfig) { c.MaxGenerations = -1 }},
		{"elitism above half", func(c *SolverConfig) { c.ElitismRate = 0.9 }},
		{"degenerate tournament", func(c *SolverConfig) { c.TournamentSize = 1 }},
		{"negative time budget", func(c *SolverConfig) { c.TimeBudget = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSolverConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, errors.ValidationFailed, errors.CodeOf(err))
		})
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	content := "population_size: 80\nseed: 1234\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.PopulationSize)
	assert.Equal(t, int64(1234), cfg.Seed)
	// Omitted fields fall back to defaults.
	defaults := DefaultSolverConfig()
	assert.Equal(t, defaults.MaxGenerations, cfg.MaxGenerations)
	assert.Equal(t, defaults.TournamentSize, cfg.TournamentSize)
	assert.Equal(t, defaults.HillClimbBudget, cfg.HillClimbBudget)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Equal(t, errors.InvalidInput, errors.CodeOf(err))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "solver.yaml")
		require.NoError(t, os.WriteFile(path, []byte("population_size: [oops"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Equal(t, errors.InvalidInput, errors.CodeOf(err))
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "solver.yaml")
		require.NoError(t, os.WriteFile(path, []byte("elitism_rate: 0.9"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Equal(t, errors.ValidationFailed, errors.CodeOf(err))
	})
}
