package solver

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumlabs/goldrush/internal/testutil"
	"github.com/aurumlabs/goldrush/pkg/cache"
	"github.com/aurumlabs/goldrush/pkg/core"
	"github.com/aurumlabs/goldrush/pkg/errors"
)

func TestEvaluatorMemoizes(t *testing.T) {
	inst := testutil.LineInstance(5, 3, 7)
	evaluator := NewEvaluator(cache.NewMemoryCache(0))

	path, trips, err := PlanTrips(inst, []core.NodeID{"A", "B"})
	require.NoError(t, err)

	first := core.NewCandidate(path, trips)
	cost1, err := evaluator.Evaluate(inst, first)
	require.NoError(t, err)
	require.Equal(t, 1, inst.CostCalls)

	// A structurally identical candidate hits the fingerprint cache.
	twin := core.NewCandidate(path.Clone(), trips.Clone())
	cost2, err := evaluator.Evaluate(inst, twin)
	require.NoError(t, err)
	assert.Equal(t, cost1, cost2)
	assert.Equal(t, 1, inst.CostCalls, "oracle is not called again for the same structure")

	// The candidate-local cache avoids even the fingerprint lookup.
	_, err = evaluator.Evaluate(inst, first)
	require.NoError(t, err)
	assert.Equal(t, 1, inst.CostCalls)
}

func TestEvaluatorPropagatesOracleFailure(t *testing.T) {
	boom := stderrors.New("oracle exploded")
	inst := &testutil.FailingInstance{
		Instance: testutil.LineInstance(5, 3, 7),
		CostErr:  boom,
	}
	evaluator := NewEvaluator(cache.NewMemoryCache(0))

	c := core.NewCandidate(core.Path{"A", "B"}, core.TripCounts{2})
	_, err := evaluator.Evaluate(inst, c)

	require.Error(t, err)
	assert.Equal(t, errors.OracleFailure, errors.CodeOf(err))
	assert.True(t, stderrors.Is(err, boom), "original oracle error stays reachable")
}

func TestEvaluatePopulation(t *testing.T) {
	inst := testutil.RingInstance(8, 2, 5)
	evaluator := NewEvaluator(cache.NewMemoryCache(0))
	rng := core.NewRand(5)

	pop, err := initialPopulation(inst, 12, rng)
	require.NoError(t, err)

	require.NoError(t, evaluator.EvaluatePopulation(context.Background(), inst, pop, 4))

	for _, c := range pop.Candidates {
		_, ok := c.Cost()
		assert.True(t, ok, "every candidate is evaluated")
	}
}

func TestEvaluatePopulationCanceledContext(t *testing.T) {
	inst := testutil.RingInstance(4, 2, 5)
	evaluator := NewEvaluator(cache.NewMemoryCache(0))
	rng := core.NewRand(5)

	pop, err := initialPopulation(inst, 4, rng)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = evaluator.EvaluatePopulation(ctx, inst, pop, 2)
	require.Error(t, err)
	assert.Equal(t, errors.Canceled, errors.CodeOf(err))
}
