package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumlabs/goldrush/internal/testutil"
	"github.com/aurumlabs/goldrush/pkg/core"
	"github.com/aurumlabs/goldrush/pkg/errors"
)

func TestConvertSolution(t *testing.T) {
	t.Run("Splits a pickup across trips when capacity forces it", func(t *testing.T) {
		inst := testutil.NewInstance("depot", 4)
		inst.AddNode("mine", 10)
		inst.AddEdge("depot", "mine", 2)

		out, err := ConvertSolution(inst, core.Path{"mine", "mine", "mine"}, core.TripCounts{1, 1, 1})
		require.NoError(t, err)

		assert.Equal(t, core.SolutionOutput{
			{Node: "mine", Gold: 4},
			{Node: "mine", Gold: 4},
			{Node: "mine", Gold: 2},
		}, out)
	})

	t.Run("Never exceeds a node's deposit", func(t *testing.T) {
		inst := testutil.LineInstance(5, 3, 7)

		out, err := ConvertSolution(inst, core.Path{"A", "B", "B"}, core.TripCounts{2, 1})
		require.NoError(t, err)

		collected := make(map[core.NodeID]float64)
		for _, pickup := range out {
			assert.Greater(t, pickup.Gold, 0.0)
			collected[pickup.Node] += pickup.Gold
		}
		for node, total := range collected {
			assert.LessOrEqual(t, total, inst.Gold(node))
		}
		assert.Equal(t, 3.0, collected["A"])
		assert.Equal(t, 7.0, collected["B"])
	})

	t.Run("Visit to a drained node is omitted", func(t *testing.T) {
		inst := testutil.LineInstance(10, 3, 4)

		out, err := ConvertSolution(inst, core.Path{"A", "B", "A"}, core.TripCounts{3})
		require.NoError(t, err)

		require.Len(t, out, 2)
		assert.Equal(t, core.Pickup{Node: "A", Gold: 3}, out[0])
		assert.Equal(t, core.Pickup{Node: "B", Gold: 4}, out[1])
	})

	t.Run("Idempotent over the same pair", func(t *testing.T) {
		inst := testutil.LineInstance(5, 3, 7)
		path := core.Path{"A", "B", "B"}
		trips := core.TripCounts{2, 1}

		first, err := ConvertSolution(inst, path, trips)
		require.NoError(t, err)
		second, err := ConvertSolution(inst, path, trips)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Empty plan converts to empty output", func(t *testing.T) {
		inst := testutil.NewInstance("depot", 5)

		out, err := ConvertSolution(inst, core.Path{}, core.TripCounts{})
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("Inconsistent trip counts fail", func(t *testing.T) {
		inst := testutil.LineInstance(5, 3, 7)

		_, err := ConvertSolution(inst, core.Path{"A", "B"}, core.TripCounts{3})
		require.Error(t, err)
		assert.Equal(t, errors.ConversionInconsistency, errors.CodeOf(err))

		_, err = ConvertSolution(inst, core.Path{"A", "B"}, core.TripCounts{1, 0, 1})
		require.Error(t, err)
		assert.Equal(t, errors.ConversionInconsistency, errors.CodeOf(err))
	})

	t.Run("Unknown node fails", func(t *testing.T) {
		inst := testutil.LineInstance(5, 3, 7)

		_, err := ConvertSolution(inst, core.Path{"ghost"}, core.TripCounts{1})
		require.Error(t, err)
		assert.Equal(t, errors.ConversionInconsistency, errors.CodeOf(err))
	})
}
