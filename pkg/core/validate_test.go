package core_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumlabs/goldrush/internal/testutil"
	"github.com/aurumlabs/goldrush/pkg/core"
	"github.com/aurumlabs/goldrush/pkg/errors"
)

func TestValidateInstance(t *testing.T) {
	t.Run("Connected instance passes", func(t *testing.T) {
		inst := testutil.LineInstance(5, 3, 7)
		assert.NoError(t, core.ValidateInstance(inst))
	})

	t.Run("Disconnected gold node is infeasible", func(t *testing.T) {
		inst := testutil.LineInstance(5, 3, 7)
		inst.AddNode("island", 4) // positive gold, no edges

		err := core.ValidateInstance(inst)
		require.Error(t, err)
		assert.Equal(t, errors.InfeasibleInstance, errors.CodeOf(err))
	})

	t.Run("Disconnected empty node is fine", func(t *testing.T) {
		inst := testutil.LineInstance(5, 3, 7)
		inst.AddNode("ruin", 0)
		assert.NoError(t, core.ValidateInstance(inst))
	})

	t.Run("Zero capacity with positive gold is infeasible", func(t *testing.T) {
		inst := testutil.LineInstance(0, 3, 7)

		err := core.ValidateInstance(inst)
		require.Error(t, err)
		assert.Equal(t, errors.InfeasibleInstance, errors.CodeOf(err))
		assert.True(t, stderrors.Is(err, errors.New(errors.InfeasibleInstance, "")))
	})

	t.Run("Zero capacity with no gold passes", func(t *testing.T) {
		inst := testutil.LineInstance(0, 0, 0)
		assert.NoError(t, core.ValidateInstance(inst))
	})

	t.Run("Negative gold is infeasible", func(t *testing.T) {
		inst := testutil.LineInstance(5, -1, 7)

		err := core.ValidateInstance(inst)
		require.Error(t, err)
		assert.Equal(t, errors.InfeasibleInstance, errors.CodeOf(err))
	})
}
