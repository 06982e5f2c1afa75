package commands_test

import (
	"testing"

	"shiporder/internal/core/application/usecases/commands"
	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderCommand(t *testing.T) {
	t.Run("should accept field changes", func(t *testing.T) {
		weight := kernel.Weight(2500)
		id := kernel.NewUUID()

		cmd, err := commands.NewChangeOrderCommand(id, order.Changes{Weight: &weight}, nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.OrderID())
		assert.Equal(t, &weight, cmd.Changes().Weight)
		_, ok := cmd.PromotionID()
		assert.False(t, ok)
	})

	t.Run("should accept promotion only", func(t *testing.T) {
		promo := " SPRING10 "

		cmd, err := commands.NewChangeOrderCommand(kernel.NewUUID(), order.Changes{}, &promo)

		require.NoError(t, err)
		id, ok := cmd.PromotionID()
		assert.True(t, ok)
		assert.Equal(t, "SPRING10", id)
	})

	t.Run("should reject empty change set", func(t *testing.T) {
		_, err := commands.NewChangeOrderCommand(kernel.NewUUID(), order.Changes{}, nil)
		require.ErrorIs(t, err, commands.ErrNothingToChange)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := commands.NewChangeOrderCommand(kernel.UUID{}, order.Changes{}, nil)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, commands.ErrNothingToChange)
	})

	t.Run("should fail when not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.ChangeOrderCommand{}.Validate(), commands.ErrChangeOrderCommandIsNotConstructed)
	})
}

func TestNewCancelOrderCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())

	_, err = commands.NewCancelOrderCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, commands.CancelOrderCommand{}.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
}

func TestNewChangeOrderStatusCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(id, order.Confirmed)
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, cmd.Status())

	_, err = commands.NewChangeOrderStatusCommand(id, order.Unknown)
	require.Error(t, err)
	require.ErrorIs(t, commands.ChangeOrderStatusCommand{}.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
