package order_test

import (
	"testing"

	"shiporder/internal/core/domain/model/order"
	"shiporder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate every lifecycle status", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		require.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, order.Status(-1).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip wire names", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			parsed, err := order.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should ignore case and surrounding spaces", func(t *testing.T) {
		parsed, err := order.ParseStatus("  ready_for_pickup ")
		require.NoError(t, err)
		assert.Equal(t, order.ReadyForPickup, parsed)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("UNKNOWN")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.ParseStatus("SHIPPED")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should follow the happy path", func(t *testing.T) {
		path := []order.Status{
			order.Draft, order.Pending, order.Confirmed, order.ReadyForPickup, order.PickingUp,
			order.PickedUp, order.AtOriginOffice, order.InTransit, order.AtDestOffice,
			order.Delivering, order.Delivered,
		}
		for i := 1; i < len(path); i++ {
			next, err := path[i-1].TransitionTo(path[i])
			require.NoError(t, err, "%s -> %s", path[i-1], path[i])
			assert.Equal(t, path[i], next)
		}
	})

	t.Run("should allow failed delivery retry and return", func(t *testing.T) {
		assert.True(t, order.Delivering.CanTransitionTo(order.FailedDelivery))
		assert.True(t, order.FailedDelivery.CanTransitionTo(order.Delivering))
		assert.True(t, order.FailedDelivery.CanTransitionTo(order.Returning))
		assert.True(t, order.Returning.CanTransitionTo(order.Returned))
	})

	t.Run("should cancel only before pickup", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			want := s == order.Draft || s == order.Pending || s == order.Confirmed || s == order.ReadyForPickup
			assert.Equal(t, want, s.CanTransitionTo(order.Cancelled), s.String())
		}
	})

	t.Run("should never move backwards", func(t *testing.T) {
		_, err := order.Confirmed.TransitionTo(order.Pending)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "CONFIRMED cannot transition to PENDING")

		assert.False(t, order.InTransit.CanTransitionTo(order.PickedUp))
	})

	t.Run("should absorb in terminal states", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Returned, order.Cancelled} {
			assert.True(t, terminal.IsTerminal())
			for _, s := range order.AllStatuses() {
				assert.False(t, terminal.CanTransitionTo(s), "%s -> %s", terminal, s)
			}

			_, err := terminal.TransitionTo(order.Delivering)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), terminal.String()+" is final")
		}
		assert.False(t, order.FailedDelivery.IsTerminal())
	})

	t.Run("should reject invalid target", func(t *testing.T) {
		_, err := order.Draft.TransitionTo(order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCreatorType(t *testing.T) {
	c, err := order.ParseCreatorType("operator")
	require.NoError(t, err)
	assert.Equal(t, order.Operator, c)
	assert.Equal(t, "CUSTOMER", order.Customer.String())

	_, err = order.ParseCreatorType("robot")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.UnknownCreator.Validate(), errs.ErrValueIsInvalid)
}
