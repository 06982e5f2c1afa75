package guard_test

import (
	"errors"
	"testing"

	"shiporder/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("quote not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errTierNotConstructed := errors.New("ServiceTier must be created via newTier")

	type serviceTier struct {
		code  string
		guard guard.ConstructorGuard
	}

	newTier := func(code string) (serviceTier, error) {
		if code == "" {
			return serviceTier{}, errors.New("tier code is required")
		}
		return serviceTier{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_validates", func(t *testing.T) {
		tier, err := newTier("EXPRESS")

		require.NoError(t, err)
		require.NoError(t, tier.guard.Validate(errTierNotConstructed))
		assert.Equal(t, "EXPRESS", tier.code)
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		tier, err := newTier("")

		require.Error(t, err)
		assert.Equal(t, errTierNotConstructed, tier.guard.Validate(errTierNotConstructed))
	})

	t.Run("copies_keep_their_state", func(t *testing.T) {
		tier, _ := newTier("STANDARD")
		tierCopy := tier

		require.NoError(t, tierCopy.guard.Validate(errTierNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
