package kernel_test

import (
	"math"
	"testing"

	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeightFromKilograms(t *testing.T) {
	t.Run("should convert to grams", func(t *testing.T) {
		w, err := kernel.NewWeightFromKilograms(2.0)
		require.NoError(t, err)
		assert.Equal(t, int64(2000), w.Grams())
		assert.InDelta(t, 2.0, w.Kilograms(), 1e-9)
		assert.Equal(t, "2.000kg", w.String())
	})

	t.Run("should round to the nearest gram", func(t *testing.T) {
		w, err := kernel.NewWeightFromKilograms(0.0016)
		require.NoError(t, err)
		assert.Equal(t, int64(2), w.Grams())
	})

	t.Run("should reject non-positive weight", func(t *testing.T) {
		for _, kg := range []float64{0, -1.5, 0.0004} {
			_, err := kernel.NewWeightFromKilograms(kg)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "kg=%v", kg)
		}
	})

	t.Run("should reject NaN and infinity", func(t *testing.T) {
		for _, kg := range []float64{math.NaN(), math.Inf(1)} {
			_, err := kernel.NewWeightFromKilograms(kg)
			require.Error(t, err)
		}
	})

	t.Run("should reject weight above the maximum", func(t *testing.T) {
		_, err := kernel.NewWeight(int64(kernel.MaxWeight) + 1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestWeight_IsZero(t *testing.T) {
	var w kernel.Weight
	assert.True(t, w.IsZero())

	w, _ = kernel.NewWeight(1)
	assert.False(t, w.IsZero())
}
