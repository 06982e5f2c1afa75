package promotion_test

import (
	"testing"

	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/promotion"
	"shiporder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moneyPtr(m kernel.Money) *kernel.Money {
	return &m
}

func TestNewRule(t *testing.T) {
	t.Run("should create uncapped percentage rule", func(t *testing.T) {
		r, err := promotion.NewRule("SPRING10", promotion.Percentage, 10, nil, 20000)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "SPRING10", r.ID())
		assert.Equal(t, promotion.Percentage, r.Kind())
		assert.Equal(t, int64(10), r.Value())
		_, capped := r.MaxDiscount()
		assert.False(t, capped)
		assert.Equal(t, kernel.Money(20000), r.MinQualifyingAmount())
	})

	t.Run("should create capped fixed rule", func(t *testing.T) {
		r, err := promotion.NewRule("FLAT5K", promotion.Fixed, 5000, moneyPtr(3000), 0)

		require.NoError(t, err)
		limit, capped := r.MaxDiscount()
		assert.True(t, capped)
		assert.Equal(t, kernel.Money(3000), limit)
	})

	t.Run("should not alias the caller's cap", func(t *testing.T) {
		limit := kernel.Money(3000)
		r, err := promotion.NewRule("FLAT5K", promotion.Fixed, 5000, &limit, 0)
		require.NoError(t, err)

		limit = 1
		got, _ := r.MaxDiscount()
		assert.Equal(t, kernel.Money(3000), got)
	})

	t.Run("should reject explicit zero cap", func(t *testing.T) {
		_, err := promotion.NewRule("ZERO", promotion.Fixed, 5000, moneyPtr(0), 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "max discount amount")
	})

	t.Run("should reject percentage above 100", func(t *testing.T) {
		_, err := promotion.NewRule("TOO_MUCH", promotion.Percentage, 101, nil, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "cannot exceed the whole service fee")
	})

	t.Run("should reject negative fixed value", func(t *testing.T) {
		_, err := promotion.NewRule("NEG", promotion.Fixed, -1, nil, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		_, err := promotion.NewRule("BOGUS", promotion.DiscountKind("BOGO"), 1, nil, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"BOGO" is not a valid discount kind`)
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		_, err := promotion.NewRule("", promotion.Percentage, 150, moneyPtr(0), -5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "promotion id")
		assert.Contains(t, err.Error(), "discount percentage")
		assert.Contains(t, err.Error(), "max discount amount")
		assert.Contains(t, err.Error(), "min qualifying amount")
	})
}

func TestRule_Qualifies(t *testing.T) {
	r, _ := promotion.NewRule("MIN20K", promotion.Percentage, 10, nil, 20000)

	assert.True(t, r.Qualifies(20000))
	assert.True(t, r.Qualifies(39500))
	assert.False(t, r.Qualifies(19999))
}

func TestRule_RestrictToServiceTiers(t *testing.T) {
	base, err := promotion.NewRule("EXPRESS10", promotion.Percentage, 10, nil, 0)
	require.NoError(t, err)

	t.Run("should apply to any tier without restriction", func(t *testing.T) {
		assert.Empty(t, base.ServiceTiers())
		assert.True(t, base.AppliesTo("STANDARD"))
		assert.True(t, base.AppliesTo("EXPRESS"))
	})

	t.Run("should apply only to listed tiers", func(t *testing.T) {
		r, err := base.RestrictToServiceTiers("EXPRESS", " SAME_DAY ", "EXPRESS")

		require.NoError(t, err)
		assert.Equal(t, []string{"EXPRESS", "SAME_DAY"}, r.ServiceTiers())
		assert.True(t, r.AppliesTo("EXPRESS"))
		assert.True(t, r.AppliesTo("SAME_DAY"))
		assert.False(t, r.AppliesTo("STANDARD"))
		assert.True(t, base.AppliesTo("STANDARD"), "the original rule is unchanged")
	})

	t.Run("should reject blank tiers", func(t *testing.T) {
		_, err := base.RestrictToServiceTiers("EXPRESS", " ")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero-value rule", func(t *testing.T) {
		_, err := promotion.Rule{}.RestrictToServiceTiers("EXPRESS")
		require.ErrorIs(t, err, promotion.ErrRuleIsNotConstructed)
	})
}

func TestRule_Validate(t *testing.T) {
	var r promotion.Rule
	assert.Equal(t, promotion.ErrRuleIsNotConstructed, r.Validate())
}

func TestIneligibleError(t *testing.T) {
	r, _ := promotion.NewRule("MIN50K", promotion.Percentage, 10, nil, 50000)
	err := promotion.NewIneligibleError(r, 39500)

	require.ErrorIs(t, err, promotion.ErrIneligible)
	assert.Equal(t, "MIN50K", err.PromotionID)
	assert.Equal(t,
		"promotion is not eligible: MIN50K requires a service fee of at least 50000, got 39500",
		err.Error())
}

func TestTierMismatchError(t *testing.T) {
	r, _ := promotion.NewRule("EXPRESS10", promotion.Percentage, 10, nil, 0)
	err := promotion.NewTierMismatchError(r, "STANDARD")

	require.ErrorIs(t, err, promotion.ErrIneligible)
	assert.Equal(t, "EXPRESS10", err.PromotionID)
	assert.Equal(t,
		"promotion is not eligible: EXPRESS10 does not apply to service tier STANDARD",
		err.Error())
}
