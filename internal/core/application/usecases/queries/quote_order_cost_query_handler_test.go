package queries_test

import (
	"context"
	"testing"

	"shiporder/internal/core/application/pricing"
	"shiporder/internal/core/application/usecases/queries"
	"shiporder/internal/core/domain/model/cost"
	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/promotion"
	"shiporder/internal/core/ports"
	"shiporder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQuoter struct{ mock.Mock }

func (m *MockQuoter) Quote(ctx context.Context, in cost.Inputs, promotionID string) (pricing.Quote, error) {
	args := m.Called(ctx, in, promotionID)
	return args.Get(0).(pricing.Quote), args.Error(1)
}

type MockPromotionCatalog struct{ mock.Mock }

func (m *MockPromotionCatalog) ListEligiblePromotions(ctx context.Context, f ports.PromotionFilter) ([]promotion.Rule, error) {
	args := m.Called(ctx, f)
	rules, _ := args.Get(0).([]promotion.Rule)
	return rules, args.Error(1)
}

func (m *MockPromotionCatalog) GetPromotionByID(ctx context.Context, id string) (promotion.Rule, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(promotion.Rule), args.Error(1)
}

func TestNewQuoteOrderCostQuery(t *testing.T) {
	q, err := queries.NewQuoteOrderCostQuery(cost.Inputs{Weight: 1000}, " SPRING10 ")
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, "SPRING10", q.PromotionID())

	_, err = queries.NewQuoteOrderCostQuery(cost.Inputs{DeclaredGoodsValue: -1}, "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.ErrorIs(t, queries.QuoteOrderCostQuery{}.Validate(), queries.ErrQuoteOrderCostQueryIsNotConstructed)
}

func TestQuoteOrderCostQueryHandler_Handle(t *testing.T) {
	t.Run("should return quote with eviction notice", func(t *testing.T) {
		ctx := t.Context()
		in := cost.Inputs{Weight: 2000, ServiceTierID: "STANDARD", OriginRegionCode: "HN", DestinationRegionCode: "HCM"}
		query, err := queries.NewQuoteOrderCostQuery(in, "SPRING10")
		require.NoError(t, err)

		quoter := new(MockQuoter)
		quoter.On("Quote", ctx, in, "SPRING10").Return(pricing.Quote{
			Breakdown:          cost.Breakdown{ServiceFeeBeforeDiscount: 33_000, TotalPayable: 33_000},
			EvictedPromotionID: "SPRING10",
			Notice:             "promotion is not eligible",
		}, nil).Once()

		resp, err := queries.NewQuoteOrderCostQueryHandler(quoter).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, kernel.Money(33_000), resp.Breakdown.TotalPayable)
		assert.Equal(t, "SPRING10", resp.EvictedPromotionID)
		assert.Equal(t, "promotion is not eligible", resp.Notice)
		quoter.AssertExpectations(t)
	})

	t.Run("should propagate rate lookup failure", func(t *testing.T) {
		ctx := t.Context()
		query, err := queries.NewQuoteOrderCostQuery(cost.Inputs{Weight: 2000, ServiceTierID: "STANDARD"}, "")
		require.NoError(t, err)
		quoter := new(MockQuoter)
		quoter.On("Quote", ctx, mock.Anything, "").Return(pricing.Quote{}, ports.ErrRateLookupFailed).Once()

		_, err = queries.NewQuoteOrderCostQueryHandler(quoter).Handle(ctx, query)

		require.ErrorIs(t, err, ports.ErrRateLookupFailed)
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		_, err := queries.NewQuoteOrderCostQueryHandler(new(MockQuoter)).Handle(t.Context(), queries.QuoteOrderCostQuery{})
		require.ErrorIs(t, err, queries.ErrQuoteOrderCostQueryIsNotConstructed)
	})
}
