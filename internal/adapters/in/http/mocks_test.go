package http_test

import (
	"context"

	"shiporder/internal/core/application/pricing"
	"shiporder/internal/core/application/usecases/commands"
	"shiporder/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrder struct{ mock.Mock }

func (m *MockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (pricing.Quote, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(pricing.Quote), args.Error(1)
}

type MockChangeOrder struct{ mock.Mock }

func (m *MockChangeOrder) Handle(ctx context.Context, cmd commands.ChangeOrderCommand) (pricing.Quote, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(pricing.Quote), args.Error(1)
}

type MockCancelOrder struct{ mock.Mock }

func (m *MockCancelOrder) Handle(ctx context.Context, cmd commands.CancelOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockChangeOrderStatus struct{ mock.Mock }

func (m *MockChangeOrderStatus) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockQuoteOrderCost struct{ mock.Mock }

func (m *MockQuoteOrderCost) Handle(
	ctx context.Context,
	query queries.QuoteOrderCostQuery,
) (queries.QuoteOrderCostQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.QuoteOrderCostQueryResponse), args.Error(1)
}

type MockGetOrderEditability struct{ mock.Mock }

func (m *MockGetOrderEditability) Handle(
	ctx context.Context,
	query queries.GetOrderEditabilityQuery,
) (queries.GetOrderEditabilityQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderEditabilityQueryResponse), args.Error(1)
}

type MockListEligiblePromotions struct{ mock.Mock }

func (m *MockListEligiblePromotions) Handle(
	ctx context.Context,
	query queries.ListEligiblePromotionsQuery,
) ([]queries.ListEligiblePromotionsQueryResponse, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]queries.ListEligiblePromotionsQueryResponse)
	return list, args.Error(1)
}
