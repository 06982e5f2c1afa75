package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shiporder/internal/core/application/pricing"
	"shiporder/internal/core/application/usecases/commands"
	"shiporder/internal/core/domain/model/cost"
	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/order"
	"shiporder/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockQuoter struct{ mock.Mock }

func (m *MockQuoter) Quote(ctx context.Context, in cost.Inputs, promotionID string) (pricing.Quote, error) {
	args := m.Called(ctx, in, promotionID)
	return args.Get(0).(pricing.Quote), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishOrderChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testShipment(t *testing.T) order.Shipment {
	t.Helper()
	route, err := kernel.NewRoute("HN", "HCM")
	require.NoError(t, err)
	return order.Shipment{
		Weight:                  2000,
		ServiceTierID:           "STANDARD",
		Route:                   route,
		CollectOnDeliveryAmount: 200_000,
		DeclaredGoodsValue:      500_000,
		Products:                []string{"book"},
		PickupMethod:            order.DoorPickup,
		Payer:                   order.SenderPays,
	}
}

func storedOrder(t *testing.T, status order.Status, creator order.CreatorType, promotionID string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), creator, status, testShipment(t), promotionID, cost.Breakdown{
		BaseShippingFee:          30_000,
		Tax:                      3_000,
		InsuranceSurcharge:       2_500,
		CollectionSurcharge:      4_000,
		ServiceFeeBeforeDiscount: 39_500,
		TotalPayable:             39_500,
	})
	require.NoError(t, err)
	return o
}

// expectTx wires a factory returning uow, and uow returning repo.
func expectTx(ctx context.Context, repo *MockOrderRepository) (*MockOrderUoWFactory, *MockOrderUoW) {
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow
}
