package commands_test

import (
	"errors"
	"testing"

	"shiporder/internal/core/application/pricing"
	"shiporder/internal/core/application/usecases/commands"
	"shiporder/internal/core/domain/model/cost"
	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/order"
	"shiporder/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Customer, testShipment(t), "SPRING10")
	require.NoError(t, err)

	breakdown := cost.Breakdown{ServiceFeeBeforeDiscount: 39_500, DiscountAmount: 3_950, TotalPayable: 35_550, AppliedPromotionID: "SPRING10"}
	quoter := new(MockQuoter)
	quoter.On("Quote", ctx, mock.AnythingOfType("cost.Inputs"), "SPRING10").
		Return(pricing.Quote{Breakdown: breakdown}, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID().IsEqual(cmd.OrderID()) &&
				o.Status() == order.Draft &&
				o.PromotionID() == "SPRING10" &&
				o.Breakdown() == breakdown
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, quoter, publisher, discardLogger())
	quote, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, breakdown, quote.Breakdown)
	quoter.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_EvictsIneligiblePromotion(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Customer, testShipment(t), "SPRING10")
	require.NoError(t, err)

	quoter := new(MockQuoter)
	quoter.On("Quote", ctx, mock.AnythingOfType("cost.Inputs"), "SPRING10").Return(pricing.Quote{
		Breakdown:          cost.Breakdown{ServiceFeeBeforeDiscount: 39_500, TotalPayable: 39_500},
		EvictedPromotionID: "SPRING10",
		Notice:             "promotion is not eligible",
	}, nil).Once()

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.PromotionID() == "" && o.Breakdown().TotalPayable == 39_500
	})).Return(nil).Once()
	factory, uow := expectTx(ctx, repo)
	uow.On("Commit", ctx).Return(nil).Once()
	publisher := new(MockPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, quoter, publisher, discardLogger())
	quote, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, quote.PromotionEvicted())
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory), new(MockQuoter), new(MockPublisher), discardLogger())

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_InvalidShipment(t *testing.T) {
	shipment := testShipment(t)
	shipment.Products = nil
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Customer, shipment, "")
	require.NoError(t, err)
	factory := new(MockOrderUoWFactory)
	quoter := new(MockQuoter)

	h := commands.NewCreateOrderCommandHandler(factory, quoter, new(MockPublisher), discardLogger())
	_, err = h.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "product list")
	factory.AssertNotCalled(t, "Create")
	quoter.AssertNotCalled(t, "Quote", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_RateLookupError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Customer, testShipment(t), "")
	require.NoError(t, err)
	quoter := new(MockQuoter)
	quoter.On("Quote", ctx, mock.Anything, "").Return(pricing.Quote{}, ports.ErrRateLookupFailed).Once()
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, quoter, new(MockPublisher), discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrRateLookupFailed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Customer, testShipment(t), "")
	require.NoError(t, err)
	quoter := new(MockQuoter)
	quoter.On("Quote", ctx, mock.Anything, "").Return(pricing.Quote{}, nil).Once()
	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once()
	factory, uow := expectTx(ctx, repo)
	publisher := new(MockPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, quoter, publisher, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "add error")
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_PublishErrorIsNotFatal(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Operator, testShipment(t), "")
	require.NoError(t, err)
	quoter := new(MockQuoter)
	quoter.On("Quote", ctx, mock.Anything, "").Return(pricing.Quote{}, nil).Once()
	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	factory, uow := expectTx(ctx, repo)
	uow.On("Commit", ctx).Return(nil).Once()
	publisher := new(MockPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	h := commands.NewCreateOrderCommandHandler(factory, quoter, publisher, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	publisher.AssertExpectations(t)
}
