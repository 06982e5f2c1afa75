package commands_test

import (
	"errors"
	"testing"

	"shiporder/internal/core/application/usecases/commands"
	"shiporder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.ReadyForPickup, order.Customer, "")
	cmd, err := commands.NewCancelOrderCommand(stored.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	repo.On("Update", ctx, stored).Return(nil).Once()
	factory, uow := expectTx(ctx, repo)
	uow.On("Commit", ctx).Return(nil).Once()
	publisher := new(MockPublisher)
	publisher.On("PublishOrderChanged", ctx, stored).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, publisher, discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AfterPickup(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.PickedUp, order.Operator, "")
	cmd, err := commands.NewCancelOrderCommand(stored.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	factory, _ := expectTx(ctx, repo)

	h := commands.NewCancelOrderCommandHandler(factory, new(MockPublisher), discardLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderIsNotCancellable)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.Draft, order.Customer, "")
	cmd, err := commands.NewCancelOrderCommand(stored.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	repo.On("Update", ctx, stored).Return(nil).Once()
	factory, uow := expectTx(ctx, repo)
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	publisher := new(MockPublisher)

	h := commands.NewCancelOrderCommandHandler(factory, publisher, discardLogger())
	err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.Draft, order.Customer, "")
	cmd, err := commands.NewCancelOrderCommand(stored.ID())
	require.NoError(t, err)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(factory, new(MockPublisher), discardLogger())
	err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
