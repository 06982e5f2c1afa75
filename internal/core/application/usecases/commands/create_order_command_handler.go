package commands

import (
	"context"
	"log/slog"

	"shiporder/internal/core/application/pricing"
	"shiporder/internal/core/domain/model/order"
	"shiporder/internal/core/ports"
)

// CreateOrderCommandHandler creates a Draft order priced with its initial
// promotion. An ineligible promotion is dropped before the order is stored and
// reported through the returned quote.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	quoter     Quoter
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	quoter Quoter,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		quoter:     quoter,
		publisher:  publisher,
		logger:     logger.With("component", "CreateOrderCommandHandler"),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (pricing.Quote, error) {
	if err := cmd.Validate(); err != nil {
		return pricing.Quote{}, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Creator(), cmd.Shipment())
	if err != nil {
		return pricing.Quote{}, err
	}
	if cmd.PromotionID() != "" {
		if err = o.SelectPromotion(cmd.PromotionID()); err != nil {
			return pricing.Quote{}, err
		}
	}

	quote, err := reprice(ctx, h.quoter, o)
	if err != nil {
		return pricing.Quote{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return pricing.Quote{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return pricing.Quote{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return pricing.Quote{}, err
	}

	publishChanged(ctx, h.publisher, h.logger, o)
	return quote, nil
}
