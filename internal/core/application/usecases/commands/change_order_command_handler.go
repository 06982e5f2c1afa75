package commands

import (
	"context"
	"log/slog"

	"shiporder/internal/core/application/pricing"
	"shiporder/internal/core/ports"
)

// ChangeOrderCommandHandler applies an edit under the mutability policy and
// reprices the order when a cost input or the promotion changed.
//
// The rate lookup runs inside the transaction so the stored breakdown always
// matches the stored inputs.
type ChangeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	quoter     Quoter
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewChangeOrderCommandHandler(
	uowFactory OrderUoWFactory,
	quoter Quoter,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ChangeOrderCommandHandler {
	return ChangeOrderCommandHandler{
		uowFactory: uowFactory,
		quoter:     quoter,
		publisher:  publisher,
		logger:     logger.With("component", "ChangeOrderCommandHandler"),
	}
}

func (h ChangeOrderCommandHandler) Handle(ctx context.Context, cmd ChangeOrderCommand) (pricing.Quote, error) {
	if err := cmd.Validate(); err != nil {
		return pricing.Quote{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return pricing.Quote{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return pricing.Quote{}, err
	}

	if err = o.Apply(cmd.Changes()); err != nil {
		return pricing.Quote{}, err
	}
	needsQuote := cmd.Changes().AffectsCost()

	if promotionID, ok := cmd.PromotionID(); ok {
		if err = o.SelectPromotion(promotionID); err != nil {
			return pricing.Quote{}, err
		}
		needsQuote = true
	}

	quote := pricing.Quote{Breakdown: o.Breakdown()}
	if needsQuote {
		if quote, err = reprice(ctx, h.quoter, o); err != nil {
			return pricing.Quote{}, err
		}
	}

	if err = repo.Update(ctx, o); err != nil {
		return pricing.Quote{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return pricing.Quote{}, err
	}

	publishChanged(ctx, h.publisher, h.logger, o)
	return quote, nil
}
