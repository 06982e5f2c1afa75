// Package commands contains the write operations of the service. Every command
// is a guarded value built by its constructor; every handler runs inside a unit
// of work and publishes an order.changed event after commit.
package commands

import (
	"context"
	"log/slog"

	"shiporder/internal/core/application/pricing"
	"shiporder/internal/core/domain/model/cost"
	"shiporder/internal/core/domain/model/order"
	"shiporder/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// Quoter prices order inputs, see pricing.Quoter.
	Quoter interface {
		Quote(ctx context.Context, in cost.Inputs, promotionID string) (pricing.Quote, error)
	}
)

// reprice refreshes the order's breakdown and drops a promotion that no longer applies.
func reprice(ctx context.Context, quoter Quoter, o *order.Order) (pricing.Quote, error) {
	quote, err := quoter.Quote(ctx, o.CostInputs(), o.PromotionID())
	if err != nil {
		return pricing.Quote{}, err
	}
	if quote.PromotionEvicted() {
		o.ClearPromotion()
	}
	o.ApplyBreakdown(quote.Breakdown)
	return quote, nil
}

// publishChanged announces a committed change. The change is already durable,
// so a publishing failure is logged rather than returned.
func publishChanged(ctx context.Context, publisher ports.OrderEventPublisher, logger *slog.Logger, o *order.Order) {
	if err := publisher.PublishOrderChanged(ctx, o); err != nil {
		logger.WarnContext(ctx, "failed to publish order change",
			"order_id", o.ID().String(),
			"status", o.Status().String(),
			"error", err,
		)
	}
}
