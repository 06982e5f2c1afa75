package ports

import (
	"context"

	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/order"
)

// OrderRepository persists shipment order aggregates.
type OrderRepository interface {
	// Add stores a new order. The order must be valid and not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order by id. A missing order is reported as errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
