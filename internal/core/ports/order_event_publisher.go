package ports

import (
	"context"

	"shiporder/internal/core/domain/model/order"
)

// OrderEventPublisher announces that an order was created or changed.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
