package queries

import (
	"errors"

	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/order"
	"shiporder/internal/pkg/guard"
)

var ErrGetOrderEditabilityQueryIsNotConstructed = errors.New(
	"GetOrderEditabilityQuery must be created via NewGetOrderEditabilityQuery constructor",
)

// GetOrderEditabilityQuery answers which edit actions an order still allows.
type GetOrderEditabilityQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderEditabilityQuery(orderID kernel.UUID) (GetOrderEditabilityQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderEditabilityQuery{}, err
	}
	return GetOrderEditabilityQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderEditabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderEditabilityQueryIsNotConstructed)
}

func (q GetOrderEditabilityQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderEditabilityQueryResponse lists the order-level gates and the field matrix.
type GetOrderEditabilityQueryResponse struct {
	OrderID kernel.UUID
	Status  order.Status
	Creator order.CreatorType
	// IsEditable is the customer-facing edit gate (Draft or Pending).
	IsEditable bool
	// IsEditableByCreator also covers the operator correction window.
	IsEditableByCreator bool
	IsCancellable       bool
	Fields              map[order.FieldKey]bool
}
