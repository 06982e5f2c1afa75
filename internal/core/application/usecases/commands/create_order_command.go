package commands

import (
	"errors"
	"strings"

	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/order"
	"shiporder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a new Draft shipment order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), order.Customer, shipment, "SPRING10")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	quote, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	creator     order.CreatorType
	shipment    order.Shipment
	promotionID string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the identity fields. Shipment details are
// validated by the order aggregate. promotionID may be empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	creator order.CreatorType,
	shipment order.Shipment,
	promotionID string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		shipment:    shipment,
		promotionID: strings.TrimSpace(promotionID),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCreator(creator),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Creator() order.CreatorType {
	return c.creator
}

func (c CreateOrderCommand) Shipment() order.Shipment {
	return c.shipment
}

func (c CreateOrderCommand) PromotionID() string {
	return c.promotionID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCreator(creator order.CreatorType) error {
	if err := creator.Validate(); err != nil {
		return err
	}
	c.creator = creator
	return nil
}
