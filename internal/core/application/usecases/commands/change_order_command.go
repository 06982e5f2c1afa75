package commands

import (
	"errors"
	"strings"

	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/order"
	"shiporder/internal/pkg/guard"
)

var (
	ErrChangeOrderCommandIsNotConstructed = errors.New(
		"ChangeOrderCommand must be created via NewChangeOrderCommand constructor",
	)
	ErrNothingToChange = errors.New("change set is empty")
)

// ChangeOrderCommand edits fields of an existing order and optionally replaces
// its promotion. A nil promotionID leaves the selection alone; a pointer to ""
// clears it.
type ChangeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	changes     order.Changes
	promotionID *string

	guard guard.ConstructorGuard
}

func NewChangeOrderCommand(orderID kernel.UUID, changes order.Changes, promotionID *string) (ChangeOrderCommand, error) {
	cmd := ChangeOrderCommand{
		changes: changes,
		guard:   guard.NewConstructorGuard(),
	}
	if promotionID != nil {
		trimmed := strings.TrimSpace(*promotionID)
		cmd.promotionID = &trimmed
	}

	var emptyErr error
	if changes.IsEmpty() && promotionID == nil {
		emptyErr = ErrNothingToChange
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		emptyErr,
	); err != nil {
		return ChangeOrderCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderCommandIsNotConstructed)
}

func (c ChangeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderCommand) Changes() order.Changes {
	return c.changes
}

// PromotionID returns the requested selection and whether one was given.
func (c ChangeOrderCommand) PromotionID() (string, bool) {
	if c.promotionID == nil {
		return "", false
	}
	return *c.promotionID, true
}

func (c *ChangeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
