package order

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrFieldIsNotEditable is the sentinel behind FieldIsNotEditableError.
	ErrFieldIsNotEditable = errors.New("field is not editable")
	// ErrOrderIsNotEditable is returned when an order-level edit (such as selecting
	// a promotion) is attempted outside the edit window.
	ErrOrderIsNotEditable = errors.New("order is not editable")
	// ErrOrderIsNotCancellable is returned when cancelling at or after PickingUp.
	ErrOrderIsNotCancellable = errors.New("order is not cancellable")
)

// FieldIsNotEditableError reports an edit rejected by the mutability policy.
type FieldIsNotEditableError struct {
	Field   FieldKey
	Status  Status
	Creator CreatorType
}

func NewFieldIsNotEditableError(field FieldKey, status Status, creator CreatorType) *FieldIsNotEditableError {
	return &FieldIsNotEditableError{Field: field, Status: status, Creator: creator}
}

func (e *FieldIsNotEditableError) Error() string {
	return fmt.Sprintf("%s: %s on a %s order created by %s", ErrFieldIsNotEditable, e.Field, e.Status, e.Creator)
}

func (e *FieldIsNotEditableError) Unwrap() error {
	return ErrFieldIsNotEditable
}
