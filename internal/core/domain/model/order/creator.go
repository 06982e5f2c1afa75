package order

import (
	"fmt"
	"strings"

	"shiporder/internal/pkg/errs"
)

// CreatorType records who created the order. It is fixed at creation.
type CreatorType int

const (
	UnknownCreator CreatorType = iota
	// Customer orders are placed through the self-service channel.
	Customer
	// Operator orders are entered by warehouse or call-center staff.
	Operator
)

func ParseCreatorType(name string) (CreatorType, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "CUSTOMER":
		return Customer, nil
	case "OPERATOR":
		return Operator, nil
	default:
		return UnknownCreator, errs.NewValueIsInvalidErrorWithCause("creator type", fmt.Errorf("%q is not a valid creator type", name))
	}
}

func (c CreatorType) Validate() error {
	if c != Customer && c != Operator {
		return errs.NewValueIsInvalidErrorWithCause("creator type", fmt.Errorf("%d is not a valid creator type", c))
	}
	return nil
}

func (c CreatorType) String() string {
	switch c {
	case Customer:
		return "CUSTOMER"
	case Operator:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}
