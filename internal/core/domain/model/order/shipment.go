package order

import (
	"fmt"
	"strings"

	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/pkg/errs"
)

// PickupMethod selects how the carrier receives the parcel.
type PickupMethod string

const (
	// DoorPickup sends a courier to the sender's address.
	DoorPickup PickupMethod = "DOOR_PICKUP"
	// OfficeDropOff has the sender bring the parcel to a post office.
	OfficeDropOff PickupMethod = "OFFICE_DROP_OFF"
)

func (p PickupMethod) Validate() error {
	switch p {
	case DoorPickup, OfficeDropOff:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("pickup method", fmt.Errorf("%q is not a valid pickup method", string(p)))
	}
}

// Payer selects who pays the service fee.
type Payer string

const (
	SenderPays    Payer = "SENDER"
	RecipientPays Payer = "RECIPIENT"
)

func (p Payer) Validate() error {
	switch p {
	case SenderPays, RecipientPays:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payer", fmt.Errorf("%q is not a valid payer", string(p)))
	}
}

// Shipment groups the order details supplied at creation.
type Shipment struct {
	Weight                  kernel.Weight
	ServiceTierID           string
	Route                   kernel.Route
	CollectOnDeliveryAmount kernel.Money
	DeclaredGoodsValue      kernel.Money
	Products                []string
	PickupMethod            PickupMethod
	Payer                   Payer
}

// validateWeight accepts zero: a draft may be saved before the parcel is weighed.
func validateWeight(w kernel.Weight) error {
	if w.IsZero() {
		return nil
	}
	_, err := kernel.NewWeight(w.Grams())
	return err
}

func validateServiceTier(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("service tier")
	}
	return nil
}

func validateProducts(products []string) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredError("product list")
	}
	for i, p := range products {
		if strings.TrimSpace(p) == "" {
			return errs.NewValueIsInvalidErrorWithCause("product list", fmt.Errorf("item %d is empty", i))
		}
	}
	return nil
}
