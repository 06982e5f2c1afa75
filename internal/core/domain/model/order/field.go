package order

import (
	"fmt"

	"shiporder/internal/pkg/errs"
)

// FieldKey names an order field whose mutability is governed by the policy table.
type FieldKey string

const (
	FieldWeight                  FieldKey = "weight"
	FieldServiceTier             FieldKey = "serviceTier"
	FieldCollectOnDeliveryAmount FieldKey = "collectOnDeliveryAmount"
	FieldDeclaredGoodsValue      FieldKey = "declaredGoodsValue"
	FieldProductList             FieldKey = "productList"
	FieldPickupMethod            FieldKey = "pickupMethod"
	FieldPayer                   FieldKey = "payer"
)

// AllFields returns the governed fields in display order.
func AllFields() []FieldKey {
	return []FieldKey{
		FieldWeight,
		FieldServiceTier,
		FieldCollectOnDeliveryAmount,
		FieldDeclaredGoodsValue,
		FieldProductList,
		FieldPickupMethod,
		FieldPayer,
	}
}

func (f FieldKey) Validate() error {
	if _, ok := fieldEditWindows[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%q is not a known order field", string(f)))
	}
	return nil
}

// AffectsCost reports whether changing the field requires a fresh cost breakdown.
func (f FieldKey) AffectsCost() bool {
	switch f {
	case FieldWeight, FieldServiceTier, FieldCollectOnDeliveryAmount, FieldDeclaredGoodsValue:
		return true
	default:
		return false
	}
}
