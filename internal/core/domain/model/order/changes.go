package order

import (
	"errors"

	"shiporder/internal/core/domain/model/kernel"
)

// Changes is a partial update of an order. Nil fields are left untouched.
type Changes struct {
	Weight                  *kernel.Weight
	ServiceTierID           *string
	CollectOnDeliveryAmount *kernel.Money
	DeclaredGoodsValue      *kernel.Money
	Products                []string
	PickupMethod            *PickupMethod
	Payer                   *Payer
}

// Fields returns the keys touched by the change set, in AllFields order.
func (c Changes) Fields() []FieldKey {
	var fields []FieldKey
	if c.Weight != nil {
		fields = append(fields, FieldWeight)
	}
	if c.ServiceTierID != nil {
		fields = append(fields, FieldServiceTier)
	}
	if c.CollectOnDeliveryAmount != nil {
		fields = append(fields, FieldCollectOnDeliveryAmount)
	}
	if c.DeclaredGoodsValue != nil {
		fields = append(fields, FieldDeclaredGoodsValue)
	}
	if c.Products != nil {
		fields = append(fields, FieldProductList)
	}
	if c.PickupMethod != nil {
		fields = append(fields, FieldPickupMethod)
	}
	if c.Payer != nil {
		fields = append(fields, FieldPayer)
	}
	return fields
}

func (c Changes) IsEmpty() bool {
	return len(c.Fields()) == 0
}

// AffectsCost reports whether any touched field feeds the cost breakdown.
func (c Changes) AffectsCost() bool {
	for _, f := range c.Fields() {
		if f.AffectsCost() {
			return true
		}
	}
	return false
}

func (c Changes) validate() error {
	var problems []error
	if c.Weight != nil {
		// An edit can only replace a weight, never remove it.
		_, err := kernel.NewWeight(c.Weight.Grams())
		problems = append(problems, err)
	}
	if c.ServiceTierID != nil {
		problems = append(problems, validateServiceTier(*c.ServiceTierID))
	}
	if c.CollectOnDeliveryAmount != nil {
		problems = append(problems, c.CollectOnDeliveryAmount.Validate("collect on delivery amount"))
	}
	if c.DeclaredGoodsValue != nil {
		problems = append(problems, c.DeclaredGoodsValue.Validate("declared goods value"))
	}
	if c.Products != nil {
		problems = append(problems, validateProducts(c.Products))
	}
	if c.PickupMethod != nil {
		problems = append(problems, c.PickupMethod.Validate())
	}
	if c.Payer != nil {
		problems = append(problems, c.Payer.Validate())
	}
	return errors.Join(problems...)
}
