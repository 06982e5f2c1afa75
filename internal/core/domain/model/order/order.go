package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"shiporder/internal/core/domain/model/cost"
	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/pkg/errs"
)

// Order is the shipment order aggregate. Every field change goes through the
// mutability policy for the order's current status and creator type.
type Order struct {
	id            kernel.UUID
	creator       CreatorType
	status        Status
	weight        kernel.Weight
	serviceTierID string
	route         kernel.Route
	codAmount     kernel.Money
	declaredValue kernel.Money
	products      []string
	pickupMethod  PickupMethod
	payer         Payer
	promotionID   string
	breakdown     cost.Breakdown
	isConstructed bool
}

// NewOrder creates a Draft order.
func NewOrder(id kernel.UUID, creator CreatorType, shipment Shipment) (*Order, error) {
	o := &Order{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCreator(creator),
		o.setShipment(shipment),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage without replaying the
// policy checks.
func RestoreOrder(
	id kernel.UUID,
	creator CreatorType,
	status Status,
	shipment Shipment,
	promotionID string,
	breakdown cost.Breakdown,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCreator(creator),
		status.Validate(),
		o.setShipment(shipment),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.promotionID = promotionID
	o.breakdown = breakdown
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Creator() CreatorType {
	return o.creator
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Weight() kernel.Weight {
	return o.weight
}

func (o *Order) ServiceTierID() string {
	return o.serviceTierID
}

func (o *Order) Route() kernel.Route {
	return o.route
}

func (o *Order) CollectOnDeliveryAmount() kernel.Money {
	return o.codAmount
}

func (o *Order) DeclaredGoodsValue() kernel.Money {
	return o.declaredValue
}

// Products returns a copy of the product list.
func (o *Order) Products() []string {
	return slices.Clone(o.products)
}

func (o *Order) PickupMethod() PickupMethod {
	return o.pickupMethod
}

func (o *Order) Payer() Payer {
	return o.payer
}

// PromotionID returns the selected promotion, or "" when none is selected.
func (o *Order) PromotionID() string {
	return o.promotionID
}

// Breakdown returns the last cost breakdown applied to the order.
func (o *Order) Breakdown() cost.Breakdown {
	return o.breakdown
}

// CostInputs projects the order onto the cost composer's inputs.
func (o *Order) CostInputs() cost.Inputs {
	return cost.Inputs{
		Weight:                  o.weight,
		ServiceTierID:           o.serviceTierID,
		OriginRegionCode:        o.route.Origin(),
		DestinationRegionCode:   o.route.Destination(),
		CollectOnDeliveryAmount: o.codAmount,
		DeclaredGoodsValue:      o.declaredValue,
	}
}

// IsEditable reports whether any field of the order may still change.
func (o *Order) IsEditable() bool {
	return IsOrderEditableBy(o.status, o.creator)
}

// EditableFields lists the fields that may change in the current status.
func (o *Order) EditableFields() []FieldKey {
	return EditableFields(o.status, o.creator)
}

func (o *Order) ChangeWeight(weight kernel.Weight) error {
	return o.Apply(Changes{Weight: &weight})
}

func (o *Order) ChangeServiceTier(serviceTierID string) error {
	return o.Apply(Changes{ServiceTierID: &serviceTierID})
}

func (o *Order) ChangeCollectOnDeliveryAmount(amount kernel.Money) error {
	return o.Apply(Changes{CollectOnDeliveryAmount: &amount})
}

func (o *Order) ChangeDeclaredGoodsValue(amount kernel.Money) error {
	return o.Apply(Changes{DeclaredGoodsValue: &amount})
}

func (o *Order) ChangeProducts(products []string) error {
	return o.Apply(Changes{Products: products})
}

func (o *Order) ChangePickupMethod(method PickupMethod) error {
	return o.Apply(Changes{PickupMethod: &method})
}

func (o *Order) ChangePayer(payer Payer) error {
	return o.Apply(Changes{Payer: &payer})
}

// Apply performs a batch of field changes. Either all of them are applied or
// none: policy and value checks run before the first assignment.
func (o *Order) Apply(c Changes) error {
	if err := o.Validate(); err != nil {
		return err
	}

	var checks []error
	for _, field := range c.Fields() {
		if !IsFieldEditable(field, o.status, o.creator) {
			checks = append(checks, NewFieldIsNotEditableError(field, o.status, o.creator))
		}
	}
	if err := errors.Join(checks...); err != nil {
		return err
	}
	if err := c.validate(); err != nil {
		return err
	}

	if c.Weight != nil {
		o.weight = *c.Weight
	}
	if c.ServiceTierID != nil {
		o.serviceTierID = strings.TrimSpace(*c.ServiceTierID)
	}
	if c.CollectOnDeliveryAmount != nil {
		o.codAmount = *c.CollectOnDeliveryAmount
	}
	if c.DeclaredGoodsValue != nil {
		o.declaredValue = *c.DeclaredGoodsValue
	}
	if c.Products != nil {
		o.products = slices.Clone(c.Products)
	}
	if c.PickupMethod != nil {
		o.pickupMethod = *c.PickupMethod
	}
	if c.Payer != nil {
		o.payer = *c.Payer
	}
	return nil
}

// SelectPromotion records the customer's promotion choice. Eligibility is
// checked by the cost composer, not here.
func (o *Order) SelectPromotion(promotionID string) error {
	if !o.IsEditable() {
		return ErrOrderIsNotEditable
	}
	o.promotionID = strings.TrimSpace(promotionID)
	return nil
}

// ClearPromotion drops the selection, e.g. after it became ineligible.
func (o *Order) ClearPromotion() {
	o.promotionID = ""
	o.breakdown.AppliedPromotionID = ""
}

// ApplyBreakdown stores a freshly computed cost breakdown.
func (o *Order) ApplyBreakdown(b cost.Breakdown) {
	o.breakdown = b
}

// Cancel moves the order to Cancelled. Only possible before PickingUp.
func (o *Order) Cancel() error {
	if !IsOrderCancellable(o.status) {
		return ErrOrderIsNotCancellable
	}
	o.status = Cancelled
	return nil
}

// TransitionTo advances the lifecycle along the status graph.
func (o *Order) TransitionTo(next Status) error {
	if next == Cancelled {
		return o.Cancel()
	}
	if o.status == Draft && o.weight.IsZero() {
		return errs.NewValueIsRequiredErrorWithCause("weight", fmt.Errorf("a %s order must be weighed before it becomes %s", o.status, next))
	}
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCreator(creator CreatorType) error {
	if err := creator.Validate(); err != nil {
		return err
	}
	o.creator = creator
	return nil
}

func (o *Order) setShipment(s Shipment) error {
	if err := errors.Join(
		validateWeight(s.Weight),
		validateServiceTier(s.ServiceTierID),
		s.Route.Validate(),
		s.CollectOnDeliveryAmount.Validate("collect on delivery amount"),
		s.DeclaredGoodsValue.Validate("declared goods value"),
		validateProducts(s.Products),
		s.PickupMethod.Validate(),
		s.Payer.Validate(),
	); err != nil {
		return err
	}

	o.weight = s.Weight
	o.serviceTierID = strings.TrimSpace(s.ServiceTierID)
	o.route = s.Route
	o.codAmount = s.CollectOnDeliveryAmount
	o.declaredValue = s.DeclaredGoodsValue
	o.products = slices.Clone(s.Products)
	o.pickupMethod = s.PickupMethod
	o.payer = s.Payer
	return nil
}
