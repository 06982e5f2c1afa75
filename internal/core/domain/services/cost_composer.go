package services

import (
	"errors"
	"fmt"

	"shiporder/internal/core/domain/model/cost"
	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/promotion"
	"shiporder/internal/pkg/errs"
)

// Surcharge and tax rates, expressed as integer ratios so no amount ever
// passes through floating point.
const (
	taxNumerator          = 110
	taxDenominator        = 100
	insuranceNumerator    = 5
	insuranceDenominator  = 1000
	collectionNumerator   = 2
	collectionDenominator = 100
	percentDenominator    = 100
)

// CostComposer derives the payable amount of a shipment. It is stateless and
// safe for concurrent use.
//
// Composition:
//
//	tax                      = ceil(base * 1.10) - base
//	insurance                = round(declaredGoodsValue * 0.005)
//	collection               = round(codAmount * 0.02)
//	serviceFeeBeforeDiscount = base + tax + insurance + collection
//	totalPayable             = max(serviceFeeBeforeDiscount - discount, 0)
//
// The selected promotion is re-checked on every call.
type CostComposer struct{}

func NewCostComposer() CostComposer {
	return CostComposer{}
}

// ComputeBreakdown composes the cost of a shipment.
//
// A zero weight means the form is incomplete and yields a zeroed breakdown with
// no error. Negative amounts are invalid input. When promo no longer qualifies,
// because the fee is below its minimum or the rule excludes the service tier,
// the breakdown is returned with no discount together with a
// *promotion.IneligibleError so the caller can evict the selection.
func (c CostComposer) ComputeBreakdown(
	baseShippingFee kernel.Money,
	in cost.Inputs,
	promo *promotion.Rule,
) (cost.Breakdown, error) {
	if err := errors.Join(
		baseShippingFee.Validate("base shipping fee"),
		in.Validate(),
	); err != nil {
		return cost.Breakdown{}, err
	}
	if promo != nil {
		if err := promo.Validate(); err != nil {
			return cost.Breakdown{}, err
		}
	}

	if in.Weight.IsZero() {
		return cost.Breakdown{}, nil
	}

	taxed := baseShippingFee.MulRatio(taxNumerator, taxDenominator, kernel.RoundUp)
	insurance := in.DeclaredGoodsValue.MulRatio(insuranceNumerator, insuranceDenominator, kernel.RoundHalfUp)
	collection := in.CollectOnDeliveryAmount.MulRatio(collectionNumerator, collectionDenominator, kernel.RoundHalfUp)

	b := cost.Breakdown{
		BaseShippingFee:     baseShippingFee,
		Tax:                 taxed - baseShippingFee,
		InsuranceSurcharge:  insurance,
		CollectionSurcharge: collection,
	}
	b.ServiceFeeBeforeDiscount = taxed + insurance + collection

	if promo != nil && !promo.AppliesTo(in.ServiceTierID) {
		b.TotalPayable = b.ServiceFeeBeforeDiscount
		return b, promotion.NewTierMismatchError(*promo, in.ServiceTierID)
	}

	discount, err := c.ResolveDiscount(b.ServiceFeeBeforeDiscount, promo)
	if err != nil {
		b.TotalPayable = b.ServiceFeeBeforeDiscount
		return b, err
	}

	b.DiscountAmount = discount
	b.TotalPayable = b.ServiceFeeBeforeDiscount.Sub(discount)
	if promo != nil {
		b.AppliedPromotionID = promo.ID()
	}
	return b, nil
}

// ResolveDiscount returns the discount promo grants on serviceFee.
//
// No promotion yields 0. Percentage discounts are floored. The cap, when
// present, is applied next, and the result never exceeds serviceFee. A fee
// below the rule's minimum returns a *promotion.IneligibleError.
func (c CostComposer) ResolveDiscount(serviceFee kernel.Money, promo *promotion.Rule) (kernel.Money, error) {
	if promo == nil {
		return 0, nil
	}
	if serviceFee < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("service fee", fmt.Errorf("%d is negative", int64(serviceFee)))
	}
	if err := promo.Validate(); err != nil {
		return 0, err
	}
	if !promo.Qualifies(serviceFee) {
		return 0, promotion.NewIneligibleError(*promo, serviceFee)
	}

	var discount kernel.Money
	switch promo.Kind() {
	case promotion.Fixed:
		discount = kernel.Money(promo.Value())
	case promotion.Percentage:
		discount = serviceFee.MulRatio(promo.Value(), percentDenominator, kernel.RoundDown)
	}

	if maxDiscount, ok := promo.MaxDiscount(); ok {
		discount = discount.Min(maxDiscount)
	}
	return discount.Min(serviceFee), nil
}
