package cost

import "shiporder/internal/core/domain/model/kernel"

// Breakdown is the payable composition of one shipment.
//
//	ServiceFeeBeforeDiscount = BaseShippingFee + Tax + InsuranceSurcharge + CollectionSurcharge
//	TotalPayable             = max(ServiceFeeBeforeDiscount - DiscountAmount, 0)
type Breakdown struct {
	BaseShippingFee          kernel.Money
	Tax                      kernel.Money
	InsuranceSurcharge       kernel.Money
	CollectionSurcharge      kernel.Money
	ServiceFeeBeforeDiscount kernel.Money
	DiscountAmount           kernel.Money
	TotalPayable             kernel.Money
	// AppliedPromotionID is empty when no discount was applied.
	AppliedPromotionID string
}

// IsZero reports the breakdown returned for incomplete inputs.
func (b Breakdown) IsZero() bool {
	return b == Breakdown{}
}
