package promotion

import (
	"errors"
	"fmt"

	"shiporder/internal/core/domain/model/kernel"
)

// ErrIneligible is the sentinel for a selected promotion that no longer applies.
var ErrIneligible = errors.New("promotion is not eligible")

// IneligibleError tells the caller which promotion to evict and why. A set
// ServiceTierID means the rule does not cover that tier; otherwise the fee is
// below the minimum.
type IneligibleError struct {
	PromotionID   string
	ServiceFee    kernel.Money
	MinQualifying kernel.Money
	ServiceTierID string
}

func NewIneligibleError(rule Rule, serviceFee kernel.Money) *IneligibleError {
	return &IneligibleError{
		PromotionID:   rule.ID(),
		ServiceFee:    serviceFee,
		MinQualifying: rule.MinQualifyingAmount(),
	}
}

// NewTierMismatchError reports a rule that is restricted to other service tiers.
func NewTierMismatchError(rule Rule, serviceTierID string) *IneligibleError {
	return &IneligibleError{
		PromotionID:   rule.ID(),
		MinQualifying: rule.MinQualifyingAmount(),
		ServiceTierID: serviceTierID,
	}
}

func (e *IneligibleError) Error() string {
	if e.ServiceTierID != "" {
		return fmt.Sprintf("%s: %s does not apply to service tier %s", ErrIneligible, e.PromotionID, e.ServiceTierID)
	}
	return fmt.Sprintf("%s: %s requires a service fee of at least %d, got %d",
		ErrIneligible, e.PromotionID, int64(e.MinQualifying), int64(e.ServiceFee))
}

func (e *IneligibleError) Unwrap() error {
	return ErrIneligible
}
