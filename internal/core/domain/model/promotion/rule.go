package promotion

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/pkg/errs"
	"shiporder/internal/pkg/guard"
)

// ErrRuleIsNotConstructed is returned when a zero-value Rule is evaluated.
var ErrRuleIsNotConstructed = errors.New("promotion Rule must be created via NewRule constructor")

// MaxPercentage is the largest percentage discount a rule may carry.
const MaxPercentage = 100

// DiscountKind selects how the discount value is interpreted.
type DiscountKind string

const (
	// Fixed subtracts DiscountValue minor units.
	Fixed DiscountKind = "FIXED"
	// Percentage subtracts DiscountValue percent of the service fee.
	Percentage DiscountKind = "PERCENTAGE"
)

func (k DiscountKind) Validate() error {
	switch k {
	case Fixed, Percentage:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("discount kind", fmt.Errorf("%q is not a valid discount kind", string(k)))
	}
}

// Rule is one promotion offer.
type Rule struct { //nolint:recvcheck //using for validation
	id            string
	kind          DiscountKind
	value         int64
	maxDiscount   *kernel.Money
	minQualifying kernel.Money
	serviceTiers  []string
	guard         guard.ConstructorGuard
}

// NewRule validates and builds a promotion rule.
//
// maxDiscount nil means uncapped. An explicit zero cap would silently disable the
// promotion and is rejected as invalid data. Percentage values must lie in
// [0, MaxPercentage]; fixed values must be a valid Money amount.
func NewRule(
	id string,
	kind DiscountKind,
	value int64,
	maxDiscount *kernel.Money,
	minQualifying kernel.Money,
) (Rule, error) {
	r := Rule{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setID(id),
		r.setDiscount(kind, value),
		r.setMaxDiscount(maxDiscount),
		r.setMinQualifying(minQualifying),
	); err != nil {
		return Rule{}, err
	}

	return r, nil
}

func (r Rule) Validate() error {
	return r.guard.Validate(ErrRuleIsNotConstructed)
}

func (r Rule) ID() string {
	return r.id
}

func (r Rule) Kind() DiscountKind {
	return r.kind
}

// Value is a Money amount for Fixed rules and percentage points for Percentage rules.
func (r Rule) Value() int64 {
	return r.value
}

// MaxDiscount returns the cap and whether one is set.
func (r Rule) MaxDiscount() (kernel.Money, bool) {
	if r.maxDiscount == nil {
		return 0, false
	}
	return *r.maxDiscount, true
}

func (r Rule) MinQualifyingAmount() kernel.Money {
	return r.minQualifying
}

// ServiceTiers lists the tiers the rule is restricted to. Empty means any tier.
func (r Rule) ServiceTiers() []string {
	return slices.Clone(r.serviceTiers)
}

// RestrictToServiceTiers returns a copy of r that only applies to the given
// tiers. No tiers lifts the restriction.
func (r Rule) RestrictToServiceTiers(tiers ...string) (Rule, error) {
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}

	restricted := make([]string, 0, len(tiers))
	for i, tier := range tiers {
		tier = strings.TrimSpace(tier)
		if tier == "" {
			return Rule{}, errs.NewValueIsInvalidErrorWithCause("service tiers", fmt.Errorf("entry %d is blank", i))
		}
		if !slices.Contains(restricted, tier) {
			restricted = append(restricted, tier)
		}
	}

	r.serviceTiers = restricted
	return r, nil
}

// AppliesTo reports whether the rule may be used for serviceTierID.
func (r Rule) AppliesTo(serviceTierID string) bool {
	return len(r.serviceTiers) == 0 || slices.Contains(r.serviceTiers, strings.TrimSpace(serviceTierID))
}

// Qualifies reports whether serviceFee reaches the minimum qualifying amount.
func (r Rule) Qualifies(serviceFee kernel.Money) bool {
	return serviceFee >= r.minQualifying
}

func (r *Rule) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("promotion id")
	}
	r.id = id
	return nil
}

func (r *Rule) setDiscount(kind DiscountKind, value int64) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	switch kind {
	case Percentage:
		if value < 0 || value > MaxPercentage {
			return errs.NewValueIsOutOfRangeErrorWithCause("discount percentage", value, 0, MaxPercentage,
				errors.New("a percentage discount cannot exceed the whole service fee"))
		}
	case Fixed:
		if err := kernel.Money(value).Validate("discount amount"); err != nil {
			return err
		}
	}

	r.kind = kind
	r.value = value
	return nil
}

func (r *Rule) setMaxDiscount(maxDiscount *kernel.Money) error {
	if maxDiscount == nil {
		r.maxDiscount = nil
		return nil
	}
	if *maxDiscount == 0 {
		return errs.NewValueIsInvalidErrorWithCause("max discount amount",
			errors.New("an explicit zero cap disables the promotion; omit the cap for an uncapped discount"))
	}
	if err := maxDiscount.Validate("max discount amount"); err != nil {
		return err
	}
	capped := *maxDiscount
	r.maxDiscount = &capped
	return nil
}

func (r *Rule) setMinQualifying(minQualifying kernel.Money) error {
	if err := minQualifying.Validate("min qualifying amount"); err != nil {
		return err
	}
	r.minQualifying = minQualifying
	return nil
}
