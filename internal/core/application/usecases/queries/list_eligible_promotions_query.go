package queries

import (
	"errors"
	"strings"

	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/promotion"
	"shiporder/internal/pkg/guard"
)

var ErrListEligiblePromotionsQueryIsNotConstructed = errors.New(
	"ListEligiblePromotionsQuery must be created via NewListEligiblePromotionsQuery constructor",
)

// ListEligiblePromotionsQuery lists the promotions a customer may pick for a
// service fee. A zero fee lists every active promotion.
type ListEligiblePromotionsQuery struct {
	serviceTierID string
	serviceFee    kernel.Money

	guard guard.ConstructorGuard
}

func NewListEligiblePromotionsQuery(serviceTierID string, serviceFee kernel.Money) (ListEligiblePromotionsQuery, error) {
	if err := serviceFee.Validate("service fee"); err != nil {
		return ListEligiblePromotionsQuery{}, err
	}
	return ListEligiblePromotionsQuery{
		serviceTierID: strings.TrimSpace(serviceTierID),
		serviceFee:    serviceFee,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListEligiblePromotionsQuery) Validate() error {
	return q.guard.Validate(ErrListEligiblePromotionsQueryIsNotConstructed)
}

func (q ListEligiblePromotionsQuery) ServiceTierID() string {
	return q.serviceTierID
}

func (q ListEligiblePromotionsQuery) ServiceFee() kernel.Money {
	return q.serviceFee
}

type ListEligiblePromotionsQueryResponse struct {
	Rule promotion.Rule
	// Discount is what the rule would grant on the queried fee; zero when no
	// fee was given.
	Discount kernel.Money
}
