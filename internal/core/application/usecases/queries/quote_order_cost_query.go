package queries

import (
	"errors"
	"strings"

	"shiporder/internal/core/domain/model/cost"
	"shiporder/internal/pkg/guard"
)

var ErrQuoteOrderCostQueryIsNotConstructed = errors.New(
	"QuoteOrderCostQuery must be created via NewQuoteOrderCostQuery constructor",
)

// QuoteOrderCostQuery prices an order form that may still be incomplete. It is
// issued again every time a cost input changes.
type QuoteOrderCostQuery struct {
	inputs      cost.Inputs
	promotionID string

	guard guard.ConstructorGuard
}

func NewQuoteOrderCostQuery(inputs cost.Inputs, promotionID string) (QuoteOrderCostQuery, error) {
	if err := inputs.Validate(); err != nil {
		return QuoteOrderCostQuery{}, err
	}
	return QuoteOrderCostQuery{
		inputs:      inputs,
		promotionID: strings.TrimSpace(promotionID),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteOrderCostQuery) Validate() error {
	return q.guard.Validate(ErrQuoteOrderCostQueryIsNotConstructed)
}

func (q QuoteOrderCostQuery) Inputs() cost.Inputs {
	return q.inputs
}

func (q QuoteOrderCostQuery) PromotionID() string {
	return q.promotionID
}

// QuoteOrderCostQueryResponse carries the breakdown and, when the selected
// promotion was dropped, its id and the notice to show.
type QuoteOrderCostQueryResponse struct {
	Breakdown          cost.Breakdown
	EvictedPromotionID string
	Notice             string
}
