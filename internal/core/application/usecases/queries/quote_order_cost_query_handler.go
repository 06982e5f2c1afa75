package queries

import (
	"context"

	"shiporder/internal/core/application/pricing"
	"shiporder/internal/core/domain/model/cost"
)

// Quoter prices order inputs, see pricing.Quoter.
type Quoter interface {
	Quote(ctx context.Context, in cost.Inputs, promotionID string) (pricing.Quote, error)
}

type QuoteOrderCostQueryHandler struct {
	quoter Quoter
}

func NewQuoteOrderCostQueryHandler(quoter Quoter) QuoteOrderCostQueryHandler {
	return QuoteOrderCostQueryHandler{quoter: quoter}
}

func (h QuoteOrderCostQueryHandler) Handle(ctx context.Context, query QuoteOrderCostQuery) (QuoteOrderCostQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteOrderCostQueryResponse{}, err
	}

	quote, err := h.quoter.Quote(ctx, query.Inputs(), query.PromotionID())
	if err != nil {
		return QuoteOrderCostQueryResponse{}, err
	}

	return QuoteOrderCostQueryResponse{
		Breakdown:          quote.Breakdown,
		EvictedPromotionID: quote.EvictedPromotionID,
		Notice:             quote.Notice,
	}, nil
}
