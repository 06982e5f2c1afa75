// Package pricing runs the full quote flow: rate lookup, promotion fetch and
// cost composition, including eviction of a promotion that no longer applies.
package pricing

import (
	"context"
	"errors"
	"fmt"

	"shiporder/internal/core/domain/model/cost"
	"shiporder/internal/core/domain/model/promotion"
	"shiporder/internal/core/domain/services"
	"shiporder/internal/core/ports"
	"shiporder/internal/pkg/errs"
	"shiporder/internal/pkg/metrics"
)

// Quote is a cost breakdown plus the promotion the caller must drop, if any.
type Quote struct {
	Breakdown          cost.Breakdown
	EvictedPromotionID string
	// Notice is a human readable reason for the eviction.
	Notice string
}

func (q Quote) PromotionEvicted() bool {
	return q.EvictedPromotionID != ""
}

type Quoter struct {
	rates      ports.RateLookup
	promotions ports.PromotionCatalog
	composer   services.CostComposer
	metrics    *metrics.Metrics
}

func NewQuoter(rates ports.RateLookup, promotions ports.PromotionCatalog, m *metrics.Metrics) Quoter {
	return Quoter{
		rates:      rates,
		promotions: promotions,
		composer:   services.NewCostComposer(),
		metrics:    m,
	}
}

// Quote prices in with the promotion selected by promotionID ("" for none).
//
// Incomplete inputs and inputs without both region codes produce a zero
// Quote without calling the rate service. A
// rate service failure is returned wrapped in ports.ErrRateLookupFailed. A
// promotion that is missing from the catalog or below its minimum is evicted:
// the quote carries its id and no discount, and no error is returned.
func (q Quoter) Quote(ctx context.Context, in cost.Inputs, promotionID string) (Quote, error) {
	if err := in.Validate(); err != nil {
		return Quote{}, err
	}
	if !in.IsComplete() || !in.HasRoute() {
		q.metrics.ObserveQuote(metrics.QuoteIncomplete)
		return Quote{}, nil
	}

	base, err := q.rates.GetBaseShippingFee(ctx, in)
	if err != nil {
		q.metrics.ObserveQuote(metrics.QuoteFailed)
		if errors.Is(err, ports.ErrRateLookupFailed) {
			return Quote{}, err
		}
		return Quote{}, fmt.Errorf("%w: %w", ports.ErrRateLookupFailed, err)
	}

	var result Quote
	var promo *promotion.Rule
	if promotionID != "" {
		rule, getErr := q.promotions.GetPromotionByID(ctx, promotionID)
		switch {
		case errors.Is(getErr, errs.ErrObjectNotFound):
			result.EvictedPromotionID = promotionID
			result.Notice = fmt.Sprintf("promotion %s is no longer available", promotionID)
		case getErr != nil:
			q.metrics.ObserveQuote(metrics.QuoteFailed)
			return Quote{}, getErr
		default:
			promo = &rule
		}
	}

	result.Breakdown, err = q.composer.ComputeBreakdown(base, in, promo)
	var ineligible *promotion.IneligibleError
	switch {
	case errors.As(err, &ineligible):
		result.EvictedPromotionID = ineligible.PromotionID
		result.Notice = ineligible.Error()
	case err != nil:
		q.metrics.ObserveQuote(metrics.QuoteFailed)
		return Quote{}, err
	}

	if result.PromotionEvicted() {
		q.metrics.ObserveQuote(metrics.QuoteEvicted)
	} else {
		q.metrics.ObserveQuote(metrics.QuoteComputed)
	}
	return result, nil
}
