package ports

import (
	"context"

	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/promotion"
)

// PromotionFilter narrows ListEligiblePromotions. A zero ServiceFee lists
// every active promotion.
type PromotionFilter struct {
	ServiceTierID string
	ServiceFee    kernel.Money
}

// PromotionCatalog is the read-only source of promotion rules.
type PromotionCatalog interface {
	ListEligiblePromotions(ctx context.Context, filter PromotionFilter) ([]promotion.Rule, error)

	// GetPromotionByID reports a missing promotion as errs.ErrObjectNotFound.
	GetPromotionByID(ctx context.Context, id string) (promotion.Rule, error)
}
