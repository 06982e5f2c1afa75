package queries

import (
	"context"

	"shiporder/internal/core/domain/services"
	"shiporder/internal/core/ports"
)

type ListEligiblePromotionsQueryHandler struct {
	catalog  ports.PromotionCatalog
	composer services.CostComposer
}

func NewListEligiblePromotionsQueryHandler(catalog ports.PromotionCatalog) ListEligiblePromotionsQueryHandler {
	return ListEligiblePromotionsQueryHandler{
		catalog:  catalog,
		composer: services.NewCostComposer(),
	}
}

// Handle returns the catalog's answer, dropping any rule the composer would
// reject for the queried fee.
func (h ListEligiblePromotionsQueryHandler) Handle(
	ctx context.Context,
	query ListEligiblePromotionsQuery,
) ([]ListEligiblePromotionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rules, err := h.catalog.ListEligiblePromotions(ctx, ports.PromotionFilter{
		ServiceTierID: query.ServiceTierID(),
		ServiceFee:    query.ServiceFee(),
	})
	if err != nil {
		return nil, err
	}

	result := make([]ListEligiblePromotionsQueryResponse, 0, len(rules))
	for _, rule := range rules {
		if query.ServiceFee() == 0 {
			result = append(result, ListEligiblePromotionsQueryResponse{Rule: rule})
			continue
		}
		discount, resolveErr := h.composer.ResolveDiscount(query.ServiceFee(), &rule)
		if resolveErr != nil {
			continue
		}
		result = append(result, ListEligiblePromotionsQueryResponse{Rule: rule, Discount: discount})
	}

	return result, nil
}
