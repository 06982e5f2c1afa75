package http

import (
	"shiporder/internal/core/application/pricing"
	"shiporder/internal/core/application/usecases/queries"
	"shiporder/internal/core/domain/model/cost"
	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/order"
	"shiporder/internal/generated/servers"
)

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func ptrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func quoteInputs(req servers.QuoteRequest) cost.Inputs {
	return cost.Inputs{
		Weight:                  kernel.Weight(deref(req.WeightGrams)),
		ServiceTierID:           deref(req.ServiceTierId),
		OriginRegionCode:        kernel.RegionCode(deref(req.OriginRegionCode)),
		DestinationRegionCode:   kernel.RegionCode(deref(req.DestinationRegionCode)),
		CollectOnDeliveryAmount: kernel.Money(deref(req.CollectOnDeliveryAmount)),
		DeclaredGoodsValue:      kernel.Money(deref(req.DeclaredGoodsValue)),
	}
}

func toChanges(req servers.OrderChanges) order.Changes {
	var c order.Changes
	if req.WeightGrams != nil {
		w := kernel.Weight(*req.WeightGrams)
		c.Weight = &w
	}
	c.ServiceTierID = req.ServiceTierId
	if req.CollectOnDeliveryAmount != nil {
		m := kernel.Money(*req.CollectOnDeliveryAmount)
		c.CollectOnDeliveryAmount = &m
	}
	if req.DeclaredGoodsValue != nil {
		m := kernel.Money(*req.DeclaredGoodsValue)
		c.DeclaredGoodsValue = &m
	}
	if req.Products != nil {
		c.Products = append([]string{}, *req.Products...)
	}
	if req.PickupMethod != nil {
		p := order.PickupMethod(*req.PickupMethod)
		c.PickupMethod = &p
	}
	if req.Payer != nil {
		p := order.Payer(*req.Payer)
		c.Payer = &p
	}
	return c
}

func toBreakdown(b cost.Breakdown) servers.CostBreakdown {
	return servers.CostBreakdown{
		BaseShippingFee:          b.BaseShippingFee.Int64(),
		Tax:                      b.Tax.Int64(),
		InsuranceSurcharge:       b.InsuranceSurcharge.Int64(),
		CollectionSurcharge:      b.CollectionSurcharge.Int64(),
		ServiceFeeBeforeDiscount: b.ServiceFeeBeforeDiscount.Int64(),
		DiscountAmount:           b.DiscountAmount.Int64(),
		TotalPayable:             b.TotalPayable.Int64(),
		AppliedPromotionId:       ptrIfNotEmpty(b.AppliedPromotionID),
	}
}

func toQuote(q pricing.Quote) servers.Quote {
	return servers.Quote{
		Breakdown:          toBreakdown(q.Breakdown),
		EvictedPromotionId: ptrIfNotEmpty(q.EvictedPromotionID),
		Notice:             ptrIfNotEmpty(q.Notice),
	}
}

func toPromotion(item queries.ListEligiblePromotionsQueryResponse) servers.Promotion {
	p := servers.Promotion{
		Id:                  item.Rule.ID(),
		Kind:                servers.PromotionKind(item.Rule.Kind()),
		Value:               item.Rule.Value(),
		MinQualifyingAmount: item.Rule.MinQualifyingAmount().Int64(),
		Discount:            item.Discount.Int64(),
	}
	if maxDiscount, ok := item.Rule.MaxDiscount(); ok {
		v := maxDiscount.Int64()
		p.MaxDiscount = &v
	}
	if tiers := item.Rule.ServiceTiers(); len(tiers) > 0 {
		p.ServiceTiers = &tiers
	}
	return p
}
