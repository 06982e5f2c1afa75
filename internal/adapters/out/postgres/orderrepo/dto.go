// Package orderrepo persists shipment orders with GORM.
package orderrepo

import (
	"time"

	"shiporder/internal/core/domain/model/cost"
	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO is the orders table row.
type OrderDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatorType        int            `gorm:"not null"`
	Status             int            `gorm:"not null;index"`
	WeightGrams        int64          `gorm:"not null"`
	ServiceTierID      string         `gorm:"size:64;not null"`
	OriginRegion       string         `gorm:"size:32;not null"`
	DestinationRegion  string         `gorm:"size:32;not null"`
	CODAmount          int64          `gorm:"column:cod_amount;not null"`
	DeclaredGoodsValue int64          `gorm:"not null"`
	Products           pq.StringArray `gorm:"type:text[];not null"`
	PickupMethod       string         `gorm:"size:32;not null"`
	Payer              string         `gorm:"size:16;not null"`
	PromotionID        *string        `gorm:"size:64"`
	Cost               CostDTO        `gorm:"embedded;embeddedPrefix:cost_"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// CostDTO is the last breakdown shown to the customer.
type CostDTO struct {
	BaseShippingFee          int64
	Tax                      int64
	InsuranceSurcharge       int64
	CollectionSurcharge      int64
	ServiceFeeBeforeDiscount int64
	DiscountAmount           int64
	TotalPayable             int64
	AppliedPromotionID       string `gorm:"size:64"`
}

func fromDomain(o *order.Order) OrderDTO {
	var promotionID *string
	if id := o.PromotionID(); id != "" {
		promotionID = &id
	}

	b := o.Breakdown()
	return OrderDTO{
		ID:                 o.ID().Bytes(),
		CreatorType:        int(o.Creator()),
		Status:             int(o.Status()),
		WeightGrams:        o.Weight().Grams(),
		ServiceTierID:      o.ServiceTierID(),
		OriginRegion:       string(o.Route().Origin()),
		DestinationRegion:  string(o.Route().Destination()),
		CODAmount:          o.CollectOnDeliveryAmount().Int64(),
		DeclaredGoodsValue: o.DeclaredGoodsValue().Int64(),
		Products:           pq.StringArray(o.Products()),
		PickupMethod:       string(o.PickupMethod()),
		Payer:              string(o.Payer()),
		PromotionID:        promotionID,
		Cost: CostDTO{
			BaseShippingFee:          b.BaseShippingFee.Int64(),
			Tax:                      b.Tax.Int64(),
			InsuranceSurcharge:       b.InsuranceSurcharge.Int64(),
			CollectionSurcharge:      b.CollectionSurcharge.Int64(),
			ServiceFeeBeforeDiscount: b.ServiceFeeBeforeDiscount.Int64(),
			DiscountAmount:           b.DiscountAmount.Int64(),
			TotalPayable:             b.TotalPayable.Int64(),
			AppliedPromotionID:       b.AppliedPromotionID,
		},
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	route, err := kernel.NewRoute(dto.OriginRegion, dto.DestinationRegion)
	if err != nil {
		return nil, err
	}

	var promotionID string
	if dto.PromotionID != nil {
		promotionID = *dto.PromotionID
	}

	shipment := order.Shipment{
		Weight:                  kernel.Weight(dto.WeightGrams),
		ServiceTierID:           dto.ServiceTierID,
		Route:                   route,
		CollectOnDeliveryAmount: kernel.Money(dto.CODAmount),
		DeclaredGoodsValue:      kernel.Money(dto.DeclaredGoodsValue),
		Products:                []string(dto.Products),
		PickupMethod:            order.PickupMethod(dto.PickupMethod),
		Payer:                   order.Payer(dto.Payer),
	}

	breakdown := cost.Breakdown{
		BaseShippingFee:          kernel.Money(dto.Cost.BaseShippingFee),
		Tax:                      kernel.Money(dto.Cost.Tax),
		InsuranceSurcharge:       kernel.Money(dto.Cost.InsuranceSurcharge),
		CollectionSurcharge:      kernel.Money(dto.Cost.CollectionSurcharge),
		ServiceFeeBeforeDiscount: kernel.Money(dto.Cost.ServiceFeeBeforeDiscount),
		DiscountAmount:           kernel.Money(dto.Cost.DiscountAmount),
		TotalPayable:             kernel.Money(dto.Cost.TotalPayable),
		AppliedPromotionID:       dto.Cost.AppliedPromotionID,
	}

	return order.RestoreOrder(
		id,
		order.CreatorType(dto.CreatorType),
		order.Status(dto.Status),
		shipment,
		promotionID,
		breakdown,
	)
}
