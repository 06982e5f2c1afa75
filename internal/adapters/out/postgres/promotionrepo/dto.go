// Package promotionrepo reads the promotion catalog from Postgres.
package promotionrepo

import (
	"time"

	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/promotion"

	"github.com/lib/pq"
)

// PromotionDTO is the promotions table row. An empty ServiceTiers list means
// the promotion applies to every tier.
type PromotionDTO struct {
	ID                  string         `gorm:"primaryKey;size:64"`
	Kind                string         `gorm:"size:16;not null"`
	Value               int64          `gorm:"not null"`
	MaxDiscount         *int64
	MinQualifyingAmount int64          `gorm:"not null;default:0"`
	ServiceTiers        pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Active              bool           `gorm:"not null;default:true;index"`
	StartsAt            *time.Time
	EndsAt              *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (PromotionDTO) TableName() string {
	return "promotions"
}

func toDomain(dto PromotionDTO) (promotion.Rule, error) {
	var maxDiscount *kernel.Money
	if dto.MaxDiscount != nil {
		m := kernel.Money(*dto.MaxDiscount)
		maxDiscount = &m
	}

	rule, err := promotion.NewRule(
		dto.ID,
		promotion.DiscountKind(dto.Kind),
		dto.Value,
		maxDiscount,
		kernel.Money(dto.MinQualifyingAmount),
	)
	if err != nil {
		return promotion.Rule{}, err
	}
	return rule.RestrictToServiceTiers(dto.ServiceTiers...)
}
