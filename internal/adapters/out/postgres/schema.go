package postgres

import (
	"shiporder/internal/adapters/out/postgres/orderrepo"
	"shiporder/internal/adapters/out/postgres/promotionrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the orders and promotions tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &promotionrepo.PromotionDTO{})
}
