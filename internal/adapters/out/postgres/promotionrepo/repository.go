package promotionrepo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shiporder/internal/core/domain/model/promotion"
	"shiporder/internal/core/ports"
	"shiporder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPromotionRepository implements ports.PromotionCatalog. Only active
// promotions inside their validity window are visible.
type GormPromotionRepository struct {
	db     *gorm.DB
	logger *slog.Logger
	now    func() time.Time
}

func NewGormPromotionRepository(db *gorm.DB, logger *slog.Logger) *GormPromotionRepository {
	return &GormPromotionRepository{
		db:     db,
		logger: logger.With("component", "promotion-repository"),
		now:    time.Now,
	}
}

// WithClock replaces the clock used for the validity window.
func (r *GormPromotionRepository) WithClock(now func() time.Time) *GormPromotionRepository {
	r.now = now
	return r
}

func (r *GormPromotionRepository) ListActive(ctx context.Context) ([]promotion.Rule, error) {
	var dtos []PromotionDTO
	if err := r.active(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return r.toRules(ctx, dtos), nil
}

func (r *GormPromotionRepository) ListEligiblePromotions(
	ctx context.Context,
	filter ports.PromotionFilter,
) ([]promotion.Rule, error) {
	query := r.active(ctx)
	if filter.ServiceTierID != "" {
		query = query.Where("(cardinality(service_tiers) = 0 OR ? = ANY(service_tiers))", filter.ServiceTierID)
	}
	if filter.ServiceFee > 0 {
		query = query.Where("min_qualifying_amount <= ?", filter.ServiceFee.Int64())
	}

	var dtos []PromotionDTO
	if err := query.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return r.toRules(ctx, dtos), nil
}

func (r *GormPromotionRepository) GetPromotionByID(ctx context.Context, id string) (promotion.Rule, error) {
	if id == "" {
		return promotion.Rule{}, errs.NewValueIsRequiredError("promotion id")
	}

	var dto PromotionDTO
	if err := r.active(ctx).Where("id = ?", id).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return promotion.Rule{}, errs.NewObjectNotFoundError("promotion", id)
		}
		return promotion.Rule{}, err
	}

	rule, err := toDomain(dto)
	if err != nil {
		return promotion.Rule{}, errs.NewObjectNotFoundErrorWithCause("promotion", id, err)
	}
	return rule, nil
}

func (r *GormPromotionRepository) active(ctx context.Context) *gorm.DB {
	now := r.now()
	return r.db.WithContext(ctx).
		Model(&PromotionDTO{}).
		Where("active = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at > ?", now)
}

// toRules skips rows that fail rule validation so one bad row does not hide
// the rest of the catalog.
func (r *GormPromotionRepository) toRules(ctx context.Context, dtos []PromotionDTO) []promotion.Rule {
	rules := make([]promotion.Rule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := toDomain(dto)
		if err != nil {
			r.logger.WarnContext(ctx, "skipping invalid promotion row", "promotion_id", dto.ID, "error", err)
			continue
		}
		rules = append(rules, rule)
	}
	return rules
}
