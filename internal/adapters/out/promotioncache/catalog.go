// Package promotioncache keeps promotion rules in memory in front of the
// Postgres catalog.
package promotioncache

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"shiporder/internal/core/domain/model/promotion"
	"shiporder/internal/core/ports"
	"shiporder/internal/pkg/metrics"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultTTL = 5 * time.Minute

// Source is the backing catalog. ListActive feeds Refresh.
type Source interface {
	ports.PromotionCatalog
	ListActive(ctx context.Context) ([]promotion.Rule, error)
}

// Catalog is a read-through ports.PromotionCatalog. Misses and errors are
// never cached, so a new promotion becomes visible on the next lookup.
type Catalog struct {
	source  Source
	backend *gocache.Cache
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func New(source Source, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) *Catalog {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Catalog{
		source:  source,
		backend: gocache.New(ttl, 2*ttl),
		metrics: m,
		logger:  logger.With("component", "promotion-cache"),
	}
}

func (c *Catalog) ListEligiblePromotions(
	ctx context.Context,
	filter ports.PromotionFilter,
) ([]promotion.Rule, error) {
	key := listKey(filter)
	if cached, ok := c.backend.Get(key); ok {
		if rules, typed := cached.([]promotion.Rule); typed {
			return slices.Clone(rules), nil
		}
	}

	rules, err := c.source.ListEligiblePromotions(ctx, filter)
	if err != nil {
		return nil, err
	}
	c.backend.SetDefault(key, slices.Clone(rules))
	return rules, nil
}

func (c *Catalog) GetPromotionByID(ctx context.Context, id string) (promotion.Rule, error) {
	key := idKey(id)
	if cached, ok := c.backend.Get(key); ok {
		if rule, typed := cached.(promotion.Rule); typed {
			return rule, nil
		}
	}

	rule, err := c.source.GetPromotionByID(ctx, id)
	if err != nil {
		return promotion.Rule{}, err
	}
	c.backend.SetDefault(key, rule)
	return rule, nil
}

// Refresh drops every cached entry and preloads all active rules by id.
// On a source error the current entries are kept.
func (c *Catalog) Refresh(ctx context.Context) error {
	rules, err := c.source.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("refresh promotion cache: %w", err)
	}

	c.backend.Flush()
	for _, rule := range rules {
		c.backend.SetDefault(idKey(rule.ID()), rule)
	}

	c.metrics.SetPromotionsCached(len(rules))
	c.logger.DebugContext(ctx, "promotion cache refreshed", "promotions", len(rules))
	return nil
}

// Len is the number of live cache entries of any kind.
func (c *Catalog) Len() int {
	return c.backend.ItemCount()
}

func listKey(filter ports.PromotionFilter) string {
	return fmt.Sprintf("list:%s:%d", filter.ServiceTierID, filter.ServiceFee.Int64())
}

func idKey(id string) string {
	return "id:" + id
}
