package cmd

import (
	"context"
	"log/slog"

	httpadapter "shiporder/internal/adapters/in/http"
	"shiporder/internal/adapters/out/kafka"
	"shiporder/internal/adapters/out/postgres"
	"shiporder/internal/adapters/out/postgres/promotionrepo"
	"shiporder/internal/adapters/out/promotioncache"
	"shiporder/internal/adapters/out/ratelookup"
	"shiporder/internal/core/application/pricing"
	"shiporder/internal/core/application/usecases/commands"
	"shiporder/internal/core/application/usecases/queries"
	"shiporder/internal/core/domain/model/order"
	"shiporder/internal/core/ports"
	"shiporder/internal/jobs"
	"shiporder/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	metrics    *metrics.Metrics

	promotions *promotioncache.Catalog
	quoter     pricing.Quoter
	publisher  ports.OrderEventPublisher
	closers    []func() error
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	m := metrics.New()

	rateCfg := ratelookup.DefaultConfig(config.RateServiceURL)
	rateCfg.Timeout = config.RateServiceTimeout
	rates := ratelookup.NewClient(rateCfg, m, logger)

	promotions := promotioncache.New(
		promotionrepo.NewGormPromotionRepository(gormDB, logger),
		config.PromotionCacheTTL,
		m,
		logger,
	)

	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		metrics:    m,
		promotions: promotions,
		quoter:     pricing.NewQuoter(rates, promotions, m),
		publisher:  noopPublisher{},
	}

	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		publisher := kafka.NewOrderChangedPublisher(brokers, config.KafkaOrderChangedTopic, m, logger)
		root.publisher = publisher
		root.closers = append(root.closers, publisher.Close)
	} else {
		logger.Warn("KAFKA_HOST is empty, order.changed events are not published")
	}

	return root
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.quoter, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderCommandHandler() commands.ChangeOrderCommandHandler {
	return commands.NewChangeOrderCommandHandler(c.orderUoWFactory(), c.quoter, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateQuoteOrderCostQueryHandler() queries.QuoteOrderCostQueryHandler {
	return queries.NewQuoteOrderCostQueryHandler(c.quoter)
}

func (c *CompositionRoot) CreateGetOrderEditabilityQueryHandler() queries.GetOrderEditabilityQueryHandler {
	return queries.NewGetOrderEditabilityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListEligiblePromotionsQueryHandler() queries.ListEligiblePromotionsQueryHandler {
	return queries.NewListEligiblePromotionsQueryHandler(c.promotions)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		ChangeOrder:            c.CreateChangeOrderCommandHandler(),
		CancelOrder:            c.CreateCancelOrderCommandHandler(),
		ChangeOrderStatus:      c.CreateChangeOrderStatusCommandHandler(),
		QuoteOrderCost:         c.CreateQuoteOrderCostQueryHandler(),
		GetOrderEditability:    c.CreateGetOrderEditabilityQueryHandler(),
		ListEligiblePromotions: c.CreateListEligiblePromotionsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.promotions, c.config.PromotionRefreshSchedule, c.logger)
}

// Close releases outbound connections.
func (c *CompositionRoot) Close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.logger.Error("Failed to close resource", "error", err)
		}
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// noopPublisher stands in when no broker is configured.
type noopPublisher struct{}

func (noopPublisher) PublishOrderChanged(context.Context, *order.Order) error {
	return nil
}
