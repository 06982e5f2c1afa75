// Package kafka publishes order events with segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/order"
	"shiporder/internal/pkg/metrics"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
)

const OrderChangedEventType = "order.changed"

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderChangedPublisher implements ports.OrderEventPublisher. Messages are
// keyed by order id so all events of one order land on one partition.
type OrderChangedPublisher struct {
	writer  MessageWriter
	topic   string
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func NewOrderChangedPublisher(
	brokers []string,
	topic string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *OrderChangedPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return NewOrderChangedPublisherWithWriter(writer, topic, m, logger)
}

func NewOrderChangedPublisherWithWriter(
	writer MessageWriter,
	topic string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *OrderChangedPublisher {
	return &OrderChangedPublisher{
		writer:  writer,
		topic:   topic,
		metrics: m,
		logger:  logger.With("component", "order-changed-publisher", "topic", topic),
		now:     time.Now,
	}
}

func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := newOrderChangedEvent(aggregate, p.now())
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", OrderChangedEventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(OrderChangedEventType)},
			{Key: "event-id", Value: []byte(event.EventID)},
		},
		Time: event.OccurredAt,
	}
	otel.GetTextMapPropagator().Inject(ctx, headerCarrier{headers: &msg.Headers})

	err = p.writer.WriteMessages(ctx, msg)
	p.metrics.ObserveEventPublished(p.topic, err)
	if err != nil {
		return fmt.Errorf("write %s event: %w", OrderChangedEventType, err)
	}

	p.logger.DebugContext(ctx, "order event published", "order_id", event.OrderID, "status", event.Status)
	return nil
}

func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}

// OrderChangedEvent is the JSON payload of an order.changed message.
type OrderChangedEvent struct {
	EventID            string    `json:"event_id"`
	EventType          string    `json:"event_type"`
	OccurredAt         time.Time `json:"occurred_at"`
	OrderID            string    `json:"order_id"`
	Status             string    `json:"status"`
	Creator            string    `json:"creator"`
	ServiceTierID      string    `json:"service_tier_id"`
	WeightGrams        int64     `json:"weight_grams"`
	Origin             string    `json:"origin"`
	Destination        string    `json:"destination"`
	CODAmount          int64     `json:"cod_amount"`
	DeclaredGoodsValue int64     `json:"declared_goods_value"`
	Products           []string  `json:"products"`
	PickupMethod       string    `json:"pickup_method"`
	Payer              string    `json:"payer"`
	PromotionID        string    `json:"promotion_id,omitempty"`
	Cost               EventCost `json:"cost"`
}

type EventCost struct {
	BaseShippingFee          int64  `json:"base_shipping_fee"`
	Tax                      int64  `json:"tax"`
	InsuranceSurcharge       int64  `json:"insurance_surcharge"`
	CollectionSurcharge      int64  `json:"collection_surcharge"`
	ServiceFeeBeforeDiscount int64  `json:"service_fee_before_discount"`
	DiscountAmount           int64  `json:"discount_amount"`
	TotalPayable             int64  `json:"total_payable"`
	AppliedPromotionID       string `json:"applied_promotion_id,omitempty"`
}

func newOrderChangedEvent(o *order.Order, at time.Time) OrderChangedEvent {
	b := o.Breakdown()
	return OrderChangedEvent{
		EventID:            kernel.NewUUID().String(),
		EventType:          OrderChangedEventType,
		OccurredAt:         at.UTC(),
		OrderID:            o.ID().String(),
		Status:             o.Status().String(),
		Creator:            o.Creator().String(),
		ServiceTierID:      o.ServiceTierID(),
		WeightGrams:        o.Weight().Grams(),
		Origin:             string(o.Route().Origin()),
		Destination:        string(o.Route().Destination()),
		CODAmount:          o.CollectOnDeliveryAmount().Int64(),
		DeclaredGoodsValue: o.DeclaredGoodsValue().Int64(),
		Products:           o.Products(),
		PickupMethod:       string(o.PickupMethod()),
		Payer:              string(o.Payer()),
		PromotionID:        o.PromotionID(),
		Cost: EventCost{
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
