// Package ratelookup calls the carrier rate service for base shipping fees.
package ratelookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shiporder/internal/core/domain/model/cost"
	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/ports"
	"shiporder/internal/pkg/metrics"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	ratesPath   = "/v1/rates"
	breakerName = "rate-service"
)

// Status labels for the rate lookup metric.
const (
	statusOK       = "ok"
	statusError    = "error"
	statusRejected = "rejected"
	statusOpen     = "open"
)

// errRejected marks a 4xx answer: the request is wrong, so retrying or
// tripping the breaker would not help.
var errRejected = errors.New("rate service rejected the request")

type Config struct {
	BaseURL string
	// Timeout bounds one HTTP attempt.
	Timeout    time.Duration
	MaxRetries uint64
	// InitialInterval is the first retry delay; later delays grow exponentially.
	InitialInterval time.Duration
	// BreakerFailures consecutive failures open the breaker for BreakerTimeout.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:         baseURL,
		Timeout:         2 * time.Second,
		MaxRetries:      2,
		InitialInterval: 100 * time.Millisecond,
		BreakerFailures: 5,
		BreakerTimeout:  30 * time.Second,
	}
}

// Client implements ports.RateLookup over HTTP. Every failure it returns
// wraps ports.ErrRateLookupFailed.
type Client struct {
	cfg        Config
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	tracer     trace.Tracer
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewClient(cfg Config, m *metrics.Metrics, logger *slog.Logger) *Client {
	logger = logger.With("component", "rate-lookup")
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig(cfg.BaseURL).Timeout
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = DefaultConfig(cfg.BaseURL).BreakerFailures
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = DefaultConfig(cfg.BaseURL).InitialInterval
	}

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tracer:     otel.Tracer("shiporder/ratelookup"),
		metrics:    m,
		logger:     logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    breakerName,
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errRejected) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			m.SetBreakerState(name, int(to))
		},
	})

	return c
}

func (c *Client) GetBaseShippingFee(ctx context.Context, in cost.Inputs) (kernel.Money, error) {
	ctx, span := c.tracer.Start(ctx, "rate-service.GetBaseShippingFee", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.Int64("shipment.weight_grams", in.Weight.Grams()),
		attribute.String("shipment.service_tier", in.ServiceTierID),
		attribute.String("shipment.origin", string(in.OriginRegionCode)),
		attribute.String("shipment.destination", string(in.DestinationRegionCode)),
	)

	start := time.Now()
	result, err := c.breaker.Execute(func() (any, error) {
		return c.fetchWithRetry(ctx, in)
	})
	elapsed := time.Since(start)

	if err != nil {
		status := statusError
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			status = statusOpen
		case errors.Is(err, errRejected):
			status = statusRejected
		}
		c.metrics.ObserveRateLookup(status, elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.WarnContext(ctx, "rate lookup failed", "status", status, "error", err)
		return 0, fmt.Errorf("%w: %w", ports.ErrRateLookupFailed, err)
	}

	fee, ok := result.(kernel.Money)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected result type %T", ports.ErrRateLookupFailed, result)
	}

	c.metrics.ObserveRateLookup(statusOK, elapsed)
	span.SetAttributes(attribute.Int64("rate.base_shipping_fee", fee.Int64()))
	return fee, nil
}

func (c *Client) fetchWithRetry(ctx context.Context, in cost.Inputs) (kernel.Money, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.cfg.InitialInterval
	policy.MaxElapsedTime = 0

	return backoff.RetryNotifyWithData(
		func() (kernel.Money, error) {
			fee, err := c.fetch(ctx, in)
			if errors.Is(err, errRejected) || errors.Is(err, context.Canceled) {
				return 0, backoff.Permanent(err)
			}
			return fee, err
		},
		backoff.WithContext(backoff.WithMaxRetries(policy, c.cfg.MaxRetries), ctx),
		func(err error, wait time.Duration) {
			c.logger.DebugContext(ctx, "retrying rate lookup", "wait", wait, "error", err)
		},
	)
}

type rateResponse struct {
	BaseShippingFee *int64 `json:"base_shipping_fee"`
}

func (c *Client) fetch(ctx context.Context, in cost.Inputs) (kernel.Money, error) {
	endpoint, err := url.Parse(strings.TrimRight(c.cfg.BaseURL, "/") + ratesPath)
	if err != nil {
		return 0, backoff.Permanent(err)
	}
	q := endpoint.Query()
	q.Set("weight_grams", strconv.FormatInt(in.Weight.Grams(), 10))
	q.Set("service_tier", in.ServiceTierID)
	q.Set("origin", string(in.OriginRegionCode))
	q.Set("destination", string(in.DestinationRegionCode))
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return 0, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return 0, err
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return 0, fmt.Errorf("rate service returned %s", resp.Status)
	case resp.StatusCode != http.StatusOK:
		return 0, fmt.Errorf("%w: %s: %s", errRejected, resp.Status, strings.TrimSpace(string(body)))
	}

	var payload rateResponse
	if err = json.Unmarshal(body, &payload); err != nil {
		return 0, backoff.Permanent(fmt.Errorf("decode rate response: %w", err))
	}
	if payload.BaseShippingFee == nil {
		return 0, backoff.Permanent(errors.New("rate response has no base_shipping_fee"))
	}

	fee, err := kernel.NewMoney(*payload.BaseShippingFee)
	if err != nil {
		return 0, backoff.Permanent(fmt.Errorf("invalid base shipping fee: %w", err))
	}
	return fee, nil
}
