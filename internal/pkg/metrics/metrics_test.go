package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shiporder/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveQuote(metrics.QuoteComputed)
		m.ObserveRateLookup("ok", time.Second)
		m.SetBreakerState("rates", 2)
		m.SetPromotionsCached(3)
		m.ObserveEventPublished("order.changed", nil)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.ObserveQuote(metrics.QuoteEvicted)
	m.ObserveEventPublished("order.changed", errors.New("broker down"))
	m.SetPromotionsCached(4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `shiporder_quotes_total{outcome="promotion_evicted"} 1`)
	assert.Contains(t, body, `shiporder_events_published_total{status="error",topic="order.changed"} 1`)
	assert.Contains(t, body, "shiporder_promotions_cached 4")
}

func TestMetrics_Middleware(t *testing.T) {
	m := metrics.New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/orders/:orderId/editability", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders/42/editability", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() == "shiporder_http_requests_total" {
			found = true
			require.Len(t, f.GetMetric(), 1)
			assert.InDelta(t, 1, f.GetMetric()[0].GetCounter().GetValue(), 0)
		}
	}
	assert.True(t, found)
}
