package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Quote the cost of a (possibly incomplete) order form
	// (POST /api/v1/quotes)
	QuoteOrderCost(ctx echo.Context) error
	// Create a draft order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Change order fields and the selected promotion
	// (PATCH /api/v1/orders/{orderId})
	ChangeOrder(ctx echo.Context, orderId OrderId) error
	// Cancel an order before pickup
	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId OrderId) error
	// Move an order along its lifecycle
	// (POST /api/v1/orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderId OrderId) error
	// Which fields and actions an order still allows
	// (GET /api/v1/orders/{orderId}/editability)
	GetOrderEditability(ctx echo.Context, orderId OrderId) error
	// Promotions usable for a service tier and fee
	// (GET /api/v1/promotions)
	ListPromotions(ctx echo.Context, params ListPromotionsParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// QuoteOrderCost converts echo context to params.
func (w *ServerInterfaceWrapper) QuoteOrderCost(ctx echo.Context) error {
	return w.Handler.QuoteOrderCost(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// ChangeOrder converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrder(ctx, orderId)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderId)
}

// ChangeOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderId)
}

// GetOrderEditability converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderEditability(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderEditability(ctx, orderId)
}

// ListPromotions converts echo context to params.
func (w *ServerInterfaceWrapper) ListPromotions(ctx echo.Context) error {
	var params ListPromotionsParams

	err := runtime.BindQueryParameter("form", true, false, "serviceTierId", ctx.QueryParams(), &params.ServiceTierId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter serviceTierId: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "serviceFee", ctx.QueryParams(), &params.ServiceFee)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter serviceFee: %s", err))
	}

	return w.Handler.ListPromotions(ctx, params)
}

func bindOrderId(ctx echo.Context) (OrderId, error) {
	var orderId OrderId
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return orderId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderId, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/quotes", wrapper.QuoteOrderCost)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.PATCH(baseURL+"/api/v1/orders/:orderId", wrapper.ChangeOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/status", wrapper.ChangeOrderStatus)
	router.GET(baseURL+"/api/v1/orders/:orderId/editability", wrapper.GetOrderEditability)
	router.GET(baseURL+"/api/v1/promotions", wrapper.ListPromotions)
}
