package http

import (
	"context"
	"net/http"

	"shiporder/internal/core/application/pricing"
	"shiporder/internal/core/application/usecases/commands"
	"shiporder/internal/core/application/usecases/queries"
	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/domain/model/order"
	"shiporder/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (pricing.Quote, error)
	}
	ChangeOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderCommand) (pricing.Quote, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}
	QuoteOrderCostHandler interface {
		Handle(ctx context.Context, query queries.QuoteOrderCostQuery) (queries.QuoteOrderCostQueryResponse, error)
	}
	GetOrderEditabilityHandler interface {
		Handle(ctx context.Context, query queries.GetOrderEditabilityQuery) (queries.GetOrderEditabilityQueryResponse, error)
	}
	ListEligiblePromotionsHandler interface {
		Handle(ctx context.Context, query queries.ListEligiblePromotionsQuery) ([]queries.ListEligiblePromotionsQueryResponse, error)
	}
)

// Handlers bundles the use cases the API exposes.
type Handlers struct {
	CreateOrder            CreateOrderHandler
	ChangeOrder            ChangeOrderHandler
	CancelOrder            CancelOrderHandler
	ChangeOrderStatus      ChangeOrderStatusHandler
	QuoteOrderCost         QuoteOrderCostHandler
	GetOrderEditability    GetOrderEditabilityHandler
	ListEligiblePromotions ListEligiblePromotionsHandler
}

// Server implements servers.ServerInterface on top of the command and query
// handlers.
type Server struct {
	handlers Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// QuoteOrderCost handles POST /api/v1/quotes. Incomplete forms get a zero
// breakdown, so the client can call it on every keystroke.
func (s *Server) QuoteOrderCost(ctx echo.Context) error {
	var req servers.QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewQuoteOrderCostQuery(quoteInputs(req), deref(req.PromotionId))
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.handlers.QuoteOrderCost.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toQuote(pricing.Quote{
		Breakdown:          resp.Breakdown,
		EvictedPromotionID: resp.EvictedPromotionID,
		Notice:             resp.Notice,
	}))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req servers.NewOrder
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	creator, err := order.ParseCreatorType(string(req.CreatorType))
	if err != nil {
		return writeError(ctx, err)
	}
	route, err := kernel.NewRoute(req.OriginRegionCode, req.DestinationRegionCode)
	if err != nil {
		return writeError(ctx, err)
	}

	shipment := order.Shipment{
		Weight:                  kernel.Weight(req.WeightGrams),
		ServiceTierID:           req.ServiceTierId,
		Route:                   route,
		CollectOnDeliveryAmount: kernel.Money(deref(req.CollectOnDeliveryAmount)),
		DeclaredGoodsValue:      kernel.Money(deref(req.DeclaredGoodsValue)),
		Products:                req.Products,
		PickupMethod:            order.PickupMethod(req.PickupMethod),
		Payer:                   order.Payer(req.Payer),
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, creator, shipment, deref(req.PromotionId))
	if err != nil {
		return writeError(ctx, err)
	}

	quote, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{
		Id:    orderID.Bytes(),
		Quote: toQuote(quote),
	})
}

// ChangeOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) ChangeOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var req servers.OrderChanges
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderCommand(id, toChanges(req), req.PromotionId)
	if err != nil {
		return writeError(ctx, err)
	}

	quote, err := s.handlers.ChangeOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toQuote(quote))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var req servers.StatusChange
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderEditability handles GET /api/v1/orders/{orderId}/editability.
func (s *Server) GetOrderEditability(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderEditabilityQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.handlers.GetOrderEditability.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	fields := make(map[string]bool, len(resp.Fields))
	for key, editable := range resp.Fields {
		fields[string(key)] = editable
	}

	return ctx.JSON(http.StatusOK, servers.Editability{
		OrderId:             resp.OrderID.Bytes(),
		Status:              resp.Status.String(),
		CreatorType:         servers.CreatorType(resp.Creator.String()),
		IsEditable:          resp.IsEditable,
		IsEditableByCreator: resp.IsEditableByCreator,
		IsCancellable:       resp.IsCancellable,
		Fields:              fields,
	})
}

// ListPromotions handles GET /api/v1/promotions.
func (s *Server) ListPromotions(ctx echo.Context, params servers.ListPromotionsParams) error {
	query, err := queries.NewListEligiblePromotionsQuery(
		deref(params.ServiceTierId),
		kernel.Money(deref(params.ServiceFee)),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	list, err := s.handlers.ListEligiblePromotions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Promotion, len(list))
	for i, item := range list {
		response[i] = toPromotion(item)
	}

	return ctx.JSON(http.StatusOK, response)
}
