// Package http exposes the order lifecycle over a REST API.
//
// The caller's identity arrives in the X-Actor-Id and X-Actor-Role headers;
// an upstream gateway is expected to have authenticated them. Authorization
// itself happens in the domain, not here.
package http

import (
	"errors"
	"net/http"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/discount"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"

	deliveryDateLayout = "2006-01-02"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	acceptOrderHandler  commands.AcceptOrderCommandHandler
	assignOrderHandler  commands.AssignOrderCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler
	declineOrderHandler commands.DeclineOrderCommandHandler
	reportDelayHandler  commands.ReportDelayCommandHandler
	resolveDelayHandler commands.ResolveDelayCommandHandler

	unassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler
	orderTimelineHandler    queries.GetOrderTimelineQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	declineOrderHandler commands.DeclineOrderCommandHandler,
	reportDelayHandler commands.ReportDelayCommandHandler,
	resolveDelayHandler commands.ResolveDelayCommandHandler,
	unassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler,
	orderTimelineHandler queries.GetOrderTimelineQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		acceptOrderHandler:      acceptOrderHandler,
		assignOrderHandler:      assignOrderHandler,
		deliverOrderHandler:     deliverOrderHandler,
		declineOrderHandler:     declineOrderHandler,
		reportDelayHandler:      reportDelayHandler,
		resolveDelayHandler:     resolveDelayHandler,
		unassignedOrdersHandler: unassignedOrdersHandler,
		orderTimelineHandler:    orderTimelineHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/unassigned", s.GetUnassignedOrders)
	api.GET("/orders/:id/timeline", s.GetOrderTimeline)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/assign", s.AssignOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/decline", s.DeclineOrder)
	api.POST("/orders/:id/report", s.ReportDelay)
	api.POST("/orders/:id/resolve", s.ResolveDelay)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("request body"))
	}

	merchantID, err := kernel.UUIDFromString(req.MerchantID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	items := make([]commands.ItemSelection, 0, len(req.Items))
	for _, item := range req.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return errorJSON(ctx, itemErr)
		}

		selection, itemErr := commands.NewItemSelection(productID, item.Quantity, item.IsFree)
		if itemErr != nil {
			return errorJSON(ctx, itemErr)
		}
		items = append(items, selection)
	}

	rule, err := discountFromRequest(req.Discount)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		actor,
		merchantID,
		kernel.CityFromString(req.City),
		order.PaymentMethodFromString(req.PaymentMethod),
		items,
		rule,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	actor, orderID, err := actorAndOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req AcceptOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, actor, req.Notes)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOrder handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	actor, orderID, err := actorAndOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req AssignOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("request body"))
	}

	deliveryManID, err := kernel.UUIDFromString(req.DeliveryManID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, actor, deliveryManID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	actor, orderID, err := actorAndOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req DeliverOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, actor, req.Notes, req.Location)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeclineOrder handles POST /api/v1/orders/:id/decline.
func (s *Server) DeclineOrder(ctx echo.Context) error {
	actor, orderID, err := actorAndOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req DeclineOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewDeclineOrderCommand(orderID, actor, order.StatusFromString(req.Target), req.Reason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.declineOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportDelay handles POST /api/v1/orders/:id/report.
func (s *Server) ReportDelay(ctx echo.Context) error {
	actor, orderID, err := actorAndOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req ReportDelayRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewReportDelayCommand(orderID, actor, req.Reason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.reportDelayHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResolveDelay handles POST /api/v1/orders/:id/resolve.
func (s *Server) ResolveDelay(ctx echo.Context) error {
	actor, orderID, err := actorAndOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req ResolveDelayRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("request body"))
	}

	newDate, err := time.Parse(deliveryDateLayout, req.NewDeliveryDate)
	if err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidErrorWithCause("newDeliveryDate", err))
	}

	cmd, err := commands.NewResolveDelayCommand(orderID, actor, newDate)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.resolveDelayHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned?city=Dakhla.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query, err := queries.NewGetUnassignedOrdersQuery(kernel.CityFromString(ctx.QueryParam("city")))
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders, err := s.unassignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]UnassignedOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = unassignedToResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderTimeline handles GET /api/v1/orders/:id/timeline.
func (s *Server) GetOrderTimeline(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetOrderTimelineQuery(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	entries, err := s.orderTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]TimelineEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = timelineToResponse(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

func actorFromHeaders(ctx echo.Context) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerActorID))
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsRequiredErrorWithCause(headerActorID, err)
	}

	return kernel.NewActor(id, kernel.RoleFromString(ctx.Request().Header.Get(headerActorRole)))
}

func actorAndOrderID(ctx echo.Context) (kernel.Actor, kernel.UUID, error) {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}

	return actor, orderID, nil
}

func discountFromRequest(req *DiscountRequest) (*discount.Rule, error) {
	if req == nil {
		return nil, nil
	}

	var rule discount.Rule
	var err error

	switch discount.KindFromString(req.Kind) {
	case discount.Percentage:
		rule, err = discount.NewPercentage(req.Value)
	case discount.FixedAmount:
		rule, err = discount.NewFixedAmount(req.Value)
	case discount.BuyXGetY:
		var productID kernel.UUID
		productID, err = kernel.UUIDFromString(req.ProductID)
		if err != nil {
			return nil, err
		}
		rule, err = discount.NewBuyXGetY(productID, req.BuyQty, req.GetQty)
	case discount.CustomPrice:
		rule, err = discount.NewCustomPrice(req.Value)
	default:
		return nil, errs.NewValueIsInvalidError("discount kind")
	}
	if err != nil {
		return nil, err
	}

	return &rule, nil
}

// errorJSON maps domain error kinds onto HTTP status codes.
func errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
