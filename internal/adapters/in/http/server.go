// Package http exposes the REST surface of the kitchen service.
// Responses use a uniform envelope: {"success":true,"data":...} for success
// and {"success":false,"code":...,"error":...} for failures, where code is a
// stable machine-readable error kind.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error kinds carried in the "code" field of error responses.
const (
	CodeValidationError     = "ValidationError"
	CodeReferenceNotFound   = "ReferenceNotFound"
	CodeNotFound            = "NotFound"
	CodeRolePolicyViolation = "RolePolicyViolation"
	CodeInvalidStatus       = "InvalidStatus"
	CodeIllegalTransition   = "IllegalTransition"
	CodeInternalError       = "InternalError"
)

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

func respond(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, successResponse{Success: true, Data: data})
}

func respondError(ctx echo.Context, status int, code, message string) error {
	return ctx.JSON(status, errorResponse{Success: false, Code: code, Error: message})
}

// mapError translates a use-case error into an HTTP error response.
// notFoundCode distinguishes a missing mutation target (NotFound) from a
// dangling reference in the request body (ReferenceNotFound).
func mapError(ctx echo.Context, err error, notFoundCode string) error {
	switch {
	case errors.Is(err, order.ErrInvalidStatus):
		return respondError(ctx, http.StatusBadRequest, CodeInvalidStatus, err.Error())
	case errors.Is(err, order.ErrIllegalTransition):
		return respondError(ctx, http.StatusConflict, CodeIllegalTransition, err.Error())
	case errors.Is(err, commands.ErrRolePolicyViolation):
		return respondError(ctx, http.StatusForbidden, CodeRolePolicyViolation, err.Error())
	case errors.Is(err, commands.ErrMenuItemUnavailable):
		return respondError(ctx, http.StatusBadRequest, CodeValidationError, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(ctx, http.StatusNotFound, notFoundCode, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return respondError(ctx, http.StatusBadRequest, CodeValidationError, err.Error())
	default:
		return respondError(ctx, http.StatusInternalServerError, CodeInternalError, "internal error")
	}
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	addMenuItemHandler       commands.AddMenuItemCommandHandler

	// Query handlers
	listOrdersHandler        queries.ListOrdersQueryHandler
	getMenuHandler           queries.GetMenuQueryHandler
	getUsersHandler          queries.GetUsersQueryHandler
	getUserByUsernameHandler queries.GetUserByUsernameQueryHandler
	getStatsHandler          queries.GetStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getUsersHandler queries.GetUsersQueryHandler,
	getUserByUsernameHandler queries.GetUserByUsernameQueryHandler,
	getStatsHandler queries.GetStatsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		addMenuItemHandler:       addMenuItemHandler,
		listOrdersHandler:        listOrdersHandler,
		getMenuHandler:           getMenuHandler,
		getUsersHandler:          getUsersHandler,
		getUserByUsernameHandler: getUserByUsernameHandler,
		getStatsHandler:          getStatsHandler,
	}
}

// RegisterRoutes attaches the REST routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.GET("/menu", s.GetMenu)
	api.POST("/menu", s.AddMenuItem)
	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.PlaceOrder)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/users", s.GetUsers)
	api.POST("/login", s.Login)
	api.GET("/stats", s.GetStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetMenu handles GET /api/menu - lists available dishes.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return mapError(ctx, err, CodeNotFound)
	}

	return respond(ctx, http.StatusOK, items)
}

type addMenuItemRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Image           string `json:"image"`
	PreparationTime int    `json:"preparation_time"`
	Ingredients     string `json:"ingredients"`
}

// AddMenuItem handles POST /api/menu - adds a dish to the menu.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	var req addMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, CodeValidationError, "invalid request body")
	}

	cmd, err := commands.NewAddMenuItemCommand(req.Name, req.Description, req.Image, req.PreparationTime, req.Ingredients)
	if err != nil {
		return mapError(ctx, err, CodeNotFound)
	}

	id, err := s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err, CodeNotFound)
	}

	return respond(ctx, http.StatusCreated, map[string]int64{"id": id})
}

// ListOrders handles GET /api/orders - lists orders for the caller's role.
func (s *Server) ListOrders(ctx echo.Context) error {
	userID, _ := strconv.ParseInt(ctx.QueryParam("userId"), 10, 64)

	query, err := queries.NewListOrdersQuery(ctx.QueryParam("role"), userID)
	if err != nil {
		return mapError(ctx, err, CodeNotFound)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err, CodeNotFound)
	}

	return respond(ctx, http.StatusOK, orders)
}

type placeOrderRequest struct {
	UserID   int64  `json:"userId"`
	ItemID   int64  `json:"itemId"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note"`
}

// PlaceOrder handles POST /api/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, CodeValidationError, "invalid request body")
	}

	cmd, err := commands.NewPlaceOrderCommand(req.UserID, req.ItemID, req.Quantity, req.Note)
	if err != nil {
		return mapError(ctx, err, CodeReferenceNotFound)
	}

	id, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err, CodeReferenceNotFound)
	}

	return respond(ctx, http.StatusCreated, map[string]int64{"id": id})
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles PUT /api/orders/:id/status - progresses an order.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, CodeValidationError, "order id must be an integer")
	}

	var req changeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, CodeValidationError, "invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return mapError(ctx, err, CodeNotFound)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err, CodeNotFound)
	}

	return respond(ctx, http.StatusOK, nil)
}

// GetUsers handles GET /api/users - lists the household members.
func (s *Server) GetUsers(ctx echo.Context) error {
	users, err := s.getUsersHandler.Handle(ctx.Request().Context(), queries.NewGetUsersQuery())
	if err != nil {
		return mapError(ctx, err, CodeNotFound)
	}

	return respond(ctx, http.StatusOK, users)
}

type loginRequest struct {
	Username string `json:"username"`
}

// Login handles POST /api/login - resolves a username to a member.
// The household trusts itself; there are no credentials to verify.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, CodeValidationError, "invalid request body")
	}

	query, err := queries.NewGetUserByUsernameQuery(req.Username)
	if err != nil {
		return mapError(ctx, err, CodeNotFound)
	}

	member, err := s.getUserByUsernameHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return respondError(ctx, http.StatusUnauthorized, CodeNotFound, "unknown username")
	}
	if err != nil {
		return mapError(ctx, err, CodeNotFound)
	}

	return respond(ctx, http.StatusOK, member)
}

// GetStats handles GET /api/stats - returns the kitchen dashboard counters.
func (s *Server) GetStats(ctx echo.Context) error {
	stats, err := s.getStatsHandler.Handle(ctx.Request().Context(), queries.NewGetStatsQuery())
	if err != nil {
		return mapError(ctx, err, CodeNotFound)
	}

	return respond(ctx, http.StatusOK, stats)
}
