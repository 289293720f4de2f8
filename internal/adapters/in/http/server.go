// Package http is the presentation shell of the application. It decodes
// requests, dispatches them to command and query handlers, and maps
// application errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	startCookingHandler    commands.StartCookingCommandHandler
	markOrderReadyHandler  commands.MarkOrderReadyCommandHandler
	markOrderServedHandler commands.MarkOrderServedCommandHandler
	processPaymentHandler  commands.ProcessPaymentCommandHandler
	deleteOrderHandler     commands.DeleteOrderCommandHandler
	deleteAllOrdersHandler commands.DeleteAllOrdersCommandHandler
	createMenuItemHandler  commands.CreateMenuItemCommandHandler
	createRoleHandler      commands.CreateRoleCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getAllOrdersHandler         queries.GetAllOrdersQueryHandler
	getOrdersByStatusHandler    queries.GetOrdersByStatusQueryHandler
	getPaymentHandler           queries.GetPaymentQueryHandler
	getPaymentByOrderHandler    queries.GetPaymentByOrderQueryHandler
	getAllPaymentsHandler       queries.GetAllPaymentsQueryHandler
	getPaymentsByStatusHandler  queries.GetPaymentsByStatusQueryHandler
	getAllMenuItemsHandler      queries.GetAllMenuItemsQueryHandler
	getLowStockMenuItemsHandler queries.GetLowStockMenuItemsQueryHandler
	getAllRolesHandler          queries.GetAllRolesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	startCookingHandler commands.StartCookingCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	markOrderServedHandler commands.MarkOrderServedCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	deleteAllOrdersHandler commands.DeleteAllOrdersCommandHandler,
	createMenuItemHandler commands.CreateMenuItemCommandHandler,
	createRoleHandler commands.CreateRoleCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getPaymentHandler queries.GetPaymentQueryHandler,
	getPaymentByOrderHandler queries.GetPaymentByOrderQueryHandler,
	getAllPaymentsHandler queries.GetAllPaymentsQueryHandler,
	getPaymentsByStatusHandler queries.GetPaymentsByStatusQueryHandler,
	getAllMenuItemsHandler queries.GetAllMenuItemsQueryHandler,
	getLowStockMenuItemsHandler queries.GetLowStockMenuItemsQueryHandler,
	getAllRolesHandler queries.GetAllRolesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		startCookingHandler:         startCookingHandler,
		markOrderReadyHandler:       markOrderReadyHandler,
		markOrderServedHandler:      markOrderServedHandler,
		processPaymentHandler:       processPaymentHandler,
		deleteOrderHandler:          deleteOrderHandler,
		deleteAllOrdersHandler:      deleteAllOrdersHandler,
		createMenuItemHandler:       createMenuItemHandler,
		createRoleHandler:           createRoleHandler,
		getOrderHandler:             getOrderHandler,
		getAllOrdersHandler:         getAllOrdersHandler,
		getOrdersByStatusHandler:    getOrdersByStatusHandler,
		getPaymentHandler:           getPaymentHandler,
		getPaymentByOrderHandler:    getPaymentByOrderHandler,
		getAllPaymentsHandler:       getAllPaymentsHandler,
		getPaymentsByStatusHandler:  getPaymentsByStatusHandler,
		getAllMenuItemsHandler:      getAllMenuItemsHandler,
		getLowStockMenuItemsHandler: getLowStockMenuItemsHandler,
		getAllRolesHandler:          getAllRolesHandler,
	}
}

// RegisterRoutes wires all API endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.DELETE("/orders", s.DeleteAllOrders)
	api.GET("/orders/status", s.GetOrdersByStatus)
	api.GET("/orders/:orderID", s.GetOrder)
	api.DELETE("/orders/:orderID", s.DeleteOrder)
	api.PUT("/orders/:orderID/cooking", s.StartCooking)
	api.PUT("/orders/:orderID/ready", s.MarkOrderReady)
	api.PUT("/orders/:orderID/served", s.MarkOrderServed)
	api.POST("/orders/:orderID/payment", s.ProcessPayment)
	api.GET("/orders/:orderID/payment", s.GetPaymentByOrder)

	api.GET("/payments", s.GetPayments)
	api.GET("/payments/status", s.GetPaymentsByStatus)
	api.GET("/payments/:paymentID", s.GetPayment)

	api.POST("/menu-items", s.CreateMenuItem)
	api.GET("/menu-items", s.GetMenuItems)
	api.GET("/menu-items/low-stock", s.GetLowStockMenuItems)

	api.POST("/roles", s.CreateRole)
	api.GET("/roles", s.GetRoles)
}

type createOrderRequest struct {
	WaiterID string         `json:"waiterId"`
	Items    map[string]int `json:"items"`
}

type transitionRequest struct {
	UserID string `json:"userId"`
}

type processPaymentRequest struct {
	CashierID string `json:"cashierId"`
	Method    string `json:"method"`
}

type createMenuItemRequest struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
}

type createRoleRequest struct {
	Name string `json:"name"`
}

// CreateOrder handles POST /api/v1/orders - places a new order for a table.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	waiterID, err := kernel.UUIDFromString(request.WaiterID)
	if err != nil {
		return respondBadRequest(ctx, "invalid waiter id: "+err.Error())
	}

	lines, err := orderLinesFromRequest(request.Items)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), waiterID, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(placed))
}

// orderLinesFromRequest converts the items map of the request body into
// order lines. Keys are sorted so validation errors are deterministic.
func orderLinesFromRequest(items map[string]int) ([]commands.OrderLine, error) {
	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]commands.OrderLine, 0, len(items))
	for _, key := range keys {
		menuItemID, err := kernel.UUIDFromString(key)
		if err != nil {
			return nil, err
		}
		lines = append(lines, commands.OrderLine{
			MenuItemID: menuItemID,
			Quantity:   items[key],
		})
	}
	return lines, nil
}

// StartCooking handles PUT /api/v1/orders/:orderID/cooking.
func (s *Server) StartCooking(ctx echo.Context) error {
	orderID, userID, err := bindTransition(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewStartCookingCommand(orderID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.startCookingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// MarkOrderReady handles PUT /api/v1/orders/:orderID/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	orderID, userID, err := bindTransition(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// MarkOrderServed handles PUT /api/v1/orders/:orderID/served.
func (s *Server) MarkOrderServed(ctx echo.Context) error {
	orderID, userID, err := bindTransition(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkOrderServedCommand(orderID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.markOrderServedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// bindTransition extracts the order id path parameter and the acting user
// from a lifecycle transition request. It does not write to the response;
// the caller maps a non-nil error to a single 400.
func bindTransition(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid order id: " + err.Error())
	}

	var request transitionRequest
	if err := ctx.Bind(&request); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid request body")
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid user id: " + err.Error())
	}

	return orderID, userID, nil
}

// ProcessPayment handles POST /api/v1/orders/:orderID/payment.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id: "+err.Error())
	}

	var request processPaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cashierID, err := kernel.UUIDFromString(request.CashierID)
	if err != nil {
		return respondBadRequest(ctx, "invalid cashier id: "+err.Error())
	}

	cmd, err := commands.NewProcessPaymentCommand(kernel.NewUUID(), orderID, cashierID, request.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	settled, err := s.processPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentFromDomain(settled))
}

// DeleteOrder handles DELETE /api/v1/orders/:orderID.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAllOrders handles DELETE /api/v1/orders.
func (s *Server) DeleteAllOrders(ctx echo.Context) error {
	cmd := commands.NewDeleteAllOrdersCommand()

	if err := s.deleteAllOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(response))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, item := range orders {
		response[i] = orderFromQuery(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByStatus handles GET /api/v1/orders/status?status=X.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByStatusQuery(ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, item := range orders {
		response[i] = orderFromQuery(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPayment handles GET /api/v1/payments/:paymentID.
func (s *Server) GetPayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("paymentID"))
	if err != nil {
		return respondBadRequest(ctx, "invalid payment id: "+err.Error())
	}

	query, err := queries.NewGetPaymentQuery(paymentID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getPaymentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentFromQuery(response))
}

// GetPaymentByOrder handles GET /api/v1/orders/:orderID/payment.
func (s *Server) GetPaymentByOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id: "+err.Error())
	}

	query, err := queries.NewGetPaymentByOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getPaymentByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentFromQuery(response))
}

// GetPayments handles GET /api/v1/payments.
func (s *Server) GetPayments(ctx echo.Context) error {
	query := queries.NewGetAllPaymentsQuery()

	payments, err := s.getAllPaymentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Payment, len(payments))
	for i, item := range payments {
		response[i] = paymentFromQuery(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPaymentsByStatus handles GET /api/v1/payments/status?status=X.
func (s *Server) GetPaymentsByStatus(ctx echo.Context) error {
	query, err := queries.NewGetPaymentsByStatusQuery(ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	payments, err := s.getPaymentsByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Payment, len(payments))
	for i, item := range payments {
		response[i] = paymentFromQuery(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/v1/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var request createMenuItemRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), request.Name, request.Price, request.StockQuantity)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, menuItemFromDomain(created))
}

// GetMenuItems handles GET /api/v1/menu-items.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	query := queries.NewGetAllMenuItemsQuery()

	items, err := s.getAllMenuItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = menuItemFromQuery(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetLowStockMenuItems handles GET /api/v1/menu-items/low-stock?threshold=N.
func (s *Server) GetLowStockMenuItems(ctx echo.Context) error {
	threshold, err := strconv.Atoi(ctx.QueryParam("threshold"))
	if err != nil {
		return respondBadRequest(ctx, "invalid threshold: "+err.Error())
	}

	query, err := queries.NewGetLowStockMenuItemsQuery(threshold)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.getLowStockMenuItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = menuItemFromQuery(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateRole handles POST /api/v1/roles.
func (s *Server) CreateRole(ctx echo.Context) error {
	var request createRoleRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateRoleCommand(kernel.NewUUID(), request.Name)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createRoleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, roleFromDomain(created))
}

// GetRoles handles GET /api/v1/roles.
func (s *Server) GetRoles(ctx echo.Context) error {
	query := queries.NewGetAllRolesQuery()

	roles, err := s.getAllRolesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Role, len(roles))
	for i, item := range roles {
		response[i] = roleFromQuery(item)
	}
	return ctx.JSON(http.StatusOK, response)
}
