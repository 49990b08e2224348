package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"
)

// Error is the JSON error body every endpoint returns on failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RunStarted is the response body of a processing-run request.
type RunStarted struct {
	RunID uuid.UUID `json:"runId"`
}

// Server handles HTTP requests. It coordinates between HTTP handlers and
// application use cases.
type Server struct {
	// Command handlers
	processPendingOrdersHandler commands.ProcessPendingOrdersCommandHandler
	processOrderHandler         commands.ProcessOrderCommandHandler

	// Query handlers
	getRecentDecisionsHandler queries.GetRecentDecisionsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	processPendingOrdersHandler commands.ProcessPendingOrdersCommandHandler,
	processOrderHandler commands.ProcessOrderCommandHandler,
	getRecentDecisionsHandler queries.GetRecentDecisionsQueryHandler,
) *Server {
	return &Server{
		processPendingOrdersHandler: processPendingOrdersHandler,
		processOrderHandler:         processOrderHandler,
		getRecentDecisionsHandler:   getRecentDecisionsHandler,
	}
}

// RegisterRoutes attaches the API routes to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/runs", s.StartRun)
	e.POST("/api/v1/orders/:id/process", s.ProcessOrder)
	e.GET("/api/v1/decisions", s.GetDecisions)
}

// StartRun handles POST /api/v1/runs - processes every pending order.
func (s *Server) StartRun(ctx echo.Context) error {
	runID := uuid.New()

	cmd, err := commands.NewProcessPendingOrdersCommand(runID)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build run command",
		})
	}

	if handleErr := s.processPendingOrdersHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "Failed to list pending orders",
		})
	}

	return ctx.JSON(http.StatusOK, RunStarted{RunID: runID})
}

// ProcessOrder handles POST /api/v1/orders/:id/process - processes one order.
func (s *Server) ProcessOrder(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	runID := uuid.New()
	cmd, err := commands.NewProcessOrderCommand(runID, orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.processOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "Failed to fetch order",
		})
	}

	return ctx.JSON(http.StatusOK, RunStarted{RunID: runID})
}

// GetDecisions handles GET /api/v1/decisions - retrieves recent decisions.
func (s *Server) GetDecisions(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit",
			})
		}
		limit = parsed
	}

	query, err := queries.NewGetRecentDecisionsQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid limit: " + err.Error(),
		})
	}

	decisions, err := s.getRecentDecisionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve decisions",
		})
	}

	return ctx.JSON(http.StatusOK, decisions)
}
