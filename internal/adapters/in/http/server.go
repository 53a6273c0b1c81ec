// Package http exposes the work-order operations over HTTP. Handlers are
// thin: they bind the request, build a command or query, invoke its handler
// and translate the error kind to a transport code. No business rule lives
// here.
package http

import (
	"errors"
	"net/http"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// UpdateWorkOrderRequest is the body of the partial update. Absent fields
// are left untouched.
type UpdateWorkOrderRequest struct {
	Description *string `json:"description"`
	Status      *string `json:"status"`
	FinishedAt  *string `json:"finished_at"`
}

// timestampLayout matches the work order's external timestamp rendering.
const timestampLayout = "2006-01-02 15:04:05"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createHandler         commands.CreateWorkOrderCommandHandler
	updateHandler         commands.UpdateWorkOrderCommandHandler
	updateStatusHandler   commands.UpdateWorkOrderStatusCommandHandler
	approveHandler        commands.ApproveWorkOrderCommandHandler
	disapproveHandler     commands.DisapproveWorkOrderCommandHandler
	deleteHandler         commands.DeleteWorkOrderCommandHandler
	addServiceHandler     commands.AddServiceCommandHandler
	removeServiceHandler  commands.RemoveServiceCommandHandler
	addMaterialHandler    commands.AddMaterialCommandHandler
	removeMaterialHandler commands.RemoveMaterialCommandHandler

	getWorkOrdersHandler queries.GetWorkOrdersQueryHandler
	getWorkOrderHandler  queries.GetWorkOrderQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	createHandler commands.CreateWorkOrderCommandHandler,
	updateHandler commands.UpdateWorkOrderCommandHandler,
	updateStatusHandler commands.UpdateWorkOrderStatusCommandHandler,
	approveHandler commands.ApproveWorkOrderCommandHandler,
	disapproveHandler commands.DisapproveWorkOrderCommandHandler,
	deleteHandler commands.DeleteWorkOrderCommandHandler,
	addServiceHandler commands.AddServiceCommandHandler,
	removeServiceHandler commands.RemoveServiceCommandHandler,
	addMaterialHandler commands.AddMaterialCommandHandler,
	removeMaterialHandler commands.RemoveMaterialCommandHandler,
	getWorkOrdersHandler queries.GetWorkOrdersQueryHandler,
	getWorkOrderHandler queries.GetWorkOrderQueryHandler,
) *Server {
	return &Server{
		createHandler:         createHandler,
		updateHandler:         updateHandler,
		updateStatusHandler:   updateStatusHandler,
		approveHandler:        approveHandler,
		disapproveHandler:     disapproveHandler,
		deleteHandler:         deleteHandler,
		addServiceHandler:     addServiceHandler,
		removeServiceHandler:  removeServiceHandler,
		addMaterialHandler:    addMaterialHandler,
		removeMaterialHandler: removeMaterialHandler,
		getWorkOrdersHandler:  getWorkOrdersHandler,
		getWorkOrderHandler:   getWorkOrderHandler,
	}
}

// RegisterRoutes mounts every work-order route plus the health check.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/work-orders", s.CreateWorkOrder)
	e.GET("/work-orders", s.GetWorkOrders)
	e.GET("/work-orders/:id", s.GetWorkOrder)
	e.PATCH("/work-orders/:id", s.UpdateWorkOrder)
	e.DELETE("/work-orders/:id", s.DeleteWorkOrder)
	e.PATCH("/work-orders/:id/status", s.UpdateWorkOrderStatus)
	e.POST("/work-orders/:id/approve", s.ApproveWorkOrder)
	e.POST("/work-orders/:id/disapprove", s.DisapproveWorkOrder)
	e.POST("/work-orders/:id/services", s.AddService)
	e.DELETE("/work-orders/:id/services/:serviceId", s.RemoveService)
	e.POST("/work-orders/:id/materials", s.AddMaterial)
	e.DELETE("/work-orders/:id/materials/:materialId", s.RemoveMaterial)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse translates an error kind to its transport code.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrGuardViolation):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrPersistenceFailure):
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

// approvalErrorResponse maps guard violations on the approval pair to 404,
// preserving the legacy split with the generic status change. Other kinds
// use the shared mapping.
func approvalErrorResponse(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrGuardViolation) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}
	return errorResponse(ctx, err)
}

// CreateWorkOrder handles POST /work-orders.
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var req struct {
		ClientID    string  `json:"client_id"`
		VehicleID   string  `json:"vehicle_id"`
		Description *string `json:"description"`
	}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewCreateWorkOrderCommand(req.ClientID, req.VehicleID, req.Description)
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.createHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, order.Representation())
}

// GetWorkOrders handles GET /work-orders with an optional status filter.
func (s *Server) GetWorkOrders(ctx echo.Context) error {
	var status *string
	if raw := ctx.QueryParam("status"); raw != "" {
		status = &raw
	}

	query, err := queries.NewGetWorkOrdersQuery(status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getWorkOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetWorkOrder handles GET /work-orders/:id.
func (s *Server) GetWorkOrder(ctx echo.Context) error {
	query, err := queries.NewGetWorkOrderQuery(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.getWorkOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if order == nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "work order not found",
		})
	}

	return ctx.JSON(http.StatusOK, order)
}

// UpdateWorkOrder handles PATCH /work-orders/:id.
func (s *Server) UpdateWorkOrder(ctx echo.Context) error {
	var req UpdateWorkOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	patch, err := buildPatch(req)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateWorkOrderCommand(ctx.Param("id"), patch)
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.updateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, order.Representation())
}

// buildPatch converts the request body into the typed partial update.
func buildPatch(req UpdateWorkOrderRequest) (workorder.Patch, error) {
	patch := workorder.Patch{Description: req.Description}

	if req.Status != nil {
		status := workorder.Status(*req.Status)
		if err := status.Validate(); err != nil {
			return workorder.Patch{}, err
		}
		patch.Status = &status
	}

	if req.FinishedAt != nil {
		finishedAt, err := time.Parse(timestampLayout, *req.FinishedAt)
		if err != nil {
			return workorder.Patch{}, errs.NewValueIsInvalidErrorWithCause("finished_at", err)
		}
		patch.FinishedAt = &finishedAt
	}

	return patch, nil
}

// UpdateWorkOrderStatus handles PATCH /work-orders/:id/status.
func (s *Server) UpdateWorkOrderStatus(ctx echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewUpdateWorkOrderStatusCommand(ctx.Param("id"), req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, order.Representation())
}

// ApproveWorkOrder handles POST /work-orders/:id/approve.
func (s *Server) ApproveWorkOrder(ctx echo.Context) error {
	cmd, err := commands.NewApproveWorkOrderCommand(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.approveHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return approvalErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, order.Representation())
}

// DisapproveWorkOrder handles POST /work-orders/:id/disapprove.
func (s *Server) DisapproveWorkOrder(ctx echo.Context) error {
	cmd, err := commands.NewDisapproveWorkOrderCommand(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.disapproveHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return approvalErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, order.Representation())
}

// DeleteWorkOrder handles DELETE /work-orders/:id.
func (s *Server) DeleteWorkOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteWorkOrderCommand(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	deleted, err := s.deleteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"deleted": deleted})
}

// AddService handles POST /work-orders/:id/services.
func (s *Server) AddService(ctx echo.Context) error {
	var req struct {
		ServiceID string `json:"service_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewAddServiceCommand(ctx.Param("id"), req.ServiceID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	linkID, err := s.addServiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": linkID})
}

// RemoveService handles DELETE /work-orders/:id/services/:serviceId.
func (s *Server) RemoveService(ctx echo.Context) error {
	cmd, err := commands.NewRemoveServiceCommand(ctx.Param("id"), ctx.Param("serviceId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	affected, err := s.removeServiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"removed": affected})
}

// AddMaterial handles POST /work-orders/:id/materials.
func (s *Server) AddMaterial(ctx echo.Context) error {
	var req struct {
		MaterialID string `json:"material_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewAddMaterialCommand(ctx.Param("id"), req.MaterialID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	linkID, err := s.addMaterialHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": linkID})
}

// RemoveMaterial handles DELETE /work-orders/:id/materials/:materialId.
func (s *Server) RemoveMaterial(ctx echo.Context) error {
	cmd, err := commands.NewRemoveMaterialCommand(ctx.Param("id"), ctx.Param("materialId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	affected, err := s.removeMaterialHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"removed": affected})
}
