// Package http provides the REST API for delivery coordination.
// Handlers translate requests into commands and queries, delegate to the
// application layer and map application errors onto HTTP status codes.
package http

import (
	"net/http"
	"strconv"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the delivery coordination API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	admitDeliveryHandler    commands.AdmitDeliveryCommandHandler
	registerShipmentHandler commands.RegisterShipmentCommandHandler
	startDeliveryHandler    commands.StartDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	editDeliveryHandler     commands.EditDeliveryCommandHandler
	cancelDeliveryHandler   commands.CancelDeliveryCommandHandler
	reportProblemHandler    commands.ReportProblemCommandHandler
	resolveProblemHandler   commands.ResolveProblemCommandHandler

	// Query handlers
	listDeliveriesHandler        queries.ListDeliveriesQueryHandler
	listCourierDeliveriesHandler queries.ListCourierDeliveriesQueryHandler
	listProblemsHandler          queries.ListProblemsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	admitDeliveryHandler commands.AdmitDeliveryCommandHandler,
	registerShipmentHandler commands.RegisterShipmentCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	editDeliveryHandler commands.EditDeliveryCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	reportProblemHandler commands.ReportProblemCommandHandler,
	resolveProblemHandler commands.ResolveProblemCommandHandler,
	listDeliveriesHandler queries.ListDeliveriesQueryHandler,
	listCourierDeliveriesHandler queries.ListCourierDeliveriesQueryHandler,
	listProblemsHandler queries.ListProblemsQueryHandler,
) *Server {
	return &Server{
		admitDeliveryHandler:         admitDeliveryHandler,
		registerShipmentHandler:      registerShipmentHandler,
		startDeliveryHandler:         startDeliveryHandler,
		completeDeliveryHandler:      completeDeliveryHandler,
		editDeliveryHandler:          editDeliveryHandler,
		cancelDeliveryHandler:        cancelDeliveryHandler,
		reportProblemHandler:         reportProblemHandler,
		resolveProblemHandler:        resolveProblemHandler,
		listDeliveriesHandler:        listDeliveriesHandler,
		listCourierDeliveriesHandler: listCourierDeliveriesHandler,
		listProblemsHandler:          listProblemsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/deliveries", s.AdmitDelivery)
	api.GET("/deliveries", s.GetDeliveries)
	api.PUT("/deliveries/:deliveryId", s.EditDelivery)
	api.DELETE("/deliveries/:deliveryId", s.CancelDelivery)
	api.POST("/deliveries/:deliveryId/problems", s.ReportProblem)

	api.POST("/shipments", s.RegisterShipment)

	api.GET("/couriers/:courierId/deliveries", s.GetCourierDeliveries)
	api.POST("/couriers/:courierId/deliveries/:deliveryId/start", s.StartDelivery)
	api.POST("/couriers/:courierId/deliveries/:deliveryId/complete", s.CompleteDelivery)

	api.GET("/problems", s.GetProblems)
	api.POST("/problems/:problemId/resolve", s.ResolveProblem)
}

// AdmitDelivery handles POST /api/v1/deliveries - admits a new delivery,
// optionally scheduled.
func (s *Server) AdmitDelivery(ctx echo.Context) error {
	var request AdmitDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recipientID, err := kernel.UUIDFromString(request.RecipientID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(request.CourierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAdmitDeliveryCommand(
		kernel.NewUUID(),
		recipientID,
		courierID,
		request.Product,
		request.StartDate,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.admitDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, admittedDeliveryToResponse(response))
}

// RegisterShipment handles POST /api/v1/shipments - registers an unscheduled
// shipment that the courier starts later.
func (s *Server) RegisterShipment(ctx echo.Context) error {
	var request RegisterShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recipientID, err := kernel.UUIDFromString(request.RecipientID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(request.CourierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewRegisterShipmentCommand(deliveryID, recipientID, courierID, request.Product)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.registerShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": deliveryID.String()})
}

// EditDelivery handles PUT /api/v1/deliveries/:deliveryId - applies admin
// edits to an open delivery.
func (s *Server) EditDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request EditDeliveryRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	changes := commands.EditDeliveryChanges{
		Product:   request.Product,
		StartDate: request.StartDate,
		EndDate:   request.EndDate,
	}

	if changes.RecipientID, err = optionalUUID(request.RecipientID); err != nil {
		return errorResponse(ctx, err)
	}
	if changes.CourierID, err = optionalUUID(request.CourierID); err != nil {
		return errorResponse(ctx, err)
	}
	if changes.SignatureID, err = optionalUUID(request.SignatureID); err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewEditDeliveryCommand(deliveryID, changes)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.editDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles DELETE /api/v1/deliveries/:deliveryId - soft-cancels
// a delivery without notifying the courier.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartDelivery handles the courier start transition.
func (s *Server) StartDelivery(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request StartDeliveryRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartDeliveryCommand(deliveryID, courierID, request.StartDate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles the courier complete transition.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request CompleteDeliveryRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	signatureID, err := kernel.UUIDFromString(request.SignatureID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID, courierID, request.EndDate, signatureID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportProblem handles POST /api/v1/deliveries/:deliveryId/problems -
// records a problem report against a delivery.
func (s *Server) ReportProblem(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request ReportProblemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	problemID := kernel.NewUUID()
	cmd, err := commands.NewReportProblemCommand(problemID, deliveryID, request.Description)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.reportProblemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ReportedProblemResponse{
		ID:         problemID.String(),
		DeliveryID: deliveryID.String(),
	})
}

// ResolveProblem handles POST /api/v1/problems/:problemId/resolve - cancels
// the delivery the problem concerns and removes the report.
func (s *Server) ResolveProblem(ctx echo.Context) error {
	problemID, err := kernel.UUIDFromString(ctx.Param("problemId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewResolveProblemCommand(problemID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.resolveProblemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveries handles GET /api/v1/deliveries - lists deliveries with
// optional id and include_canceled filters.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	var deliveryID *kernel.UUID
	if raw := ctx.QueryParam("id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		deliveryID = &id
	}

	includeCanceled, err := optionalBool(ctx.QueryParam("include_canceled"))
	if err != nil {
		return badRequest(ctx, "Invalid include_canceled parameter")
	}

	query, err := queries.NewListDeliveriesQuery(deliveryID, includeCanceled)
	if err != nil {
		return errorResponse(ctx, err)
	}

	deliveries, err := s.listDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveriesToResponse(deliveries))
}

// GetCourierDeliveries handles GET /api/v1/couriers/:courierId/deliveries -
// lists one courier's pending or delivered workload.
func (s *Server) GetCourierDeliveries(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	delivered, err := optionalBool(ctx.QueryParam("delivered"))
	if err != nil {
		return badRequest(ctx, "Invalid delivered parameter")
	}

	query, err := queries.NewListCourierDeliveriesQuery(courierID, delivered)
	if err != nil {
		return errorResponse(ctx, err)
	}

	deliveries, err := s.listCourierDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courierDeliveriesToResponse(deliveries))
}

// GetProblems handles GET /api/v1/problems - lists problem reports, optionally
// narrowed to one delivery.
func (s *Server) GetProblems(ctx echo.Context) error {
	var deliveryID *kernel.UUID
	if raw := ctx.QueryParam("delivery_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		deliveryID = &id
	}

	query, err := queries.NewListProblemsQuery(deliveryID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	problems, err := s.listProblemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, problemsToResponse(problems))
}

// optionalUUID parses an optional UUID string from a request body.
func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// optionalBool parses an optional boolean query parameter, defaulting to false.
func optionalBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
