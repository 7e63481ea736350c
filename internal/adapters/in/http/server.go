// Package http exposes the parcel lifecycle over a REST API for warehouse
// operators, plus the public tracking endpoint. Handlers translate transport
// concerns and delegate every decision to the application layer.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerParcelHandler     commands.RegisterParcelCommandHandler
	markReceivedHandler       commands.MarkReceivedCommandHandler
	recordWeighingHandler     commands.RecordWeighingCommandHandler
	resolveWeightIssueHandler commands.ResolveWeightIssueCommandHandler
	sortParcelHandler         commands.SortParcelCommandHandler
	sortBatchHandler          commands.SortBatchCommandHandler
	advanceParcelHandler      commands.AdvanceParcelCommandHandler

	searchParcelsHandler queries.SearchParcelsQueryHandler
	trackParcelHandler   queries.TrackParcelQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	registerParcelHandler commands.RegisterParcelCommandHandler,
	markReceivedHandler commands.MarkReceivedCommandHandler,
	recordWeighingHandler commands.RecordWeighingCommandHandler,
	resolveWeightIssueHandler commands.ResolveWeightIssueCommandHandler,
	sortParcelHandler commands.SortParcelCommandHandler,
	sortBatchHandler commands.SortBatchCommandHandler,
	advanceParcelHandler commands.AdvanceParcelCommandHandler,
	searchParcelsHandler queries.SearchParcelsQueryHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
) *Server {
	return &Server{
		registerParcelHandler:     registerParcelHandler,
		markReceivedHandler:       markReceivedHandler,
		recordWeighingHandler:     recordWeighingHandler,
		resolveWeightIssueHandler: resolveWeightIssueHandler,
		sortParcelHandler:         sortParcelHandler,
		sortBatchHandler:          sortBatchHandler,
		advanceParcelHandler:      advanceParcelHandler,
		searchParcelsHandler:      searchParcelsHandler,
		trackParcelHandler:        trackParcelHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/v1/tracking/:code", s.TrackParcel)

	parcels := e.Group("/api/v1/parcels")
	parcels.POST("", s.RegisterParcel)
	parcels.GET("", s.SearchParcels)
	parcels.POST("/sort-batch", s.SortBatch)
	parcels.POST("/:id/receive", s.MarkReceived)
	parcels.POST("/:id/weigh", s.RecordWeighing)
	parcels.POST("/:id/resolve-weight", s.ResolveWeightIssue)
	parcels.POST("/:id/sort", s.SortParcel)
	parcels.POST("/:id/advance", s.AdvanceParcel)
}

// Error is the uniform error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterParcelRequest is the body of POST /api/v1/parcels.
type RegisterParcelRequest struct {
	TrackingCode     string  `json:"tracking_code"`
	DestinationCity  string  `json:"destination_city"`
	RecipientContact string  `json:"recipient_contact"`
	DeclaredWeight   float64 `json:"declared_weight"`
	SpecialCase      string  `json:"special_case"`
	Agent            string  `json:"agent"`
}

// RegisterParcel handles POST /api/v1/parcels.
func (s *Server) RegisterParcel(ctx echo.Context) error {
	var req RegisterParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewRegisterParcelCommand(parcelID, req.TrackingCode,
		req.DestinationCity, req.RecipientContact, req.DeclaredWeight,
		parcel.SpecialCase(req.SpecialCase), req.Agent)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.registerParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": parcelID.String()})
}

// AgentRequest is the body of operations that only need the acting agent.
type AgentRequest struct {
	Agent string `json:"agent"`
}

// MarkReceived handles POST /api/v1/parcels/:id/receive.
func (s *Server) MarkReceived(ctx echo.Context) error {
	parcelID, err := parseParcelID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var req AgentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewMarkReceivedCommand(parcelID, req.Agent)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.markReceivedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordWeighingRequest is the body of POST /api/v1/parcels/:id/weigh.
type RecordWeighingRequest struct {
	ActualWeight float64  `json:"actual_weight"`
	Photos       []string `json:"photos"`
	Agent        string   `json:"agent"`
}

// RecordWeighing handles POST /api/v1/parcels/:id/weigh.
func (s *Server) RecordWeighing(ctx echo.Context) error {
	parcelID, err := parseParcelID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var req RecordWeighingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecordWeighingCommand(parcelID, req.ActualWeight, req.Photos, req.Agent)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.recordWeighingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResolveWeightIssueRequest is the body of POST /api/v1/parcels/:id/resolve-weight.
type ResolveWeightIssueRequest struct {
	Agent string `json:"agent"`
	Notes string `json:"notes"`
}

// ResolveWeightIssue handles POST /api/v1/parcels/:id/resolve-weight.
func (s *Server) ResolveWeightIssue(ctx echo.Context) error {
	parcelID, err := parseParcelID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var req ResolveWeightIssueRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewResolveWeightIssueCommand(parcelID, req.Agent, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.resolveWeightIssueHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SortResponse reports the decision applied to one parcel.
type SortResponse struct {
	ParcelID string `json:"parcel_id"`
	Zone     string `json:"zone,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Error    string `json:"error,omitempty"`
}

// SortParcel handles POST /api/v1/parcels/:id/sort.
func (s *Server) SortParcel(ctx echo.Context) error {
	parcelID, err := parseParcelID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var req AgentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSortParcelCommand(parcelID, req.Agent)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	decision, err := s.sortParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SortResponse{
		ParcelID: parcelID.String(),
		Zone:     decision.Zone.String(),
		Reason:   decision.Reason,
	})
}

// SortBatchRequest is the body of POST /api/v1/parcels/sort-batch.
type SortBatchRequest struct {
	ParcelIDs []string `json:"parcel_ids"`
	Agent     string   `json:"agent"`
}

// SortBatch handles POST /api/v1/parcels/sort-batch. The response carries one
// entry per requested parcel; individual failures do not fail the request.
func (s *Server) SortBatch(ctx echo.Context) error {
	var req SortBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	parcelIDs := make([]kernel.UUID, 0, len(req.ParcelIDs))
	for _, raw := range req.ParcelIDs {
		parcelID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid parcel id: "+raw)
		}
		parcelIDs = append(parcelIDs, parcelID)
	}

	cmd, err := commands.NewSortBatchCommand(parcelIDs, req.Agent)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	outcomes, err := s.sortBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]SortResponse, 0, len(outcomes))
	for _, outcome := range outcomes {
		entry := SortResponse{ParcelID: outcome.ParcelID.String()}
		if outcome.Err != nil {
			entry.Error = outcome.Err.Error()
		} else {
			entry.Zone = outcome.Decision.Zone.String()
			entry.Reason = outcome.Decision.Reason
		}
		response = append(response, entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceParcelRequest is the body of POST /api/v1/parcels/:id/advance.
type AdvanceParcelRequest struct {
	Target string `json:"target"`
	Agent  string `json:"agent"`
	Notes  string `json:"notes"`
}

// AdvanceParcel handles POST /api/v1/parcels/:id/advance.
func (s *Server) AdvanceParcel(ctx echo.Context) error {
	parcelID, err := parseParcelID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var req AdvanceParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := parcel.ParseLogisticStatus(req.Target)
	if err != nil {
		return badRequest(ctx, "unknown target status: "+req.Target)
	}

	cmd, err := commands.NewAdvanceParcelCommand(parcelID, target, req.Agent, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.advanceParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ParcelSummary is one row of the search listing.
type ParcelSummary struct {
	ID              string   `json:"id"`
	TrackingCode    string   `json:"tracking_code"`
	DestinationCity string   `json:"destination_city"`
	LogisticStatus  string   `json:"logistic_status"`
	MainStatus      string   `json:"main_status"`
	Zone            string   `json:"zone,omitempty"`
	DeclaredWeight  float64  `json:"declared_weight"`
	RealWeight      *float64 `json:"real_weight,omitempty"`
	HasWeightIssue  bool     `json:"has_weight_issue"`
	LastUpdatedAt   string   `json:"last_updated_at"`
}

// SearchParcels handles GET /api/v1/parcels. Filters come from query
// parameters: tracking_code, status, zone, destination, special_case, agent,
// weight_issues, limit.
func (s *Server) SearchParcels(ctx echo.Context) error {
	filter, err := searchFilterFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewSearchParcelsQuery(filter)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.searchParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ParcelSummary, 0, len(rows))
	for _, row := range rows {
		summary := ParcelSummary{
			ID:              row.ID.String(),
			TrackingCode:    row.TrackingCode,
			DestinationCity: row.DestinationCity,
			LogisticStatus:  row.LogisticStatus.String(),
			MainStatus:      row.MainStatus.String(),
			DeclaredWeight:  row.DeclaredWeight,
			RealWeight:      row.RealWeight,
			HasWeightIssue:  row.HasWeightIssue,
			LastUpdatedAt:   row.LastUpdatedAt.UTC().Format(time.RFC3339),
		}
		if row.Zone != parcel.ZoneUnknown {
			summary.Zone = row.Zone.String()
		}
		response = append(response, summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrackParcel handles GET /api/v1/tracking/:code, the public tracking view.
func (s *Server) TrackParcel(ctx echo.Context) error {
	query, err := queries.NewTrackParcelQuery(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "invalid tracking code")
	}

	view, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

func searchFilterFromRequest(ctx echo.Context) (queries.SearchParcelsFilter, error) {
	filter := queries.SearchParcelsFilter{
		TrackingCode:    ctx.QueryParam("tracking_code"),
		DestinationCity: ctx.QueryParam("destination"),
		SpecialCase:     parcel.SpecialCase(ctx.QueryParam("special_case")),
		Agent:           ctx.QueryParam("agent"),
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := parcel.ParseLogisticStatus(raw)
		if err != nil {
			return queries.SearchParcelsFilter{}, errors.New("unknown status: " + raw)
		}
		filter.LogisticStatus = status
	}
	if raw := ctx.QueryParam("zone"); raw != "" {
		zone, err := parcel.ParseZone(raw)
		if err != nil {
			return queries.SearchParcelsFilter{}, errors.New("unknown zone: " + raw)
		}
		filter.Zone = zone
	}
	if ctx.QueryParam("weight_issues") == "true" {
		filter.OnlyWithWeightIssues = true
	}
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return queries.SearchParcelsFilter{}, errors.New("invalid limit: " + raw)
		}
		filter.Limit = limit
	}

	return filter, nil
}

func parseParcelID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP statuses: unknown parcels to
// 404, rejected transitions and lost version races to 409, invalid input to
// 400, everything else to 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, parcel.ErrInvalidTransition),
		errors.Is(err, services.ErrNotReadyForSorting),
		errors.Is(err, errs.ErrConcurrencyConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
