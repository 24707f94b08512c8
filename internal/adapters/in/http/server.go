// Package http exposes the route and leg use cases over a JSON API.
package http

import (
	"context"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/labstack/echo/v4"
)

// PrincipalHeader carries the identity of the acting operator, set by the gateway.
const PrincipalHeader = "X-Principal-ID"

type (
	RouteProposalsHandler interface {
		Handle(ctx context.Context, query queries.GetRouteProposalsQuery) ([]route.Proposal, error)
	}

	CommitRouteHandler interface {
		Handle(ctx context.Context, command commands.CommitRouteCommand) (*route.Route, error)
	}

	RouteHandler interface {
		Handle(ctx context.Context, query queries.GetRouteQuery) (queries.GetRouteQueryResponse, error)
	}

	AssignTruckHandler interface {
		Handle(ctx context.Context, command commands.AssignTruckCommand) (*route.Leg, error)
	}

	StartLegHandler interface {
		Handle(ctx context.Context, command commands.StartLegCommand) (*route.Leg, error)
	}

	FinishLegHandler interface {
		Handle(ctx context.Context, command commands.FinishLegCommand) (*route.Leg, error)
	}

	TruckLegsHandler interface {
		Handle(ctx context.Context, query queries.GetTruckLegsQuery) ([]queries.TruckLegView, error)
	}
)

// Server translates HTTP requests into commands and queries.
type Server struct {
	// Command handlers
	commitRouteHandler CommitRouteHandler
	assignTruckHandler AssignTruckHandler
	startLegHandler    StartLegHandler
	finishLegHandler   FinishLegHandler

	// Query handlers
	proposalsHandler RouteProposalsHandler
	routeHandler     RouteHandler
	truckLegsHandler TruckLegsHandler
}

func NewServer(
	commitRouteHandler CommitRouteHandler,
	assignTruckHandler AssignTruckHandler,
	startLegHandler StartLegHandler,
	finishLegHandler FinishLegHandler,
	proposalsHandler RouteProposalsHandler,
	routeHandler RouteHandler,
	truckLegsHandler TruckLegsHandler,
) *Server {
	return &Server{
		commitRouteHandler: commitRouteHandler,
		assignTruckHandler: assignTruckHandler,
		startLegHandler:    startLegHandler,
		finishLegHandler:   finishLegHandler,
		proposalsHandler:   proposalsHandler,
		routeHandler:       routeHandler,
		truckLegsHandler:   truckLegsHandler,
	}
}

// Register mounts the API routes on g.
func (s *Server) Register(g *echo.Group) {
	g.GET("/requests/:requestId/proposals", s.GetProposals)
	g.POST("/requests/:requestId/route", s.CommitRoute)
	g.GET("/requests/:requestId/route", s.GetRoute)
	g.PUT("/legs/:legId/truck", s.AssignTruck)
	g.PUT("/legs/:legId/start", s.StartLeg)
	g.PUT("/legs/:legId/finish", s.FinishLeg)
	g.GET("/trucks/:truckId/legs", s.GetTruckLegs)
}

// GetProposals handles GET /api/v1/requests/:requestId/proposals.
func (s *Server) GetProposals(c echo.Context) error {
	requestID, err := kernel.UUIDFromString(c.Param("requestId"))
	if err != nil {
		return badRequest(c, "invalid requestId")
	}
	query, err := queries.NewGetRouteProposalsQuery(requestID)
	if err != nil {
		return respondError(c, err)
	}

	proposals, err := s.proposalsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]Proposal, 0, len(proposals))
	for _, p := range proposals {
		response = append(response, fromProposal(p))
	}
	return c.JSON(http.StatusOK, response)
}

// CommitRoute handles POST /api/v1/requests/:requestId/route.
func (s *Server) CommitRoute(c echo.Context) error {
	requestID, err := kernel.UUIDFromString(c.Param("requestId"))
	if err != nil {
		return badRequest(c, "invalid requestId")
	}
	var body CommitRoute
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	proposal, err := body.toProposal()
	if err != nil {
		return respondError(c, err)
	}
	cmd, err := commands.NewCommitRouteCommand(requestID, proposal)
	if err != nil {
		return respondError(c, err)
	}

	committed, err := s.commitRouteHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, fromRoute(committed))
}

// GetRoute handles GET /api/v1/requests/:requestId/route.
func (s *Server) GetRoute(c echo.Context) error {
	requestID, err := kernel.UUIDFromString(c.Param("requestId"))
	if err != nil {
		return badRequest(c, "invalid requestId")
	}
	query, err := queries.NewGetRouteQuery(requestID)
	if err != nil {
		return respondError(c, err)
	}

	view, err := s.routeHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, fromRouteView(view))
}

// AssignTruck handles PUT /api/v1/legs/:legId/truck.
func (s *Server) AssignTruck(c echo.Context) error {
	legID, err := kernel.UUIDFromString(c.Param("legId"))
	if err != nil {
		return badRequest(c, "invalid legId")
	}
	var body AssignTruck
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	truckID, err := kernel.UUIDFromString(body.TruckID)
	if err != nil {
		return badRequest(c, "invalid truckId")
	}
	cmd, err := commands.NewAssignTruckCommand(legID, truckID)
	if err != nil {
		return respondError(c, err)
	}

	leg, err := s.assignTruckHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, fromLeg(leg))
}

// StartLeg handles PUT /api/v1/legs/:legId/start on behalf of the principal
// named in PrincipalHeader.
func (s *Server) StartLeg(c echo.Context) error {
	legID, err := kernel.UUIDFromString(c.Param("legId"))
	if err != nil {
		return badRequest(c, "invalid legId")
	}
	cmd, err := commands.NewStartLegCommand(legID, c.Request().Header.Get(PrincipalHeader))
	if err != nil {
		return respondError(c, err)
	}

	leg, err := s.startLegHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, fromLeg(leg))
}

// FinishLeg handles PUT /api/v1/legs/:legId/finish on behalf of the principal
// named in PrincipalHeader.
func (s *Server) FinishLeg(c echo.Context) error {
	legID, err := kernel.UUIDFromString(c.Param("legId"))
	if err != nil {
		return badRequest(c, "invalid legId")
	}
	cmd, err := commands.NewFinishLegCommand(legID, c.Request().Header.Get(PrincipalHeader))
	if err != nil {
		return respondError(c, err)
	}

	leg, err := s.finishLegHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, fromLeg(leg))
}

// GetTruckLegs handles GET /api/v1/trucks/:truckId/legs.
func (s *Server) GetTruckLegs(c echo.Context) error {
	truckID, err := kernel.UUIDFromString(c.Param("truckId"))
	if err != nil {
		return badRequest(c, "invalid truckId")
	}
	query, err := queries.NewGetTruckLegsQuery(truckID)
	if err != nil {
		return respondError(c, err)
	}

	views, err := s.truckLegsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]Leg, 0, len(views))
	for _, v := range views {
		response = append(response, fromTruckLegView(v))
	}
	return c.JSON(http.StatusOK, response)
}
