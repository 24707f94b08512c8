package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CommitRouteCommandHandler turns a chosen proposal into a Route. The route and
// the RequestScheduled notification are written in one transaction; the request
// service is told after commit and its failure does not undo the route.
type CommitRouteCommandHandler struct {
	uowFactory UoWFactory
	requests   ports.RequestService
	dispatcher NotificationDispatcher
	clock      func() time.Time
	logger     *slog.Logger
}

func NewCommitRouteCommandHandler(
	uowFactory UoWFactory,
	requests ports.RequestService,
	dispatcher NotificationDispatcher,
	clock func() time.Time,
	logger *slog.Logger,
) CommitRouteCommandHandler {
	return CommitRouteCommandHandler{
		uowFactory: uowFactory,
		requests:   requests,
		dispatcher: dispatcher,
		clock:      clock,
		logger:     logger.With("component", "commit_route"),
	}
}

func (h CommitRouteCommandHandler) Handle(ctx context.Context, command CommitRouteCommand) (*route.Route, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	req, err := h.requests.GetRequest(ctx, command.RequestID())
	if err != nil {
		return nil, err
	}
	if err = matchesRequest(req, command.Proposal()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()

	_, err = routeRepo.GetByRequest(ctx, command.RequestID())
	if err == nil {
		return nil, errs.NewConflictError("route", fmt.Sprintf("request %s already has a route", command.RequestID()))
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	committed, err := route.NewRoute(kernel.NewUUID(), command.RequestID(), command.Proposal())
	if err != nil {
		return nil, err
	}

	if err = routeRepo.Add(ctx, committed); err != nil {
		return nil, err
	}

	scheduled, err := notification.NewRequestScheduled(
		command.RequestID(),
		committed.EstimatedCost(),
		committed.EstimatedDuration(),
		h.clock(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.NotificationRepository().Add(ctx, scheduled); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "route committed",
		"route_id", committed.ID().String(),
		"request_id", command.RequestID().String(),
		"legs", committed.LegCount(),
		"estimated_cost", committed.EstimatedCost().String(),
	)

	h.dispatcher.Deliver(ctx, scheduled)
	return committed, nil
}

func matchesRequest(req request.TransportRequest, proposal route.Proposal) error {
	legs := proposal.Legs()
	if !legs[0].OriginWarehouseID.IsEqual(req.OriginWarehouseID()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"proposal",
			fmt.Errorf("route starts at %s, request origin is %s", legs[0].OriginWarehouseID, req.OriginWarehouseID()),
		)
	}
	last := legs[len(legs)-1]
	if !last.DestinationWarehouseID.IsEqual(req.DestinationWarehouseID()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"proposal",
			fmt.Errorf("route ends at %s, request destination is %s", last.DestinationWarehouseID, req.DestinationWarehouseID()),
		)
	}
	return nil
}
