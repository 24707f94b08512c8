package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/route"
)

// StartLegCommandHandler departs a leg. The first leg of a route moves the
// request to InTransit; later legs mark the container as departed from their
// origin warehouse. No collaborator is consulted before the transition.
type StartLegCommandHandler struct {
	uowFactory UoWFactory
	owners     OwnershipGuard
	dispatcher NotificationDispatcher
	clock      func() time.Time
	logger     *slog.Logger
}

func NewStartLegCommandHandler(
	uowFactory UoWFactory,
	owners OwnershipGuard,
	dispatcher NotificationDispatcher,
	clock func() time.Time,
	logger *slog.Logger,
) StartLegCommandHandler {
	return StartLegCommandHandler{
		uowFactory: uowFactory,
		owners:     owners,
		dispatcher: dispatcher,
		clock:      clock,
		logger:     logger.With("component", "start_leg"),
	}
}

func (h StartLegCommandHandler) Handle(ctx context.Context, command StartLegCommand) (*route.Leg, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if !h.owners.IsOwner(ctx, command.LegID(), command.PrincipalID()) {
		return nil, notOwnerError(command.LegID())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()

	r, leg, err := loadLegForUpdate(ctx, routeRepo, command.LegID())
	if err != nil {
		return nil, err
	}

	previous := leg.State()
	if _, err = previous.Start(); err != nil {
		return nil, err
	}

	now := h.clock()
	var note *notification.Notification
	if leg.Type().IsFirst() {
		note, err = notification.NewRequestInTransit(r.RequestID(), now)
	} else {
		note, err = notification.NewContainerInTransit(r.RequestID(), leg.OriginWarehouseID(), now)
	}
	if err != nil {
		return nil, err
	}

	if _, err = r.StartLeg(command.LegID(), now); err != nil {
		return nil, err
	}

	if err = routeRepo.UpdateLeg(ctx, leg, previous); err != nil {
		return nil, err
	}
	if err = uow.NotificationRepository().Add(ctx, note); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "leg started",
		"leg_id", command.LegID().String(),
		"route_id", r.ID().String(),
		"leg_type", leg.Type().String(),
	)

	h.dispatcher.Deliver(ctx, note)
	return leg, nil
}
