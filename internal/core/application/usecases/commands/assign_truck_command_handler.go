package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// AssignTruckCommandHandler reserves a truck for a leg. The truck must be
// available in the resource service and must not hold another active leg.
type AssignTruckCommandHandler struct {
	uowFactory UoWFactory
	resources  ports.ResourceService
	dispatcher NotificationDispatcher
	clock      func() time.Time
	logger     *slog.Logger
}

func NewAssignTruckCommandHandler(
	uowFactory UoWFactory,
	resources ports.ResourceService,
	dispatcher NotificationDispatcher,
	clock func() time.Time,
	logger *slog.Logger,
) AssignTruckCommandHandler {
	return AssignTruckCommandHandler{
		uowFactory: uowFactory,
		resources:  resources,
		dispatcher: dispatcher,
		clock:      clock,
		logger:     logger.With("component", "assign_truck"),
	}
}

func (h AssignTruckCommandHandler) Handle(ctx context.Context, command AssignTruckCommand) (*route.Leg, error) {
	if err := command.Validate(); err != nil {
		return nil, err
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
	if _, err = previous.Assign(); err != nil {
		return nil, err
	}

	truck, err := h.resources.GetTruck(ctx, command.TruckID())
	if err != nil {
		return nil, err
	}
	if !truck.Available() {
		return nil, errs.NewConflictError("truck", fmt.Sprintf("truck %s is not available", command.TruckID()))
	}

	if err = routeRepo.LockTruck(ctx, command.TruckID()); err != nil {
		return nil, err
	}
	busy, err := routeRepo.IsTruckBusy(ctx, command.TruckID())
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, errs.NewConflictError("truck", fmt.Sprintf("truck %s already holds an active leg", command.TruckID()))
	}

	if _, err = r.AssignTruck(command.LegID(), command.TruckID()); err != nil {
		return nil, err
	}

	if err = routeRepo.UpdateLeg(ctx, leg, previous); err != nil {
		return nil, err
	}

	busyNote, err := notification.NewTruckBusy(command.TruckID(), h.clock())
	if err != nil {
		return nil, err
	}
	if err = uow.NotificationRepository().Add(ctx, busyNote); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "truck assigned",
		"leg_id", command.LegID().String(),
		"truck_id", command.TruckID().String(),
	)

	h.dispatcher.Deliver(ctx, busyNote)
	return leg, nil
}
