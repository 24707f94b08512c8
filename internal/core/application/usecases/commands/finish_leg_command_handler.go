package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// FinishLegCommandHandler completes a leg and records its real cost and
// duration. The truck is freed; the last leg delivers the request with the
// route's real totals, other legs store the container at their destination.
type FinishLegCommandHandler struct {
	uowFactory UoWFactory
	resources  ports.ResourceService
	owners     OwnershipGuard
	dispatcher NotificationDispatcher
	clock      func() time.Time
	logger     *slog.Logger
}

func NewFinishLegCommandHandler(
	uowFactory UoWFactory,
	resources ports.ResourceService,
	owners OwnershipGuard,
	dispatcher NotificationDispatcher,
	clock func() time.Time,
	logger *slog.Logger,
) FinishLegCommandHandler {
	return FinishLegCommandHandler{
		uowFactory: uowFactory,
		resources:  resources,
		owners:     owners,
		dispatcher: dispatcher,
		clock:      clock,
		logger:     logger.With("component", "finish_leg"),
	}
}

func (h FinishLegCommandHandler) Handle(ctx context.Context, command FinishLegCommand) (*route.Leg, error) {
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
	if _, err = previous.Finish(); err != nil {
		return nil, err
	}

	realCost, err := h.realCost(ctx, r, leg)
	if err != nil {
		return nil, err
	}

	now := h.clock()
	if _, err = r.FinishLeg(command.LegID(), now, realCost); err != nil {
		return nil, err
	}

	if err = routeRepo.UpdateLeg(ctx, leg, previous); err != nil {
		return nil, err
	}

	notes, err := finishNotifications(r, leg, now)
	if err != nil {
		return nil, err
	}
	if err = uow.NotificationRepository().Add(ctx, notes...); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "leg finished",
		"leg_id", command.LegID().String(),
		"route_id", r.ID().String(),
		"real_cost", realCost.String(),
		"real_duration", leg.RealDuration().String(),
	)

	h.dispatcher.Deliver(ctx, notes...)
	return leg, nil
}

func (h FinishLegCommandHandler) realCost(ctx context.Context, r *route.Route, leg *route.Leg) (kernel.Money, error) {
	truck, err := h.resources.GetTruck(ctx, *leg.TruckID())
	if err != nil {
		return kernel.Money{}, err
	}

	tariff, err := h.resources.GetTariff(ctx)
	if err != nil {
		return kernel.Money{}, err
	}

	in := services.RealCostInput{
		DistanceKm: leg.DistanceKm(),
		Truck:      truck,
		Tariff:     tariff,
	}

	prev, err := r.PreviousLeg(leg.ID())
	if err != nil {
		return kernel.Money{}, err
	}
	if prev != nil {
		in.StorageDays = services.StorageDays(prev.FinishedAt(), *leg.StartedAt())
		if in.StorageDays > 0 {
			origin, lookupErr := h.resources.GetWarehouse(ctx, leg.OriginWarehouseID())
			if lookupErr != nil {
				return kernel.Money{}, lookupErr
			}
			in.StoragePricePerDay = origin.StoragePricePerDay()
		}
	}

	return services.RealLegCost(in), nil
}

func finishNotifications(r *route.Route, leg *route.Leg, now time.Time) ([]*notification.Notification, error) {
	free, err := notification.NewTruckFree(*leg.TruckID(), now)
	if err != nil {
		return nil, err
	}

	var next *notification.Notification
	if leg.Type().IsLast() {
		cost, duration := r.RealTotals()
		next, err = notification.NewRequestDelivered(r.RequestID(), cost, duration, now)
	} else {
		next, err = notification.NewContainerInWarehouse(r.RequestID(), leg.DestinationWarehouseID(), now)
	}
	if err != nil {
		return nil, err
	}

	return []*notification.Notification{free, next}, nil
}
