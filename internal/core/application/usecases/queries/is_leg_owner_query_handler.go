package queries

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
)

// RouteReader loads the route owning a leg.
type RouteReader interface {
	GetByLeg(ctx context.Context, legID kernel.UUID) (*route.Route, error)
}

// IsLegOwnerQueryHandler answers true only when the leg exists, has a truck,
// the truck has an operator binding, and that operator is the principal. Every
// failure along the way answers false.
type IsLegOwnerQueryHandler struct {
	routes    RouteReader
	resources ports.ResourceService
	logger    *slog.Logger
}

func NewIsLegOwnerQueryHandler(routes RouteReader, resources ports.ResourceService, logger *slog.Logger) IsLegOwnerQueryHandler {
	return IsLegOwnerQueryHandler{
		routes:    routes,
		resources: resources,
		logger:    logger.With("component", "leg_ownership"),
	}
}

func (h IsLegOwnerQueryHandler) Handle(ctx context.Context, query IsLegOwnerQuery) bool {
	if query.Validate() != nil || query.LegID().Validate() != nil || query.PrincipalID() == "" {
		return false
	}

	r, err := h.routes.GetByLeg(ctx, query.LegID())
	if err != nil {
		h.logger.DebugContext(ctx, "ownership check: leg lookup failed", "leg_id", query.LegID().String(), "error", err)
		return false
	}
	leg, err := r.Leg(query.LegID())
	if err != nil || leg.TruckID() == nil {
		return false
	}

	truck, err := h.resources.GetTruck(ctx, *leg.TruckID())
	if err != nil {
		h.logger.DebugContext(ctx, "ownership check: truck lookup failed", "truck_id", leg.TruckID().String(), "error", err)
		return false
	}

	operator, ok := truck.OperatorID()
	return ok && operator == query.PrincipalID()
}

// IsOwner lets the handler serve as the ownership guard of the leg commands.
func (h IsLegOwnerQueryHandler) IsOwner(ctx context.Context, legID kernel.UUID, principalID string) bool {
	return h.Handle(ctx, NewIsLegOwnerQuery(legID, principalID))
}
