// Package ports defines the contracts between the core and its adapters:
// repositories for the route and notification aggregates, the unit of work that
// binds them to one transaction, and clients for the collaborating services.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
type RouteRepository interface {
	// Add persists a new route with all of its legs. A second route for the same
	// request is rejected with a conflict error.
	Add(ctx context.Context, aggregate *route.Route) error

	// UpdateLeg persists the mutable fields of a leg, guarded by the state the
	// leg was loaded in. When no row still holds that state the write is
	// rejected with a conflict error.
	UpdateLeg(ctx context.Context, leg *route.Leg, previous route.State) error

	// Get retrieves a route aggregate with its legs ordered by index.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetByRequest retrieves the route committed for a transport request.
	GetByRequest(ctx context.Context, requestID kernel.UUID) (*route.Route, error)

	// GetByLeg retrieves the route owning legID without locking it.
	GetByLeg(ctx context.Context, legID kernel.UUID) (*route.Route, error)

	// GetByLegForUpdate retrieves the route owning legID and locks its rows
	// until the surrounding transaction ends.
	GetByLegForUpdate(ctx context.Context, legID kernel.UUID) (*route.Route, error)

	// LockTruck serializes concurrent assignments of the same truck until the
	// surrounding transaction ends.
	LockTruck(ctx context.Context, truckID kernel.UUID) error

	// IsTruckBusy reports whether any leg holds truckID in Assigned or Started.
	IsTruckBusy(ctx context.Context, truckID kernel.UUID) (bool, error)
}
