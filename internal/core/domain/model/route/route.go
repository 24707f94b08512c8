package route

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrRouteIsNotConstructed is returned when a Route was not created through NewRoute or RestoreRoute.
var ErrRouteIsNotConstructed = errors.New("route must be created via NewRoute or RestoreRoute")

// Route is the aggregate root for one committed transport request. It owns an
// ordered set of legs with contiguous 1-based order indices; the set is fixed
// at creation time.
//
// Route follows these invariants:
//   - exactly one route exists per request
//   - leg orders are 1..LegCount with no gaps
//   - leg types follow the positional rule (see LegTypeFor)
//   - all leg transitions go through the route so the aggregate sees them
type Route struct {
	id                kernel.UUID
	requestID         kernel.UUID
	legCount          int
	warehouseCount    int
	estimatedCost     kernel.Money
	estimatedDuration time.Duration
	legs              []*Leg

	isConstructed bool
}

// NewRoute creates a Route from a committed Proposal. Every leg starts in
// StateEstimated with its type derived from its position.
//
// Example:
//
//	proposal, _ := route.NewProposal(legs)
//	r, err := route.NewRoute(kernel.NewUUID(), requestID, proposal)
func NewRoute(id kernel.UUID, requestID kernel.UUID, proposal Proposal) (*Route, error) {
	if err := errors.Join(id.Validate(), requestID.Validate()); err != nil {
		return nil, err
	}
	if proposal.LegCount() == 0 {
		return nil, errs.NewValueIsRequiredError("proposal")
	}

	r := &Route{
		id:                id,
		requestID:         requestID,
		legCount:          proposal.LegCount(),
		warehouseCount:    proposal.WarehouseCount(),
		estimatedCost:     proposal.TotalCost(),
		estimatedDuration: proposal.TotalDuration(),
		isConstructed:     true,
	}

	for i, proposed := range proposal.Legs() {
		leg, err := newLeg(i+1, proposal.LegCount(), proposed)
		if err != nil {
			return nil, err
		}
		r.legs = append(r.legs, leg)
	}

	return r, nil
}

// RestoreRoute reconstructs a Route and its legs from persistent storage.
// Legs are sorted by order and must be contiguous.
func RestoreRoute(
	id kernel.UUID,
	requestID kernel.UUID,
	warehouseCount int,
	estimatedCost kernel.Money,
	estimatedDuration time.Duration,
	legs []*Leg,
) (*Route, error) {
	if err := errors.Join(id.Validate(), requestID.Validate()); err != nil {
		return nil, err
	}
	if len(legs) == 0 {
		return nil, errs.NewValueIsRequiredError("legs")
	}

	sorted := slices.Clone(legs)
	slices.SortFunc(sorted, func(a, b *Leg) int { return a.order - b.order })
	for i, leg := range sorted {
		if err := leg.Validate(); err != nil {
			return nil, err
		}
		if leg.order != i+1 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"legs",
				fmt.Errorf("leg orders are not contiguous: expected %d, got %d", i+1, leg.order),
			)
		}
		want, err := LegTypeFor(leg.order, len(sorted))
		if err != nil {
			return nil, err
		}
		if leg.legType != want {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"legs",
				fmt.Errorf("leg %d of %d has type %s, expected %s", leg.order, len(sorted), leg.legType, want),
			)
		}
	}

	return &Route{
		id:                id,
		requestID:         requestID,
		legCount:          len(sorted),
		warehouseCount:    warehouseCount,
		estimatedCost:     estimatedCost,
		estimatedDuration: estimatedDuration,
		legs:              sorted,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Route was built by NewRoute or RestoreRoute.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

func (r *Route) ID() kernel.UUID                  { return r.id }
func (r *Route) RequestID() kernel.UUID           { return r.requestID }
func (r *Route) LegCount() int                    { return r.legCount }
func (r *Route) WarehouseCount() int              { return r.warehouseCount }
func (r *Route) EstimatedCost() kernel.Money      { return r.estimatedCost }
func (r *Route) EstimatedDuration() time.Duration { return r.estimatedDuration }

// Legs returns the legs in order. The returned slice is a copy; the legs are shared.
func (r *Route) Legs() []*Leg {
	return slices.Clone(r.legs)
}

// Leg finds a leg of this route by id.
func (r *Route) Leg(legID kernel.UUID) (*Leg, error) {
	for _, leg := range r.legs {
		if leg.id.IsEqual(legID) {
			return leg, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("legId", legID)
}

// PreviousLeg returns the leg preceding legID, or nil for the first leg.
func (r *Route) PreviousLeg(legID kernel.UUID) (*Leg, error) {
	leg, err := r.Leg(legID)
	if err != nil {
		return nil, err
	}
	if leg.order == 1 {
		return nil, nil
	}
	return r.legs[leg.order-2], nil
}

// AssignTruck reserves truckID for the leg.
func (r *Route) AssignTruck(legID kernel.UUID, truckID kernel.UUID) (*Leg, error) {
	leg, err := r.Leg(legID)
	if err != nil {
		return nil, err
	}
	if err = leg.assign(truckID); err != nil {
		return nil, err
	}
	return leg, nil
}

// StartLeg marks the leg as departed at now.
func (r *Route) StartLeg(legID kernel.UUID, now time.Time) (*Leg, error) {
	leg, err := r.Leg(legID)
	if err != nil {
		return nil, err
	}
	if err = leg.start(now); err != nil {
		return nil, err
	}
	return leg, nil
}

// FinishLeg marks the leg as arrived at now and records its realized cost.
func (r *Route) FinishLeg(legID kernel.UUID, now time.Time, realCost kernel.Money) (*Leg, error) {
	leg, err := r.Leg(legID)
	if err != nil {
		return nil, err
	}
	if err = leg.finish(now, realCost); err != nil {
		return nil, err
	}
	return leg, nil
}

// RealTotals sums real cost and real duration over all finished legs.
func (r *Route) RealTotals() (kernel.Money, time.Duration) {
	total := kernel.ZeroMoney()
	var duration time.Duration
	for _, leg := range r.legs {
		if leg.state != StateFinished {
			continue
		}
		total = total.Add(*leg.realCost)
		duration += *leg.realTime
	}
	return total, duration
}

// IsCompleted reports whether every leg has finished.
func (r *Route) IsCompleted() bool {
	for _, leg := range r.legs {
		if leg.state != StateFinished {
			return false
		}
	}
	return true
}
