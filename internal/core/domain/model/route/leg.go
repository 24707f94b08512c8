package route

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrLegIsNotConstructed is returned when a Leg was not created by its owning Route or RestoreLeg.
var ErrLegIsNotConstructed = errors.New("leg must be created via NewRoute or RestoreLeg")

// Leg is one directed hop of a Route between two warehouses. It is an entity
// owned by the Route aggregate and is mutated only through the route.
//
// Invariants:
//   - a truck is set iff the state is Assigned, Started or Finished
//   - a start time is set iff the state is Started or Finished
//   - a finish time, real cost and real duration are set iff the state is Finished
type Leg struct {
	id                     kernel.UUID
	order                  int
	legType                LegType
	originWarehouseID      kernel.UUID
	destinationWarehouseID kernel.UUID

	distanceKm        float64
	estimatedDuration time.Duration
	estimatedCost     kernel.Money

	state      State
	truckID    *kernel.UUID
	startedAt  *time.Time
	finishedAt *time.Time
	realCost   *kernel.Money
	realTime   *time.Duration

	isConstructed bool
}

// LegSnapshot carries the persisted fields of a leg for RestoreLeg.
type LegSnapshot struct {
	ID                     kernel.UUID
	Order                  int
	Type                   LegType
	OriginWarehouseID      kernel.UUID
	DestinationWarehouseID kernel.UUID
	DistanceKm             float64
	EstimatedDuration      time.Duration
	EstimatedCost          kernel.Money
	State                  State
	TruckID                *kernel.UUID
	StartedAt              *time.Time
	FinishedAt             *time.Time
	RealCost               *kernel.Money
	RealDuration           *time.Duration
}

func newLeg(order int, legCount int, proposed ProposedLeg) (*Leg, error) {
	legType, err := LegTypeFor(order, legCount)
	if err != nil {
		return nil, err
	}

	return &Leg{
		id:                     kernel.NewUUID(),
		order:                  order,
		legType:                legType,
		originWarehouseID:      proposed.OriginWarehouseID,
		destinationWarehouseID: proposed.DestinationWarehouseID,
		distanceKm:             proposed.DistanceKm,
		estimatedDuration:      proposed.Duration,
		estimatedCost:          proposed.Cost,
		state:                  StateEstimated,
		isConstructed:          true,
	}, nil
}

// RestoreLeg reconstructs a Leg from persistent storage and checks the
// state-dependent invariants.
func RestoreLeg(s LegSnapshot) (*Leg, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.OriginWarehouseID.Validate(),
		s.DestinationWarehouseID.Validate(),
		s.Type.Validate(),
		s.State.Validate(),
	); err != nil {
		return nil, err
	}
	if s.Order < 1 {
		return nil, errs.NewValueIsOutOfRangeError("order", s.Order, 1, MaxLegs)
	}
	if err := validateStateFields(s); err != nil {
		return nil, err
	}

	return &Leg{
		id:                     s.ID,
		order:                  s.Order,
		legType:                s.Type,
		originWarehouseID:      s.OriginWarehouseID,
		destinationWarehouseID: s.DestinationWarehouseID,
		distanceKm:             s.DistanceKm,
		estimatedDuration:      s.EstimatedDuration,
		estimatedCost:          s.EstimatedCost,
		state:                  s.State,
		truckID:                s.TruckID,
		startedAt:              s.StartedAt,
		finishedAt:             s.FinishedAt,
		realCost:               s.RealCost,
		realTime:               s.RealDuration,
		isConstructed:          true,
	}, nil
}

func validateStateFields(s LegSnapshot) error {
	check := func(field string, present bool, required bool) error {
		if present == required {
			return nil
		}
		verb := "must not"
		if required {
			verb = "must"
		}
		return errs.NewValueIsInvalidErrorWithCause(
			field,
			fmt.Errorf("a leg in state %s %s have %s", s.State, verb, field),
		)
	}

	return errors.Join(
		check("truckId", s.TruckID != nil, s.State.HasTruck()),
		check("startedAt", s.StartedAt != nil, s.State.HasStartTime()),
		check("finishedAt", s.FinishedAt != nil, s.State.HasFinishTime()),
		check("realCost", s.RealCost != nil, s.State.HasFinishTime()),
		check("realDuration", s.RealDuration != nil, s.State.HasFinishTime()),
	)
}

// Validate ensures the Leg was built by its route or restored from storage.
func (l *Leg) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLegIsNotConstructed
	}
	return nil
}

func (l *Leg) ID() kernel.UUID                     { return l.id }
func (l *Leg) Order() int                          { return l.order }
func (l *Leg) Type() LegType                       { return l.legType }
func (l *Leg) OriginWarehouseID() kernel.UUID      { return l.originWarehouseID }
func (l *Leg) DestinationWarehouseID() kernel.UUID { return l.destinationWarehouseID }
func (l *Leg) DistanceKm() float64                 { return l.distanceKm }
func (l *Leg) EstimatedDuration() time.Duration    { return l.estimatedDuration }
func (l *Leg) EstimatedCost() kernel.Money         { return l.estimatedCost }
func (l *Leg) State() State                        { return l.state }
func (l *Leg) TruckID() *kernel.UUID               { return l.truckID }
func (l *Leg) StartedAt() *time.Time               { return l.startedAt }
func (l *Leg) FinishedAt() *time.Time              { return l.finishedAt }
func (l *Leg) RealCost() *kernel.Money             { return l.realCost }
func (l *Leg) RealDuration() *time.Duration        { return l.realTime }

// Snapshot exports the leg's fields for persistence adapters.
func (l *Leg) Snapshot() LegSnapshot {
	return LegSnapshot{
		ID:                     l.id,
		Order:                  l.order,
		Type:                   l.legType,
		OriginWarehouseID:      l.originWarehouseID,
		DestinationWarehouseID: l.destinationWarehouseID,
		DistanceKm:             l.distanceKm,
		EstimatedDuration:      l.estimatedDuration,
		EstimatedCost:          l.estimatedCost,
		State:                  l.state,
		TruckID:                l.truckID,
		StartedAt:              l.startedAt,
		FinishedAt:             l.finishedAt,
		RealCost:               l.realCost,
		RealDuration:           l.realTime,
	}
}

func (l *Leg) assign(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}
	if l.truckID != nil {
		return errs.NewConflictError("leg", fmt.Sprintf("leg %s already has truck %s", l.id, l.truckID))
	}

	next, err := l.state.Assign()
	if err != nil {
		return err
	}

	l.state = next
	l.truckID = &truckID
	return nil
}

func (l *Leg) start(now time.Time) error {
	if l.truckID == nil {
		return errs.NewConflictError("leg", fmt.Sprintf("leg %s has no truck", l.id))
	}

	next, err := l.state.Start()
	if err != nil {
		return err
	}

	l.state = next
	l.startedAt = &now
	return nil
}

func (l *Leg) finish(now time.Time, realCost kernel.Money) error {
	if l.startedAt == nil {
		return errs.NewConflictError("leg", fmt.Sprintf("leg %s has no start time", l.id))
	}

	next, err := l.state.Finish()
	if err != nil {
		return err
	}

	elapsed := now.Sub(*l.startedAt)
	if elapsed < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"finishedAt",
			fmt.Errorf("finish time %s precedes start time %s", now, *l.startedAt),
		)
	}

	l.state = next
	l.finishedAt = &now
	l.realCost = &realCost
	l.realTime = &elapsed
	return nil
}
