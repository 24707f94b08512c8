package queries

import (
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LegView is the read model of one leg.
type LegView struct {
	ID                     kernel.UUID
	RouteID                kernel.UUID
	Order                  int
	Type                   string
	State                  string
	OriginWarehouseID      kernel.UUID
	DestinationWarehouseID kernel.UUID
	DistanceKm             float64
	EstimatedDuration      time.Duration
	EstimatedCost          kernel.Money
	TruckID                *kernel.UUID
	StartedAt              *time.Time
	FinishedAt             *time.Time
	RealCost               *kernel.Money
	RealDuration           *time.Duration
}

const legColumns = `
	l.id,
	l.route_id,
	l.leg_order,
	l.leg_type,
	l.state,
	l.origin_warehouse_id,
	l.destination_warehouse_id,
	l.distance_km,
	l.estimated_duration,
	l.estimated_cost,
	l.truck_id,
	l.started_at,
	l.finished_at,
	l.real_cost,
	l.real_duration`

type scanner interface {
	Scan(dest ...any) error
}

// scanLeg reads legColumns followed by extra destinations.
func scanLeg(row scanner, extra ...any) (LegView, error) {
	var (
		v                             LegView
		id, routeID, originID, destID uuid.UUID
		truckID                       uuid.NullUUID
		estimatedDuration             int64
		estimatedCost                 decimal.Decimal
		realCost                      decimal.NullDecimal
		realDuration                  *int64
	)

	dest := []any{
		&id,
		&routeID,
		&v.Order,
		&v.Type,
		&v.State,
		&originID,
		&destID,
		&v.DistanceKm,
		&estimatedDuration,
		&estimatedCost,
		&truckID,
		&v.StartedAt,
		&v.FinishedAt,
		&realCost,
		&realDuration,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return LegView{}, err
	}

	var err error
	if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return LegView{}, err
	}
	if v.RouteID, err = kernel.UUIDFromBytes(routeID[:]); err != nil {
		return LegView{}, err
	}
	if v.OriginWarehouseID, err = kernel.UUIDFromBytes(originID[:]); err != nil {
		return LegView{}, err
	}
	if v.DestinationWarehouseID, err = kernel.UUIDFromBytes(destID[:]); err != nil {
		return LegView{}, err
	}
	if truckID.Valid {
		t, truckErr := kernel.UUIDFromBytes(truckID.UUID[:])
		if truckErr != nil {
			return LegView{}, truckErr
		}
		v.TruckID = &t
	}

	v.EstimatedDuration = time.Duration(estimatedDuration)
	v.EstimatedCost = kernel.NewMoney(estimatedCost)
	if realCost.Valid {
		m := kernel.NewMoney(realCost.Decimal)
		v.RealCost = &m
	}
	if realDuration != nil {
		d := time.Duration(*realDuration)
		v.RealDuration = &d
	}

	return v, nil
}
