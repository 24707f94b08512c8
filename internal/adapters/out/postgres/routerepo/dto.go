// Package routerepo persists the route aggregate: one routes row and one legs
// row per leg, with money in numeric columns and durations in nanoseconds.
package routerepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RouteDTO represents the routes table. A request owns at most one route.
type RouteDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RequestID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	WarehouseCount    int             `gorm:"type:int;not null"`
	EstimatedCost     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	EstimatedDuration time.Duration   `gorm:"type:bigint;not null"`
	Legs              []LegDTO        `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

func (RouteDTO) TableName() string {
	return "routes"
}

// LegDTO represents the legs table.
type LegDTO struct {
	ID                     uuid.UUID           `gorm:"type:uuid;primaryKey"`
	RouteID                uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_legs_route_order"`
	LegOrder               int                 `gorm:"type:int;not null;uniqueIndex:idx_legs_route_order"`
	LegType                string              `gorm:"type:varchar(32);not null"`
	OriginWarehouseID      uuid.UUID           `gorm:"type:uuid;not null"`
	DestinationWarehouseID uuid.UUID           `gorm:"type:uuid;not null"`
	DistanceKm             float64             `gorm:"type:double precision;not null"`
	EstimatedDuration      time.Duration       `gorm:"type:bigint;not null"`
	EstimatedCost          decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	State                  string              `gorm:"type:varchar(16);not null;index"`
	TruckID                *uuid.UUID          `gorm:"type:uuid;index"`
	StartedAt              *time.Time          `gorm:"type:timestamptz"`
	FinishedAt             *time.Time          `gorm:"type:timestamptz"`
	RealCost               decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	RealDuration           *time.Duration      `gorm:"type:bigint"`
}

func (LegDTO) TableName() string {
	return "legs"
}

func fromDomain(r *route.Route) RouteDTO {
	routeID := r.ID().Bytes()
	legs := make([]LegDTO, 0, r.LegCount())
	for _, leg := range r.Legs() {
		legs = append(legs, legFromDomain(routeID, leg))
	}

	return RouteDTO{
		ID:                routeID,
		RequestID:         r.RequestID().Bytes(),
		WarehouseCount:    r.WarehouseCount(),
		EstimatedCost:     r.EstimatedCost().Amount(),
		EstimatedDuration: r.EstimatedDuration(),
		Legs:              legs,
	}
}

func legFromDomain(routeID uuid.UUID, leg *route.Leg) LegDTO {
	s := leg.Snapshot()

	dto := LegDTO{
		ID:                     s.ID.Bytes(),
		RouteID:                routeID,
		LegOrder:               s.Order,
		LegType:                s.Type.String(),
		OriginWarehouseID:      s.OriginWarehouseID.Bytes(),
		DestinationWarehouseID: s.DestinationWarehouseID.Bytes(),
		DistanceKm:             s.DistanceKm,
		EstimatedDuration:      s.EstimatedDuration,
		EstimatedCost:          s.EstimatedCost.Amount(),
		State:                  s.State.String(),
		StartedAt:              s.StartedAt,
		FinishedAt:             s.FinishedAt,
		RealDuration:           s.RealDuration,
	}
	if s.TruckID != nil {
		raw := s.TruckID.Bytes()
		dto.TruckID = &raw
	}
	if s.RealCost != nil {
		dto.RealCost = decimal.NewNullDecimal(s.RealCost.Amount())
	}
	return dto
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	legs := make([]*route.Leg, 0, len(dto.Legs))
	for _, legDTO := range dto.Legs {
		leg, legErr := legToDomain(legDTO)
		if legErr != nil {
			return nil, legErr
		}
		legs = append(legs, leg)
	}

	return route.RestoreRoute(
		id,
		requestID,
		dto.WarehouseCount,
		kernel.NewMoney(dto.EstimatedCost),
		dto.EstimatedDuration,
		legs,
	)
}

func legToDomain(dto LegDTO) (*route.Leg, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	origin, err := kernel.UUIDFromBytes(dto.OriginWarehouseID[:])
	if err != nil {
		return nil, err
	}
	destination, err := kernel.UUIDFromBytes(dto.DestinationWarehouseID[:])
	if err != nil {
		return nil, err
	}
	legType, err := route.ParseLegType(dto.LegType)
	if err != nil {
		return nil, err
	}
	state, err := route.ParseState(dto.State)
	if err != nil {
		return nil, err
	}

	s := route.LegSnapshot{
		ID:                     id,
		Order:                  dto.LegOrder,
		Type:                   legType,
		OriginWarehouseID:      origin,
		DestinationWarehouseID: destination,
		DistanceKm:             dto.DistanceKm,
		EstimatedDuration:      dto.EstimatedDuration,
		EstimatedCost:          kernel.NewMoney(dto.EstimatedCost),
		State:                  state,
		StartedAt:              dto.StartedAt,
		FinishedAt:             dto.FinishedAt,
		RealDuration:           dto.RealDuration,
	}
	if dto.TruckID != nil {
		truckID, truckErr := kernel.UUIDFromBytes((*dto.TruckID)[:])
		if truckErr != nil {
			return nil, truckErr
		}
		s.TruckID = &truckID
	}
	if dto.RealCost.Valid {
		realCost := kernel.NewMoney(dto.RealCost.Decimal)
		s.RealCost = &realCost
	}

	return route.RestoreLeg(s)
}
