package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
)

// Durations travel as whole seconds with a human-readable companion text.

type ProposedLeg struct {
	OriginWarehouseID      kernel.UUID  `json:"originWarehouseId"`
	DestinationWarehouseID kernel.UUID  `json:"destinationWarehouseId"`
	DistanceKm             float64      `json:"distanceKm"`
	DurationSeconds        int64        `json:"durationSeconds"`
	Cost                   kernel.Money `json:"cost"`
}

type Proposal struct {
	LegCount             int           `json:"legCount"`
	WarehouseCount       int           `json:"warehouseCount"`
	TotalCost            kernel.Money  `json:"totalCost"`
	TotalDurationSeconds int64         `json:"totalDurationSeconds"`
	TotalDurationText    string        `json:"totalDurationText"`
	Legs                 []ProposedLeg `json:"legs"`
}

// CommitRoute is the body of a route commit: the proposal the client chose.
type CommitRoute struct {
	Legs []ProposedLeg `json:"legs"`
}

type AssignTruck struct {
	TruckID string `json:"truckId"`
}

type Leg struct {
	ID                       kernel.UUID   `json:"id"`
	RouteID                  *kernel.UUID  `json:"routeId,omitempty"`
	RequestID                *kernel.UUID  `json:"requestId,omitempty"`
	Order                    int           `json:"order"`
	Type                     string        `json:"type"`
	State                    string        `json:"state"`
	OriginWarehouseID        kernel.UUID   `json:"originWarehouseId"`
	DestinationWarehouseID   kernel.UUID   `json:"destinationWarehouseId"`
	DistanceKm               float64       `json:"distanceKm"`
	EstimatedDurationSeconds int64         `json:"estimatedDurationSeconds"`
	EstimatedCost            kernel.Money  `json:"estimatedCost"`
	TruckID                  *kernel.UUID  `json:"truckId,omitempty"`
	StartedAt                *time.Time    `json:"startedAt,omitempty"`
	FinishedAt               *time.Time    `json:"finishedAt,omitempty"`
	RealCost                 *kernel.Money `json:"realCost,omitempty"`
	RealDurationSeconds      *int64        `json:"realDurationSeconds,omitempty"`
}

type Route struct {
	ID                       kernel.UUID  `json:"id"`
	RequestID                kernel.UUID  `json:"requestId"`
	LegCount                 int          `json:"legCount"`
	WarehouseCount           int          `json:"warehouseCount"`
	EstimatedCost            kernel.Money `json:"estimatedCost"`
	EstimatedDurationSeconds int64        `json:"estimatedDurationSeconds"`
	Legs                     []Leg        `json:"legs"`
}

func seconds(d time.Duration) int64 {
	return int64(d.Round(time.Second) / time.Second)
}

func optionalSeconds(d *time.Duration) *int64 {
	if d == nil {
		return nil
	}
	s := seconds(*d)
	return &s
}

func fromProposal(p route.Proposal) Proposal {
	legs := make([]ProposedLeg, 0, p.LegCount())
	for _, leg := range p.Legs() {
		legs = append(legs, ProposedLeg{
			OriginWarehouseID:      leg.OriginWarehouseID,
			DestinationWarehouseID: leg.DestinationWarehouseID,
			DistanceKm:             leg.DistanceKm,
			DurationSeconds:        seconds(leg.Duration),
			Cost:                   leg.Cost,
		})
	}
	return Proposal{
		LegCount:             p.LegCount(),
		WarehouseCount:       p.WarehouseCount(),
		TotalCost:            p.TotalCost(),
		TotalDurationSeconds: seconds(p.TotalDuration()),
		TotalDurationText:    services.FormatDuration(p.TotalDuration()),
		Legs:                 legs,
	}
}

func (b CommitRoute) toProposal() (route.Proposal, error) {
	legs := make([]route.ProposedLeg, 0, len(b.Legs))
	for _, leg := range b.Legs {
		legs = append(legs, route.ProposedLeg{
			OriginWarehouseID:      leg.OriginWarehouseID,
			DestinationWarehouseID: leg.DestinationWarehouseID,
			DistanceKm:             leg.DistanceKm,
			Duration:               time.Duration(leg.DurationSeconds) * time.Second,
			Cost:                   leg.Cost,
		})
	}
	return route.NewProposal(legs)
}

func fromLeg(l *route.Leg) Leg {
	return Leg{
		ID:                       l.ID(),
		Order:                    l.Order(),
		Type:                     l.Type().String(),
		State:                    l.State().String(),
		OriginWarehouseID:        l.OriginWarehouseID(),
		DestinationWarehouseID:   l.DestinationWarehouseID(),
		DistanceKm:               l.DistanceKm(),
		EstimatedDurationSeconds: seconds(l.EstimatedDuration()),
		EstimatedCost:            l.EstimatedCost(),
		TruckID:                  l.TruckID(),
		StartedAt:                l.StartedAt(),
		FinishedAt:               l.FinishedAt(),
		RealCost:                 l.RealCost(),
		RealDurationSeconds:      optionalSeconds(l.RealDuration()),
	}
}

func fromLegView(v queries.LegView) Leg {
	routeID := v.RouteID
	return Leg{
		ID:                       v.ID,
		RouteID:                  &routeID,
		Order:                    v.Order,
		Type:                     v.Type,
		State:                    v.State,
		OriginWarehouseID:        v.OriginWarehouseID,
		DestinationWarehouseID:   v.DestinationWarehouseID,
		DistanceKm:               v.DistanceKm,
		EstimatedDurationSeconds: seconds(v.EstimatedDuration),
		EstimatedCost:            v.EstimatedCost,
		TruckID:                  v.TruckID,
		StartedAt:                v.StartedAt,
		FinishedAt:               v.FinishedAt,
		RealCost:                 v.RealCost,
		RealDurationSeconds:      optionalSeconds(v.RealDuration),
	}
}

func fromRoute(r *route.Route) Route {
	legs := make([]Leg, 0, r.LegCount())
	for _, leg := range r.Legs() {
		legs = append(legs, fromLeg(leg))
	}
	return Route{
		ID:                       r.ID(),
		RequestID:                r.RequestID(),
		LegCount:                 r.LegCount(),
		WarehouseCount:           r.WarehouseCount(),
		EstimatedCost:            r.EstimatedCost(),
		EstimatedDurationSeconds: seconds(r.EstimatedDuration()),
		Legs:                     legs,
	}
}

func fromRouteView(r queries.GetRouteQueryResponse) Route {
	legs := make([]Leg, 0, len(r.Legs))
	for _, leg := range r.Legs {
		legs = append(legs, fromLegView(leg))
	}
	return Route{
		ID:                       r.ID,
		RequestID:                r.RequestID,
		LegCount:                 r.LegCount,
		WarehouseCount:           r.WarehouseCount,
		EstimatedCost:            r.EstimatedCost,
		EstimatedDurationSeconds: seconds(r.EstimatedDuration),
		Legs:                     legs,
	}
}

func fromTruckLegView(v queries.TruckLegView) Leg {
	leg := fromLegView(v.LegView)
	requestID := v.RequestID
	leg.RequestID = &requestID
	return leg
}
