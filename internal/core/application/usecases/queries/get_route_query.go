package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetRouteQueryIsNotConstructed = errors.New(
	"GetRouteQuery must be created via NewGetRouteQuery constructor",
)

// GetRouteQuery asks for the route committed for a request.
type GetRouteQuery struct {
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRouteQuery(requestID kernel.UUID) (GetRouteQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetRouteQuery{}, err
	}
	return GetRouteQuery{requestID: requestID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

func (q GetRouteQuery) RequestID() kernel.UUID {
	return q.requestID
}

// GetRouteQueryResponse is the read model of a committed route with its legs
// ordered by index.
type GetRouteQueryResponse struct {
	ID                kernel.UUID
	RequestID         kernel.UUID
	LegCount          int
	WarehouseCount    int
	EstimatedCost     kernel.Money
	EstimatedDuration time.Duration
	Legs              []LegView
}
