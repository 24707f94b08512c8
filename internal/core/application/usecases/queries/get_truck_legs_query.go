package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetTruckLegsQueryIsNotConstructed = errors.New(
	"GetTruckLegsQuery must be created via NewGetTruckLegsQuery constructor",
)

// GetTruckLegsQuery asks for the unfinished legs held by a truck: its
// operator's work list.
type GetTruckLegsQuery struct {
	truckID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTruckLegsQuery(truckID kernel.UUID) (GetTruckLegsQuery, error) {
	if err := truckID.Validate(); err != nil {
		return GetTruckLegsQuery{}, err
	}
	return GetTruckLegsQuery{truckID: truckID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTruckLegsQuery) Validate() error {
	return q.guard.Validate(ErrGetTruckLegsQueryIsNotConstructed)
}

func (q GetTruckLegsQuery) TruckID() kernel.UUID {
	return q.truckID
}

// TruckLegView is a leg on a truck's work list with the request it serves.
type TruckLegView struct {
	LegView
	RequestID kernel.UUID
}
