package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignTruckCommandIsNotConstructed = errors.New(
	"AssignTruckCommand must be created via NewAssignTruckCommand constructor",
)

// AssignTruckCommand reserves a truck for an estimated leg.
type AssignTruckCommand struct {
	legID   kernel.UUID
	truckID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignTruckCommand(legID kernel.UUID, truckID kernel.UUID) (AssignTruckCommand, error) {
	if err := errors.Join(legID.Validate(), truckID.Validate()); err != nil {
		return AssignTruckCommand{}, err
	}

	return AssignTruckCommand{
		legID:   legID,
		truckID: truckID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignTruckCommand) Validate() error {
	return c.guard.Validate(ErrAssignTruckCommandIsNotConstructed)
}

func (c AssignTruckCommand) LegID() kernel.UUID {
	return c.legID
}

func (c AssignTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}
