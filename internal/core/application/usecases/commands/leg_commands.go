package commands

import (
	"context"
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrStartLegCommandIsNotConstructed = errors.New(
		"StartLegCommand must be created via NewStartLegCommand constructor",
	)
	ErrFinishLegCommandIsNotConstructed = errors.New(
		"FinishLegCommand must be created via NewFinishLegCommand constructor",
	)
	ErrPrincipalIsRequired = errs.NewValueIsRequiredError("principalId")
)

// StartLegCommand departs an assigned leg on behalf of the truck's operator.
type StartLegCommand struct {
	legID       kernel.UUID
	principalID string

	guard guard.ConstructorGuard
}

func NewStartLegCommand(legID kernel.UUID, principalID string) (StartLegCommand, error) {
	if err := validateLegActor(legID, principalID); err != nil {
		return StartLegCommand{}, err
	}

	return StartLegCommand{
		legID:       legID,
		principalID: principalID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c StartLegCommand) Validate() error {
	return c.guard.Validate(ErrStartLegCommandIsNotConstructed)
}

func (c StartLegCommand) LegID() kernel.UUID  { return c.legID }
func (c StartLegCommand) PrincipalID() string { return c.principalID }

// FinishLegCommand completes a started leg on behalf of the truck's operator.
type FinishLegCommand struct {
	legID       kernel.UUID
	principalID string

	guard guard.ConstructorGuard
}

func NewFinishLegCommand(legID kernel.UUID, principalID string) (FinishLegCommand, error) {
	if err := validateLegActor(legID, principalID); err != nil {
		return FinishLegCommand{}, err
	}

	return FinishLegCommand{
		legID:       legID,
		principalID: principalID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c FinishLegCommand) Validate() error {
	return c.guard.Validate(ErrFinishLegCommandIsNotConstructed)
}

func (c FinishLegCommand) LegID() kernel.UUID  { return c.legID }
func (c FinishLegCommand) PrincipalID() string { return c.principalID }

func validateLegActor(legID kernel.UUID, principalID string) error {
	if err := legID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(principalID) == "" {
		return ErrPrincipalIsRequired
	}
	return nil
}

// loadLegForUpdate locks the route owning legID and returns it with the leg.
func loadLegForUpdate(ctx context.Context, repo ports.RouteRepository, legID kernel.UUID) (*route.Route, *route.Leg, error) {
	r, err := repo.GetByLegForUpdate(ctx, legID)
	if err != nil {
		return nil, nil, err
	}

	leg, err := r.Leg(legID)
	if err != nil {
		return nil, nil, err
	}
	return r, leg, nil
}

func notOwnerError(legID kernel.UUID) error {
	return errs.NewConflictError("leg", "principal is not the operator of the truck assigned to leg "+legID.String())
}
