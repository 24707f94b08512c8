package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrIsLegOwnerQueryIsNotConstructed = errors.New(
	"IsLegOwnerQuery must be created via NewIsLegOwnerQuery constructor",
)

// IsLegOwnerQuery asks whether principalID operates the truck assigned to a leg.
type IsLegOwnerQuery struct {
	legID       kernel.UUID
	principalID string

	guard guard.ConstructorGuard
}

func NewIsLegOwnerQuery(legID kernel.UUID, principalID string) IsLegOwnerQuery {
	return IsLegOwnerQuery{
		legID:       legID,
		principalID: strings.TrimSpace(principalID),
		guard:       guard.NewConstructorGuard(),
	}
}

func (q IsLegOwnerQuery) Validate() error {
	return q.guard.Validate(ErrIsLegOwnerQueryIsNotConstructed)
}

func (q IsLegOwnerQuery) LegID() kernel.UUID  { return q.legID }
func (q IsLegOwnerQuery) PrincipalID() string { return q.principalID }
