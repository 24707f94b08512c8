// Package queries contains the read operations of the service: route
// proposals for a request, committed routes and legs, and leg ownership.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetRouteProposalsQueryIsNotConstructed = errors.New(
	"GetRouteProposalsQuery must be created via NewGetRouteProposalsQuery constructor",
)

// GetRouteProposalsQuery asks for the candidate routes of a transport request.
type GetRouteProposalsQuery struct {
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRouteProposalsQuery(requestID kernel.UUID) (GetRouteProposalsQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetRouteProposalsQuery{}, err
	}
	return GetRouteProposalsQuery{requestID: requestID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRouteProposalsQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteProposalsQueryIsNotConstructed)
}

func (q GetRouteProposalsQuery) RequestID() kernel.UUID {
	return q.requestID
}
