package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCommitRouteCommandIsNotConstructed = errors.New(
	"CommitRouteCommand must be created via NewCommitRouteCommand constructor",
)

// CommitRouteCommand persists the proposal a client chose for a request.
type CommitRouteCommand struct {
	requestID kernel.UUID
	proposal  route.Proposal

	guard guard.ConstructorGuard
}

func NewCommitRouteCommand(requestID kernel.UUID, proposal route.Proposal) (CommitRouteCommand, error) {
	if err := requestID.Validate(); err != nil {
		return CommitRouteCommand{}, err
	}
	if proposal.LegCount() == 0 {
		return CommitRouteCommand{}, errs.NewValueIsRequiredError("proposal")
	}

	return CommitRouteCommand{
		requestID: requestID,
		proposal:  proposal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CommitRouteCommand) Validate() error {
	return c.guard.Validate(ErrCommitRouteCommandIsNotConstructed)
}

func (c CommitRouteCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c CommitRouteCommand) Proposal() route.Proposal {
	return c.proposal
}
