package route

import (
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// MaxLegs bounds the number of legs a proposal may carry.
const MaxLegs = 16

// ProposedLeg is one estimated hop of a Proposal.
type ProposedLeg struct {
	OriginWarehouseID      kernel.UUID
	DestinationWarehouseID kernel.UUID
	DistanceKm             float64
	Duration               time.Duration
	Cost                   kernel.Money
}

// Proposal is a transient candidate route with estimated cost and time.
type Proposal struct {
	legCount       int
	warehouseCount int
	legs           []ProposedLeg
	totalCost      kernel.Money
	totalDuration  time.Duration
}

// NewProposal validates the chain of legs and derives the aggregate figures.
// Legs must be non-empty and contiguous: each leg departs from the warehouse the
// previous one arrived at.
func NewProposal(legs []ProposedLeg) (Proposal, error) {
	if len(legs) == 0 {
		return Proposal{}, errs.NewValueIsRequiredError("legs")
	}
	if len(legs) > MaxLegs {
		return Proposal{}, errs.NewValueIsOutOfRangeError("legCount", len(legs), 1, MaxLegs)
	}

	total := kernel.ZeroMoney()
	var duration time.Duration
	for i, leg := range legs {
		if err := validateProposedLeg(i, leg); err != nil {
			return Proposal{}, err
		}
		if i > 0 && !legs[i-1].DestinationWarehouseID.IsEqual(leg.OriginWarehouseID) {
			return Proposal{}, errs.NewValueIsInvalidErrorWithCause(
				"legs",
				fmt.Errorf("leg %d does not depart from the destination of leg %d", i+1, i),
			)
		}
		total = total.Add(leg.Cost)
		duration += leg.Duration
	}

	copied := make([]ProposedLeg, len(legs))
	copy(copied, legs)

	return Proposal{
		legCount:       len(legs),
		warehouseCount: len(legs) + 1,
		legs:           copied,
		totalCost:      total,
		totalDuration:  duration,
	}, nil
}

func validateProposedLeg(i int, leg ProposedLeg) error {
	if err := leg.OriginWarehouseID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("legs[%d].originWarehouseId", i), err)
	}
	if err := leg.DestinationWarehouseID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("legs[%d].destinationWarehouseId", i), err)
	}
	if leg.OriginWarehouseID.IsEqual(leg.DestinationWarehouseID) {
		return errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("legs[%d]", i),
			fmt.Errorf("origin and destination are the same warehouse %s", leg.OriginWarehouseID),
		)
	}
	if leg.DistanceKm < 0 || leg.Duration < 0 || leg.Cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("legs[%d]", i),
			fmt.Errorf("distance, duration and cost must not be negative"),
		)
	}
	return nil
}

// LegCount returns the number of legs.
func (p Proposal) LegCount() int { return p.legCount }

// WarehouseCount returns the number of warehouses the route touches, origin and destination included.
func (p Proposal) WarehouseCount() int { return p.warehouseCount }

// Legs returns a copy of the proposed legs in travel order.
func (p Proposal) Legs() []ProposedLeg {
	legs := make([]ProposedLeg, len(p.legs))
	copy(legs, p.legs)
	return legs
}

// TotalCost is the sum of the legs' estimated costs.
func (p Proposal) TotalCost() kernel.Money { return p.totalCost }

// TotalDuration is the sum of the legs' estimated durations.
func (p Proposal) TotalDuration() time.Duration { return p.totalDuration }
