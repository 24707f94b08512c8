package services

import (
	"context"
	"fmt"
	"log/slog"

	"logistics/internal/core/domain/model/resource"
	"logistics/internal/core/domain/model/route"
)

// ProposalInput holds everything needed to price candidate routes for one request.
type ProposalInput struct {
	Origin      resource.Warehouse
	Destination resource.Warehouse
	// Warehouses is the full warehouse set. Origin and destination are filtered out
	// to obtain the intermediate stops.
	Warehouses []resource.Warehouse
	Fleet      FleetAverage
	Tariff     resource.Tariff
}

// RouteProposalGenerator builds up to three candidate routes between two
// warehouses: direct, through the first intermediate warehouse, and through the
// first two intermediate warehouses. Intermediates are chosen by position in the
// warehouse list, not by distance.
type RouteProposalGenerator struct {
	estimator Estimator
	logger    *slog.Logger
}

// NewRouteProposalGenerator creates a generator pricing legs with estimator.
func NewRouteProposalGenerator(estimator Estimator, logger *slog.Logger) RouteProposalGenerator {
	return RouteProposalGenerator{
		estimator: estimator,
		logger:    logger.With("component", "route_proposal_generator"),
	}
}

// Generate returns the candidates that could be priced, in order of increasing
// stop count. A candidate that fails is logged and omitted; the others are still returned.
func (g RouteProposalGenerator) Generate(ctx context.Context, in ProposalInput) []route.Proposal {
	intermediates := Intermediates(in.Warehouses, in.Origin, in.Destination)

	candidates := [][]resource.Warehouse{
		{in.Origin, in.Destination},
	}
	if len(intermediates) >= 1 {
		candidates = append(candidates, []resource.Warehouse{in.Origin, intermediates[0], in.Destination})
	}
	if len(intermediates) >= 2 {
		candidates = append(candidates, []resource.Warehouse{in.Origin, intermediates[0], intermediates[1], in.Destination})
	}

	proposals := make([]route.Proposal, 0, len(candidates))
	for _, stops := range candidates {
		p, err := g.price(ctx, stops, in)
		if err != nil {
			g.logger.WarnContext(ctx, "route candidate omitted",
				"stops", len(stops),
				"origin", in.Origin.ID().String(),
				"destination", in.Destination.ID().String(),
				"error", err,
			)
			continue
		}
		proposals = append(proposals, p)
	}

	return proposals
}

func (g RouteProposalGenerator) price(ctx context.Context, stops []resource.Warehouse, in ProposalInput) (route.Proposal, error) {
	legs := make([]route.ProposedLeg, 0, len(stops)-1)
	for i := 0; i < len(stops)-1; i++ {
		if err := ctx.Err(); err != nil {
			return route.Proposal{}, err
		}

		from, to := stops[i], stops[i+1]
		if err := validateStops(from, to); err != nil {
			return route.Proposal{}, err
		}

		d := g.estimator.Estimate(ctx, from.Location(), to.Location())
		legs = append(legs, route.ProposedLeg{
			OriginWarehouseID:      from.ID(),
			DestinationWarehouseID: to.ID(),
			DistanceKm:             d.Kilometers,
			Duration:               d.Duration,
			Cost:                   EstimateLegCost(d.Kilometers, in.Fleet, in.Tariff),
		})
	}

	return route.NewProposal(legs)
}

func validateStops(from resource.Warehouse, to resource.Warehouse) error {
	if err := from.Validate(); err != nil {
		return fmt.Errorf("origin of leg: %w", err)
	}
	if err := to.Validate(); err != nil {
		return fmt.Errorf("destination of leg: %w", err)
	}
	return nil
}

// Intermediates returns the warehouses other than origin and destination, preserving order.
func Intermediates(all []resource.Warehouse, origin resource.Warehouse, destination resource.Warehouse) []resource.Warehouse {
	out := make([]resource.Warehouse, 0, len(all))
	for _, w := range all {
		if w.ID().IsEqual(origin.ID()) || w.ID().IsEqual(destination.ID()) {
			continue
		}
		out = append(out, w)
	}
	return out
}
