package queries

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/resource"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ProposalGenerator prices candidate routes.
type ProposalGenerator interface {
	Generate(ctx context.Context, in services.ProposalInput) []route.Proposal
}

// GetRouteProposalsQueryHandler gathers the request, the eligible fleet, the
// tariff and the warehouses, then asks the generator for candidates. Each missing input
// fails the whole call with its own error; a candidate that cannot be priced is
// only omitted.
type GetRouteProposalsQueryHandler struct {
	requests  ports.RequestService
	resources ports.ResourceService
	generator ProposalGenerator
	logger    *slog.Logger
}

func NewGetRouteProposalsQueryHandler(
	requests ports.RequestService,
	resources ports.ResourceService,
	generator ProposalGenerator,
	logger *slog.Logger,
) GetRouteProposalsQueryHandler {
	return GetRouteProposalsQueryHandler{
		requests:  requests,
		resources: resources,
		generator: generator,
		logger:    logger.With("component", "route_proposals"),
	}
}

func (h GetRouteProposalsQueryHandler) Handle(ctx context.Context, query GetRouteProposalsQuery) ([]route.Proposal, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	req, err := h.requests.GetRequest(ctx, query.RequestID())
	if err != nil {
		return nil, err
	}

	container, err := req.ContainerOrErr()
	if err != nil {
		return nil, err
	}

	trucks, err := h.resources.GetEligibleTrucks(ctx, container.Volume, container.Weight)
	if err != nil {
		return nil, err
	}
	eligible := make([]resource.Truck, 0, len(trucks))
	for _, t := range trucks {
		if t.CanCarry(container.Volume, container.Weight) {
			eligible = append(eligible, t)
		}
	}

	fleet, err := services.FleetAverages(eligible)
	if err != nil {
		return nil, err
	}

	tariff, err := h.resources.GetTariff(ctx)
	if err != nil {
		return nil, err
	}

	warehouses, err := h.resources.GetWarehouses(ctx)
	if err != nil {
		return nil, err
	}
	if len(warehouses) == 0 {
		return nil, errs.NewObjectNotFoundError("warehouses", "any")
	}

	origin, err := findWarehouse(warehouses, "originWarehouseId", req.OriginWarehouseID())
	if err != nil {
		return nil, err
	}
	destination, err := findWarehouse(warehouses, "destinationWarehouseId", req.DestinationWarehouseID())
	if err != nil {
		return nil, err
	}

	proposals := h.generator.Generate(ctx, services.ProposalInput{
		Origin:      origin,
		Destination: destination,
		Warehouses:  warehouses,
		Fleet:       fleet,
		Tariff:      tariff,
	})

	h.logger.InfoContext(ctx, "route proposals generated",
		"request_id", query.RequestID().String(),
		"eligible_trucks", len(eligible),
		"proposals", len(proposals),
	)

	return proposals, nil
}

func findWarehouse(warehouses []resource.Warehouse, param string, id kernel.UUID) (resource.Warehouse, error) {
	for _, w := range warehouses {
		if w.ID().IsEqual(id) {
			return w, nil
		}
	}
	return resource.Warehouse{}, errs.NewObjectNotFoundError(param, id.String())
}
