package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/resource"
)

// ResourceService is the client of the resource-inventory service.
//
// Lookups of a missing entity return an errs.ObjectNotFoundError; transport
// failures and malformed responses return an errs.ResourceUnavailableError.
type ResourceService interface {
	// GetEligibleTrucks lists trucks whose capacity meets both minimums.
	GetEligibleTrucks(ctx context.Context, minVolume float64, minWeight float64) ([]resource.Truck, error)

	GetTruck(ctx context.Context, id kernel.UUID) (resource.Truck, error)

	// GetTariff returns the current fuel price and management fee.
	GetTariff(ctx context.Context) (resource.Tariff, error)

	GetWarehouses(ctx context.Context) ([]resource.Warehouse, error)

	GetWarehouse(ctx context.Context, id kernel.UUID) (resource.Warehouse, error)

	MarkTruckBusy(ctx context.Context, id kernel.UUID) error

	MarkTruckFree(ctx context.Context, id kernel.UUID) error
}
