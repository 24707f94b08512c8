package resourceapi

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/resource"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type TruckDTO struct {
	ID              kernel.UUID     `json:"id"`
	VolumeCapacity  float64         `json:"volumeCapacity"`
	WeightCapacity  float64         `json:"weightCapacity"`
	CostPerKm       decimal.Decimal `json:"costPerKm"`
	FuelConsumption decimal.Decimal `json:"fuelConsumption"`
	Available       bool            `json:"available"`
	OperatorID      string          `json:"operatorId"`
}

type WarehouseDTO struct {
	ID                 kernel.UUID  `json:"id"`
	Name               string       `json:"name"`
	Latitude           float64      `json:"latitude"`
	Longitude          float64      `json:"longitude"`
	StoragePricePerDay kernel.Money `json:"storagePricePerDay"`
}

// PriceDTO carries a single decimal value such as the fuel price or the management fee.
type PriceDTO struct {
	Value *decimal.Decimal `json:"value"`
}

func (dto TruckDTO) toDomain() (resource.Truck, error) {
	truck, err := resource.NewTruck(resource.TruckParams{
		ID:              dto.ID,
		VolumeCapacity:  dto.VolumeCapacity,
		WeightCapacity:  dto.WeightCapacity,
		CostPerKm:       dto.CostPerKm,
		FuelConsumption: dto.FuelConsumption,
		Available:       dto.Available,
		OperatorID:      dto.OperatorID,
	})
	if err != nil {
		return resource.Truck{}, errs.NewResourceUnavailableErrorWithCause(serviceName, err)
	}
	return truck, nil
}

func (dto WarehouseDTO) toDomain() (resource.Warehouse, error) {
	location, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return resource.Warehouse{}, errs.NewResourceUnavailableErrorWithCause(serviceName, err)
	}
	warehouse, err := resource.NewWarehouse(dto.ID, dto.Name, location, dto.StoragePricePerDay)
	if err != nil {
		return resource.Warehouse{}, errs.NewResourceUnavailableErrorWithCause(serviceName, err)
	}
	return warehouse, nil
}
