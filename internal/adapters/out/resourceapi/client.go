// Package resourceapi is the client of the resource-inventory service that owns
// trucks, warehouses and tariffs.
package resourceapi

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"logistics/internal/adapters/out/restclient"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/resource"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

const serviceName = "resource-service"

var _ ports.ResourceService = (*Client)(nil)

type Client struct {
	rest *restclient.Client
}

func NewClient(rest *restclient.Client) *Client {
	return &Client{rest: rest}
}

func (c *Client) GetEligibleTrucks(ctx context.Context, minVolume float64, minWeight float64) ([]resource.Truck, error) {
	query := url.Values{
		"minVolume": {strconv.FormatFloat(minVolume, 'f', -1, 64)},
		"minWeight": {strconv.FormatFloat(minWeight, 'f', -1, 64)},
	}
	var dtos []TruckDTO
	if err := c.rest.Get(ctx, "/api/v1/trucks/eligible", query, &dtos); err != nil {
		return nil, unavailable(err)
	}

	trucks := make([]resource.Truck, 0, len(dtos))
	for _, dto := range dtos {
		truck, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, truck)
	}
	return trucks, nil
}

func (c *Client) GetTruck(ctx context.Context, id kernel.UUID) (resource.Truck, error) {
	var dto TruckDTO
	if err := c.rest.Get(ctx, "/api/v1/trucks/"+id.String(), nil, &dto); err != nil {
		if restclient.IsNotFound(err) {
			return resource.Truck{}, errs.NewObjectNotFoundError("truckId", id)
		}
		return resource.Truck{}, err
	}
	return dto.toDomain()
}

// GetTariff reads the fuel price and the management fee. A missing value in
// either answer is reported as a not-found tariff.
func (c *Client) GetTariff(ctx context.Context) (resource.Tariff, error) {
	fuel, err := c.getPrice(ctx, "/api/v1/tariffs/fuel-price", "fuelPrice")
	if err != nil {
		return resource.Tariff{}, err
	}
	fee, err := c.getPrice(ctx, "/api/v1/tariffs/management-fee", "managementFee")
	if err != nil {
		return resource.Tariff{}, err
	}

	tariff, err := resource.NewTariff(*fuel.Value, kernel.NewMoney(*fee.Value))
	if err != nil {
		return resource.Tariff{}, errs.NewResourceUnavailableErrorWithCause(serviceName, err)
	}
	return tariff, nil
}

func (c *Client) getPrice(ctx context.Context, path string, name string) (PriceDTO, error) {
	var dto PriceDTO
	if err := c.rest.Get(ctx, path, nil, &dto); err != nil {
		if restclient.IsNotFound(err) {
			return PriceDTO{}, errs.NewObjectNotFoundError("tariff", name)
		}
		return PriceDTO{}, err
	}
	if dto.Value == nil {
		return PriceDTO{}, errs.NewObjectNotFoundError("tariff", name)
	}
	return dto, nil
}

func (c *Client) GetWarehouses(ctx context.Context) ([]resource.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := c.rest.Get(ctx, "/api/v1/warehouses", nil, &dtos); err != nil {
		return nil, unavailable(err)
	}

	warehouses := make([]resource.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		warehouse, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, warehouse)
	}
	return warehouses, nil
}

func (c *Client) GetWarehouse(ctx context.Context, id kernel.UUID) (resource.Warehouse, error) {
	var dto WarehouseDTO
	if err := c.rest.Get(ctx, "/api/v1/warehouses/"+id.String(), nil, &dto); err != nil {
		if restclient.IsNotFound(err) {
			return resource.Warehouse{}, errs.NewObjectNotFoundError("warehouseId", id)
		}
		return resource.Warehouse{}, err
	}
	return dto.toDomain()
}

func (c *Client) MarkTruckBusy(ctx context.Context, id kernel.UUID) error {
	return c.putTruck(ctx, id, "busy")
}

func (c *Client) MarkTruckFree(ctx context.Context, id kernel.UUID) error {
	return c.putTruck(ctx, id, "free")
}

func (c *Client) putTruck(ctx context.Context, id kernel.UUID, state string) error {
	if err := c.rest.Put(ctx, "/api/v1/trucks/"+id.String()+"/"+state, nil, nil); err != nil {
		if restclient.IsNotFound(err) {
			return errs.NewObjectNotFoundError("truckId", id)
		}
		return err
	}
	return nil
}

// unavailable maps a 404 on a collection endpoint to an unavailable service:
// the collection itself always exists.
func unavailable(err error) error {
	var se *restclient.StatusError
	if errors.As(err, &se) {
		return errs.NewResourceUnavailableErrorWithCause(serviceName, err)
	}
	return err
}
