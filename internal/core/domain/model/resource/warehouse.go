package resource

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrWarehouseIsNotConstructed is returned for zero-value warehouses.
var ErrWarehouseIsNotConstructed = errors.New("warehouse must be created via NewWarehouse")

// Warehouse is a storage site that legs start and end at.
type Warehouse struct {
	id                 kernel.UUID
	name               string
	location           kernel.Location
	storagePricePerDay kernel.Money

	isConstructed bool
}

// NewWarehouse validates and builds a Warehouse.
func NewWarehouse(id kernel.UUID, name string, location kernel.Location, storagePricePerDay kernel.Money) (Warehouse, error) {
	if err := errors.Join(id.Validate(), location.Validate()); err != nil {
		return Warehouse{}, err
	}
	if strings.TrimSpace(name) == "" {
		return Warehouse{}, errs.NewValueIsRequiredError("name")
	}
	if storagePricePerDay.IsNegative() {
		return Warehouse{}, errs.NewValueIsInvalidErrorWithCause(
			"storagePricePerDay",
			fmt.Errorf("%s is negative", storagePricePerDay),
		)
	}

	return Warehouse{
		id:                 id,
		name:               name,
		location:           location,
		storagePricePerDay: storagePricePerDay,
		isConstructed:      true,
	}, nil
}

// Validate reports whether the Warehouse was built by NewWarehouse.
func (w Warehouse) Validate() error {
	if !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

func (w Warehouse) ID() kernel.UUID                  { return w.id }
func (w Warehouse) Name() string                     { return w.name }
func (w Warehouse) Location() kernel.Location        { return w.location }
func (w Warehouse) StoragePricePerDay() kernel.Money { return w.storagePricePerDay }
