package resource

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrTruckIsNotConstructed is returned for zero-value trucks.
var ErrTruckIsNotConstructed = errors.New("truck must be created via NewTruck")

// Truck is a vehicle of the fleet as reported by the resource service.
type Truck struct {
	id              kernel.UUID
	volumeCapacity  float64
	weightCapacity  float64
	costPerKm       decimal.Decimal
	fuelConsumption decimal.Decimal
	available       bool
	operatorID      string

	isConstructed bool
}

// TruckParams groups the attributes reported by the resource service.
type TruckParams struct {
	ID              kernel.UUID
	VolumeCapacity  float64
	WeightCapacity  float64
	CostPerKm       decimal.Decimal
	FuelConsumption decimal.Decimal // litres per km
	Available       bool
	OperatorID      string // empty when no operator is bound
}

// NewTruck validates the parameters and builds a Truck.
func NewTruck(p TruckParams) (Truck, error) {
	if err := p.ID.Validate(); err != nil {
		return Truck{}, err
	}
	if p.VolumeCapacity < 0 || p.WeightCapacity < 0 {
		return Truck{}, errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("volume %.2f and weight %.2f must not be negative", p.VolumeCapacity, p.WeightCapacity),
		)
	}
	if p.CostPerKm.IsNegative() {
		return Truck{}, errs.NewValueIsInvalidErrorWithCause("costPerKm", fmt.Errorf("%s is negative", p.CostPerKm))
	}
	if p.FuelConsumption.IsNegative() {
		return Truck{}, errs.NewValueIsInvalidErrorWithCause("fuelConsumption", fmt.Errorf("%s is negative", p.FuelConsumption))
	}

	return Truck{
		id:              p.ID,
		volumeCapacity:  p.VolumeCapacity,
		weightCapacity:  p.WeightCapacity,
		costPerKm:       p.CostPerKm,
		fuelConsumption: p.FuelConsumption,
		available:       p.Available,
		operatorID:      p.OperatorID,
		isConstructed:   true,
	}, nil
}

// Validate reports whether the Truck was built by NewTruck.
func (t Truck) Validate() error {
	if !t.isConstructed {
		return ErrTruckIsNotConstructed
	}
	return nil
}

func (t Truck) ID() kernel.UUID                  { return t.id }
func (t Truck) VolumeCapacity() float64          { return t.volumeCapacity }
func (t Truck) WeightCapacity() float64          { return t.weightCapacity }
func (t Truck) CostPerKm() decimal.Decimal       { return t.costPerKm }
func (t Truck) FuelConsumption() decimal.Decimal { return t.fuelConsumption }
func (t Truck) Available() bool                  { return t.available }

// OperatorID returns the principal bound to the truck and whether one is bound.
func (t Truck) OperatorID() (string, bool) {
	return t.operatorID, t.operatorID != ""
}

// CanCarry reports whether the truck meets the given minimum volume and weight.
func (t Truck) CanCarry(volume float64, weight float64) bool {
	return t.volumeCapacity >= volume && t.weightCapacity >= weight
}
