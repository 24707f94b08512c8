package services

import (
	"errors"
	"math"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/resource"

	"github.com/shopspring/decimal"
)

// ErrNoEligibleTruck is returned when no truck meets the container's capacity.
var ErrNoEligibleTruck = errors.New("no truck meets the container's volume and weight")

// FleetAverage holds the fleet-wide means used for estimates.
type FleetAverage struct {
	FuelConsumption decimal.Decimal // litres per km
	CostPerKm       decimal.Decimal
}

// FleetAverages computes the arithmetic means of fuel consumption and cost per
// km over the eligible trucks. It is recomputed per call because the fleet changes.
func FleetAverages(trucks []resource.Truck) (FleetAverage, error) {
	if len(trucks) == 0 {
		return FleetAverage{}, ErrNoEligibleTruck
	}

	fuel := decimal.Zero
	cost := decimal.Zero
	for _, t := range trucks {
		fuel = fuel.Add(t.FuelConsumption())
		cost = cost.Add(t.CostPerKm())
	}

	n := decimal.NewFromInt(int64(len(trucks)))
	return FleetAverage{
		FuelConsumption: fuel.Div(n),
		CostPerKm:       cost.Div(n),
	}, nil
}

// EstimateLegCost prices a leg of distanceKm with the fleet averages:
//
//	distance*fuel*fuelPrice + distance*costPerKm + managementFee
//
// rounded half-up to two decimals.
func EstimateLegCost(distanceKm float64, avg FleetAverage, tariff resource.Tariff) kernel.Money {
	return kernel.NewMoney(legCost(distanceKm, avg.FuelConsumption, avg.CostPerKm, tariff))
}

// StorageDays counts the days a container waited at the origin warehouse of a
// leg: whole hours between the previous leg's finish and this leg's start,
// divided by 24 and rounded up. It is zero for the first leg.
func StorageDays(previousFinishedAt *time.Time, startedAt time.Time) int {
	if previousFinishedAt == nil {
		return 0
	}
	hours := int64(startedAt.Sub(*previousFinishedAt) / time.Hour)
	if hours <= 0 {
		return 0
	}
	return int(math.Ceil(float64(hours) / 24))
}

// RealCostInput holds the figures known when a leg finishes.
type RealCostInput struct {
	DistanceKm         float64
	Truck              resource.Truck
	Tariff             resource.Tariff
	StorageDays        int
	StoragePricePerDay kernel.Money
}

// RealLegCost prices a finished leg with the truck that actually drove it:
//
//	storageDays*storagePrice + distance*costPerKm + distance*fuel*fuelPrice + managementFee
//
// rounded half-up to two decimals.
func RealLegCost(in RealCostInput) kernel.Money {
	storage := decimal.NewFromInt(int64(in.StorageDays)).Mul(in.StoragePricePerDay.Amount())
	driving := legCost(in.DistanceKm, in.Truck.FuelConsumption(), in.Truck.CostPerKm(), in.Tariff)
	return kernel.NewMoney(storage.Add(driving))
}

// legCost is unrounded so callers round once.
func legCost(distanceKm float64, fuelConsumption decimal.Decimal, costPerKm decimal.Decimal, tariff resource.Tariff) decimal.Decimal {
	d := decimal.NewFromFloat(distanceKm)
	fuel := d.Mul(fuelConsumption).Mul(tariff.FuelPricePerLiter())
	base := d.Mul(costPerKm)
	return fuel.Add(base).Add(tariff.ManagementFee().Amount())
}
