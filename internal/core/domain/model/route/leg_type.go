package route

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// LegType is the topological position of a leg within its route. It is derived
// from the order index and the total leg count when the route is created and
// never changes afterwards.
type LegType int

const (
	LegTypeUnknown LegType = iota
	// OriginToWarehouse is the first leg of a route with more than one leg.
	OriginToWarehouse
	// WarehouseToWarehouse is an interior leg.
	WarehouseToWarehouse
	// WarehouseToDestination is the last leg of a route with more than one leg.
	WarehouseToDestination
	// OriginToDestination is the sole leg of a single-leg route.
	OriginToDestination
)

func getLegTypeStrings() map[LegType]string {
	return map[LegType]string{
		LegTypeUnknown:         "Unknown",
		OriginToWarehouse:      "OriginToWarehouse",
		WarehouseToWarehouse:   "WarehouseToWarehouse",
		WarehouseToDestination: "WarehouseToDestination",
		OriginToDestination:    "OriginToDestination",
	}
}

// LegTypeFor classifies the leg at the 1-based position order in a route of legCount legs.
func LegTypeFor(order int, legCount int) (LegType, error) {
	if legCount < 1 {
		return LegTypeUnknown, errs.NewValueIsOutOfRangeError("legCount", legCount, 1, MaxLegs)
	}
	if order < 1 || order > legCount {
		return LegTypeUnknown, errs.NewValueIsOutOfRangeError("order", order, 1, legCount)
	}

	switch {
	case legCount == 1:
		return OriginToDestination, nil
	case order == 1:
		return OriginToWarehouse, nil
	case order == legCount:
		return WarehouseToDestination, nil
	default:
		return WarehouseToWarehouse, nil
	}
}

// ParseLegType converts a persisted type name back into a LegType.
func ParseLegType(s string) (LegType, error) {
	for t, name := range getLegTypeStrings() {
		if name == s && t != LegTypeUnknown {
			return t, nil
		}
	}
	return LegTypeUnknown, errs.NewValueIsInvalidErrorWithCause("legType", fmt.Errorf("%q is not a valid leg type", s))
}

// Validate rejects LegTypeUnknown and out-of-range values.
func (t LegType) Validate() error {
	if t <= LegTypeUnknown || t > OriginToDestination {
		return errs.NewValueIsInvalidErrorWithCause("legType", fmt.Errorf("%d is not a valid leg type", t))
	}
	return nil
}

func (t LegType) String() string {
	if str, ok := getLegTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// IsFirst reports whether the leg departs from the request's origin warehouse.
func (t LegType) IsFirst() bool {
	return t == OriginToWarehouse || t == OriginToDestination
}

// IsLast reports whether the leg arrives at the request's destination warehouse.
func (t LegType) IsLast() bool {
	return t == WarehouseToDestination || t == OriginToDestination
}
