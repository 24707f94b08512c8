package resource

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrTariffIsNotConstructed is returned for zero-value tariffs.
var ErrTariffIsNotConstructed = errs.NewValueIsRequiredError("tariff must be created via NewTariff")

// Tariff holds the prices applied to every leg: the current fuel price and the
// flat management fee.
type Tariff struct {
	fuelPricePerLiter decimal.Decimal
	managementFee     kernel.Money
	guard             guard.ConstructorGuard
}

// NewTariff builds a Tariff. Neither price may be negative.
func NewTariff(fuelPricePerLiter decimal.Decimal, managementFee kernel.Money) (Tariff, error) {
	if fuelPricePerLiter.IsNegative() {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause("fuelPricePerLiter", fmt.Errorf("%s is negative", fuelPricePerLiter))
	}
	if managementFee.IsNegative() {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause("managementFee", fmt.Errorf("%s is negative", managementFee))
	}

	return Tariff{
		fuelPricePerLiter: fuelPricePerLiter,
		managementFee:     managementFee,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the Tariff was built by NewTariff.
func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

func (t Tariff) FuelPricePerLiter() decimal.Decimal { return t.fuelPricePerLiter }
func (t Tariff) ManagementFee() kernel.Money        { return t.managementFee }
