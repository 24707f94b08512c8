package guard_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/resource"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotConstructed = errors.New("leg command must be created via its constructor")

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes", func(t *testing.T) {
		assert.NoError(t, guard.NewConstructorGuard().Validate(errNotConstructed))
	})

	t.Run("zero guard returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard
		assert.Same(t, errNotConstructed, g.Validate(errNotConstructed))
	})

	t.Run("zero guard falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard
		assert.ErrorIs(t, g.Validate(nil), guard.ErrDefaultConstructorGuard)
	})
}

// Every command, query and value object that embeds a guard must reject its
// struct literal and accept the constructor's result.
func TestConstructorGuard_GuardedTypes(t *testing.T) {
	legID := kernel.NewUUID()

	assign, err := commands.NewAssignTruckCommand(legID, kernel.NewUUID())
	require.NoError(t, err)
	start, err := commands.NewStartLegCommand(legID, "op-1")
	require.NoError(t, err)
	finish, err := commands.NewFinishLegCommand(legID, "op-1")
	require.NoError(t, err)
	truckLegs, err := queries.NewGetTruckLegsQuery(kernel.NewUUID())
	require.NoError(t, err)
	tariff, err := resource.NewTariff(decimal.RequireFromString("1.50"), kernel.MoneyFromFloat(500))
	require.NoError(t, err)
	cordoba, err := kernel.NewLocation(-31.4201, -64.1888)
	require.NoError(t, err)

	tests := []struct {
		name        string
		constructed interface{ Validate() error }
		zero        interface{ Validate() error }
		wantErr     error
	}{
		{"assign truck command", assign, commands.AssignTruckCommand{}, commands.ErrAssignTruckCommandIsNotConstructed},
		{"start leg command", start, commands.StartLegCommand{}, commands.ErrStartLegCommandIsNotConstructed},
		{"finish leg command", finish, commands.FinishLegCommand{}, commands.ErrFinishLegCommandIsNotConstructed},
		{"leg owner query", queries.NewIsLegOwnerQuery(legID, "op-1"), queries.IsLegOwnerQuery{}, queries.ErrIsLegOwnerQueryIsNotConstructed},
		{"truck legs query", truckLegs, queries.GetTruckLegsQuery{}, queries.ErrGetTruckLegsQueryIsNotConstructed},
		{"tariff", tariff, resource.Tariff{}, resource.ErrTariffIsNotConstructed},
		{"location", cordoba, kernel.Location{}, kernel.ErrLocationIsNotConstructed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, tc.constructed.Validate())
			assert.ErrorIs(t, tc.zero.Validate(), tc.wantErr)
		})
	}
}

func TestConstructorGuard_ZeroTariffIsValueRequired(t *testing.T) {
	err := resource.Tariff{}.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
