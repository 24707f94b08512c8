package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
)

func TestLegTypeFor(t *testing.T) {
	tests := []struct {
		order    int
		legCount int
		want     route.LegType
	}{
		{order: 1, legCount: 1, want: route.OriginToDestination},
		{order: 1, legCount: 2, want: route.OriginToWarehouse},
		{order: 2, legCount: 2, want: route.WarehouseToDestination},
		{order: 1, legCount: 3, want: route.OriginToWarehouse},
		{order: 2, legCount: 3, want: route.WarehouseToWarehouse},
		{order: 3, legCount: 3, want: route.WarehouseToDestination},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, err := route.LegTypeFor(tt.order, tt.legCount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects out of range order", func(t *testing.T) {
		_, err := route.LegTypeFor(3, 2)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = route.LegTypeFor(0, 2)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = route.LegTypeFor(1, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestLegType_FirstAndLast(t *testing.T) {
	assert.True(t, route.OriginToDestination.IsFirst())
	assert.True(t, route.OriginToDestination.IsLast())
	assert.True(t, route.OriginToWarehouse.IsFirst())
	assert.False(t, route.OriginToWarehouse.IsLast())
	assert.False(t, route.WarehouseToWarehouse.IsFirst())
	assert.False(t, route.WarehouseToWarehouse.IsLast())
	assert.True(t, route.WarehouseToDestination.IsLast())
	assert.False(t, route.WarehouseToDestination.IsFirst())
}

func TestParseLegType(t *testing.T) {
	got, err := route.ParseLegType("WarehouseToWarehouse")
	require.NoError(t, err)
	assert.Equal(t, route.WarehouseToWarehouse, got)

	_, err = route.ParseLegType("Teleport")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
