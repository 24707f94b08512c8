package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/core/domain/model/resource"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockResourceService struct{ mock.Mock }

func (m *MockResourceService) GetEligibleTrucks(ctx context.Context, minVolume float64, minWeight float64) ([]resource.Truck, error) {
	args := m.Called(ctx, minVolume, minWeight)
	return args.Get(0).([]resource.Truck), args.Error(1)
}

func (m *MockResourceService) GetTruck(ctx context.Context, id kernel.UUID) (resource.Truck, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(resource.Truck), args.Error(1)
}

func (m *MockResourceService) GetTariff(ctx context.Context) (resource.Tariff, error) {
	args := m.Called(ctx)
	return args.Get(0).(resource.Tariff), args.Error(1)
}

func (m *MockResourceService) GetWarehouses(ctx context.Context) ([]resource.Warehouse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]resource.Warehouse), args.Error(1)
}

func (m *MockResourceService) GetWarehouse(ctx context.Context, id kernel.UUID) (resource.Warehouse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(resource.Warehouse), args.Error(1)
}

func (m *MockResourceService) MarkTruckBusy(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockResourceService) MarkTruckFree(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockRequestService struct{ mock.Mock }

func (m *MockRequestService) GetRequest(ctx context.Context, id kernel.UUID) (request.TransportRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(request.TransportRequest), args.Error(1)
}

func (m *MockRequestService) SetScheduled(ctx context.Context, id kernel.UUID, cost kernel.Money, d time.Duration) error {
	return m.Called(ctx, id, cost, d).Error(0)
}

func (m *MockRequestService) SetInTransit(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRequestService) SetDelivered(ctx context.Context, id kernel.UUID, cost kernel.Money, d time.Duration) error {
	return m.Called(ctx, id, cost, d).Error(0)
}

func (m *MockRequestService) SetContainerInTransit(ctx context.Context, id kernel.UUID, from string) error {
	return m.Called(ctx, id, from).Error(0)
}

func (m *MockRequestService) SetContainerInWarehouse(ctx context.Context, id kernel.UUID, warehouse string) error {
	return m.Called(ctx, id, warehouse).Error(0)
}

type MockGenerator struct{ mock.Mock }

func (m *MockGenerator) Generate(ctx context.Context, in services.ProposalInput) []route.Proposal {
	return m.Called(ctx, in).Get(0).([]route.Proposal)
}

type MockRouteReader struct{ mock.Mock }

func (m *MockRouteReader) GetByLeg(ctx context.Context, legID kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, legID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTruck(t *testing.T, volume, weight float64, costPerKm, fuel int64, operator string) resource.Truck {
	t.Helper()
	truck, err := resource.NewTruck(resource.TruckParams{
		ID:              kernel.NewUUID(),
		VolumeCapacity:  volume,
		WeightCapacity:  weight,
		CostPerKm:       decimal.NewFromInt(costPerKm),
		FuelConsumption: decimal.NewFromInt(fuel),
		Available:       true,
		OperatorID:      operator,
	})
	require.NoError(t, err)
	return truck
}

func newWarehouse(t *testing.T, name string) resource.Warehouse {
	t.Helper()
	loc, err := kernel.NewLocation(-32.9, -60.6)
	require.NoError(t, err)
	w, err := resource.NewWarehouse(kernel.NewUUID(), name, loc, kernel.MoneyFromFloat(40))
	require.NoError(t, err)
	return w
}

func newTariff(t *testing.T) resource.Tariff {
	t.Helper()
	tariff, err := resource.NewTariff(decimal.RequireFromString("1.2"), kernel.MoneyFromFloat(300))
	require.NoError(t, err)
	return tariff
}
