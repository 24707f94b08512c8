package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/core/domain/model/resource"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRouteRepository) UpdateLeg(ctx context.Context, leg *route.Leg, previous route.State) error {
	return m.Called(ctx, leg, previous).Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetByRequest(ctx context.Context, requestID kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetByLeg(ctx context.Context, legID kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, legID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetByLegForUpdate(ctx context.Context, legID kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, legID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) LockTruck(ctx context.Context, truckID kernel.UUID) error {
	return m.Called(ctx, truckID).Error(0)
}

func (m *MockRouteRepository) IsTruckBusy(ctx context.Context, truckID kernel.UUID) (bool, error) {
	args := m.Called(ctx, truckID)
	return args.Bool(0), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, notifications ...*notification.Notification) error {
	return m.Called(ctx, notifications).Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) GetPending(
	ctx context.Context,
	createdBefore time.Time,
	maxAttempts int,
	limit int,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, createdBefore, maxAttempts, limit)
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	return m.Called().Get(0).(ports.RouteRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

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

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Deliver(ctx context.Context, notifications ...*notification.Notification) {
	m.Called(ctx, notifications)
}

type MockOwnershipGuard struct{ mock.Mock }

func (m *MockOwnershipGuard) IsOwner(ctx context.Context, legID kernel.UUID, principalID string) bool {
	return m.Called(ctx, legID, principalID).Bool(0)
}

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	requestID  kernel.UUID
	warehouses []kernel.UUID
	route      *route.Route
}

// newFixture builds a committed route with legCount legs over fresh warehouses.
func newFixture(t *testing.T, legCount int) fixture {
	t.Helper()

	warehouses := make([]kernel.UUID, legCount+1)
	for i := range warehouses {
		warehouses[i] = kernel.NewUUID()
	}

	legs := make([]route.ProposedLeg, 0, legCount)
	for i := 0; i < legCount; i++ {
		legs = append(legs, route.ProposedLeg{
			OriginWarehouseID:      warehouses[i],
			DestinationWarehouseID: warehouses[i+1],
			DistanceKm:             100,
			Duration:               75 * time.Minute,
			Cost:                   kernel.MoneyFromFloat(1300),
		})
	}

	proposal, err := route.NewProposal(legs)
	require.NoError(t, err)

	requestID := kernel.NewUUID()
	r, err := route.NewRoute(kernel.NewUUID(), requestID, proposal)
	require.NoError(t, err)

	return fixture{requestID: requestID, warehouses: warehouses, route: r}
}

func (f fixture) leg(i int) *route.Leg {
	return f.route.Legs()[i]
}

func newTruck(t *testing.T, available bool, operator string) resource.Truck {
	t.Helper()
	truck, err := resource.NewTruck(resource.TruckParams{
		ID:              kernel.NewUUID(),
		VolumeCapacity:  40,
		WeightCapacity:  20000,
		CostPerKm:       decimal.NewFromInt(10),
		FuelConsumption: decimal.NewFromInt(2),
		Available:       available,
		OperatorID:      operator,
	})
	require.NoError(t, err)
	return truck
}

func newWarehouse(t *testing.T, id kernel.UUID, name string, pricePerDay float64) resource.Warehouse {
	t.Helper()
	loc, err := kernel.NewLocation(-31.4, -64.2)
	require.NoError(t, err)
	w, err := resource.NewWarehouse(id, name, loc, kernel.MoneyFromFloat(pricePerDay))
	require.NoError(t, err)
	return w
}

func newTariff(t *testing.T) resource.Tariff {
	t.Helper()
	tariff, err := resource.NewTariff(decimal.RequireFromString("1.5"), kernel.MoneyFromFloat(500))
	require.NoError(t, err)
	return tariff
}

func notificationKinds(kinds ...notification.Kind) any {
	return mock.MatchedBy(func(ns []*notification.Notification) bool {
		if len(ns) != len(kinds) {
			return false
		}
		for i, n := range ns {
			if n.Kind() != kinds[i] {
				return false
			}
		}
		return true
	})
}
