package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartLegCommandHandler_Handle_FirstLeg(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t, 2)
	leg := f.leg(0)
	_, err := f.route.AssignTruck(leg.ID(), kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewStartLegCommand(leg.ID(), "op-1")
	require.NoError(t, err)

	owners := new(MockOwnershipGuard)
	routeRepo := new(MockRouteRepository)
	notifRepo := new(MockNotificationRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	dispatcher := new(MockDispatcher)

	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		owners.On("IsOwner", ctx, leg.ID(), "op-1").Return(true).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetByLegForUpdate", ctx, leg.ID()).Return(f.route, nil).Once(),
		routeRepo.On("UpdateLeg", ctx, leg, route.StateAssigned).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notifRepo).Once(),
		notifRepo.On("Add", ctx, notificationKinds(notification.KindRequestInTransit)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		dispatcher.On("Deliver", ctx, notificationKinds(notification.KindRequestInTransit)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewStartLegCommandHandler(factory, owners, dispatcher, clock, discardLogger())
	started, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, route.StateStarted, started.State())
	require.NotNil(t, started.StartedAt())
	assert.Equal(t, fixedNow, *started.StartedAt())

	owners.AssertExpectations(t)
	routeRepo.AssertExpectations(t)
	notifRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestStartLegCommandHandler_Handle_IntermediateLeg(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t, 2)
	truckID := kernel.NewUUID()
	first, second := f.leg(0), f.leg(1)
	_, err := f.route.AssignTruck(first.ID(), truckID)
	require.NoError(t, err)
	_, err = f.route.StartLeg(first.ID(), fixedNow.Add(-3*time.Hour))
	require.NoError(t, err)
	_, err = f.route.FinishLeg(first.ID(), fixedNow.Add(-2*time.Hour), kernel.MoneyFromFloat(1800))
	require.NoError(t, err)
	_, err = f.route.AssignTruck(second.ID(), truckID)
	require.NoError(t, err)

	cmd, err := commands.NewStartLegCommand(second.ID(), "op-1")
	require.NoError(t, err)

	owners := new(MockOwnershipGuard)
	routeRepo := new(MockRouteRepository)
	notifRepo := new(MockNotificationRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	dispatcher := new(MockDispatcher)

	factory.On("Create").Return(uow).Once()
	owners.On("IsOwner", ctx, second.ID(), "op-1").Return(true).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RouteRepository").Return(routeRepo).Once()
	uow.On("NotificationRepository").Return(notifRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	routeRepo.On("GetByLegForUpdate", ctx, second.ID()).Return(f.route, nil).Once()
	routeRepo.On("UpdateLeg", ctx, second, route.StateAssigned).Return(nil).Once()
	notifRepo.On("Add", ctx, notificationKinds(notification.KindContainerInTransit)).Return(nil).Once()
	dispatcher.On("Deliver", ctx, notificationKinds(notification.KindContainerInTransit)).Once()

	handler := commands.NewStartLegCommandHandler(factory, owners, dispatcher, clock, discardLogger())
	started, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, route.StateStarted, started.State())
	delivered := dispatcher.Calls[0].Arguments.Get(1).([]*notification.Notification)
	require.NotNil(t, delivered[0].Payload().WarehouseID)
	assert.True(t, f.warehouses[1].IsEqual(*delivered[0].Payload().WarehouseID))
	assert.True(t, f.requestID.IsEqual(delivered[0].SubjectID()))

	routeRepo.AssertExpectations(t)
	notifRepo.AssertExpectations(t)
}

func TestStartLegCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	legID := kernel.NewUUID()
	cmd, err := commands.NewStartLegCommand(legID, "intruder")
	require.NoError(t, err)

	owners := new(MockOwnershipGuard)
	owners.On("IsOwner", ctx, legID, "intruder").Return(false).Once()
	factory := new(MockUoWFactory)

	handler := commands.NewStartLegCommandHandler(factory, owners, new(MockDispatcher), clock, discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	factory.AssertNotCalled(t, "Create")
}

func TestStartLegCommandHandler_Handle_LegNotAssigned(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t, 1)
	leg := f.leg(0)

	cmd, err := commands.NewStartLegCommand(leg.ID(), "op-1")
	require.NoError(t, err)

	owners := new(MockOwnershipGuard)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	owners.On("IsOwner", ctx, leg.ID(), "op-1").Return(true).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RouteRepository").Return(routeRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	routeRepo.On("GetByLegForUpdate", ctx, leg.ID()).Return(f.route, nil).Once()

	handler := commands.NewStartLegCommandHandler(factory, owners, new(MockDispatcher), clock, discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, route.StateEstimated, leg.State())
	routeRepo.AssertNotCalled(t, "UpdateLeg", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewLegCommands(t *testing.T) {
	_, err := commands.NewStartLegCommand(kernel.UUID{}, "op-1")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewStartLegCommand(kernel.NewUUID(), "  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewFinishLegCommand(kernel.NewUUID(), "")
	require.ErrorIs(t, err, commands.ErrPrincipalIsRequired)

	_, err = commands.StartLegCommandHandler{}.Handle(t.Context(), commands.StartLegCommand{})
	require.ErrorIs(t, err, commands.ErrStartLegCommandIsNotConstructed)

	_, err = commands.FinishLegCommandHandler{}.Handle(t.Context(), commands.FinishLegCommand{})
	require.ErrorIs(t, err, commands.ErrFinishLegCommandIsNotConstructed)
}
