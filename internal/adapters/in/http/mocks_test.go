package http_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/route"

	"github.com/stretchr/testify/mock"
)

type MockProposalsHandler struct {
	mock.Mock
}

func (m *MockProposalsHandler) Handle(ctx context.Context, query queries.GetRouteProposalsQuery) ([]route.Proposal, error) {
	args := m.Called(ctx, query)
	proposals, _ := args.Get(0).([]route.Proposal)
	return proposals, args.Error(1)
}

type MockCommitRouteHandler struct {
	mock.Mock
}

func (m *MockCommitRouteHandler) Handle(ctx context.Context, command commands.CommitRouteCommand) (*route.Route, error) {
	args := m.Called(ctx, command)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

type MockRouteHandler struct {
	mock.Mock
}

func (m *MockRouteHandler) Handle(ctx context.Context, query queries.GetRouteQuery) (queries.GetRouteQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetRouteQueryResponse), args.Error(1)
}

type MockAssignTruckHandler struct {
	mock.Mock
}

func (m *MockAssignTruckHandler) Handle(ctx context.Context, command commands.AssignTruckCommand) (*route.Leg, error) {
	args := m.Called(ctx, command)
	leg, _ := args.Get(0).(*route.Leg)
	return leg, args.Error(1)
}

type MockStartLegHandler struct {
	mock.Mock
}

func (m *MockStartLegHandler) Handle(ctx context.Context, command commands.StartLegCommand) (*route.Leg, error) {
	args := m.Called(ctx, command)
	leg, _ := args.Get(0).(*route.Leg)
	return leg, args.Error(1)
}

type MockFinishLegHandler struct {
	mock.Mock
}

func (m *MockFinishLegHandler) Handle(ctx context.Context, command commands.FinishLegCommand) (*route.Leg, error) {
	args := m.Called(ctx, command)
	leg, _ := args.Get(0).(*route.Leg)
	return leg, args.Error(1)
}

type MockTruckLegsHandler struct {
	mock.Mock
}

func (m *MockTruckLegsHandler) Handle(ctx context.Context, query queries.GetTruckLegsQuery) ([]queries.TruckLegView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.TruckLegView)
	return views, args.Error(1)
}
