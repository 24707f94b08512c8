package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
)

func TestState_Transitions(t *testing.T) {
	type transition func(route.State) (route.State, error)

	assign := func(s route.State) (route.State, error) { return s.Assign() }
	start := func(s route.State) (route.State, error) { return s.Start() }
	finish := func(s route.State) (route.State, error) { return s.Finish() }

	tests := []struct {
		name    string
		from    route.State
		apply   transition
		want    route.State
		wantErr bool
	}{
		{name: "assign estimated", from: route.StateEstimated, apply: assign, want: route.StateAssigned},
		{name: "start assigned", from: route.StateAssigned, apply: start, want: route.StateStarted},
		{name: "finish started", from: route.StateStarted, apply: finish, want: route.StateFinished},
		{name: "assign assigned", from: route.StateAssigned, apply: assign, wantErr: true},
		{name: "start estimated", from: route.StateEstimated, apply: start, wantErr: true},
		{name: "finish assigned", from: route.StateAssigned, apply: finish, wantErr: true},
		{name: "finish finished", from: route.StateFinished, apply: finish, wantErr: true},
		{name: "assign finished", from: route.StateFinished, apply: assign, wantErr: true},
		{name: "start unknown", from: route.StateUnknown, apply: start, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.apply(tt.from)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrConflict)
				assert.Equal(t, route.StateUnknown, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestState_ParseAndString(t *testing.T) {
	for _, s := range []route.State{route.StateEstimated, route.StateAssigned, route.StateStarted, route.StateFinished} {
		parsed, err := route.ParseState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
		assert.NoError(t, s.Validate())
	}

	_, err := route.ParseState("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Error(t, route.StateUnknown.Validate())
	assert.Error(t, route.State(42).Validate())
	assert.Equal(t, "Unknown", route.State(42).String())
}

func TestState_FieldRequirements(t *testing.T) {
	assert.False(t, route.StateEstimated.HasTruck())
	assert.True(t, route.StateAssigned.HasTruck())
	assert.False(t, route.StateAssigned.HasStartTime())
	assert.True(t, route.StateStarted.HasStartTime())
	assert.False(t, route.StateStarted.HasFinishTime())
	assert.True(t, route.StateFinished.HasFinishTime())

	assert.True(t, route.StateAssigned.IsActive())
	assert.True(t, route.StateStarted.IsActive())
	assert.False(t, route.StateFinished.IsActive())
}
