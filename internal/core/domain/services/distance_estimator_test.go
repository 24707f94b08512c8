package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMappingProvider struct{ mock.Mock }

func (m *MockMappingProvider) Distance(ctx context.Context, from kernel.Location, to kernel.Location) (ports.RoadDistance, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(ports.RoadDistance), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustLocation(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return loc
}

func TestDistanceEstimator_Estimate(t *testing.T) {
	from := mustLocation(t, 0, 0)
	to := mustLocation(t, 0, 1)

	t.Run("uses the provider answer", func(t *testing.T) {
		ctx := t.Context()
		provider := new(MockMappingProvider)
		provider.On("Distance", ctx, from, to).Return(ports.RoadDistance{
			Kilometers:   130.4,
			Duration:     95 * time.Minute,
			DurationText: "1 hour 35 mins",
		}, nil).Once()

		fallbacks := 0
		estimator := services.NewDistanceEstimator(provider, discardLogger(),
			services.WithFallbackHook(func() { fallbacks++ }))

		got := estimator.Estimate(ctx, from, to)

		assert.InDelta(t, 130.4, got.Kilometers, 1e-9)
		assert.Equal(t, 95*time.Minute, got.Duration)
		assert.Equal(t, "1 hour 35 mins", got.DurationText)
		assert.False(t, got.Fallback)
		assert.Zero(t, fallbacks)
		provider.AssertExpectations(t)
	})

	t.Run("falls back to great-circle distance at 80 km/h when the provider fails", func(t *testing.T) {
		ctx := t.Context()
		provider := new(MockMappingProvider)
		provider.On("Distance", ctx, from, to).Return(ports.RoadDistance{}, errors.New("ZERO_RESULTS")).Once()

		fallbacks := 0
		estimator := services.NewDistanceEstimator(provider, discardLogger(),
			services.WithFallbackHook(func() { fallbacks++ }))

		got := estimator.Estimate(ctx, from, to)

		assert.True(t, got.Fallback)
		assert.InDelta(t, 111.19, got.Kilometers, 0.01)
		assert.InDelta(t, got.Kilometers/80*3600, got.Duration.Seconds(), 1)
		assert.Equal(t, "1 hour 23 mins", got.DurationText)
		assert.Equal(t, 1, fallbacks)
	})

	t.Run("falls back on malformed provider data", func(t *testing.T) {
		ctx := t.Context()
		provider := new(MockMappingProvider)
		provider.On("Distance", ctx, from, to).Return(ports.RoadDistance{Kilometers: -3}, nil).Once()

		got := services.NewDistanceEstimator(provider, discardLogger()).Estimate(ctx, from, to)

		assert.True(t, got.Fallback)
		assert.Positive(t, got.Kilometers)
	})

	t.Run("falls back without a provider", func(t *testing.T) {
		got := services.NewDistanceEstimator(nil, discardLogger()).Estimate(t.Context(), from, to)

		assert.True(t, got.Fallback)
		assert.InDelta(t, 111.19, got.Kilometers, 0.01)
	})

	t.Run("never fails on unconstructed locations", func(t *testing.T) {
		got := services.NewDistanceEstimator(nil, discardLogger()).Estimate(t.Context(), kernel.Location{}, to)

		assert.True(t, got.Fallback)
		assert.Zero(t, got.Kilometers)
	})

	t.Run("fills in missing duration text", func(t *testing.T) {
		ctx := t.Context()
		provider := new(MockMappingProvider)
		provider.On("Distance", ctx, from, to).Return(ports.RoadDistance{Kilometers: 10, Duration: 12 * time.Minute}, nil).Once()

		got := services.NewDistanceEstimator(provider, discardLogger()).Estimate(ctx, from, to)

		assert.False(t, got.Fallback)
		assert.Equal(t, "12 mins", got.DurationText)
	})
}

func TestFormatDuration(t *testing.T) {
	tests := map[time.Duration]string{
		0:                           "0 mins",
		time.Minute:                 "1 min",
		45 * time.Minute:            "45 mins",
		time.Hour:                   "1 hour",
		2*time.Hour + 5*time.Minute: "2 hours 5 mins",
		26*time.Hour + time.Minute:  "26 hours 1 min",
	}

	for d, want := range tests {
		assert.Equal(t, want, services.FormatDuration(d), d.String())
	}
}
