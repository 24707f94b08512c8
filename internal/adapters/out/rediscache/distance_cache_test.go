package rediscache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/adapters/out/rediscache"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMappingProvider struct {
	mock.Mock
}

func (m *MockMappingProvider) Distance(ctx context.Context, from kernel.Location, to kernel.Location) (ports.RoadDistance, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(ports.RoadDistance), args.Error(1)
}

func setup(t *testing.T) (*miniredis.Miniredis, *MockMappingProvider, *rediscache.DistanceCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	provider := new(MockMappingProvider)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return mr, provider, rediscache.NewDistanceCache(client, provider, time.Hour, logger)
}

func locations(t *testing.T) (kernel.Location, kernel.Location) {
	t.Helper()
	from, err := kernel.NewLocation(-31.4201, -64.1888)
	require.NoError(t, err)
	to, err := kernel.NewLocation(-32.9442, -60.6505)
	require.NoError(t, err)
	return from, to
}

func TestDistanceCache_ReadThrough(t *testing.T) {
	mr, provider, cache := setup(t)
	from, to := locations(t)
	want := ports.RoadDistance{Kilometers: 401.5, Duration: 270 * time.Minute, DurationText: "4 hours 30 mins"}
	provider.On("Distance", mock.Anything, from, to).Return(want, nil).Once()

	first, err := cache.Distance(t.Context(), from, to)
	require.NoError(t, err)
	second, err := cache.Distance(t.Context(), from, to)
	require.NoError(t, err)

	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
	provider.AssertNumberOfCalls(t, "Distance", 1)
	assert.True(t, mr.Exists(rediscache.Key(from, to)))
	assert.Equal(t, time.Hour, mr.TTL(rediscache.Key(from, to)))
}

func TestDistanceCache_DirectionMatters(t *testing.T) {
	from, to := locations(t)
	assert.NotEqual(t, rediscache.Key(from, to), rediscache.Key(to, from))
	assert.Equal(t, "distance:-31.42010,-64.18880:-32.94420,-60.65050", rediscache.Key(from, to))
}

func TestDistanceCache_ProviderErrorIsNotCached(t *testing.T) {
	mr, provider, cache := setup(t)
	from, to := locations(t)
	provider.On("Distance", mock.Anything, from, to).Return(ports.RoadDistance{}, errors.New("provider down")).Once()

	_, err := cache.Distance(t.Context(), from, to)

	require.EqualError(t, err, "provider down")
	assert.False(t, mr.Exists(rediscache.Key(from, to)))
}

func TestDistanceCache_RedisDownFallsThrough(t *testing.T) {
	mr, provider, cache := setup(t)
	from, to := locations(t)
	want := ports.RoadDistance{Kilometers: 10, Duration: 10 * time.Minute}
	provider.On("Distance", mock.Anything, from, to).Return(want, nil).Twice()
	mr.Close()

	for range 2 {
		got, err := cache.Distance(t.Context(), from, to)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	provider.AssertExpectations(t)
}

func TestDistanceCache_CorruptEntryIsRefreshed(t *testing.T) {
	mr, provider, cache := setup(t)
	from, to := locations(t)
	require.NoError(t, mr.Set(rediscache.Key(from, to), "not json"))
	want := ports.RoadDistance{Kilometers: 3, Duration: 4 * time.Minute}
	provider.On("Distance", mock.Anything, from, to).Return(want, nil).Once()

	got, err := cache.Distance(t.Context(), from, to)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	stored, err := mr.Get(rediscache.Key(from, to))
	require.NoError(t, err)
	assert.Contains(t, stored, `"km":3`)
}
