package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// FallbackSpeedKmh is the average truck speed assumed when the mapping provider is unavailable.
const FallbackSpeedKmh = 80.0

// DistanceEstimate is the distance and travel time of one leg.
type DistanceEstimate struct {
	Kilometers   float64
	Duration     time.Duration
	DurationText string
	// Fallback is set when the estimate was computed locally.
	Fallback bool
}

// Estimator resolves the distance between two points. Implementations never fail.
type Estimator interface {
	Estimate(ctx context.Context, from kernel.Location, to kernel.Location) DistanceEstimate
}

// DistanceEstimatorOption configures a DistanceEstimator.
type DistanceEstimatorOption func(*DistanceEstimator)

// WithFallbackHook registers a callback invoked every time the fallback is used.
func WithFallbackHook(hook func()) DistanceEstimatorOption {
	return func(e *DistanceEstimator) {
		e.onFallback = hook
	}
}

// DistanceEstimator asks the mapping provider for road distances and falls back
// to a great-circle estimate at FallbackSpeedKmh on any provider failure.
type DistanceEstimator struct {
	provider   ports.MappingProvider
	logger     *slog.Logger
	onFallback func()
}

// NewDistanceEstimator creates a DistanceEstimator. A nil provider always falls back.
func NewDistanceEstimator(provider ports.MappingProvider, logger *slog.Logger, opts ...DistanceEstimatorOption) DistanceEstimator {
	e := DistanceEstimator{
		provider: provider,
		logger:   logger.With("component", "distance_estimator"),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Estimate returns the provider's answer when it is usable and the fallback otherwise.
func (e DistanceEstimator) Estimate(ctx context.Context, from kernel.Location, to kernel.Location) DistanceEstimate {
	if e.provider == nil {
		return e.fallback(ctx, from, to, errors.New("no mapping provider configured"))
	}

	d, err := e.provider.Distance(ctx, from, to)
	if err == nil {
		err = validateRoadDistance(d)
	}
	if err != nil {
		return e.fallback(ctx, from, to, err)
	}

	text := d.DurationText
	if text == "" {
		text = FormatDuration(d.Duration)
	}
	return DistanceEstimate{
		Kilometers:   d.Kilometers,
		Duration:     d.Duration,
		DurationText: text,
	}
}

func (e DistanceEstimator) fallback(ctx context.Context, from kernel.Location, to kernel.Location, cause error) DistanceEstimate {
	e.logger.WarnContext(ctx, "mapping provider unavailable, using great-circle estimate",
		"from", from.String(),
		"to", to.String(),
		"error", cause,
	)
	if e.onFallback != nil {
		e.onFallback()
	}

	km, err := from.DistanceTo(to)
	if err != nil {
		e.logger.ErrorContext(ctx, "great-circle estimate failed", "error", err)
		km = 0
	}

	duration := (time.Duration(km / FallbackSpeedKmh * float64(time.Hour))).Round(time.Second)
	return DistanceEstimate{
		Kilometers:   km,
		Duration:     duration,
		DurationText: FormatDuration(duration),
		Fallback:     true,
	}
}

func validateRoadDistance(d ports.RoadDistance) error {
	if math.IsNaN(d.Kilometers) || math.IsInf(d.Kilometers, 0) || d.Kilometers < 0 {
		return fmt.Errorf("invalid distance %v", d.Kilometers)
	}
	if d.Duration < 0 {
		return fmt.Errorf("invalid duration %v", d.Duration)
	}
	return nil
}

// FormatDuration renders a duration as "2 hours 5 mins", "1 hour" or "45 mins".
func FormatDuration(d time.Duration) string {
	totalMinutes := int64(d.Round(time.Minute) / time.Minute)
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	plural := func(n int64, unit string) string {
		if n == 1 {
			return fmt.Sprintf("1 %s", unit)
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}

	switch {
	case hours == 0:
		return plural(minutes, "min")
	case minutes == 0:
		return plural(hours, "hour")
	default:
		return plural(hours, "hour") + " " + plural(minutes, "min")
	}
}
