package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// RoadDistance is the mapping provider's answer for one origin/destination pair.
type RoadDistance struct {
	Kilometers   float64
	Duration     time.Duration
	DurationText string
}

// MappingProvider resolves road distance and travel time between two points.
// Any failure, including a non-OK provider status, is returned as an error.
type MappingProvider interface {
	Distance(ctx context.Context, from kernel.Location, to kernel.Location) (RoadDistance, error)
}
