// Package rediscache provides a Redis read-through cache in front of the
// mapping provider.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	KeyPrefix  = "distance:"
	DefaultTTL = 24 * time.Hour
)

var _ ports.MappingProvider = (*DistanceCache)(nil)

type cachedDistance struct {
	Kilometers   float64       `json:"km"`
	Duration     time.Duration `json:"duration"`
	DurationText string        `json:"text"`
}

// DistanceCache decorates a MappingProvider. Only successful provider answers
// are cached; Redis failures are logged and the provider is called directly.
type DistanceCache struct {
	client   redis.UniversalClient
	provider ports.MappingProvider
	ttl      time.Duration
	logger   *slog.Logger
}

func NewDistanceCache(client redis.UniversalClient, provider ports.MappingProvider, ttl time.Duration, logger *slog.Logger) *DistanceCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &DistanceCache{
		client:   client,
		provider: provider,
		ttl:      ttl,
		logger:   logger.With("component", "distance_cache"),
	}
}

// Key rounds both coordinates to 5 decimals (about one metre), so repeated
// lookups between the same warehouses share an entry.
func Key(from kernel.Location, to kernel.Location) string {
	return fmt.Sprintf("%s%.5f,%.5f:%.5f,%.5f", KeyPrefix,
		from.Latitude(), from.Longitude(), to.Latitude(), to.Longitude())
}

func (c *DistanceCache) Distance(ctx context.Context, from kernel.Location, to kernel.Location) (ports.RoadDistance, error) {
	key := Key(from, to)

	if d, ok := c.get(ctx, key); ok {
		return d, nil
	}

	d, err := c.provider.Distance(ctx, from, to)
	if err != nil {
		return ports.RoadDistance{}, err
	}

	c.set(ctx, key, d)
	return d, nil
}

func (c *DistanceCache) get(ctx context.Context, key string) (ports.RoadDistance, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.DistanceCacheLookups.WithLabelValues("miss").Inc()
			return ports.RoadDistance{}, false
		}
		metrics.DistanceCacheLookups.WithLabelValues("error").Inc()
		c.logger.WarnContext(ctx, "distance cache read failed", "key", key, "error", err)
		return ports.RoadDistance{}, false
	}

	var cached cachedDistance
	if err := json.Unmarshal(data, &cached); err != nil {
		metrics.DistanceCacheLookups.WithLabelValues("error").Inc()
		c.logger.WarnContext(ctx, "distance cache entry is corrupt", "key", key, "error", err)
		return ports.RoadDistance{}, false
	}

	metrics.DistanceCacheLookups.WithLabelValues("hit").Inc()
	return ports.RoadDistance{
		Kilometers:   cached.Kilometers,
		Duration:     cached.Duration,
		DurationText: cached.DurationText,
	}, true
}

func (c *DistanceCache) set(ctx context.Context, key string, d ports.RoadDistance) {
	data, err := json.Marshal(cachedDistance{
		Kilometers:   d.Kilometers,
		Duration:     d.Duration,
		DurationText: d.DurationText,
	})
	if err != nil {
		c.logger.WarnContext(ctx, "distance cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "distance cache write failed", "key", key, "error", err)
	}
}
