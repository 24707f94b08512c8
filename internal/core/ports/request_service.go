package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/request"
)

// RequestService is the client of the request service, which owns transport
// requests and their containers. Container updates are addressed by request id.
type RequestService interface {
	GetRequest(ctx context.Context, id kernel.UUID) (request.TransportRequest, error)

	SetScheduled(ctx context.Context, id kernel.UUID, estimatedCost kernel.Money, estimatedDuration time.Duration) error

	SetInTransit(ctx context.Context, id kernel.UUID) error

	SetDelivered(ctx context.Context, id kernel.UUID, realCost kernel.Money, realDuration time.Duration) error

	SetContainerInTransit(ctx context.Context, id kernel.UUID, fromWarehouse string) error

	SetContainerInWarehouse(ctx context.Context, id kernel.UUID, warehouse string) error
}
