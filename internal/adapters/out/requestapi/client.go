// Package requestapi is the client of the request service that owns transport
// requests and their containers.
package requestapi

import (
	"context"
	"time"

	"logistics/internal/adapters/out/restclient"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

const serviceName = "request-service"

var _ ports.RequestService = (*Client)(nil)

type Client struct {
	rest *restclient.Client
}

func NewClient(rest *restclient.Client) *Client {
	return &Client{rest: rest}
}

func (c *Client) GetRequest(ctx context.Context, id kernel.UUID) (request.TransportRequest, error) {
	var dto TransportRequestDTO
	if err := c.rest.Get(ctx, requestPath(id), nil, &dto); err != nil {
		return request.TransportRequest{}, notFound(err, id)
	}
	return dto.toDomain()
}

func (c *Client) SetScheduled(ctx context.Context, id kernel.UUID, estimatedCost kernel.Money, estimatedDuration time.Duration) error {
	body := ScheduleDTO{Cost: estimatedCost, DurationSeconds: seconds(estimatedDuration)}
	return notFound(c.rest.Put(ctx, requestPath(id)+"/scheduled", body, nil), id)
}

func (c *Client) SetInTransit(ctx context.Context, id kernel.UUID) error {
	return notFound(c.rest.Put(ctx, requestPath(id)+"/in-transit", nil, nil), id)
}

func (c *Client) SetDelivered(ctx context.Context, id kernel.UUID, realCost kernel.Money, realDuration time.Duration) error {
	body := ScheduleDTO{Cost: realCost, DurationSeconds: seconds(realDuration)}
	return notFound(c.rest.Put(ctx, requestPath(id)+"/delivered", body, nil), id)
}

func (c *Client) SetContainerInTransit(ctx context.Context, id kernel.UUID, fromWarehouse string) error {
	body := WarehouseNameDTO{Warehouse: fromWarehouse}
	return notFound(c.rest.Put(ctx, requestPath(id)+"/container/in-transit", body, nil), id)
}

func (c *Client) SetContainerInWarehouse(ctx context.Context, id kernel.UUID, warehouse string) error {
	body := WarehouseNameDTO{Warehouse: warehouse}
	return notFound(c.rest.Put(ctx, requestPath(id)+"/container/in-warehouse", body, nil), id)
}

func requestPath(id kernel.UUID) string {
	return "/api/v1/requests/" + id.String()
}

func seconds(d time.Duration) int64 {
	return int64(d.Round(time.Second) / time.Second)
}

func notFound(err error, id kernel.UUID) error {
	if err != nil && restclient.IsNotFound(err) {
		return errs.NewObjectNotFoundError("requestId", id)
	}
	return err
}
