package request

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrContainerMissing is returned when a request has no container to carry.
var ErrContainerMissing = errors.New("request has no container")

// Container is the load of a transport request.
type Container struct {
	ID     kernel.UUID
	Volume float64
	Weight float64
}

// TransportRequest is the read model of a request fetched from the request service.
type TransportRequest struct {
	id                     kernel.UUID
	status                 Status
	customerID             kernel.UUID
	container              *Container
	originWarehouseID      kernel.UUID
	destinationWarehouseID kernel.UUID
}

// NewTransportRequest validates and builds a TransportRequest. The container is
// optional here; ContainerOrErr reports its absence when routing needs it.
func NewTransportRequest(
	id kernel.UUID,
	status Status,
	customerID kernel.UUID,
	container *Container,
	originWarehouseID kernel.UUID,
	destinationWarehouseID kernel.UUID,
) (TransportRequest, error) {
	if err := errors.Join(id.Validate(), originWarehouseID.Validate(), destinationWarehouseID.Validate()); err != nil {
		return TransportRequest{}, err
	}
	if container != nil && (container.Volume < 0 || container.Weight < 0) {
		return TransportRequest{}, errs.NewValueIsInvalidErrorWithCause(
			"container",
			fmt.Errorf("volume %.2f and weight %.2f must not be negative", container.Volume, container.Weight),
		)
	}

	return TransportRequest{
		id:                     id,
		status:                 status,
		customerID:             customerID,
		container:              container,
		originWarehouseID:      originWarehouseID,
		destinationWarehouseID: destinationWarehouseID,
	}, nil
}

func (r TransportRequest) ID() kernel.UUID                     { return r.id }
func (r TransportRequest) Status() Status                      { return r.status }
func (r TransportRequest) CustomerID() kernel.UUID             { return r.customerID }
func (r TransportRequest) OriginWarehouseID() kernel.UUID      { return r.originWarehouseID }
func (r TransportRequest) DestinationWarehouseID() kernel.UUID { return r.destinationWarehouseID }

// ContainerOrErr returns the container or an ErrContainerMissing-wrapped not-found error.
func (r TransportRequest) ContainerOrErr() (Container, error) {
	if r.container == nil {
		return Container{}, errs.NewObjectNotFoundErrorWithCause("container", r.id, ErrContainerMissing)
	}
	return *r.container, nil
}
