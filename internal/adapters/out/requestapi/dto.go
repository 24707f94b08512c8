package requestapi

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/pkg/errs"
)

type ContainerDTO struct {
	ID     kernel.UUID `json:"id"`
	Volume float64     `json:"volume"`
	Weight float64     `json:"weight"`
}

type TransportRequestDTO struct {
	ID                     kernel.UUID   `json:"id"`
	Status                 string        `json:"status"`
	CustomerID             kernel.UUID   `json:"customerId"`
	Container              *ContainerDTO `json:"container"`
	OriginWarehouseID      kernel.UUID   `json:"originWarehouseId"`
	DestinationWarehouseID kernel.UUID   `json:"destinationWarehouseId"`
}

// ScheduleDTO is the body of the scheduled and delivered transitions.
// Durations travel as whole seconds.
type ScheduleDTO struct {
	Cost            kernel.Money `json:"cost"`
	DurationSeconds int64        `json:"durationSeconds"`
}

type WarehouseNameDTO struct {
	Warehouse string `json:"warehouse"`
}

func (dto TransportRequestDTO) toDomain() (request.TransportRequest, error) {
	status, err := request.ParseStatus(dto.Status)
	if err != nil {
		return request.TransportRequest{}, errs.NewResourceUnavailableErrorWithCause(serviceName, err)
	}

	var container *request.Container
	if dto.Container != nil {
		container = &request.Container{
			ID:     dto.Container.ID,
			Volume: dto.Container.Volume,
			Weight: dto.Container.Weight,
		}
	}

	tr, err := request.NewTransportRequest(
		dto.ID,
		status,
		dto.CustomerID,
		container,
		dto.OriginWarehouseID,
		dto.DestinationWarehouseID,
	)
	if err != nil {
		return request.TransportRequest{}, errs.NewResourceUnavailableErrorWithCause(serviceName, err)
	}
	return tr, nil
}
