package notification

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Status is the delivery state of a notification.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusDelivered Status = "Delivered"
)

// maxErrorLength bounds the stored delivery error.
const maxErrorLength = 512

// Payload carries the arguments of the collaborator call. Only the fields the
// Kind needs are set.
// Container notifications carry the warehouse id; its name is resolved on delivery.
type Payload struct {
	Cost        *kernel.Money  `json:"cost,omitempty"`
	Duration    *time.Duration `json:"duration,omitempty"`
	WarehouseID *kernel.UUID   `json:"warehouseId,omitempty"`
}

// Notification is one outbox entry addressed at a truck or a request.
type Notification struct {
	id          kernel.UUID
	kind        Kind
	subjectID   kernel.UUID
	payload     Payload
	status      Status
	attempts    int
	lastError   string
	createdAt   time.Time
	deliveredAt *time.Time
}

func newNotification(kind Kind, subjectID kernel.UUID, payload Payload, now time.Time) (*Notification, error) {
	if err := errors.Join(kind.Validate(), subjectID.Validate()); err != nil {
		return nil, err
	}
	return &Notification{
		id:        kernel.NewUUID(),
		kind:      kind,
		subjectID: subjectID,
		payload:   payload,
		status:    StatusPending,
		createdAt: now,
	}, nil
}

// NewTruckBusy marks truckID unavailable.
func NewTruckBusy(truckID kernel.UUID, now time.Time) (*Notification, error) {
	return newNotification(KindTruckBusy, truckID, Payload{}, now)
}

// NewTruckFree marks truckID available again.
func NewTruckFree(truckID kernel.UUID, now time.Time) (*Notification, error) {
	return newNotification(KindTruckFree, truckID, Payload{}, now)
}

// NewRequestScheduled schedules requestID with the estimated totals of its route.
func NewRequestScheduled(requestID kernel.UUID, cost kernel.Money, duration time.Duration, now time.Time) (*Notification, error) {
	return newNotification(KindRequestScheduled, requestID, Payload{Cost: &cost, Duration: &duration}, now)
}

// NewRequestInTransit moves requestID to InTransit.
func NewRequestInTransit(requestID kernel.UUID, now time.Time) (*Notification, error) {
	return newNotification(KindRequestInTransit, requestID, Payload{}, now)
}

// NewRequestDelivered closes requestID with the real totals of its route.
func NewRequestDelivered(requestID kernel.UUID, cost kernel.Money, duration time.Duration, now time.Time) (*Notification, error) {
	return newNotification(KindRequestDelivered, requestID, Payload{Cost: &cost, Duration: &duration}, now)
}

// NewContainerInTransit marks the container of requestID as departed from warehouseID.
func NewContainerInTransit(requestID kernel.UUID, warehouseID kernel.UUID, now time.Time) (*Notification, error) {
	if warehouseID.Validate() != nil {
		return nil, errs.NewValueIsRequiredError("warehouseId")
	}
	return newNotification(KindContainerInTransit, requestID, Payload{WarehouseID: &warehouseID}, now)
}

// NewContainerInWarehouse marks the container of requestID as stored at warehouseID.
func NewContainerInWarehouse(requestID kernel.UUID, warehouseID kernel.UUID, now time.Time) (*Notification, error) {
	if warehouseID.Validate() != nil {
		return nil, errs.NewValueIsRequiredError("warehouseId")
	}
	return newNotification(KindContainerInWarehouse, requestID, Payload{WarehouseID: &warehouseID}, now)
}

// Restore reconstructs a Notification from persistent storage.
func Restore(
	id kernel.UUID,
	kind Kind,
	subjectID kernel.UUID,
	payload Payload,
	status Status,
	attempts int,
	lastError string,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), kind.Validate(), subjectID.Validate()); err != nil {
		return nil, err
	}
	if status != StatusPending && status != StatusDelivered {
		return nil, errs.NewValueIsInvalidError("status")
	}
	return &Notification{
		id:          id,
		kind:        kind,
		subjectID:   subjectID,
		payload:     payload,
		status:      status,
		attempts:    attempts,
		lastError:   lastError,
		createdAt:   createdAt,
		deliveredAt: deliveredAt,
	}, nil
}

func (n *Notification) ID() kernel.UUID         { return n.id }
func (n *Notification) Kind() Kind              { return n.kind }
func (n *Notification) SubjectID() kernel.UUID  { return n.subjectID }
func (n *Notification) Payload() Payload        { return n.payload }
func (n *Notification) Status() Status          { return n.status }
func (n *Notification) Attempts() int           { return n.attempts }
func (n *Notification) LastError() string       { return n.lastError }
func (n *Notification) CreatedAt() time.Time    { return n.createdAt }
func (n *Notification) DeliveredAt() *time.Time { return n.deliveredAt }

// IsPending reports whether the notification still awaits delivery.
func (n *Notification) IsPending() bool {
	return n.status == StatusPending
}

// MarkDelivered records a successful delivery attempt.
func (n *Notification) MarkDelivered(now time.Time) {
	n.attempts++
	n.status = StatusDelivered
	n.lastError = ""
	n.deliveredAt = &now
}

// MarkFailed records a failed delivery attempt. The notification stays pending.
func (n *Notification) MarkFailed(cause error) {
	n.attempts++
	msg := cause.Error()
	if len(msg) > maxErrorLength {
		msg = msg[:maxErrorLength]
	}
	n.lastError = msg
}
