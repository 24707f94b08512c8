// Package notificationrepo persists the notification outbox.
package notificationrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the notifications table. The payload is stored as
// jsonb through gorm's json serializer.
type NotificationDTO struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Kind        string               `gorm:"type:varchar(32);not null"`
	SubjectID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	Payload     notification.Payload `gorm:"type:jsonb;serializer:json;not null"`
	Status      string               `gorm:"type:varchar(16);not null;index:idx_notifications_pending,priority:1"`
	Attempts    int                  `gorm:"type:int;not null;default:0"`
	LastError   string               `gorm:"type:varchar(512)"`
	CreatedAt   time.Time            `gorm:"type:timestamptz;not null;index:idx_notifications_pending,priority:2"`
	DeliveredAt *time.Time           `gorm:"type:timestamptz"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID().Bytes(),
		Kind:        n.Kind().String(),
		SubjectID:   n.SubjectID().Bytes(),
		Payload:     n.Payload(),
		Status:      string(n.Status()),
		Attempts:    n.Attempts(),
		LastError:   n.LastError(),
		CreatedAt:   n.CreatedAt(),
		DeliveredAt: n.DeliveredAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	subjectID, err := kernel.UUIDFromBytes(dto.SubjectID[:])
	if err != nil {
		return nil, err
	}
	kind, err := notification.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	return notification.Restore(
		id,
		kind,
		subjectID,
		dto.Payload,
		notification.Status(dto.Status),
		dto.Attempts,
		dto.LastError,
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}
