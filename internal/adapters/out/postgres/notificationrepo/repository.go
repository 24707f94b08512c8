package notificationrepo

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/notification"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements ports.NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add inserts new notifications in one statement.
func (r *GormNotificationRepository) Add(ctx context.Context, notifications ...*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	dtos := make([]NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		dtos = append(dtos, fromDomain(n))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// Update stores the delivery outcome of n.
func (r *GormNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	dto := fromDomain(n)
	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "attempts", "last_error", "delivered_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notificationId", n.ID().String())
	}
	return nil
}

// GetPending returns pending notifications created before createdBefore with
// fewer than maxAttempts attempts, oldest first.
func (r *GormNotificationRepository) GetPending(
	ctx context.Context,
	createdBefore time.Time,
	maxAttempts int,
	limit int,
) ([]*notification.Notification, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ? AND attempts < ?", string(notification.StatusPending), createdBefore, maxAttempts).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}
