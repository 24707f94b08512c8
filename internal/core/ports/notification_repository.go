package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/notification"
)

// NotificationRepository persists the outbox of best-effort notifications.
type NotificationRepository interface {
	// Add stores new pending notifications.
	Add(ctx context.Context, notifications ...*notification.Notification) error

	// Update stores the delivery outcome of a notification.
	Update(ctx context.Context, n *notification.Notification) error

	// GetPending returns up to limit pending notifications created before
	// createdBefore with fewer than maxAttempts attempts, oldest first.
	GetPending(ctx context.Context, createdBefore time.Time, maxAttempts int, limit int) ([]*notification.Notification, error)
}
