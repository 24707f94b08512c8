package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	UoW interface {
		TxManager
		RouteRepoFactory
		NotificationRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// NotificationDispatcher delivers committed notifications best-effort.
	NotificationDispatcher interface {
		Deliver(ctx context.Context, notifications ...*notification.Notification)
	}

	// OwnershipGuard tells whether principalID operates the truck assigned to legID.
	OwnershipGuard interface {
		IsOwner(ctx context.Context, legID kernel.UUID, principalID string) bool
	}
)
