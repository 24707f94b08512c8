// Package outbox delivers the best-effort notifications written by the command
// handlers to the resource and request services.
//
// Delivery happens after the local transaction commits. A failed delivery is
// logged and recorded on the notification; it never reaches the caller of the
// command and never rolls back the local change. Pending notifications can be
// replayed later by the notification replay job.
package outbox

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/ports"
)

// NotificationRepoFactory gives access to the outbox table outside of a transaction.
type NotificationRepoFactory interface {
	NotificationRepository() ports.NotificationRepository
}

// RepoFactoryProvider creates a fresh repository factory per delivery run.
type RepoFactoryProvider interface {
	Create() NotificationRepoFactory
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithFailureHook registers a callback invoked for every failed delivery attempt.
func WithFailureHook(hook func(kind notification.Kind)) DispatcherOption {
	return func(d *Dispatcher) {
		d.onFailure = hook
	}
}

// Dispatcher sends notifications to the collaborating services.
type Dispatcher struct {
	resources ports.ResourceService
	requests  ports.RequestService
	repos     RepoFactoryProvider
	clock     func() time.Time
	logger    *slog.Logger
	onFailure func(kind notification.Kind)
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(
	resources ports.ResourceService,
	requests ports.RequestService,
	repos RepoFactoryProvider,
	clock func() time.Time,
	logger *slog.Logger,
	opts ...DispatcherOption,
) Dispatcher {
	d := Dispatcher{
		resources: resources,
		requests:  requests,
		repos:     repos,
		clock:     clock,
		logger:    logger.With("component", "outbox_dispatcher"),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Deliver sends the notifications in order and records each outcome. It
// outlives cancellation of ctx so a disconnected client does not drop the
// notifications of a committed change.
func (d Dispatcher) Deliver(ctx context.Context, notifications ...*notification.Notification) {
	ctx = context.WithoutCancel(ctx)
	repo := d.repos.Create().NotificationRepository()

	for _, n := range notifications {
		d.deliverOne(ctx, repo, n)
	}
}

// Replay re-sends pending notifications older than grace with fewer than
// maxAttempts attempts. It returns how many were delivered.
func (d Dispatcher) Replay(ctx context.Context, grace time.Duration, maxAttempts int, batch int) (int, error) {
	repo := d.repos.Create().NotificationRepository()

	pending, err := repo.GetPending(ctx, d.clock().Add(-grace), maxAttempts, batch)
	if err != nil {
		return 0, fmt.Errorf("load pending notifications: %w", err)
	}

	delivered := 0
	for _, n := range pending {
		if err = ctx.Err(); err != nil {
			return delivered, err
		}
		if d.deliverOne(ctx, repo, n) {
			delivered++
		}
	}
	return delivered, nil
}

func (d Dispatcher) deliverOne(ctx context.Context, repo ports.NotificationRepository, n *notification.Notification) bool {
	sendErr := d.send(ctx, n)
	if sendErr != nil {
		n.MarkFailed(sendErr)
		d.logger.WarnContext(ctx, "notification delivery failed",
			"notification_id", n.ID().String(),
			"kind", n.Kind().String(),
			"subject_id", n.SubjectID().String(),
			"attempts", n.Attempts(),
			"error", sendErr,
		)
		if d.onFailure != nil {
			d.onFailure(n.Kind())
		}
	} else {
		n.MarkDelivered(d.clock())
	}

	if err := repo.Update(ctx, n); err != nil {
		d.logger.ErrorContext(ctx, "failed to record notification outcome",
			"notification_id", n.ID().String(),
			"error", err,
		)
	}
	return sendErr == nil
}

func (d Dispatcher) send(ctx context.Context, n *notification.Notification) error {
	p := n.Payload()
	id := n.SubjectID()

	switch n.Kind() {
	case notification.KindTruckBusy:
		return d.resources.MarkTruckBusy(ctx, id)
	case notification.KindTruckFree:
		return d.resources.MarkTruckFree(ctx, id)
	case notification.KindRequestScheduled:
		if p.Cost == nil || p.Duration == nil {
			return fmt.Errorf("%s notification without totals", n.Kind())
		}
		return d.requests.SetScheduled(ctx, id, *p.Cost, *p.Duration)
	case notification.KindRequestInTransit:
		return d.requests.SetInTransit(ctx, id)
	case notification.KindRequestDelivered:
		if p.Cost == nil || p.Duration == nil {
			return fmt.Errorf("%s notification without totals", n.Kind())
		}
		return d.requests.SetDelivered(ctx, id, *p.Cost, *p.Duration)
	case notification.KindContainerInTransit:
		name, err := d.warehouseName(ctx, n)
		if err != nil {
			return err
		}
		return d.requests.SetContainerInTransit(ctx, id, name)
	case notification.KindContainerInWarehouse:
		name, err := d.warehouseName(ctx, n)
		if err != nil {
			return err
		}
		return d.requests.SetContainerInWarehouse(ctx, id, name)
	default:
		return fmt.Errorf("unsupported notification kind %s", n.Kind())
	}
}

func (d Dispatcher) warehouseName(ctx context.Context, n *notification.Notification) (string, error) {
	id := n.Payload().WarehouseID
	if id == nil {
		return "", fmt.Errorf("%s notification without warehouse", n.Kind())
	}
	w, err := d.resources.GetWarehouse(ctx, *id)
	if err != nil {
		return "", fmt.Errorf("resolve warehouse %s: %w", id, err)
	}
	return w.Name(), nil
}
