package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	DefaultReplaySchedule    = "0 */5 * * * *"
	DefaultReplayGrace       = 2 * time.Minute
	DefaultReplayMaxAttempts = 5
	DefaultReplayBatchSize   = 100
	replayRunTimeout         = time.Minute
)

// NotificationReplayer re-delivers pending notifications.
type NotificationReplayer interface {
	Replay(ctx context.Context, grace time.Duration, maxAttempts int, batch int) (int, error)
}

// ReplayConfig controls which notifications a replay run picks up.
type ReplayConfig struct {
	// Schedule is a cron expression with a leading seconds field.
	Schedule string
	// Grace skips notifications younger than this, leaving them to the
	// delivery that follows the commit.
	Grace       time.Duration
	MaxAttempts int
	BatchSize   int
}

func (c ReplayConfig) withDefaults() ReplayConfig {
	if c.Schedule == "" {
		c.Schedule = DefaultReplaySchedule
	}
	if c.Grace <= 0 {
		c.Grace = DefaultReplayGrace
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultReplayMaxAttempts
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultReplayBatchSize
	}
	return c
}

// NotificationReplayJob periodically re-delivers notifications whose delivery
// after commit failed.
type NotificationReplayJob struct {
	replayer NotificationReplayer
	config   ReplayConfig
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewNotificationReplayJob(replayer NotificationReplayer, config ReplayConfig, logger *slog.Logger) *NotificationReplayJob {
	return &NotificationReplayJob{
		replayer: replayer,
		config:   config.withDefaults(),
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "notification_replay_job"),
	}
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *NotificationReplayJob) Start() error {
	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), replayRunTimeout)
		defer cancel()
		j.Run(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification replay job started", "schedule", j.config.Schedule)
	return nil
}

// Run performs a single replay pass.
func (j *NotificationReplayJob) Run(ctx context.Context) {
	delivered, err := j.replayer.Replay(ctx, j.config.Grace, j.config.MaxAttempts, j.config.BatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification replay failed", "error", err)
		return
	}
	if delivered > 0 {
		j.logger.InfoContext(ctx, "Notifications replayed", "delivered", delivered)
	}
}

// Stop unschedules the job and waits for a running pass to return.
func (j *NotificationReplayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification replay job stopped")
}
