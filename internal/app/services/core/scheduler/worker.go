package scheduler

import (
	"context"
	"time"

	"telecare-scheduler/internal/app/config"
	"telecare-scheduler/internal/app/contracts"
	"telecare-scheduler/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker drives ticks on a cron cadence for deployments without an
// external trigger. A redis leader lock keeps concurrent replicas from
// running overlapping ticks.
type Worker struct {
	log       *zap.Logger
	cfg       *config.InternalConfig
	locker    contracts.LockerService
	scheduler contracts.SchedulerUsecase
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, schedulerUsecase contracts.SchedulerUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, scheduler: schedulerUsecase}
}

// Start begins the periodic loop.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Scheduler.CronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("scheduler.worker: failed to schedule with provided cron spec; falling back to @every 1m", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@every 1m", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop gracefully stops the cron loop and waits for an in-flight tick.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop() // wait for running jobs to finish
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := time.Duration(w.cfg.Scheduler.LeaderLockTTLInSeconds) * time.Second
	acquired, token, err := w.locker.TryLock(ctx, constvars.SchedulerLeaderLockKey, ttl)
	if err != nil {
		w.log.Warn("scheduler.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("scheduler.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, constvars.SchedulerLeaderLockKey, token)

	result := w.scheduler.RunTick(ctx)

	w.log.Info("scheduler.worker: tick finished",
		zap.Bool("success", result.Success()),
		zap.Int64(constvars.LoggingDurationKey, result.ExecutionTimeMS),
		zap.Int("meet_link_succeeded", result.MeetLink.Succeeded),
		zap.Int("meet_link_failed", result.MeetLink.Failed),
		zap.Int("reminder_succeeded", result.Reminder.Succeeded),
		zap.Int("reminder_failed", result.Reminder.Failed),
	)
}
