package scheduler

import (
	"context"
	"log/slog"
	"time"

	"hotel-reservation/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// Job is one scheduled unit of work; ctx is cancelled on timeout or shutdown.
type Job func(ctx context.Context) error

// Scheduler runs jobs on cron expressions evaluated in a fixed location.
// A firing that finds the previous run of the same job still active is skipped.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

func New(loc *time.Location, timeout time.Duration) *Scheduler {
	logger := slogAdapter{l: slog.Default().With("component", "scheduler")}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (s *Scheduler) Register(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx := s.ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		start := time.Now()
		if err := job(ctx); err != nil {
			slog.Error("scheduled job failed", "job", name, "error", err.Error(), "duration", time.Since(start))
			return
		}
		slog.Info("scheduled job completed", "job", name, "duration", time.Since(start))
	})
	if err != nil {
		return errs.Wrapf(err, "invalid schedule %q for job %s", spec, name)
	}
	slog.Info("job scheduled", "job", name, "spec", spec)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs and waits for them until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type slogAdapter struct {
	l *slog.Logger
}

func (a slogAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.l.Debug(msg, keysAndValues...)
}

func (a slogAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	a.l.Error(msg, append(keysAndValues, "error", err)...)
}
