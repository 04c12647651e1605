package bootstrap

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/infra/scheduler"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

const archivalJobName = "reservation-archival"

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(RegisterArchival),
)

func NewScheduler(cfg config.Config) (*scheduler.Scheduler, error) {
	loc, err := cfg.Scheduler.Location()
	if err != nil {
		return nil, errs.Wrapf(err, "invalid ARCHIVE_TIMEZONE %q", cfg.Scheduler.TimeZone)
	}
	return scheduler.New(loc, cfg.Scheduler.RunTimeout), nil
}

func RegisterArchival(lc fx.Lifecycle, s *scheduler.Scheduler, cfg config.Config, archival commands.ArchivalCommands) error {
	if !cfg.Scheduler.Enabled {
		slog.Info("archival schedule disabled")
		return nil
	}

	err := s.Register(archivalJobName, cfg.Scheduler.Cron, func(ctx context.Context) error {
		_, err := archival.Run(ctx)
		return err
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return nil
}
