package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"tee-sheet/internal/pkg/clock"
	"tee-sheet/internal/pkg/config"
	"tee-sheet/internal/scheduler"
	"tee-sheet/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(
		StartScheduler,
	),
)

func NewScheduler(cmds commands.TeeTimeCommands, clk clock.Clock, cfg config.Config, logger *slog.Logger) *scheduler.Scheduler {
	offset := time.Duration(cfg.Scheduler.ResetOffsetMin) * time.Minute
	return scheduler.New(cmds, clk, offset, logger)
}

func StartScheduler(lc fx.Lifecycle, sched *scheduler.Scheduler, cfg config.Config, logger *slog.Logger) {
	if !cfg.Scheduler.Enabled {
		logger.Info("bookings sweep scheduler disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sched.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
