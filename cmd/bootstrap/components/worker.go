package components

import (
	"context"
	"log/slog"

	"hub-booking/internal/pkg/config"
	"hub-booking/internal/usecase/commands"
	"hub-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(NewMaintenanceWorker),
	fx.Invoke(startWorker),
)

func NewMaintenanceWorker(cfg config.Config, m commands.MaintenanceCommands, logger *slog.Logger) *worker.Worker {
	return worker.NewWorker(logger, worker.MaintenanceJobs(cfg.Worker, m)...)
}

func startWorker(lc fx.Lifecycle, cfg config.Config, w *worker.Worker, logger *slog.Logger) {
	if !cfg.Worker.Enabled {
		logger.Info("maintenance worker disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// The start context expires after startup; jobs run until OnStop.
			w.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			w.Stop()
			return nil
		},
	})
}
