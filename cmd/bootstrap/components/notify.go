package components

import (
	"context"
	"log/slog"

	"hub-booking/internal/infra/messaging/rabbitmq"
	"hub-booking/internal/infra/metrics"
	"hub-booking/internal/notify"
	"hub-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewBus,
		func(b *notify.Bus) notify.Publisher { return b },
	),
)

func NewBus(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*notify.Bus, error) {
	bus := notify.NewBus(logger, notify.NewLogSink(logger))
	bus.Observe(func(kind notify.Kind, sink string, err error) {
		metrics.RecordNotification(string(kind), sink, err)
	})

	if !cfg.RabbitMQ.Enabled {
		return bus, nil
	}
	sink, err := rabbitmq.Connect(cfg.RabbitMQ, logger)
	if err != nil {
		return nil, err
	}
	unsubscribe := bus.Subscribe(sink)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			unsubscribe()
			sink.Close()
			return nil
		},
	})
	return bus, nil
}
