package components

import (
	"context"
	"log/slog"

	"hub-booking/internal/infra/cache"
	"hub-booking/internal/infra/uow"
	"hub-booking/internal/pkg/config"
	"hub-booking/internal/usecase/commands"
	"hub-booking/internal/usecase/queries"
	"hub-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
		NewAmenityReader,
		NewBookingReader,
		NewEventReader,
		fx.Annotate(
			NewActiveBookings,
			fx.As(new(queries.BookingSnapshotReader)),
			fx.As(new(commands.SnapshotInvalidator)),
		),
	),
)

// ActiveBookings is the snapshot lookup shared by conflict checks and
// availability grids, plus the invalidation hook writers call.
type ActiveBookings interface {
	queries.BookingSnapshotReader
	commands.SnapshotInvalidator
}

func NewAmenityReader(u shared.UnitOfWork) queries.AmenityReader {
	return u.Reads().Amenities()
}

func NewBookingReader(u shared.UnitOfWork) queries.BookingReader {
	return u.Reads().Bookings()
}

func NewEventReader(u shared.UnitOfWork) queries.EventReader {
	return u.Reads().Events()
}

// NewActiveBookings puts the Redis snapshot cache in front of Postgres when
// Redis is enabled and reachable; otherwise reads go straight through.
func NewActiveBookings(lc fx.Lifecycle, cfg config.Config, u shared.UnitOfWork, logger *slog.Logger) ActiveBookings {
	source := u.Reads().Bookings()
	if !cfg.Redis.Enabled {
		logger.Info("snapshot cache disabled")
		return cache.NewPassThrough(source)
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		logger.Warn("snapshot cache unavailable, reading through", "error", err)
		return cache.NewPassThrough(source)
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewSnapshotCache(client, source, cfg.Scheduling.SnapshotCacheTTL, logger)
}
