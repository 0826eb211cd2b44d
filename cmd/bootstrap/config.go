package bootstrap

import (
	"time"

	"hub-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewDefaultLocation,
	),
)

// NewDefaultLocation is the zone applied to amenities created without opening hours.
func NewDefaultLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Scheduling.Location()
}
