package bootstrap

import (
	"hub-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.NotifyModule,
	components.UseCaseModule,
	components.WorkerModule,
	components.HandlerModule,
)
