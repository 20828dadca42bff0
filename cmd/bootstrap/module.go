package bootstrap

import (
	"sandwich-storefront/cmd/bootstrap/components"
	"sandwich-storefront/internal/pkg/clock"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		clock.NewRealClock,
	),
)

// InfraModule is everything that talks to the outside world.
var InfraModule = fx.Options(
	DBModule,
	RedisModule,
	MessagingModule,
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClockModule,
	MetricsModule,
	JWTModule,
	InfraModule,
	components.PersistenceModule,
	components.StoresModule,
	components.UseCaseModule,
	components.HandlerModule,
)
