package bootstrap

import (
	"tee-sheet/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
