package components

import (
	"tee-sheet/internal/handler"
	"tee-sheet/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTeeTimeHandler,
	),
	fx.Invoke(handler.NewRouter),
)
