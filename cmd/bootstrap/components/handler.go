package components

import (
	"shift-booking/internal/handler"
	"shift-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewShiftHandler,
	),
	fx.Invoke(handler.NewRouter),
)
