package components

import (
	"leadpipe/internal/handler"
	"leadpipe/internal/handler/api"
	"leadpipe/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewLeadHandler,
		api.NewNewsletterHandler,
		api.NewKPIHandler,
		api.NewExportHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
