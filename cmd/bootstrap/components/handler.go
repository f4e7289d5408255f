package components

import (
	"github.com/djsutherland/chips-with-friends/internal/handler"
	"github.com/djsutherland/chips-with-friends/internal/handler/api"
	"github.com/djsutherland/chips-with-friends/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCardHandler,
		api.NewUseHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
