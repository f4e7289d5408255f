package bootstrap

import (
	"github.com/djsutherland/chips-with-friends/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
