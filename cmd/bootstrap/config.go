package bootstrap

import (
	"log/slog"

	"shift-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

func logConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"store_driver", cfg.Store.Driver,
		"booking_timezone", cfg.Booking.TimeZone,
		"seed_file", cfg.Seed.File)
}
