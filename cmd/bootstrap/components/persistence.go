package components

import (
	"context"
	"log/slog"

	"shift-booking/internal/infra/memstore"
	"shift-booking/internal/infra/pgquery"
	"shift-booking/internal/infra/repository"
	"shift-booking/internal/infra/seed"
	"shift-booking/internal/pkg/config"
	"shift-booking/internal/usecase/commands"
	"shift-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// ShiftStore is what every store driver provides.
type ShiftStore interface {
	commands.ShiftStore
	queries.ShiftReadStore
	seed.Importer
}

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewShiftStore,
		func(s ShiftStore) commands.ShiftStore { return s },
		func(s ShiftStore) queries.ShiftReadStore { return s },
	),
	fx.Invoke(RegisterSeed),
)

func NewShiftStore(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) ShiftStore {
	if cfg.Store.Driver == config.StoreDriverMemory || pool == nil {
		logger.Info("using in-memory shift store")
		return memstore.NewShiftStore(logger)
	}
	return repository.NewShiftRepository(pgquery.New(), pool, logger)
}

// RegisterSeed imports SEED_FILE into the store on start.
func RegisterSeed(lc fx.Lifecycle, cfg config.Config, store ShiftStore, logger *slog.Logger) {
	if cfg.Seed.File == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			shifts, err := seed.LoadFile(cfg.Seed.File)
			if err != nil {
				return err
			}
			_, err = seed.Import(ctx, store, shifts, logger)
			return err
		},
	})
}

var (
	_ ShiftStore = (*memstore.ShiftStore)(nil)
	_ ShiftStore = (*repository.ShiftRepository)(nil)
)
