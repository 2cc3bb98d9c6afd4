package bootstrap

import (
	"context"
	"log/slog"

	"parkdesk/internal/infra/kvstore"
	"parkdesk/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewRecordStore,
	),
)

func NewRecordStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kvstore.RecordStore, error) {
	store, err := kvstore.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		return nil, err
	}

	logger.Info("record store opened", "path", cfg.Store.Path)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
