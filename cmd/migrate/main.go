package main

import (
	"context"
	"log/slog"
	"os"

	"pluma/config"
	logs "pluma/internal/infra/log"
	"pluma/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
	}
}

func migrate(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Migrating schema")
			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
			logger.Info("Schema is up to date")

			return nil
		},
	})
}
