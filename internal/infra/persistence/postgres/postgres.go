package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"pluma/config"
	"pluma/internal/domain/lifecycle"
	"pluma/internal/errors"
	"pluma/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the storefront database. Start pings it and reports missing tables; stop closes the pool.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Let the postgres dialector map SQLSTATE codes to gorm.ErrDuplicatedKey and friends.
	db.Config.TranslateError = true

	// Multi-step writes (sign-up, checkout, favorite toggle) use TransactionManager explicitly.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if missing := missingTables(db.WithContext(ctx)); len(missing) > 0 {
				params.Logger.Warn("Storefront schema is incomplete, run the migrate command",
					slog.Any("missing_tables", missing))
			}

			go watchPool(watchCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func missingTables(db *gorm.DB) []string {
	var missing []string
	for _, m := range model.All() {
		if db.Migrator().HasTable(m) {
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err == nil {
			missing = append(missing, stmt.Schema.Table)
		}
	}

	return missing
}

// watchPool logs when requests had to wait for a connection since the previous tick.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(poolWatchInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cur := sqlDB.Stats()
		waits := cur.WaitCount - prev.WaitCount
		waited := cur.WaitDuration - prev.WaitDuration
		prev = cur

		if waits <= 0 {
			continue
		}

		level := slog.LevelDebug
		if waited >= poolWaitWarnAfter {
			level = slog.LevelWarn
		}

		logger.LogAttrs(ctx, level, "Postgres pool wait",
			slog.Int64("waits", waits),
			slog.Duration("waited", waited),
			slog.Duration("avg_wait", waited/time.Duration(waits)),
			slog.Int("max_open", cur.MaxOpenConnections),
			slog.Int("open", cur.OpenConnections),
			slog.Int("in_use", cur.InUse),
			slog.Int("idle", cur.Idle),
		)
	}
}
