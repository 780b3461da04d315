// Package worker runs the periodic housekeeping jobs of the API process.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pluma/config"
	"pluma/internal/delivery"
	"pluma/internal/domain/lifecycle"
	"pluma/internal/usecase"

	"go.uber.org/fx"
)

// Sweeper drops idle in-memory state and reports how much was removed.
type Sweeper interface {
	Sweep() int
}

type maintenanceWorker struct {
	authUC   usecase.AuthUsecase
	sweeper  Sweeper
	interval time.Duration
	logger   *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// ServerParams holds dependencies for the maintenance worker
type ServerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	AuthUC  usecase.AuthUsecase
	Sweeper Sweeper
}

// NewServer creates the maintenance worker
func NewServer(params ServerParams) (delivery.Delivery, error) {
	interval := time.Hour
	if params.Cfg != nil && params.Cfg.Session != nil && params.Cfg.Session.PurgeInterval > 0 {
		interval = params.Cfg.Session.PurgeInterval
	}

	w := newMaintenanceWorker(params.AuthUC, params.Sweeper, interval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w, nil
}

func newMaintenanceWorker(authUC usecase.AuthUsecase, sweeper Sweeper, interval time.Duration, logger *slog.Logger) *maintenanceWorker {
	return &maintenanceWorker{
		authUC:   authUC,
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Serve runs one pass immediately and then one per interval until stopped.
func (w *maintenanceWorker) Serve(ctx context.Context) error {
	defer close(w.doneCh)

	w.logger.Info("Starting maintenance worker", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.runOnce(ctx)

		select {
		case <-ticker.C:
		case <-w.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (w *maintenanceWorker) runOnce(ctx context.Context) {
	jobCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := w.authUC.PurgeExpiredSessions(jobCtx); err != nil {
		w.logger.Error("Failed to purge expired sessions", slog.Any("error", err))
	}

	if removed := w.sweeper.Sweep(); removed > 0 {
		w.logger.Debug("Idle rate limit buckets dropped", slog.Int("removed", removed))
	}
}

// stop ends the loop and waits for the current pass to finish.
func (w *maintenanceWorker) stop(ctx context.Context) error {
	w.logger.Info("Shutting down maintenance worker")
	w.stopOnce.Do(func() { close(w.stopCh) })

	select {
	case <-w.doneCh:
	case <-ctx.Done():
	}

	return nil
}
