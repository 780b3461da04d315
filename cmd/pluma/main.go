package main

import (
	"context"
	"log/slog"
	"os"

	"pluma/config"
	"pluma/internal/delivery"
	"pluma/internal/delivery/api"
	"pluma/internal/delivery/api/middleware"
	"pluma/internal/delivery/api/router/handler"
	"pluma/internal/delivery/worker"
	"pluma/internal/infra/auth"
	logs "pluma/internal/infra/log"
	"pluma/internal/infra/persistence/postgres"
	"pluma/internal/infra/pubsub"
	"pluma/internal/infra/qrcode"
	"pluma/internal/infra/ratelimit"
	"pluma/internal/infra/session"
	"pluma/internal/infra/storage"
	"pluma/internal/usecase/impl"
	"pluma/internal/validation"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			closeSessionStreams,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		validation.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewFavoriteRepository,
			postgres.NewOrderRepository,
			postgres.NewProfileRepository,
			postgres.NewCredentialRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			storage.NewObjectStorage,
			session.NewBroker,
			session.NewSessionBroker,
			ratelimit.NewKeyedLimiter,
			newSweeper,
		),
	)
}

// newSweeper hands the rate limiter to the maintenance worker
func newSweeper(limiter *ratelimit.KeyedLimiter) worker.Sweeper {
	return limiter
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEntitlementService,
			impl.NewCatalogService,
			impl.NewFavoriteService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewAuthService,
			impl.NewProfileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewFavoriteHandler,
			handler.NewCheckoutHandler,
			handler.NewEntitlementHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// closeSessionStreams ends every open event stream before the HTTP server drains.
func closeSessionStreams(lc fx.Lifecycle, broker *session.Broker) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			broker.CloseAll()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
