// Package api serves the storefront JSON API over HTTP.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"pluma/config"
	"pluma/internal/delivery"
	apimiddleware "pluma/internal/delivery/api/middleware"
	"pluma/internal/delivery/api/router"
	"pluma/internal/delivery/api/validator"
	deliverycontext "pluma/internal/delivery/context"
	"pluma/internal/delivery/middleware"
	"pluma/internal/domain/lifecycle"
	"pluma/internal/errors"
	"pluma/internal/validation"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const (
	avatarUploadPath = "/api/v1/profile/avatar"

	// multipartOverhead covers boundaries and part headers around the avatar file.
	multipartOverhead    = 64 << 10
	defaultAvatarBytes   = 1 << 20
	defaultBodySizeLimit = "2MB"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Validator    *validation.Validator
	RouterParams router.RouterParams
}

// NewServer builds the API delivery and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	cfg := params.Cfg

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	// Zero keeps the session event stream open; handlers extend their own deadlines.
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: recover, then request ID so the logger sees it.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(corsConfig(cfg)))
	e.Use(bodyLimits(cfg)...)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New(params.Validator)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

// corsConfig lets the configured storefront origins send the access token cookie.
func corsConfig(cfg *config.Config) echomiddleware.CORSConfig {
	corsCfg := echomiddleware.DefaultCORSConfig
	corsCfg.ExposeHeaders = []string{deliverycontext.HeaderXRequestID}
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
		corsCfg.AllowCredentials = true
	}

	return corsCfg
}

// bodyLimits applies the JSON limit everywhere except the avatar upload, which is sized from the avatar limit.
func bodyLimits(cfg *config.Config) []echo.MiddlewareFunc {
	jsonLimit := cfg.HTTP.MaxRequestBodySize
	if jsonLimit == "" {
		jsonLimit = defaultBodySizeLimit
	}

	avatarBytes := int64(defaultAvatarBytes)
	if cfg.Storage != nil && cfg.Storage.MaxAvatarBytes > 0 {
		avatarBytes = cfg.Storage.MaxAvatarBytes
	}

	isAvatarUpload := func(c echo.Context) bool { return c.Path() == avatarUploadPath }

	return []echo.MiddlewareFunc{
		echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
			Skipper: isAvatarUpload,
			Limit:   jsonLimit,
		}),
		echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
			Skipper: func(c echo.Context) bool { return !isAvatarUpload(c) },
			Limit:   strconv.FormatInt(avatarBytes+multipartOverhead, 10) + "B",
		}),
	}
}

func (s *apiServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
