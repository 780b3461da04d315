package api

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pluma/config"
	"pluma/internal/delivery/api/middleware"
	"pluma/internal/delivery/api/router"
	"pluma/internal/delivery/api/router/handler"
	deliverycontext "pluma/internal/delivery/context"
	"pluma/internal/domain/entity"
	"pluma/internal/infra/ratelimit"
	mockUsecase "pluma/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/time/rate"
)

func newTestEcho(t *testing.T, cfg *config.Config) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().CurrentSession(mock.Anything, mock.Anything).Return(entity.Session{}).Maybe()

	return newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
			CatalogHandler:      handler.NewCatalogHandler(handler.CatalogHandlerParams{Logger: logger}),
			CartHandler:         handler.NewCartHandler(handler.CartHandlerParams{Logger: logger}),
			FavoriteHandler:     handler.NewFavoriteHandler(handler.FavoriteHandlerParams{Logger: logger}),
			CheckoutHandler:     handler.NewCheckoutHandler(handler.CheckoutHandlerParams{Logger: logger}),
			EntitlementHandler:  handler.NewEntitlementHandler(handler.EntitlementHandlerParams{Logger: logger}),
			ProfileHandler:      handler.NewProfileHandler(handler.ProfileHandlerParams{Logger: logger}),
			AuthMiddleware:      middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: authUC}),
			RateLimitMiddleware: middleware.NewRateLimitMiddleware(ratelimit.New(rate.Limit(1), 10), logger),
		},
	})
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.CORSAllowOrigins = []string{"https://loja.pluma.com.br"}
	cfg.Storage = &config.StorageConfig{MaxAvatarBytes: 4 << 10}

	return cfg
}

func TestServer_RequestID(t *testing.T) {
	e := newTestEcho(t, testConfig())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "checkout-42")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "checkout-42", rec.Header().Get(deliverycontext.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", 200))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	got := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, got)
	assert.NotEqual(t, strings.Repeat("x", 200), got)
}

func TestServer_JSONBodyLimit(t *testing.T) {
	e := newTestEcho(t, testConfig())

	body := `{"email":"` + strings.Repeat("a", 2048) + `@pluma.com.br","password":"segredo"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_AvatarUploadUsesAvatarLimit(t *testing.T) {
	e := newTestEcho(t, testConfig())

	// Larger than the JSON limit, smaller than the avatar limit: the request reaches auth.
	req := httptest.NewRequest(http.MethodPost, avatarUploadPath, bytes.NewReader(make([]byte, 3<<10)))
	req.Header.Set(echo.HeaderContentType, "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, avatarUploadPath, bytes.NewReader(make([]byte, 80<<10)))
	req.Header.Set(echo.HeaderContentType, "multipart/form-data; boundary=x")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_CORSAllowsStorefrontCredentials(t *testing.T) {
	e := newTestEcho(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "https://loja.pluma.com.br")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "https://loja.pluma.com.br", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlExposeHeaders), deliverycontext.HeaderXRequestID)
}
