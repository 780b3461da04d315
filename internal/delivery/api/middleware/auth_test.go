package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pluma/internal/domain/entity"
	"pluma/internal/infra/ratelimit"
	mockUsecase "pluma/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestBearerToken_PrefersHeaderOverCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer  from-header ")
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "from-cookie"})
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "from-header", bearerToken(c))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "from-cookie"})
	assert.Equal(t, "from-cookie", bearerToken(e.NewContext(req, httptest.NewRecorder())))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	assert.Empty(t, bearerToken(e.NewContext(req, httptest.NewRecorder())))
}

func TestAuthMiddleware_IdentifyLetsAnonymousThrough(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().CurrentSession(mock.Anything, "").Return(entity.Session{}).Once()
	m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, m.Identify(m.Identify(okHandler))(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	_, ok := GetUserID(c)
	assert.False(t, ok)
}

func TestAuthMiddleware_AuthenticateResolvesSession(t *testing.T) {
	userID := uuid.New()
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().CurrentSession(mock.Anything, "token").Return(entity.Session{UserID: userID, Roles: entity.Roles{entity.RoleReader}})
	m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	c := e.NewContext(req, httptest.NewRecorder())

	var seen uuid.UUID
	err := m.Authenticate(func(c echo.Context) error {
		seen, _ = GetUserID(c)

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, userID, seen)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name     string
		session  entity.Session
		wantCode int
	}{
		{name: "anonymous", session: entity.Session{}, wantCode: http.StatusUnauthorized},
		{name: "reader", session: entity.Session{UserID: uuid.New(), Roles: entity.Roles{entity.RoleReader}}, wantCode: http.StatusForbidden},
		{name: "admin", session: entity.Session{UserID: uuid.New(), Roles: entity.Roles{entity.RoleReader, entity.RoleAdmin}}, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)
			authUC.EXPECT().CurrentSession(mock.Anything, mock.Anything).Return(tt.session)
			m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/products", nil), rec)

			require.NoError(t, m.Identify(m.RequireRole(entity.RoleAdmin)(okHandler))(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRateLimitMiddleware_KeysByClientAndPath(t *testing.T) {
	m := NewRateLimitMiddleware(ratelimit.New(rate.Limit(0.001), 1), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	e.POST("/auth/sign-in", okHandler, m.Limit)
	e.POST("/auth/password/reset-request", okHandler, m.Limit)

	send := func(path, ip string) int {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = ip + ":5000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("/auth/sign-in", "203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("/auth/sign-in", "203.0.113.1"))
	assert.Equal(t, http.StatusOK, send("/auth/sign-in", "203.0.113.2"))
	assert.Equal(t, http.StatusOK, send("/auth/password/reset-request", "203.0.113.1"))
}
