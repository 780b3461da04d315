package middleware

import (
	"strings"

	"pluma/internal/delivery/api/response"
	deliverycontext "pluma/internal/delivery/context"
	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeySession = "session"

	// AccessTokenCookie carries the access token for browser clients that cannot set headers (EventSource).
	AccessTokenCookie = "pluma_access_token"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthMiddleware resolves the session of every request.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC}
}

// Identify attaches the session when a valid token is present and lets anonymous requests through.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.resolve(c)

		return next(c)
	}
}

// Authenticate rejects anonymous requests with AUTH_REQUIRED.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.resolve(c).IsAnonymous() {
			return response.AuthRequired(c)
		}

		return next(c)
	}
}

// RequireRole checks the session for role. It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := GetSession(c)
			if session.IsAnonymous() {
				return response.AuthRequired(c)
			}
			if !session.Roles.Contains(role) {
				return response.AppError(c, domainerrors.ErrForbidden.WithDetails("requires role "+role.String()))
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) resolve(c echo.Context) entity.Session {
	if session, ok := c.Get(contextKeySession).(entity.Session); ok {
		return session
	}

	session := m.authUC.CurrentSession(c.Request().Context(), bearerToken(c))
	c.Set(contextKeySession, session)

	if !session.IsAnonymous() {
		c.SetRequest(c.Request().WithContext(deliverycontext.WithUserID(c.Request().Context(), session.UserID)))
	}

	return session
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}

// GetSession returns the session resolved for the request; anonymous when none was resolved.
func GetSession(c echo.Context) entity.Session {
	session, _ := c.Get(contextKeySession).(entity.Session)

	return session
}

// GetUserID returns the signed-in user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	session := GetSession(c)

	return session.UserID, !session.IsAnonymous()
}
