package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"pluma/config"
	"pluma/internal/delivery/api/middleware"
	"pluma/internal/delivery/api/response"
	deliverycontext "pluma/internal/delivery/context"
	"pluma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultHeartbeatInterval = 25 * time.Second
	sseWriteDeadline         = 60 * time.Second
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves sign-up, sign-in and the session endpoints.
type AuthHandler struct {
	authUC            usecase.AuthUsecase
	accessTokenTTL    time.Duration
	heartbeatInterval time.Duration
	logger            *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	h := &AuthHandler{
		authUC:            params.AuthUC,
		accessTokenTTL:    15 * time.Minute,
		heartbeatInterval: defaultHeartbeatInterval,
		logger:            params.Logger,
	}

	if params.Config != nil {
		if params.Config.Auth != nil && params.Config.Auth.AccessTokenTTL > 0 {
			h.accessTokenTTL = params.Config.Auth.AccessTokenTTL
		}
		if params.Config.Session != nil && params.Config.Session.HeartbeatInterval > 0 {
			h.heartbeatInterval = params.Config.Session.HeartbeatInterval
		}
	}

	return h
}

// SignUpRequest is the body of POST /auth/sign-up.
type SignUpRequest struct {
	FullName        string `json:"full_name" validate:"max=120"`
	Username        string `json:"username" validate:"max=30"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// SignInRequest is the body of POST /auth/sign-in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries the refresh token to rotate or revoke.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ResetRequestRequest is the body of POST /auth/password/reset-request.
type ResetRequestRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the body of POST /auth/password/reset.
type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// UpdatePasswordRequest is the body of PUT /auth/password.
type UpdatePasswordRequest struct {
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// TokenResponse is returned by sign-in and refresh.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	Session      SessionView  `json:"session"`
	Profile      *ProfileView `json:"profile,omitempty"`
}

// SignUp creates an account. The reader signs in afterwards.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.authUC.SignUp(c.Request().Context(), usecase.SignUpInput{
		FullName:        req.FullName,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProfileView(profile))
}

// SignIn checks the credentials and returns a token pair. The access token
// is also set as a cookie for the event stream.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.setAccessCookie(c, output.AccessToken, h.accessTokenTTL)

	return response.Success(c, http.StatusOK, toTokenResponse(output))
}

// Refresh rotates the refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.RefreshSession(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.setAccessCookie(c, output.AccessToken, h.accessTokenTTL)

	return response.Success(c, http.StatusOK, toTokenResponse(output))
}

// SignOut revokes the refresh token and clears the cookie. Anonymous callers get 204 too.
func (h *AuthHandler) SignOut(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-out input")
	}

	h.setAccessCookie(c, "", -time.Second)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}

	if err := h.authUC.SignOut(c.Request().Context(), userID, req.RefreshToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Session returns the identity attached to the request, anonymous included.
func (h *AuthHandler) Session(c echo.Context) error {
	return response.Success(c, http.StatusOK, toSessionView(middleware.GetSession(c)))
}

// RequestPasswordReset always answers 202 so the endpoint does not reveal accounts.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req ResetRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Accepted(c, map[string]string{"message": "Se o e-mail estiver cadastrado, enviaremos um link de redefinição."})
}

// ResetPassword sets a new password from a reset link.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.authUC.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:           req.Token,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdatePassword changes the password of the signed-in reader.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	var req UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.authUC.UpdatePassword(c.Request().Context(), userID, usecase.UpdatePasswordInput{
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SessionEvents streams the reader's session changes as server-sent events
// until the client goes away. The subscription is closed on every exit path.
func (h *AuthHandler) SessionEvents(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	ctx := c.Request().Context()
	if ctx.Err() != nil {
		return nil
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	if err := rc.Flush(); err != nil {
		logger.Error("Failed to flush event stream headers", slog.Any("error", err))

		return nil
	}

	sub := h.authUC.SubscribeSessionEvents(userID)
	defer sub.Close()

	if err := writeEvent(w, rc, "connected", map[string]string{"user_id": userID.String()}); err != nil {
		return nil
	}

	heartbeat := time.NewTicker(h.heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case event, open := <-sub.Events():
			if !open {
				logger.Info("Session stream closed by broker")

				return nil
			}
			if err := writeEvent(w, rc, string(event.Type), event); err != nil {
				logger.Info("Client disconnected during send")

				return nil
			}
		case <-heartbeat.C:
			if err := writeHeartbeat(w, rc); err != nil {
				logger.Info("Client disconnected during heartbeat")

				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func writeEvent(w http.ResponseWriter, rc *http.ResponseController, eventType string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, payload); err != nil {
		return err
	}

	return flushStream(rc)
}

// writeHeartbeat sends an SSE comment line that clients ignore.
func writeHeartbeat(w http.ResponseWriter, rc *http.ResponseController) error {
	if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
		return err
	}

	return flushStream(rc)
}

// flushStream pushes buffered bytes and moves the write deadline past the next heartbeat.
func flushStream(rc *http.ResponseController) error {
	if err := rc.Flush(); err != nil {
		return err
	}

	// Not every ResponseWriter supports deadlines.
	_ = rc.SetWriteDeadline(time.Now().Add(sseWriteDeadline))

	return nil
}

func (h *AuthHandler) setAccessCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	})
}

func toTokenResponse(output *usecase.SignInOutput) TokenResponse {
	resp := TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Session:      toSessionView(output.Session),
	}
	if output.Profile != nil {
		view := toProfileView(output.Profile)
		resp.Profile = &view
	}

	return resp
}
