package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"pluma/config"
	"pluma/internal/delivery/api/middleware"
	"pluma/internal/domain/entity"
	"pluma/internal/domain/service"
	mockUsecase "pluma/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubSubscription struct {
	events chan entity.SessionEvent
	closed atomic.Int32
}

func (s *stubSubscription) Events() <-chan entity.SessionEvent { return s.events }

func (s *stubSubscription) Close() { s.closed.Add(1) }

func newTestAuthHandler(authUC *mockUsecase.MockAuthUsecase) *AuthHandler {
	cfg := &config.Config{Session: &config.SessionConfig{HeartbeatInterval: time.Hour}}

	return NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestAuthHandler_SessionEventsStreamsUntilBrokerCloses(t *testing.T) {
	userID := uuid.New()
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().CurrentSession(mock.Anything, "token").
		Return(entity.Session{UserID: userID, Roles: entity.Roles{entity.RoleReader}})

	sub := &stubSubscription{events: make(chan entity.SessionEvent, 1)}
	sub.events <- entity.SessionEvent{Type: entity.SessionSignedOut, UserID: userID}
	close(sub.events)
	authUC.EXPECT().SubscribeSessionEvents(userID).Return(sub)

	h := newTestAuthHandler(authUC)
	auth := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: authUC})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/session/events", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, auth.Authenticate(h.SessionEvents)(c))

	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.Contains(t, body, "event: connected\n")
	assert.Contains(t, body, "event: signed_out\ndata: {\"type\":\"signed_out\"")
	assert.Less(t, strings.Index(body, "connected"), strings.Index(body, "signed_out"))
	assert.Equal(t, int32(1), sub.closed.Load())
}

func TestAuthHandler_SessionEventsClosesOnDisconnect(t *testing.T) {
	userID := uuid.New()
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().CurrentSession(mock.Anything, "token").Return(entity.Session{UserID: userID})

	sub := &stubSubscription{events: make(chan entity.SessionEvent)}
	subscribed := make(chan struct{})
	authUC.EXPECT().SubscribeSessionEvents(userID).RunAndReturn(func(uuid.UUID) service.Subscription {
		close(subscribed)

		return sub
	})

	h := newTestAuthHandler(authUC)
	auth := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: authUC})

	ctx, cancel := context.WithCancel(context.Background())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/session/events", nil).WithContext(ctx)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	c := e.NewContext(req, httptest.NewRecorder())

	done := make(chan error, 1)
	go func() { done <- auth.Authenticate(h.SessionEvents)(c) }()

	<-subscribed
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("stream did not stop after the client went away")
	}
	assert.Equal(t, int32(1), sub.closed.Load())
}

func TestAuthHandler_SessionEventsRejectsAnonymous(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().CurrentSession(mock.Anything, "").Return(entity.Session{})

	h := newTestAuthHandler(authUC)
	auth := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: authUC})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/session/events", nil), rec)

	require.NoError(t, auth.Authenticate(h.SessionEvents)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	authUC.AssertNotCalled(t, "SubscribeSessionEvents", mock.Anything)
}
