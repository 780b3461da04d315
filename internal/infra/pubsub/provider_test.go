package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pluma/config"
	"pluma/internal/domain/constants"
	"pluma/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewEventPublisher_NotConfiguredIsNoop(t *testing.T) {
	publisher, err := NewEventPublisher(newTestParams(t, nil))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.Publish(context.Background(), &service.Event{Type: constants.EventTypeOrderPaid}))
}

func TestNewEventPublisher_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{"local without endpoint", &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{"google without project", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "events"}},
		{"google without topic", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "pluma"}},
		{"unknown provider", &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(newTestParams(t, tt.cfg))
			assert.Error(t, err)
		})
	}
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	userID := uuid.New()
	event := &service.Event{
		ID:         uuid.NewString(),
		Type:       constants.EventTypeOrderPaid,
		RequestID:  "req-1",
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
		Payload:    service.OrderPaidPayload{OrderID: 10, ProductIDs: []int64{7, 9}},
	}

	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.ID, received.Message.MessageID)
	assert.Equal(t, constants.EventTypeOrderPaid, received.Message.Attributes["event_type"])
	assert.Equal(t, userID.String(), received.Message.Attributes["user_id"])
	assert.Equal(t, userID.String(), received.Message.OrderingKey)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"produtos_ids":[7,9]`)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.Publish(context.Background(), &service.Event{ID: "1", Type: constants.EventTypeOrderPaid})
	assert.ErrorContains(t, err, "500")
}
