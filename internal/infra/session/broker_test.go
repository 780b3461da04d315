package session

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"pluma/config"
	"pluma/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBroker(buffer int) *Broker {
	cfg := &config.Config{Session: &config.SessionConfig{SubscriberBuffer: buffer}}

	return NewBroker(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBroker_FansOutToEverySubscriptionOfUser(t *testing.T) {
	broker := newTestBroker(4)
	userID := uuid.New()
	other := uuid.New()

	tabA := broker.Subscribe(userID)
	tabB := broker.Subscribe(userID)
	stranger := broker.Subscribe(other)
	defer tabA.Close()
	defer tabB.Close()
	defer stranger.Close()

	event := entity.SessionEvent{Type: entity.SessionSignedOut, UserID: userID, OccurredAt: time.Now()}
	broker.Publish(event)

	assert.Equal(t, event, <-tabA.Events())
	assert.Equal(t, event, <-tabB.Events())
	assert.Empty(t, stranger.Events())
}

func TestBroker_PublishNeverBlocksOnFullBuffer(t *testing.T) {
	broker := newTestBroker(1)
	userID := uuid.New()
	sub := broker.Subscribe(userID)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for range 5 {
			broker.Publish(entity.SessionEvent{Type: entity.SessionTokenRefreshed, UserID: userID})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
	assert.Len(t, sub.Events(), 1)
}

func TestBroker_CloseRemovesSubscription(t *testing.T) {
	broker := newTestBroker(1)
	userID := uuid.New()
	sub := broker.Subscribe(userID)
	require.Equal(t, 1, broker.Subscribers(userID))

	sub.Close()
	sub.Close()

	assert.Equal(t, 0, broker.Subscribers(userID))
	_, open := <-sub.Events()
	assert.False(t, open)
}

func TestBroker_CloseAll(t *testing.T) {
	broker := newTestBroker(1)
	userID := uuid.New()
	sub := broker.Subscribe(userID)

	broker.CloseAll()
	sub.Close()

	_, open := <-sub.Events()
	assert.False(t, open)
	assert.Equal(t, 0, broker.Subscribers(userID))
}
