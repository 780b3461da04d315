// Package session fans session events out to a reader's open streams.
package session

import (
	"log/slog"
	"sync"

	"pluma/config"
	"pluma/internal/domain/entity"
	"pluma/internal/domain/service"

	"github.com/google/uuid"
)

const defaultSubscriberBuffer = 8

type subscription struct {
	broker *Broker
	userID uuid.UUID
	events chan entity.SessionEvent
	once   sync.Once
}

func (s *subscription) Events() <-chan entity.SessionEvent {
	return s.events
}

func (s *subscription) Close() {
	s.once.Do(func() {
		s.broker.remove(s)
	})
}

// Broker is an in-process SessionBroker.
type Broker struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]map[*subscription]struct{}
	buffer int
	logger *slog.Logger
}

// NewBroker creates a broker sized from the session config.
func NewBroker(cfg *config.Config, logger *slog.Logger) *Broker {
	buffer := defaultSubscriberBuffer
	if cfg.Session != nil && cfg.Session.SubscriberBuffer > 0 {
		buffer = cfg.Session.SubscriberBuffer
	}

	return &Broker{
		subs:   make(map[uuid.UUID]map[*subscription]struct{}),
		buffer: buffer,
		logger: logger,
	}
}

// NewSessionBroker exposes the broker through the domain interface.
func NewSessionBroker(broker *Broker) service.SessionBroker {
	return broker
}

// Subscribe registers a new stream for userID.
func (b *Broker) Subscribe(userID uuid.UUID) service.Subscription {
	sub := &subscription{
		broker: b,
		userID: userID,
		events: make(chan entity.SessionEvent, b.buffer),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[userID] == nil {
		b.subs[userID] = make(map[*subscription]struct{})
	}
	b.subs[userID][sub] = struct{}{}

	return sub
}

// Publish delivers event to every subscription of its user. Full buffers drop the event.
func (b *Broker) Publish(event entity.SessionEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs[event.UserID] {
		select {
		case sub.events <- event:
		default:
			b.logger.Warn("session event dropped, subscriber is slow",
				slog.String("user_id", event.UserID.String()),
				slog.String("event_type", string(event.Type)),
			)
		}
	}
}

// Subscribers returns the number of open streams for userID.
func (b *Broker) Subscribers(userID uuid.UUID) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs[userID])
}

// CloseAll ends every open stream, used on shutdown.
func (b *Broker) CloseAll() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for userID, subs := range b.subs {
		for sub := range subs {
			sub.once.Do(func() { close(sub.events) })
		}
		delete(b.subs, userID)
	}
}

func (b *Broker) remove(sub *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[sub.userID]
	if _, ok := subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	close(sub.events)
	if len(subs) == 0 {
		delete(b.subs, sub.userID)
	}
}
