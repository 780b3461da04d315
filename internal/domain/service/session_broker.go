package service

import (
	"pluma/internal/domain/entity"

	"github.com/google/uuid"
)

// Subscription is a live feed of one reader's session events.
// Close must be called exactly when the consumer goes away.
type Subscription interface {
	Events() <-chan entity.SessionEvent
	Close()
}

// SessionBroker fans session changes out to every open tab of a reader.
type SessionBroker interface {
	// Publish delivers event to the reader's subscriptions without blocking.
	Publish(event entity.SessionEvent)

	// Subscribe opens a subscription for userID.
	Subscribe(userID uuid.UUID) Subscription
}
