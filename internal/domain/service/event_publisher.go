package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event is an envelope published to the message bus.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	UserID     uuid.UUID `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// OrderPaidPayload is published after a checkout commits.
type OrderPaidPayload struct {
	OrderID       int64           `json:"order_id"`
	Total         decimal.Decimal `json:"total"`
	ProductIDs    []int64         `json:"produtos_ids"`
	PaymentMethod string          `json:"payment_method"`
}

// PasswordResetPayload asks a mailer to deliver a reset link.
type PasswordResetPayload struct {
	Email     string    `json:"email"`
	ResetLink string    `json:"reset_link"`
	ExpiresAt time.Time `json:"expires_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends event for asynchronous processing
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
