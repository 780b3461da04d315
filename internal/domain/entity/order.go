package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// OrderStatusPaid is the only status written today: payment is simulated and succeeds on submit.
const OrderStatusPaid OrderStatus = "paid"

// PaymentMethod is how the customer chose to pay.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodPix  PaymentMethod = "pix"
)

// IsValid checks if the PaymentMethod is a known value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodPix:
		return true
	default:
		return false
	}
}

// Order is an append-only ledger record of a completed purchase.
type Order struct {
	ID            int64
	UserID        uuid.UUID
	Total         decimal.Decimal
	Status        OrderStatus
	ProductIDs    []int64
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
}

// CardDetails is what the card form collects. Nothing here reaches a gateway.
type CardDetails struct {
	HolderName string `json:"holder_name" validate:"required,min=3,max=120"`
	Number     string `json:"number" validate:"required,credit_card"`
	Expiry     string `json:"expiry" validate:"required,card_expiry"` // MM/YY
	CVV        string `json:"cvv" validate:"required,numeric,min=3,max=4"`
}

// PaymentInput is the payment step of checkout.
type PaymentInput struct {
	Method PaymentMethod
	Card   *CardDetails
}
