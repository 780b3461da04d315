package usecase

import (
	"context"

	"pluma/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Checkout summary states.
const (
	CheckoutSummaryEmpty = "empty"
	CheckoutSummaryReady = "ready"
)

// CheckoutSummary is what the checkout page renders before payment.
type CheckoutSummary struct {
	State          string
	Lines          []entity.CartLine
	Subtotal       decimal.Decimal
	CanCheckout    bool
	PaymentMethods []entity.PaymentMethod
}

// CheckoutResult is returned after the order is committed.
type CheckoutResult struct {
	Order        *entity.Order
	Products     []*entity.Product
	Entitlements entity.Entitlements
	State        entity.CheckoutState
}

// PixCode is the placeholder PIX charge for the current cart.
type PixCode struct {
	Payload string
	PNG     []byte
	Amount  decimal.Decimal
}

// CheckoutUsecase turns a cart into an order.
type CheckoutUsecase interface {
	Summary(ctx context.Context, userID uuid.UUID) (*CheckoutSummary, error)
	// FinalizePurchase writes the order and clears the cart atomically.
	FinalizePurchase(ctx context.Context, userID uuid.UUID, payment entity.PaymentInput) (*CheckoutResult, error)
	PixQRCode(ctx context.Context, userID uuid.UUID) (*PixCode, error)
}
