package entity

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CheckoutState is a step of a single checkout attempt.
type CheckoutState string

const (
	CheckoutIdle                  CheckoutState = "idle"
	CheckoutAwaitingPaymentMethod CheckoutState = "awaiting_payment_method"
	CheckoutSubmitting            CheckoutState = "submitting"
	CheckoutFulfilled             CheckoutState = "fulfilled"
	CheckoutFailed                CheckoutState = "failed"
)

var (
	// ErrInvalidCheckoutTransition is returned when a step is taken out of order.
	ErrInvalidCheckoutTransition = errors.New("invalid checkout transition")
	// ErrEmptyCheckout is returned when an attempt is opened on an empty cart.
	ErrEmptyCheckout = errors.New("nothing to check out")
)

// CheckoutAttempt tracks one pass through
// idle -> awaiting_payment_method -> submitting -> fulfilled | failed.
type CheckoutAttempt struct {
	UserID        uuid.UUID
	State         CheckoutState
	Method        PaymentMethod
	FailureReason string
}

// NewCheckoutAttempt starts an attempt in the idle state.
func NewCheckoutAttempt(userID uuid.UUID) *CheckoutAttempt {
	return &CheckoutAttempt{UserID: userID, State: CheckoutIdle}
}

// Open moves to payment selection. An empty cart keeps the attempt idle.
func (a *CheckoutAttempt) Open(lineCount int) error {
	if a.State != CheckoutIdle {
		return errors.Wrapf(ErrInvalidCheckoutTransition, "open from %s", a.State)
	}
	if lineCount == 0 {
		return ErrEmptyCheckout
	}
	a.State = CheckoutAwaitingPaymentMethod

	return nil
}

// SelectMethod records the payment method. It may be changed until submission.
func (a *CheckoutAttempt) SelectMethod(method PaymentMethod) error {
	if a.State != CheckoutAwaitingPaymentMethod {
		return errors.Wrapf(ErrInvalidCheckoutTransition, "select method from %s", a.State)
	}
	if !method.IsValid() {
		return errors.Errorf("unknown payment method %q", method)
	}
	a.Method = method

	return nil
}

// Submit locks the attempt while the order is written.
func (a *CheckoutAttempt) Submit() error {
	if a.State != CheckoutAwaitingPaymentMethod || a.Method == "" {
		return errors.Wrapf(ErrInvalidCheckoutTransition, "submit from %s", a.State)
	}
	a.State = CheckoutSubmitting

	return nil
}

// Fulfill marks the order as written and the cart as cleared.
func (a *CheckoutAttempt) Fulfill() error {
	if a.State != CheckoutSubmitting {
		return errors.Wrapf(ErrInvalidCheckoutTransition, "fulfill from %s", a.State)
	}
	a.State = CheckoutFulfilled

	return nil
}

// Fail records why submission did not complete.
func (a *CheckoutAttempt) Fail(reason string) error {
	if a.State != CheckoutSubmitting {
		return errors.Wrapf(ErrInvalidCheckoutTransition, "fail from %s", a.State)
	}
	a.State = CheckoutFailed
	a.FailureReason = reason

	return nil
}

