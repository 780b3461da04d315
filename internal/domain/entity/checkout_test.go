package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutAttempt_HappyPath(t *testing.T) {
	attempt := NewCheckoutAttempt(uuid.New())
	assert.Equal(t, CheckoutIdle, attempt.State)

	require.NoError(t, attempt.Open(2))
	assert.Equal(t, CheckoutAwaitingPaymentMethod, attempt.State)

	require.NoError(t, attempt.SelectMethod(PaymentMethodCard))
	require.NoError(t, attempt.SelectMethod(PaymentMethodPix))
	assert.Equal(t, PaymentMethodPix, attempt.Method)

	require.NoError(t, attempt.Submit())
	assert.Equal(t, CheckoutSubmitting, attempt.State)

	require.NoError(t, attempt.Fulfill())
	assert.Equal(t, CheckoutFulfilled, attempt.State)
}

func TestCheckoutAttempt_EmptyCartStaysIdle(t *testing.T) {
	attempt := NewCheckoutAttempt(uuid.New())

	err := attempt.Open(0)
	assert.ErrorIs(t, err, ErrEmptyCheckout)
	assert.Equal(t, CheckoutIdle, attempt.State)
}

func TestCheckoutAttempt_SubmitRequiresMethod(t *testing.T) {
	attempt := NewCheckoutAttempt(uuid.New())
	require.NoError(t, attempt.Open(1))

	err := attempt.Submit()
	assert.True(t, errors.Is(err, ErrInvalidCheckoutTransition))
}

func TestCheckoutAttempt_RejectsUnknownMethod(t *testing.T) {
	attempt := NewCheckoutAttempt(uuid.New())
	require.NoError(t, attempt.Open(1))

	assert.Error(t, attempt.SelectMethod("boleto"))
	assert.Empty(t, attempt.Method)
}

func TestCheckoutAttempt_Fail(t *testing.T) {
	attempt := NewCheckoutAttempt(uuid.New())
	require.NoError(t, attempt.Open(1))
	require.NoError(t, attempt.SelectMethod(PaymentMethodCard))
	require.NoError(t, attempt.Submit())

	require.NoError(t, attempt.Fail("connection reset"))
	assert.Equal(t, CheckoutFailed, attempt.State)
	assert.Equal(t, "connection reset", attempt.FailureReason)

	// A failed attempt is final; the buyer starts a new one with the cart untouched.
	assert.ErrorIs(t, attempt.Fulfill(), ErrInvalidCheckoutTransition)
	assert.ErrorIs(t, attempt.Fail("again"), ErrInvalidCheckoutTransition)
}

func TestCheckoutAttempt_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		step func(a *CheckoutAttempt) error
	}{
		{"fulfill from idle", func(a *CheckoutAttempt) error { return a.Fulfill() }},
		{"fail from idle", func(a *CheckoutAttempt) error { return a.Fail("x") }},
		{"select from idle", func(a *CheckoutAttempt) error { return a.SelectMethod(PaymentMethodPix) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempt := NewCheckoutAttempt(uuid.New())
			err := tt.step(attempt)
			assert.ErrorIs(t, err, ErrInvalidCheckoutTransition)
			assert.Equal(t, CheckoutIdle, attempt.State)
		})
	}
}
