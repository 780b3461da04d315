package validation

import (
	"testing"
	"time"

	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *Validator {
	val := New()
	val.now = func() time.Time { return time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC) }

	return val
}

func validCard() entity.CardDetails {
	return entity.CardDetails{
		HolderName: "Ana Souza",
		Number:     "4111111111111111",
		Expiry:     "12/27",
		CVV:        "123",
	}
}

func TestValidator_ValidCard(t *testing.T) {
	card := validCard()

	assert.NoError(t, newTestValidator().Validate(&card))
}

func TestValidator_CardExpiry(t *testing.T) {
	tests := []struct {
		expiry string
		valid  bool
	}{
		{"03/26", true},
		{"02/26", false},
		{"01/27", true},
		{"12/25", false},
		{"13/27", false},
		{"1/27", false},
		{"0327", false},
	}

	for _, tt := range tests {
		t.Run(tt.expiry, func(t *testing.T) {
			card := validCard()
			card.Expiry = tt.expiry

			fields, err := newTestValidator().Check(&card)
			require.NoError(t, err)
			_, invalid := fields["expiry"]
			assert.Equal(t, !tt.valid, invalid)
		})
	}
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	card := validCard()
	card.Number = "4111111111111112"
	card.CVV = "12a"

	err := newTestValidator().Validate(&card)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "number: número de cartão inválido")
	assert.Contains(t, appErr.Details(), "cvv:")
}

func TestFormatFields_StableOrder(t *testing.T) {
	got := FormatFields(map[string]string{"b": "2", "a": "1"})

	assert.Equal(t, "a: 1; b: 2", got)
}
