package qrcode

import (
	"fmt"
	"strings"
	"testing"

	"pluma/config"
	"pluma/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCharge() service.PixCharge {
	return service.PixCharge{
		Key:          "pagamentos@pluma.com.br",
		MerchantName: "PLUMA LIVRARIA",
		MerchantCity: "SAO PAULO",
		Amount:       decimal.RequireFromString("44.90"),
		TxID:         "PLUMA123",
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: tt.errorCorrectionLevel}}
			assert.NotNil(t, NewQRCodeService(cfg))
		})
	}
}

func TestCRC16CCITT_CheckValue(t *testing.T) {
	assert.Equal(t, uint16(0x29B1), crc16CCITT([]byte("123456789")))
}

func TestPixPayload_Structure(t *testing.T) {
	svc := newQRCodeService(256, "M")

	payload := svc.PixPayload(testCharge())

	assert.True(t, strings.HasPrefix(payload, "000201"))
	assert.Contains(t, payload, "0014br.gov.bcb.pix0123pagamentos@pluma.com.br")
	assert.Contains(t, payload, "5303986")
	assert.Contains(t, payload, "540544.90")
	assert.Contains(t, payload, "5802BR")
	assert.Contains(t, payload, "5914PLUMA LIVRARIA")
	assert.Contains(t, payload, "6009SAO PAULO")
	assert.Contains(t, payload, "62120508PLUMA123")

	body, crc := payload[:len(payload)-4], payload[len(payload)-4:]
	assert.True(t, strings.HasSuffix(body, "6304"))
	assert.Equal(t, fmt.Sprintf("%04X", crc16CCITT([]byte(body))), crc)
}

func TestPixPayload_ZeroAmountAndMissingTxID(t *testing.T) {
	svc := newQRCodeService(256, "M")
	charge := testCharge()
	charge.Amount = decimal.Zero
	charge.TxID = ""

	payload := svc.PixPayload(charge)

	assert.NotContains(t, payload, "5405")
	assert.Contains(t, payload, "62070503***")
}

func TestPixPayload_TruncatesLongMerchantFields(t *testing.T) {
	svc := newQRCodeService(256, "M")
	charge := testCharge()
	charge.MerchantName = "LIVRARIA PLUMA DE LIVROS DIGITAIS"
	charge.MerchantCity = "SAO JOSE DOS CAMPOS"

	payload := svc.PixPayload(charge)

	assert.Contains(t, payload, "5925LIVRARIA PLUMA DE LIVROS ")
	assert.Contains(t, payload, "6015SAO JOSE DOS CA")
}

func TestGeneratePixQR_IsPNG(t *testing.T) {
	svc := newQRCodeService(256, "M")

	qrBytes, err := svc.GeneratePixQR(testCharge())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}
