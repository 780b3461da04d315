// Package qrcode renders the PIX placeholder code shown during checkout.
package qrcode

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pluma/config"
	"pluma/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// BR Code field ids
const (
	fieldPayloadFormat   = "00"
	fieldMerchantAccount = "26"
	fieldCategoryCode    = "52"
	fieldCurrency        = "53"
	fieldAmount          = "54"
	fieldCountry         = "58"
	fieldMerchantName    = "59"
	fieldMerchantCity    = "60"
	fieldAdditionalData  = "62"
	fieldCRC             = "63"

	pixGUI          = "br.gov.bcb.pix"
	currencyBRL     = "986"
	maxNameLength   = 25
	maxCityLength   = 15
	maxTxIDLength   = 25
	defaultTxID     = "***"
	defaultCategory = "0000"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := 256, "M"
	if cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(size, level)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// PixPayload builds the BR Code text for charge, terminated by its CRC16 field.
func (s *qrcodeService) PixPayload(charge service.PixCharge) string {
	var b strings.Builder

	b.WriteString(field(fieldPayloadFormat, "01"))
	b.WriteString(field(fieldMerchantAccount, field("00", pixGUI)+field("01", charge.Key)))
	b.WriteString(field(fieldCategoryCode, defaultCategory))
	b.WriteString(field(fieldCurrency, currencyBRL))
	if charge.Amount.IsPositive() {
		b.WriteString(field(fieldAmount, charge.Amount.StringFixed(2)))
	}
	b.WriteString(field(fieldCountry, "BR"))
	b.WriteString(field(fieldMerchantName, truncate(charge.MerchantName, maxNameLength)))
	b.WriteString(field(fieldMerchantCity, truncate(charge.MerchantCity, maxCityLength)))

	txID := truncate(charge.TxID, maxTxIDLength)
	if txID == "" {
		txID = defaultTxID
	}
	b.WriteString(field(fieldAdditionalData, field("05", txID)))

	// The checksum covers its own id and length.
	b.WriteString(fieldCRC + "04")
	b.WriteString(fmt.Sprintf("%04X", crc16CCITT([]byte(b.String()))))

	return b.String()
}

// GeneratePixQR renders the BR Code for charge as a PNG image
func (s *qrcodeService) GeneratePixQR(charge service.PixCharge) ([]byte, error) {
	qrCode, err := qrcode.New(s.PixPayload(charge), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func field(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, utf8.RuneCountInString(value), value)
}

func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) <= limit {
		return value
	}

	return string([]rune(value)[:limit])
}

// crc16CCITT computes CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF).
func crc16CCITT(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}

	return crc
}
