package service

import "github.com/shopspring/decimal"

// PixCharge is the data encoded into the PIX placeholder code.
type PixCharge struct {
	Key          string
	MerchantName string
	MerchantCity string
	Amount       decimal.Decimal
	TxID         string
}

// QRCodeService renders payment QR codes
type QRCodeService interface {
	// PixPayload returns the copy-and-paste text for charge.
	PixPayload(charge PixCharge) string

	// GeneratePixQR renders charge as a PNG QR code.
	GeneratePixQR(charge PixCharge) ([]byte, error)
}
