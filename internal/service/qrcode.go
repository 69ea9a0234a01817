package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes the operator check-in link for a booking
// reference as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(reference string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/bookings.html?ref=%s", g.BaseURL, reference)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
