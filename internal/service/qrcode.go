package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// TrackingQRGenerator encodes the order tracking link as a PNG.
type TrackingQRGenerator struct {
	BaseURL string
}

func (g TrackingQRGenerator) Generate(orderID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/orders/%s", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

var _ QRGenerator = TrackingQRGenerator{}
