package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(dishID string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(dishID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/dish/%s", g.BaseURL, dishID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
