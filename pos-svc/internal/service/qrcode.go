package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

// ReceiptQRGenerator encodes the receipt page URL of an order.
type ReceiptQRGenerator struct {
	BaseURL string
	Size    int
}

func (g ReceiptQRGenerator) ReceiptURL(orderID int) string {
	return fmt.Sprintf("%s/receipt.html?order_id=%d", g.BaseURL, orderID)
}

func (g ReceiptQRGenerator) Generate(orderID int) ([]byte, error) {
	size := g.Size
	if size == 0 {
		size = 256
	}
	return qrcode.Encode(g.ReceiptURL(orderID), qrcode.Medium, size)
}
