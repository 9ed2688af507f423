package tests

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sushi-pos/pos-svc/internal/service"
)

func TestReceiptQRGenerator(t *testing.T) {
	gen := service.ReceiptQRGenerator{BaseURL: "https://pos.example.com", Size: 128}

	assert.Equal(t, "https://pos.example.com/receipt.html?order_id=12", gen.ReceiptURL(12))

	data, err := gen.Generate(12)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}
