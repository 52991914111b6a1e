package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"swapmarket/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H", "invalid", ""} {
		t.Run(level, func(t *testing.T) {
			assert.NotNil(t, NewQRCodeService(256, level, "https://m.example.com"))
		})
	}
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	svc := NewQRCodeService(128, "M", "https://m.example.com/")

	qrBytes, err := svc.GenerateProductQR(uuid.New())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestQRCodeService_ParseProductQR(t *testing.T) {
	svc := NewQRCodeService(0, "", "https://m.example.com").(*qrcodeService)
	productID := uuid.New()

	testCases := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"own link", svc.ProductLink(productID), false},
		{"link with trailing slash", svc.ProductLink(productID) + "/", false},
		{"bare id", productID.String(), false},
		{"other host", "https://other.example.com/products/" + productID.String(), false},
		{"wrong path", "https://m.example.com/users/" + productID.String(), true},
		{"bad id", "https://m.example.com/products/not-a-uuid", true},
		{"garbage", "::::", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.ParseProductQR(tc.payload)
			if tc.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, productID, got)
		})
	}
}

func TestNewFromConfig_Defaults(t *testing.T) {
	svc := NewFromConfig(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, defaultBaseURL+"/products/"+uuid.Nil.String(), svc.ProductLink(uuid.Nil))
}
