// Package qrcode renders product share links as QR images.
package qrcode

import (
	"net/url"
	"path"
	"strings"

	"swapmarket/config"
	"swapmarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "https://swapmarket.local"
	productPath    = "/products/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewFromConfig builds the service from the qrcode section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	qr := cfg.QRCode
	if qr == nil {
		qr = &config.QRCodeConfig{}
	}

	return NewQRCodeService(qr.Size, qr.ErrorCorrectionLevel, qr.BaseURL)
}

// NewQRCodeService creates a QR service. Unknown correction levels fall back to medium.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// ProductLink is the URL encoded into a product's QR code.
func (s *qrcodeService) ProductLink(productID uuid.UUID) string {
	return s.baseURL + productPath + productID.String()
}

func (s *qrcodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	pngBytes, err := qrcode.Encode(s.ProductLink(productID), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return pngBytes, nil
}

// ParseProductQR accepts a scanned product link or a bare product ID.
func (s *qrcodeService) ParseProductQR(qrData string) (uuid.UUID, error) {
	qrData = strings.TrimSpace(qrData)
	if id, err := uuid.Parse(qrData); err == nil {
		return id, nil
	}

	link, err := url.Parse(qrData)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR payload")
	}

	dir, last := path.Split(strings.TrimRight(link.Path, "/"))
	if dir != productPath && !strings.HasSuffix(dir, productPath) {
		return uuid.Nil, errors.Errorf("not a product link: %s", qrData)
	}

	productID, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse product ID")
	}

	return productID, nil
}
