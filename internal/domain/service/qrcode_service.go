package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for product share QR codes
type QRCodeService interface {
	// GenerateProductQR generates a PNG QR code linking to a product listing
	GenerateProductQR(productID uuid.UUID) ([]byte, error)

	// ParseProductQR parses scanned QR payload and returns the product ID
	ParseProductQR(qrData string) (uuid.UUID, error)
}
