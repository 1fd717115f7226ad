// Package ticket renders the QR code shown on a booking confirmation.
package ticket

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const (
	contentPrefix = "BOOKIT:"
	minSize       = 64
)

// Content is what the QR code encodes for a reference.
func Content(referenceID string) string {
	return contentPrefix + referenceID
}

// Render returns a PNG of size x size pixels.
func Render(referenceID string, size int) ([]byte, error) {
	png, err := qrcode.Encode(Content(referenceID), qrcode.Medium, max(size, minSize))
	if err != nil {
		return nil, fmt.Errorf("failed to encode ticket QR code: %w", err)
	}

	return png, nil
}

// FileName is the object name used when archiving the ticket.
func FileName(referenceID string) string {
	return referenceID + ".png"
}
