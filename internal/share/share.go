// Package share renders invitation codes for the bot.
package share

import (
	"errors"

	qr "github.com/skip2/go-qrcode"
)

var ErrNoLink = errors.New("bot link is not configured")

// QRCode creates a PNG QR code for the given link
func QRCode(link string) ([]byte, error) {
	if link == "" {
		return nil, ErrNoLink
	}
	return qr.Encode(link, qr.Medium, 256)
}
