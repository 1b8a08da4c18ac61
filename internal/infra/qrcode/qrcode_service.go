package qrcode

import (
	"strings"

	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/domain/service"
	"sentinel/internal/errors"
	"sentinel/internal/infra/nostr/identity"

	"github.com/skip2/go-qrcode"
)

// uriScheme prefixes identities so nostr clients recognise the code.
const uriScheme = "nostr:"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateIdentityQR generates a PNG QR code of "nostr:<npub>"
func (s *qrcodeService) GenerateIdentityQR(npub string) ([]byte, error) {
	qrCode, err := s.encode(npub)
	if err != nil {
		return nil, err
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// RenderIdentityQR draws the QR code with half-block characters.
func (s *qrcodeService) RenderIdentityQR(npub string) (string, error) {
	qrCode, err := s.encode(npub)
	if err != nil {
		return "", err
	}

	return qrCode.ToSmallString(false), nil
}

// ParseIdentityQR parses QR code text and returns the npub it carries.
// Both "nostr:npub1..." and a bare npub are accepted.
func (s *qrcodeService) ParseIdentityQR(qrData string) (string, error) {
	npub := strings.TrimPrefix(strings.TrimSpace(qrData), uriScheme)
	if !strings.HasPrefix(npub, "npub1") {
		return "", domainerrors.ErrMalformedIdentity.WithDetails("QR code does not carry an npub")
	}

	publicKey, err := identity.ParsePublicKey(npub)
	if err != nil {
		return "", err
	}

	return identity.NPub(publicKey), nil
}

func (s *qrcodeService) encode(npub string) (*qrcode.QRCode, error) {
	if !strings.HasPrefix(npub, "npub1") {
		return nil, domainerrors.ErrMalformedIdentity.WithDetails("expected an npub")
	}

	qrCode, err := qrcode.New(uriScheme+npub, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	return qrCode, nil
}
