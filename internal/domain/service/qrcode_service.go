package service

// QRCodeService renders identities as scannable QR codes so another device
// can follow them.
type QRCodeService interface {
	// GenerateIdentityQR returns a PNG encoding "nostr:<npub>".
	GenerateIdentityQR(npub string) ([]byte, error)

	// RenderIdentityQR returns the same code drawn with block characters for
	// a terminal.
	RenderIdentityQR(npub string) (string, error)

	// ParseIdentityQR returns the npub carried by QR code text.
	ParseIdentityQR(qrData string) (string, error)
}
