package service

import (
	"github.com/nbd-wtf/go-nostr"
)

// Signer signs events with the holder's secret key.
type Signer interface {
	// PublicKey is the hex public key events are signed with.
	PublicKey() string

	// NPub is PublicKey in its bech32 form.
	NPub() string

	// Sign sets the pubkey, id and signature of event.
	Sign(event *nostr.Event) error
}

// Cipher encrypts and decrypts NIP-44 payloads between the holder's secret
// key and a peer public key.
type Cipher interface {
	Encrypt(peerPublicKey, plaintext string) (string, error)
	Decrypt(peerPublicKey, ciphertext string) (string, error)
}
