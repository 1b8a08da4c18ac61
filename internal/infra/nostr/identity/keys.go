// Package identity holds nostr keys: parsing hex and bech32 forms, signing
// events and NIP-44 encryption between the holder and a peer.
package identity

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"sync"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/errors"

	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip19"
	"github.com/nbd-wtf/go-nostr/nip44"
)

// saltSize is the NIP-44 v2 nonce length.
const saltSize = 32

// Keys is a secret key with its derived public key. It implements
// service.Signer and service.Cipher.
type Keys struct {
	secret string
	public string

	mu               sync.Mutex
	conversationKeys map[string][]byte
}

// Generate returns fresh random keys.
func Generate() *Keys {
	keys, err := newKeys(nostr.GeneratePrivateKey())
	if err != nil {
		// GeneratePrivateKey always yields a valid scalar.
		panic(err)
	}

	return keys
}

// ParseSecretKey accepts an nsec or a 64 character hex secret key.
func ParseSecretKey(s string) (*Keys, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "nsec") {
		prefix, value, err := nip19.Decode(s)
		if err != nil || prefix != "nsec" {
			return nil, domainerrors.ErrMalformedIdentity.WithDetails("invalid nsec")
		}
		sk, ok := value.(string)
		if !ok {
			return nil, domainerrors.ErrMalformedIdentity.WithDetails("invalid nsec")
		}
		s = sk
	}

	if !isHexKey(s) {
		return nil, domainerrors.ErrMalformedIdentity.WithDetails("secret key must be nsec or 64 hex characters")
	}

	return newKeys(strings.ToLower(s))
}

// ParsePublicKey accepts an npub or a 64 character hex public key and
// returns the hex form.
func ParsePublicKey(s string) (string, error) {
	pk, ok := entity.NormalizePublicKey(s)
	if !ok {
		return "", domainerrors.ErrMalformedIdentity.WithDetails("public key must be npub or 64 hex characters")
	}

	return pk, nil
}

// ParsePublicKeys parses every key with ParsePublicKey.
func ParsePublicKeys(keys []string) ([]string, error) {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		pk, err := ParsePublicKey(k)
		if err != nil {
			return nil, err
		}
		out = append(out, pk)
	}

	return out, nil
}

// NPub returns the bech32 form of a hex public key, or the hex itself if it
// cannot be encoded.
func NPub(publicKey string) string {
	npub, err := nip19.EncodePublicKey(publicKey)
	if err != nil {
		return publicKey
	}

	return npub
}

func newKeys(secret string) (*Keys, error) {
	public, err := nostr.GetPublicKey(secret)
	if err != nil {
		return nil, domainerrors.ErrMalformedIdentity.WithDetails(err.Error())
	}

	return &Keys{
		secret:           secret,
		public:           public,
		conversationKeys: make(map[string][]byte),
	}, nil
}

// PublicKey returns the hex public key.
func (k *Keys) PublicKey() string {
	return k.public
}

// NPub returns the bech32 public key.
func (k *Keys) NPub() string {
	return NPub(k.public)
}

// NSec returns the bech32 secret key.
func (k *Keys) NSec() (string, error) {
	nsec, err := nip19.EncodePrivateKey(k.secret)

	return nsec, errors.WithStack(err)
}

// Sign sets the pubkey, id and signature of event.
func (k *Keys) Sign(event *nostr.Event) error {
	if err := event.Sign(k.secret); err != nil {
		return errors.Wrap(err, "sign event")
	}

	return nil
}

// Encrypt encrypts plaintext for peerPublicKey with NIP-44 v2.
func (k *Keys) Encrypt(peerPublicKey, plaintext string) (string, error) {
	ck, err := k.conversationKey(peerPublicKey)
	if err != nil {
		return "", err
	}

	// nip44.Encrypt in the pinned go-nostr only succeeds with an explicit
	// salt. Each message gets a fresh one.
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "nip44 salt")
	}

	ciphertext, err := nip44.Encrypt(plaintext, ck, nip44.WithCustomSalt(salt))
	if err != nil {
		return "", errors.Wrap(err, "nip44 encrypt")
	}

	return ciphertext, nil
}

// Decrypt decrypts a NIP-44 payload sent by peerPublicKey.
func (k *Keys) Decrypt(peerPublicKey, ciphertext string) (string, error) {
	ck, err := k.conversationKey(peerPublicKey)
	if err != nil {
		return "", err
	}

	plaintext, err := nip44.Decrypt(ciphertext, ck)
	if err != nil {
		return "", domainerrors.ErrDecryptionFailed.WithDetails(err.Error())
	}

	return plaintext, nil
}

func (k *Keys) conversationKey(peer string) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if ck, ok := k.conversationKeys[peer]; ok {
		return ck, nil
	}

	ck, err := nip44.GenerateConversationKey(peer, k.secret)
	if err != nil {
		return nil, domainerrors.ErrInvalidRecipient.WithDetails(err.Error())
	}
	k.conversationKeys[peer] = ck

	return ck, nil
}

func isHexKey(s string) bool {
	if len(s) != 64 {
		return false
	}
	_, err := hex.DecodeString(s)

	return err == nil
}
