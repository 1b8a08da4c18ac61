package location

import (
	"encoding/json"
	"strconv"
	"time"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/errors"

	"github.com/nbd-wtf/go-nostr"
)

// Tag names used by location events.
const (
	TagGeohash    = "g"
	TagIdentifier = "d"
	TagExpiration = "expiration"
	TagAccuracy   = "accuracy"
	TagRecipient  = "p"
)

// BuildPublicPayload returns the content and tags of a public location
// event. Tags are ordered g, d, expiration, accuracy; expiration is left out
// when cfg publishes without one and accuracy when it is nil.
func BuildPublicPayload(lat, lon float64, accuracy *float64, cfg entity.TrackingConfig, now time.Time) (string, nostr.Tags, error) {
	hash, err := Encode(lat, lon, cfg.Precision())
	if err != nil {
		return "", nil, err
	}

	tags := nostr.Tags{
		{TagGeohash, hash},
		{TagIdentifier, cfg.DTag()},
	}
	if tag, ok := expirationTag(cfg, now); ok {
		tags = append(tags, tag)
	}
	if accuracy != nil {
		tags = append(tags, nostr.Tag{TagAccuracy, formatAccuracy(*accuracy)})
	}

	return "", tags, nil
}

// BuildEncryptedPlaintextPayload returns the text handed to NIP-44
// encryption: a JSON array of [name, value] pairs, geohash first and
// accuracy second when present. Peers decode it positionally, so the order
// and encoding are part of the wire format.
func BuildEncryptedPlaintextPayload(lat, lon float64, accuracy *float64, precision int) (string, error) {
	hash, err := Encode(lat, lon, precision)
	if err != nil {
		return "", err
	}

	pairs := [][]string{{TagGeohash, hash}}
	if accuracy != nil {
		pairs = append(pairs, []string{TagAccuracy, formatAccuracy(*accuracy)})
	}

	b, err := json.Marshal(pairs)
	if err != nil {
		return "", errors.Wrap(err, "marshal location payload")
	}

	return string(b), nil
}

// BuildEncryptedEnvelope returns the content and tags of an encrypted
// location event carrying ciphertext for recipient, given as hex or npub.
// The p tag always carries the hex form.
func BuildEncryptedEnvelope(ciphertext, recipient string, cfg entity.TrackingConfig, now time.Time) (string, nostr.Tags, error) {
	pk, ok := entity.NormalizePublicKey(recipient)
	if !ok {
		return "", nil, domainerrors.ErrInvalidRecipient.WithDetails(recipient)
	}

	tags := nostr.Tags{
		{TagRecipient, pk},
		{TagIdentifier, cfg.DTag()},
	}
	if tag, ok := expirationTag(cfg, now); ok {
		tags = append(tags, tag)
	}

	return ciphertext, tags, nil
}

func expirationTag(cfg entity.TrackingConfig, now time.Time) (nostr.Tag, bool) {
	at, ok := cfg.ExpiresAt(now)
	if !ok {
		return nil, false
	}

	return nostr.Tag{TagExpiration, strconv.FormatInt(at.Unix(), 10)}, true
}

// formatAccuracy renders the shortest decimal that round-trips, so 10.0 is
// written as "10".
func formatAccuracy(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
