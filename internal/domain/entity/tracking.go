package entity

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	domainerrors "sentinel/internal/domain/errors"

	"github.com/nbd-wtf/go-nostr/nip19"
)

const (
	// MinPrecision and MaxPrecision bound the geohash length.
	MinPrecision = 1
	MaxPrecision = 12

	DefaultInterval   = 60 * time.Second
	DefaultPrecision  = 8
	DefaultDTag       = "default"
	DefaultExpiration = time.Hour
	DefaultRelay      = "wss://zooid.atlantislabs.space"
)

// TrackingConfig controls how a location is published. It is immutable once
// built by NewTrackingConfig.
type TrackingConfig struct {
	interval   time.Duration
	precision  int
	encrypted  bool
	recipients []string
	relays     []string
	dTag       string
	expiration time.Duration
}

// TrackingOptions are the raw inputs to NewTrackingConfig. Zero values of
// Interval, DTag and Expiration fall back to the defaults above; Precision
// has no default and must be in range.
type TrackingOptions struct {
	Interval   time.Duration
	Precision  int
	Encrypted  bool
	Recipients []string // hex or npub public keys
	Relays     []string
	DTag       string
	Expiration time.Duration
	// NoExpiration publishes events without an expiration tag.
	NoExpiration bool
}

// NewTrackingConfig validates opts and returns an immutable TrackingConfig.
func NewTrackingConfig(opts TrackingOptions) (TrackingConfig, error) {
	cfg := TrackingConfig{
		interval:   opts.Interval,
		precision:  opts.Precision,
		encrypted:  opts.Encrypted,
		dTag:       opts.DTag,
		expiration: opts.Expiration,
	}

	if cfg.interval == 0 {
		cfg.interval = DefaultInterval
	}
	if cfg.interval < 0 {
		return TrackingConfig{}, domainerrors.ErrInputValidation.WithDetails("interval must be positive")
	}

	if err := ValidatePrecision(cfg.precision); err != nil {
		return TrackingConfig{}, err
	}

	if cfg.dTag == "" {
		cfg.dTag = DefaultDTag
	}

	switch {
	case opts.NoExpiration:
		cfg.expiration = 0
	case cfg.expiration == 0:
		cfg.expiration = DefaultExpiration
	case cfg.expiration < 0:
		return TrackingConfig{}, domainerrors.ErrInputValidation.WithDetails("expiration must not be negative")
	}

	for _, r := range opts.Recipients {
		pk, ok := NormalizePublicKey(r)
		if !ok {
			return TrackingConfig{}, domainerrors.ErrInvalidRecipient.WithDetails(r)
		}
		cfg.recipients = append(cfg.recipients, pk)
	}
	if cfg.encrypted && len(cfg.recipients) == 0 {
		return TrackingConfig{}, domainerrors.ErrInputValidation.WithDetails("encrypted tracking needs at least one recipient")
	}
	if !cfg.encrypted && len(cfg.recipients) != 0 {
		return TrackingConfig{}, domainerrors.ErrInputValidation.WithDetails("recipients are only used for encrypted tracking")
	}

	for _, r := range opts.Relays {
		if r = strings.TrimSpace(r); r != "" {
			cfg.relays = append(cfg.relays, r)
		}
	}
	if len(cfg.relays) == 0 {
		return TrackingConfig{}, domainerrors.ErrInputValidation.WithDetails("at least one relay is required")
	}

	return cfg, nil
}

// ValidatePrecision fails with ErrInvalidPrecision outside [1,12].
func ValidatePrecision(precision int) error {
	if precision < MinPrecision || precision > MaxPrecision {
		return domainerrors.ErrInvalidPrecision.WithDetails(strconv.Itoa(precision))
	}

	return nil
}

// NormalizePublicKey accepts an npub or a 64 character hex public key and
// returns the lowercase hex form.
func NormalizePublicKey(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "npub1") {
		prefix, value, err := nip19.Decode(s)
		if err != nil || prefix != "npub" {
			return "", false
		}
		pk, ok := value.(string)
		if !ok || !IsPublicKeyHex(pk) {
			return "", false
		}

		return strings.ToLower(pk), true
	}

	if !IsPublicKeyHex(s) {
		return "", false
	}

	return strings.ToLower(s), true
}

// IsPublicKeyHex reports whether s is a 32-byte hex encoded public key.
func IsPublicKeyHex(s string) bool {
	if len(s) != 64 {
		return false
	}
	_, err := hex.DecodeString(s)

	return err == nil
}

func (c TrackingConfig) Interval() time.Duration   { return c.interval }
func (c TrackingConfig) Precision() int            { return c.precision }
func (c TrackingConfig) Encrypted() bool           { return c.encrypted }
func (c TrackingConfig) DTag() string              { return c.dTag }
func (c TrackingConfig) Expiration() time.Duration { return c.expiration }

// Recipients returns a copy of the recipient keys.
func (c TrackingConfig) Recipients() []string {
	return append([]string(nil), c.recipients...)
}

// Relays returns a copy of the relay URLs.
func (c TrackingConfig) Relays() []string {
	return append([]string(nil), c.relays...)
}

// Kind is the event kind this configuration publishes.
func (c TrackingConfig) Kind() int {
	if c.encrypted {
		return KindEncryptedLocation
	}

	return KindPublicLocation
}

// ExpiresAt returns the expiration timestamp for an event created at now,
// and false when events are published without expiration.
func (c TrackingConfig) ExpiresAt(now time.Time) (time.Time, bool) {
	if c.expiration <= 0 {
		return time.Time{}, false
	}

	return now.Add(c.expiration), true
}
