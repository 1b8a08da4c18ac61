package entity

import (
	"strings"
	"testing"
	"time"

	domainerrors "sentinel/internal/domain/errors"

	"github.com/nbd-wtf/go-nostr/nip19"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRecipient = strings.Repeat("ab", 32)

func TestNewTrackingConfig_Defaults(t *testing.T) {
	cfg, err := NewTrackingConfig(TrackingOptions{Precision: 5, Relays: []string{" wss://relay.one ", ""}})
	require.NoError(t, err)

	assert.Equal(t, DefaultInterval, cfg.Interval())
	assert.Equal(t, 5, cfg.Precision())
	assert.Equal(t, DefaultDTag, cfg.DTag())
	assert.Equal(t, DefaultExpiration, cfg.Expiration())
	assert.Equal(t, []string{"wss://relay.one"}, cfg.Relays())
	assert.False(t, cfg.Encrypted())
	assert.Equal(t, KindPublicLocation, cfg.Kind())

	now := time.Unix(1_700_000_000, 0)
	expiresAt, ok := cfg.ExpiresAt(now)
	require.True(t, ok)
	assert.Equal(t, now.Add(time.Hour), expiresAt)
}

func TestNewTrackingConfig_Encrypted(t *testing.T) {
	cfg, err := NewTrackingConfig(TrackingOptions{
		Precision:    DefaultPrecision,
		Encrypted:    true,
		Recipients:   []string{strings.ToUpper(testRecipient)},
		Relays:       []string{"wss://relay.one"},
		NoExpiration: true,
	})
	require.NoError(t, err)

	assert.Equal(t, KindEncryptedLocation, cfg.Kind())
	assert.Equal(t, []string{testRecipient}, cfg.Recipients())
	_, ok := cfg.ExpiresAt(time.Now())
	assert.False(t, ok)

	// Callers cannot mutate the configuration through returned slices.
	cfg.Recipients()[0] = "changed"
	assert.Equal(t, testRecipient, cfg.Recipients()[0])
}

func TestNewTrackingConfig_NPubRecipient(t *testing.T) {
	npub, err := nip19.EncodePublicKey(testRecipient)
	require.NoError(t, err)

	cfg, err := NewTrackingConfig(TrackingOptions{
		Precision:  DefaultPrecision,
		Encrypted:  true,
		Recipients: []string{npub},
		Relays:     []string{"wss://relay.one"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{testRecipient}, cfg.Recipients())
}

func TestNormalizePublicKey(t *testing.T) {
	npub, err := nip19.EncodePublicKey(testRecipient)
	require.NoError(t, err)
	nsec, err := nip19.EncodePrivateKey(testRecipient)
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "hex", input: testRecipient, expected: testRecipient, ok: true},
		{name: "uppercase hex", input: strings.ToUpper(testRecipient), expected: testRecipient, ok: true},
		{name: "npub with whitespace", input: " " + npub + "\n", expected: testRecipient, ok: true},
		{name: "nsec", input: nsec},
		{name: "broken npub", input: "npub1nothex"},
		{name: "short hex", input: testRecipient[:62]},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pk, ok := NormalizePublicKey(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, pk)
		})
	}
}

func TestNewTrackingConfig_Invalid(t *testing.T) {
	relays := []string{"wss://relay.one"}

	tests := []struct {
		name          string
		opts          TrackingOptions
		expectedError error
	}{
		{
			name:          "precision above range",
			opts:          TrackingOptions{Precision: 13, Relays: relays},
			expectedError: domainerrors.ErrInvalidPrecision,
		},
		{
			name:          "zero precision",
			opts:          TrackingOptions{Relays: relays},
			expectedError: domainerrors.ErrInvalidPrecision,
		},
		{
			name:          "negative precision",
			opts:          TrackingOptions{Precision: -1, Relays: relays},
			expectedError: domainerrors.ErrInvalidPrecision,
		},
		{
			name:          "negative interval",
			opts:          TrackingOptions{Precision: DefaultPrecision, Interval: -time.Second, Relays: relays},
			expectedError: domainerrors.ErrInputValidation,
		},
		{
			name:          "negative expiration",
			opts:          TrackingOptions{Precision: DefaultPrecision, Expiration: -time.Second, Relays: relays},
			expectedError: domainerrors.ErrInputValidation,
		},
		{
			name:          "encrypted without recipients",
			opts:          TrackingOptions{Precision: DefaultPrecision, Encrypted: true, Relays: relays},
			expectedError: domainerrors.ErrInputValidation,
		},
		{
			name:          "recipients without encryption",
			opts:          TrackingOptions{Precision: DefaultPrecision, Recipients: []string{testRecipient}, Relays: relays},
			expectedError: domainerrors.ErrInputValidation,
		},
		{
			name:          "malformed recipient",
			opts:          TrackingOptions{Precision: DefaultPrecision, Encrypted: true, Recipients: []string{"npub1nothex"}, Relays: relays},
			expectedError: domainerrors.ErrInvalidRecipient,
		},
		{
			name:          "no relays",
			opts:          TrackingOptions{Precision: DefaultPrecision, Relays: []string{"  "}},
			expectedError: domainerrors.ErrInputValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTrackingConfig(tt.opts)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestVisibilityForKind(t *testing.T) {
	v, ok := VisibilityForKind(KindPublicLocation)
	assert.True(t, ok)
	assert.Equal(t, VisibilityPublic, v)

	v, ok = VisibilityForKind(KindEncryptedLocation)
	assert.True(t, ok)
	assert.Equal(t, VisibilityEncrypted, v)

	_, ok = VisibilityForKind(1)
	assert.False(t, ok)
}
