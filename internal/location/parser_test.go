package location

import (
	"crypto/rand"
	"testing"
	"time"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"

	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip44"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, tmpl *entity.EventTemplate, sk string) *nostr.Event {
	t.Helper()

	ev := tmpl.ToEvent(time.Now())
	require.NoError(t, ev.Sign(sk))

	return &ev
}

func TestParsePublicRecord_RoundTrip(t *testing.T) {
	sk := nostr.GeneratePrivateKey()
	cfg := publicConfig(t)

	tmpl, err := AssemblePublic(60.17, 24.94, floatPtr(10.0), cfg, time.Now())
	require.NoError(t, err)
	event := signed(t, tmpl, sk)

	record, err := ParsePublicRecord(event)
	require.NoError(t, err)

	hash, _ := tmpl.TagValue(TagGeohash)
	assert.Equal(t, hash, record.Geohash)
	assert.InDelta(t, 60.17, record.Lat, 0.001)
	assert.InDelta(t, 24.94, record.Lon, 0.001)
	assert.Less(t, geo.Distance(orb.Point{24.94, 60.17}, orb.Point{record.Lon, record.Lat}), 50.0)
	require.NotNil(t, record.Accuracy)
	assert.Equal(t, 10.0, *record.Accuracy)
	assert.Equal(t, "default", record.DTag)
	assert.Equal(t, entity.KindPublicLocation, record.Kind)
	assert.Equal(t, entity.VisibilityPublic, record.Visibility)
	assert.Equal(t, event.PubKey, record.Author)
	assert.Equal(t, event.ID, record.EventID)
}

func TestParsePublicRecord_Idempotent(t *testing.T) {
	tmpl, err := AssemblePublic(37.7749, -122.4194, floatPtr(3.5), publicConfig(t), time.Now())
	require.NoError(t, err)
	event := signed(t, tmpl, nostr.GeneratePrivateKey())

	first, err := ParsePublicRecord(event)
	require.NoError(t, err)
	second, err := ParsePublicRecord(event)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParsePublicRecord_Errors(t *testing.T) {
	tests := []struct {
		name    string
		event   *nostr.Event
		wantErr error
	}{
		{
			name:    "nil event",
			event:   nil,
			wantErr: domainerrors.ErrWrongKind,
		},
		{
			name:    "wrong kind",
			event:   &nostr.Event{Kind: entity.KindEncryptedLocation, Tags: nostr.Tags{{"g", "u6sce0t8"}}},
			wantErr: domainerrors.ErrWrongKind,
		},
		{
			name:    "text note",
			event:   &nostr.Event{Kind: 1},
			wantErr: domainerrors.ErrWrongKind,
		},
		{
			name:    "missing geohash",
			event:   &nostr.Event{Kind: entity.KindPublicLocation, Tags: nostr.Tags{{"d", "phone"}}},
			wantErr: domainerrors.ErrMissingTag,
		},
		{
			name:    "geohash without value",
			event:   &nostr.Event{Kind: entity.KindPublicLocation, Tags: nostr.Tags{{"g"}}},
			wantErr: domainerrors.ErrMissingTag,
		},
		{
			name:    "malformed geohash",
			event:   &nostr.Event{Kind: entity.KindPublicLocation, Tags: nostr.Tags{{"g", "not-a-hash"}}},
			wantErr: domainerrors.ErrMalformedGeohash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := ParsePublicRecord(tt.event)
			assert.Nil(t, record)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParsePublicRecord_MissingTagDetails(t *testing.T) {
	_, err := ParsePublicRecord(&nostr.Event{Kind: entity.KindPublicLocation})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "g", appErr.Details())
}

func TestParsePublicRecord_LenientOptionalFields(t *testing.T) {
	tests := []struct {
		name     string
		accuracy string
	}{
		{"not a number", "ten"},
		{"empty", ""},
		{"nan", "NaN"},
		{"infinity", "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &nostr.Event{
				Kind: entity.KindPublicLocation,
				Tags: nostr.Tags{{"g", "u6sce0t8"}, {"accuracy", tt.accuracy}},
			}

			record, err := ParsePublicRecord(event)
			require.NoError(t, err)
			assert.Nil(t, record.Accuracy)
			assert.Empty(t, record.DTag)
		})
	}
}

func TestParseEncryptedRecord_RoundTripThroughNIP44(t *testing.T) {
	senderSK := nostr.GeneratePrivateKey()
	senderPK, err := nostr.GetPublicKey(senderSK)
	require.NoError(t, err)
	receiverSK := nostr.GeneratePrivateKey()
	receiverPK, err := nostr.GetPublicKey(receiverSK)
	require.NoError(t, err)

	payload, err := BuildEncryptedPlaintextPayload(60.17, 24.94, floatPtr(5.0), 8)
	require.NoError(t, err)

	sendKey, err := nip44.GenerateConversationKey(receiverPK, senderSK)
	require.NoError(t, err)
	salt := make([]byte, 32)
	_, err = rand.Read(salt)
	require.NoError(t, err)
	ciphertext, err := nip44.Encrypt(payload, sendKey, nip44.WithCustomSalt(salt))
	require.NoError(t, err)

	cfg, err := entity.NewTrackingConfig(entity.TrackingOptions{
		Precision:  entity.DefaultPrecision,
		Encrypted:  true,
		Recipients: []string{receiverPK},
		Relays:     []string{entity.DefaultRelay},
	})
	require.NoError(t, err)

	tmpl, err := AssembleEncrypted(ciphertext, receiverPK, cfg, time.Now())
	require.NoError(t, err)
	event := signed(t, tmpl, senderSK)

	recvKey, err := nip44.GenerateConversationKey(senderPK, receiverSK)
	require.NoError(t, err)
	plaintext, err := nip44.Decrypt(event.Content, recvKey)
	require.NoError(t, err)
	assert.Equal(t, payload, plaintext)

	record, err := ParseEncryptedRecord(event, plaintext)
	require.NoError(t, err)

	hash, err := Encode(60.17, 24.94, 8)
	require.NoError(t, err)
	assert.Equal(t, hash, record.Geohash)
	assert.InDelta(t, 60.17, record.Lat, 0.001)
	require.NotNil(t, record.Accuracy)
	assert.Equal(t, 5.0, *record.Accuracy)
	assert.Equal(t, entity.KindEncryptedLocation, record.Kind)
	assert.Equal(t, entity.VisibilityEncrypted, record.Visibility)
	assert.Equal(t, "default", record.DTag)
}

func TestParseEncryptedRecord_Errors(t *testing.T) {
	encrypted := &nostr.Event{Kind: entity.KindEncryptedLocation, Tags: nostr.Tags{{"d", "car"}}}

	tests := []struct {
		name      string
		event     *nostr.Event
		plaintext string
		wantErr   error
	}{
		{"wrong kind", &nostr.Event{Kind: entity.KindPublicLocation}, `[["g","u6sce0t8"]]`, domainerrors.ErrWrongKind},
		{"not json", encrypted, `g=u6sce0t8`, domainerrors.ErrMalformedPayload},
		{"keyed object", encrypted, `{"g":"u6sce0t8"}`, domainerrors.ErrMalformedPayload},
		{"numeric values", encrypted, `[["g",1]]`, domainerrors.ErrMalformedPayload},
		{"no geohash pair", encrypted, `[["accuracy","5"]]`, domainerrors.ErrMalformedPayload},
		{"empty array", encrypted, `[]`, domainerrors.ErrMalformedPayload},
		{"malformed geohash", encrypted, `[["g","aaaa"]]`, domainerrors.ErrMalformedGeohash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := ParseEncryptedRecord(tt.event, tt.plaintext)
			assert.Nil(t, record)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseEncryptedRecord_LenientAccuracy(t *testing.T) {
	event := &nostr.Event{Kind: entity.KindEncryptedLocation, Tags: nostr.Tags{{"d", "car"}}}

	record, err := ParseEncryptedRecord(event, `[["g","u6sce0t8"],["accuracy","n/a"]]`)
	require.NoError(t, err)
	assert.Nil(t, record.Accuracy)
	assert.Equal(t, "car", record.DTag)
}
