package impl

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"sentinel/internal/domain/entity"
	"sentinel/internal/infra/nostr/identity"
	"sentinel/internal/location"

	"github.com/nbd-wtf/go-nostr"
	"github.com/stretchr/testify/require"
)

var testNow = time.Unix(1_700_000_000, 0)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func floatPtr(v float64) *float64 {
	return &v
}

type fakeRecorder struct {
	mu        sync.Mutex
	published map[int]int
	skipped   map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{published: map[int]int{}, skipped: map[string]int{}}
}

func (r *fakeRecorder) EventPublished(kind int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published[kind]++
}

func (r *fakeRecorder) EventSkipped(category string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped[category]++
}

func trackingConfig(t *testing.T, opts entity.TrackingOptions) entity.TrackingConfig {
	t.Helper()

	if len(opts.Relays) == 0 {
		opts.Relays = []string{"wss://relay.test"}
	}
	if opts.Precision == 0 {
		opts.Precision = entity.DefaultPrecision
	}
	cfg, err := entity.NewTrackingConfig(opts)
	require.NoError(t, err)

	return cfg
}

// publicEvent returns a signed public location event of author.
func publicEvent(t *testing.T, author *identity.Keys, lat, lon float64) *nostr.Event {
	t.Helper()

	tmpl, err := location.AssemblePublic(lat, lon, floatPtr(10), trackingConfig(t, entity.TrackingOptions{}), testNow)
	require.NoError(t, err)

	event := tmpl.ToEvent(testNow)
	require.NoError(t, author.Sign(&event))

	return &event
}

// encryptedEvent returns a signed encrypted location event from author to recipient.
func encryptedEvent(t *testing.T, author *identity.Keys, recipient string, lat, lon float64) *nostr.Event {
	t.Helper()

	cfg := trackingConfig(t, entity.TrackingOptions{Encrypted: true, Recipients: []string{recipient}})
	plaintext, err := location.BuildEncryptedPlaintextPayload(lat, lon, nil, cfg.Precision())
	require.NoError(t, err)

	ciphertext, err := author.Encrypt(recipient, plaintext)
	require.NoError(t, err)

	tmpl, err := location.AssembleEncrypted(ciphertext, recipient, cfg, testNow)
	require.NoError(t, err)

	event := tmpl.ToEvent(testNow)
	require.NoError(t, author.Sign(&event))

	return &event
}
