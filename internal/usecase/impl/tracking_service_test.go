package impl

import (
	"context"
	"testing"
	"time"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/domain/service"
	"sentinel/internal/errors"
	"sentinel/internal/infra/nostr/identity"
	"sentinel/internal/location"
	mockSvc "sentinel/internal/mocks/service"
	"sentinel/internal/usecase"

	"github.com/nbd-wtf/go-nostr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTrackingForTest(cfg entity.TrackingConfig, keys *identity.Keys, cipher *mockSvc.MockCipher, relay *mockSvc.MockRelayClient, recorder EventRecorder) *trackingService {
	var c service.Cipher = keys
	if cipher != nil {
		c = cipher
	}

	svc := NewTrackingService(cfg, keys, c, relay, recorder, discardLogger()).(*trackingService)
	svc.now = func() time.Time { return testNow }

	return svc
}

func TestTrackingService_ReportPosition_Public(t *testing.T) {
	keys := identity.Generate()
	relay := mockSvc.NewMockRelayClient(t)
	recorder := newFakeRecorder()
	svc := newTrackingForTest(trackingConfig(t, entity.TrackingOptions{DTag: "phone"}), keys, nil, relay, recorder)

	var published nostr.Event
	relay.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("nostr.Event")).
		Run(func(_ context.Context, event nostr.Event) { published = event }).
		Return(nil).
		Once()

	result, err := svc.ReportPosition(context.Background(), &entity.Position{Lat: 60.17, Lon: 24.94, Accuracy: floatPtr(10)})
	require.NoError(t, err)

	assert.Equal(t, entity.KindPublicLocation, result.Kind)
	assert.Len(t, result.Geohash, entity.DefaultPrecision)
	assert.Equal(t, []string{published.ID}, result.EventIDs)
	assert.Equal(t, testNow, result.PublishedAt)

	ok, err := published.CheckSignature()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, keys.PublicKey(), published.PubKey)

	record, err := location.ParsePublicRecord(&published)
	require.NoError(t, err)
	assert.Equal(t, result.Geohash, record.Geohash)
	assert.Equal(t, "phone", record.DTag)
	assert.InDelta(t, 60.17, record.Lat, 0.001)
	assert.InDelta(t, 24.94, record.Lon, 0.001)

	assert.Equal(t, 1, recorder.published[entity.KindPublicLocation])

	latest, ok := svc.LatestPosition()
	require.True(t, ok)
	assert.Equal(t, testNow, latest.ObservedAt)
}

func TestTrackingService_ReportPosition_EncryptedPerRecipient(t *testing.T) {
	keys := identity.Generate()
	alice := identity.Generate()
	bob := identity.Generate()
	relay := mockSvc.NewMockRelayClient(t)

	cfg := trackingConfig(t, entity.TrackingOptions{
		Encrypted:  true,
		Recipients: []string{alice.PublicKey(), bob.PublicKey()},
		DTag:       "car",
	})
	svc := newTrackingForTest(cfg, keys, nil, relay, nil)

	var published []nostr.Event
	relay.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("nostr.Event")).
		Run(func(_ context.Context, event nostr.Event) { published = append(published, event) }).
		Return(nil).
		Times(2)

	result, err := svc.ReportPosition(context.Background(), &entity.Position{Lat: 57.64911, Lon: 10.40744})
	require.NoError(t, err)
	require.Len(t, result.EventIDs, 2)
	assert.Equal(t, entity.KindEncryptedLocation, result.Kind)

	for i, reader := range []*identity.Keys{alice, bob} {
		event := published[i]
		assert.Equal(t, entity.KindEncryptedLocation, event.Kind)

		recipient, ok := entity.FindTagValue(event.Tags, location.TagRecipient)
		require.True(t, ok)
		assert.Equal(t, reader.PublicKey(), recipient)

		dTag, _ := entity.FindTagValue(event.Tags, location.TagIdentifier)
		assert.Equal(t, "car", dTag)

		plaintext, err := reader.Decrypt(keys.PublicKey(), event.Content)
		require.NoError(t, err)

		record, err := location.ParseEncryptedRecord(&event, plaintext)
		require.NoError(t, err)
		assert.Equal(t, result.Geohash, record.Geohash)
		assert.Nil(t, record.Accuracy)
	}
}

func TestTrackingService_ReportPosition_PartialRecipientFailure(t *testing.T) {
	keys := identity.Generate()
	alice := identity.Generate()
	bob := identity.Generate()
	relay := mockSvc.NewMockRelayClient(t)
	cipher := mockSvc.NewMockCipher(t)

	cfg := trackingConfig(t, entity.TrackingOptions{
		Encrypted:  true,
		Recipients: []string{alice.PublicKey(), bob.PublicKey()},
	})
	svc := newTrackingForTest(cfg, keys, cipher, relay, nil)

	cipher.EXPECT().Encrypt(alice.PublicKey(), mock.Anything).Return("", errors.New("bad key")).Once()
	cipher.EXPECT().Encrypt(bob.PublicKey(), mock.Anything).Return("ciphertext", nil).Once()
	relay.EXPECT().Publish(mock.Anything, mock.AnythingOfType("nostr.Event")).Return(nil).Once()

	result, err := svc.ReportPosition(context.Background(), &entity.Position{Lat: 1, Lon: 2})
	require.NoError(t, err)
	assert.Len(t, result.EventIDs, 1)
}

func TestTrackingService_ReportPosition_InvalidCoordinates(t *testing.T) {
	relay := mockSvc.NewMockRelayClient(t)
	svc := newTrackingForTest(trackingConfig(t, entity.TrackingOptions{}), identity.Generate(), nil, relay, nil)

	_, err := svc.ReportPosition(context.Background(), &entity.Position{Lat: 91, Lon: 0})
	require.Error(t, err)
	assert.True(t, domainerrors.IsCategory(err, domainerrors.CategoryInputValidation))

	_, ok := svc.LatestPosition()
	assert.False(t, ok)

	_, err = svc.ReportPosition(context.Background(), nil)
	assert.Error(t, err)
}

func TestTrackingService_PublishLatest(t *testing.T) {
	relay := mockSvc.NewMockRelayClient(t)
	svc := newTrackingForTest(trackingConfig(t, entity.TrackingOptions{}), identity.Generate(), nil, relay, nil)

	_, err := svc.PublishLatest(context.Background())
	assert.ErrorIs(t, err, usecase.ErrNoPosition)

	relay.EXPECT().Publish(mock.Anything, mock.AnythingOfType("nostr.Event")).Return(nil).Twice()

	_, err = svc.ReportPosition(context.Background(), &entity.Position{Lat: 10, Lon: 10})
	require.NoError(t, err)

	result, err := svc.PublishLatest(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.EventIDs, 1)
}

func TestTrackingService_RelayFailure(t *testing.T) {
	relay := mockSvc.NewMockRelayClient(t)
	recorder := newFakeRecorder()
	svc := newTrackingForTest(trackingConfig(t, entity.TrackingOptions{}), identity.Generate(), nil, relay, recorder)

	relay.EXPECT().Publish(mock.Anything, mock.AnythingOfType("nostr.Event")).Return(errors.New("rejected")).Once()

	_, err := svc.ReportPosition(context.Background(), &entity.Position{Lat: 10, Lon: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPublishFailed))
	assert.Zero(t, recorder.published[entity.KindPublicLocation])
}
