package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
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

func TestQueryService_Query(t *testing.T) {
	author := identity.Generate()
	me := identity.Generate()
	other := identity.Generate()

	public := publicEvent(t, author, 48.8584, 2.2945)
	forMe := encryptedEvent(t, author, me.PublicKey(), 51.5007, -0.1246)
	forMe.CreatedAt = nostr.Timestamp(testNow.Add(time.Minute).Unix())
	require.NoError(t, author.Sign(forMe))
	forOther := encryptedEvent(t, author, other.PublicKey(), 1, 1)

	tampered := publicEvent(t, author, 10, 10)
	tampered.Content = "changed"

	badGeohash := &nostr.Event{
		Kind:      entity.KindPublicLocation,
		CreatedAt: nostr.Timestamp(testNow.Unix()),
		Tags:      nostr.Tags{{location.TagGeohash, "ABC"}, {location.TagIdentifier, "default"}},
		Content:   "",
	}
	require.NoError(t, author.Sign(badGeohash))

	tests := []struct {
		name          string
		input         *usecase.QueryInput
		setupMock     func(*mockSvc.MockRelayClient)
		expectedCount int
		expectSkipped int
		expectedError error
		expectedMsg   string
	}{
		{
			name:  "decodes readable events and skips the rest",
			input: &usecase.QueryInput{Author: author.PublicKey()},
			setupMock: func(relay *mockSvc.MockRelayClient) {
				relay.EXPECT().
					Fetch(mock.Anything, mock.MatchedBy(func(f nostr.Filter) bool {
						return f.Limit == usecase.DefaultQueryLimit &&
							len(f.Authors) == 1 && f.Authors[0] == author.PublicKey() &&
							len(f.Kinds) == 2 && f.Since == nil && len(f.Tags) == 0
					})).
					Return([]*nostr.Event{public, forMe, forOther, tampered, badGeohash}, nil).
					Once()
			},
			expectedCount: 2,
			expectSkipped: 3,
		},
		{
			name: "applies device, limit and since",
			input: &usecase.QueryInput{
				Author: author.PublicKey(),
				DTag:   "phone",
				Limit:  5,
				Since:  testNow,
			},
			setupMock: func(relay *mockSvc.MockRelayClient) {
				relay.EXPECT().
					Fetch(mock.Anything, mock.MatchedBy(func(f nostr.Filter) bool {
						return f.Limit == 5 &&
							f.Since != nil && f.Since.Time().Equal(testNow) &&
							len(f.Tags["d"]) == 1 && f.Tags["d"][0] == "phone"
					})).
					Return(nil, nil).
					Once()
			},
		},
		{
			name:          "rejects malformed author",
			input:         &usecase.QueryInput{Author: "npub1nope"},
			setupMock:     func(*mockSvc.MockRelayClient) {},
			expectedError: domainerrors.ErrMalformedIdentity,
		},
		{
			name:  "relay failure",
			input: &usecase.QueryInput{Author: author.PublicKey()},
			setupMock: func(relay *mockSvc.MockRelayClient) {
				relay.EXPECT().Fetch(mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
			},
			expectedMsg: "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relay := mockSvc.NewMockRelayClient(t)
			tt.setupMock(relay)
			recorder := newFakeRecorder()

			svc := NewQueryService(relay, me, me.PublicKey(), recorder, discardLogger())
			result, err := svc.Query(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)

				return
			}
			if tt.expectedMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedMsg)

				return
			}

			require.NoError(t, err)
			assert.Len(t, result.Records, tt.expectedCount)
			assert.Equal(t, tt.expectSkipped, result.Skipped)
		})
	}
}

func TestQueryService_Query_OrderAndCategories(t *testing.T) {
	author := identity.Generate()
	me := identity.Generate()

	older := publicEvent(t, author, 10, 10)
	newer := encryptedEvent(t, author, me.PublicKey(), 20, 20)
	newer.CreatedAt = nostr.Timestamp(testNow.Add(time.Hour).Unix())
	require.NoError(t, author.Sign(newer))
	unreadable := encryptedEvent(t, author, identity.Generate().PublicKey(), 0, 0)

	relay := mockSvc.NewMockRelayClient(t)
	relay.EXPECT().Fetch(mock.Anything, mock.Anything).Return([]*nostr.Event{older, newer, unreadable}, nil).Once()

	recorder := newFakeRecorder()
	svc := NewQueryService(relay, me, me.PublicKey(), recorder, discardLogger())

	result, err := svc.Query(context.Background(), &usecase.QueryInput{Author: author.PublicKey()})
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	assert.Equal(t, newer.ID, result.Records[0].EventID)
	assert.Equal(t, entity.VisibilityEncrypted, result.Records[0].Visibility)
	assert.Equal(t, older.ID, result.Records[1].EventID)
	assert.Equal(t, entity.VisibilityPublic, result.Records[1].Visibility)
	assert.Equal(t, 1, recorder.skipped[string(domainerrors.CategoryDecryption)])
}

func TestQueryService_Query_SkipsOtherAuthors(t *testing.T) {
	author := identity.Generate()
	own := publicEvent(t, author, 10, 10)
	impostor := publicEvent(t, identity.Generate(), 20, 20)

	relay := mockSvc.NewMockRelayClient(t)
	relay.EXPECT().Fetch(mock.Anything, mock.Anything).Return([]*nostr.Event{impostor, own}, nil).Once()

	recorder := newFakeRecorder()
	svc := NewQueryService(relay, nil, "", recorder, discardLogger())

	result, err := svc.Query(context.Background(), &usecase.QueryInput{Author: strings.ToUpper(author.PublicKey())})
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, own.ID, result.Records[0].EventID)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, recorder.skipped[string(domainerrors.CategoryParse)])
}

func TestQueryService_Query_WithoutCipher(t *testing.T) {
	author := identity.Generate()
	event := encryptedEvent(t, author, identity.Generate().PublicKey(), 0, 0)

	relay := mockSvc.NewMockRelayClient(t)
	relay.EXPECT().Fetch(mock.Anything, mock.Anything).Return([]*nostr.Event{event}, nil).Once()

	svc := NewQueryService(relay, nil, "", nil, discardLogger())

	result, err := svc.Query(context.Background(), &usecase.QueryInput{Author: author.PublicKey()})
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Equal(t, 1, result.Skipped)
}
