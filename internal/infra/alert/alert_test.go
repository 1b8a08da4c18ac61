package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sentinel/config"
	"sentinel/internal/domain/entity"
	"sentinel/internal/domain/service"
	"sentinel/internal/errors"
	mockSvc "sentinel/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAlert() *entity.Alert {
	raised := time.Unix(1_700_000_300, 0)

	return &entity.Alert{
		ID:        uuid.New(),
		Target:    "npub1target",
		Threshold: 5 * time.Minute,
		Silence:   5*time.Minute + 3*time.Second,
		LastSeen:  raised.Add(-5*time.Minute - 3*time.Second),
		RaisedAt:  raised,
		Message:   "ALERT: No location update from npub1target for 5m",
	}
}

func TestWebhookNotifier_PostsText(t *testing.T) {
	alert := testAlert()

	var got WebhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, alert.ID.String(), r.Header.Get("X-Alert-Id"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL, time.Second, discardLogger())
	require.NoError(t, notifier.Notify(context.Background(), alert))
	assert.Equal(t, alert.Message, got.Text)
}

func TestWebhookNotifier_Failures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL, time.Second, discardLogger())
	assert.Error(t, notifier.Notify(context.Background(), testAlert()))

	unreachable := NewWebhookNotifier("http://127.0.0.1:1/hook", time.Second, discardLogger())
	assert.Error(t, unreachable.Notify(context.Background(), testAlert()))
}

func TestPubSubNotifier_PublishesEvent(t *testing.T) {
	alert := testAlert()
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishAlertEvent(mock.Anything, mock.MatchedBy(func(event *service.AlertEvent) bool {
			return event.AlertID == alert.ID.String() &&
				event.Target == alert.Target &&
				event.ThresholdSecs == 300 &&
				event.SilenceSecs == 303 &&
				event.RaisedAt == 1_700_000_300
		})).
		Return(nil).
		Once()

	require.NoError(t, NewPubSubNotifier(publisher).Notify(context.Background(), alert))
}

func TestPushNotifier(t *testing.T) {
	alert := testAlert()
	tokens := []string{"tok-1", "tok-2"}

	t.Run("delivered", func(t *testing.T) {
		push := mockSvc.NewMockNotificationService(t)
		push.EXPECT().
			SendBatchNotification(mock.Anything, tokens, pushTitle, alert.Message, mock.Anything).
			Return(&service.PushResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"tok-2"}}, nil).
			Once()

		assert.NoError(t, NewPushNotifier(push, tokens, discardLogger()).Notify(context.Background(), alert))
	})

	t.Run("all rejected", func(t *testing.T) {
		push := mockSvc.NewMockNotificationService(t)
		push.EXPECT().
			SendBatchNotification(mock.Anything, tokens, pushTitle, alert.Message, mock.Anything).
			Return(&service.PushResult{FailureCount: 2}, nil).
			Once()

		assert.Error(t, NewPushNotifier(push, tokens, discardLogger()).Notify(context.Background(), alert))
	})

	t.Run("no tokens", func(t *testing.T) {
		push := mockSvc.NewMockNotificationService(t)

		assert.NoError(t, NewPushNotifier(push, nil, discardLogger()).Notify(context.Background(), alert))
	})
}

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	alert := testAlert()

	require.NoError(t, NewWriterNotifier(&buf).Notify(context.Background(), alert))
	assert.Equal(t, alert.Message+"\n", buf.String())
}

func TestMultiNotifier_DeliversToAllAndJoinsErrors(t *testing.T) {
	alert := testAlert()

	ok := mockSvc.NewMockAlertNotifier(t)
	ok.EXPECT().Notify(mock.Anything, alert).Return(nil).Once()

	failing := mockSvc.NewMockAlertNotifier(t)
	failing.EXPECT().Notify(mock.Anything, alert).Return(errors.New("sink down")).Once()

	multi := NewMultiNotifier(ok, failing)
	err := multi.Notify(context.Background(), alert)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink down")
	assert.Equal(t, 2, multi.Len())

	assert.NoError(t, NewMultiNotifier().Notify(context.Background(), alert))
}

func TestNew_Providers(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)

	cfg := &config.Config{}
	cfg.Alert.Providers = []string{"webhook", "pubsub"}
	cfg.Alert.Webhook = &config.WebhookConfig{URL: "http://localhost/hook", Timeout: time.Second}

	multi, err := New(cfg, Sinks{Publisher: publisher}, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, multi.Len())
}

func TestNew_MisconfiguredProviders(t *testing.T) {
	tests := []struct {
		name     string
		provider string
	}{
		{name: "webhook without url", provider: "webhook"},
		{name: "firebase without service", provider: "firebase"},
		{name: "pubsub without publisher", provider: "pubsub"},
		{name: "mqtt without client", provider: "mqtt"},
		{name: "unknown", provider: "pager"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Alert.Providers = []string{tt.provider}

			_, err := New(cfg, Sinks{}, discardLogger())
			assert.Error(t, err)
		})
	}
}

func TestNewPushService_DisabledReturnsNil(t *testing.T) {
	svc, err := NewPushService(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.Nil(t, svc)
}
