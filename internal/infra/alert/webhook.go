// Package alert implements the sinks liveness alerts are delivered to.
package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"sentinel/internal/domain/entity"
	"sentinel/internal/errors"
)

// WebhookPayload is the body posted to chat-style incoming webhooks.
type WebhookPayload struct {
	Text string `json:"text"`
}

// WebhookNotifier posts the alert message as JSON to a URL.
type WebhookNotifier struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookNotifier creates a webhook sink.
func NewWebhookNotifier(url string, timeout time.Duration, logger *slog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, alert *entity.Alert) error {
	body, err := json.Marshal(WebhookPayload{Text: alert.Message})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Alert-Id", alert.ID.String())

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("webhook returned non-success status: %d", resp.StatusCode)
	}

	n.logger.Info("[Webhook] Alert delivered", slog.String("alert_id", alert.ID.String()))

	return nil
}
