package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"sentinel/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPushTimeout      = 10 * time.Second
	localSubscriptionName = "projects/local/subscriptions/sentinel-alerts"
)

// localHTTPPublisher stands in for Pub/Sub during development: every alert
// is POSTed to endpoint in the body format of a Pub/Sub push subscription.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// PushMessage is the body of a Pub/Sub push request.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"` // base64
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
		now:        time.Now,
	}
}

func (p *localHTTPPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	msg, err := newAlertMessage(event)
	if err != nil {
		return err
	}

	var push PushMessage
	push.Subscription = localSubscriptionName
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	push.Message.Attributes = msg.attributes
	push.Message.MessageID = event.AlertID
	push.Message.OrderingKey = event.Target
	push.Message.PublishTime = p.now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push alert %s", event.AlertID)
	}
	defer resp.Body.Close()

	// Push endpoints acknowledge with any 2xx.
	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint %s answered %d", p.endpoint, resp.StatusCode)
	}

	p.logger.Debug("Alert pushed to local endpoint",
		slog.String("alert_id", event.AlertID),
		slog.String("endpoint", p.endpoint),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
