package pubsub

import (
	"context"
	"log/slog"

	"sentinel/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes alerts to a Cloud Pub/Sub topic. Alerts
// of one target share an ordering key so consumers see them in order.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails when topicID does
// not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "alert topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Publishing alerts to Google Pub/Sub", slog.String("topic", topic))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishAlertEvent blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	msg, err := newAlertMessage(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: event.Target,
	}).Get(ctx)
	if err != nil {
		// A failed key is paused until resumed; the next alert retries it.
		p.publisher.ResumePublish(event.Target)

		return errors.Wrapf(err, "publish alert %s", event.AlertID)
	}

	p.logger.Debug("Alert published to Pub/Sub",
		slog.String("alert_id", event.AlertID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
