package alert

import (
	"context"

	"sentinel/internal/domain/entity"
	"sentinel/internal/domain/service"
)

// PubSubNotifier publishes alerts as AlertEvents to a message queue.
type PubSubNotifier struct {
	publisher service.EventPublisher
}

func NewPubSubNotifier(publisher service.EventPublisher) *PubSubNotifier {
	return &PubSubNotifier{publisher: publisher}
}

func (n *PubSubNotifier) Notify(ctx context.Context, alert *entity.Alert) error {
	return n.publisher.PublishAlertEvent(ctx, NewAlertEvent(alert))
}

// NewAlertEvent converts an alert to its queue representation.
func NewAlertEvent(alert *entity.Alert) *service.AlertEvent {
	return &service.AlertEvent{
		AlertID:       alert.ID.String(),
		Target:        alert.Target,
		Message:       alert.Message,
		SilenceSecs:   int64(alert.Silence.Seconds()),
		ThresholdSecs: int64(alert.Threshold.Seconds()),
		LastSeen:      alert.LastSeen.Unix(),
		RaisedAt:      alert.RaisedAt.Unix(),
	}
}
