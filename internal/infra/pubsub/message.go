package pubsub

import (
	"encoding/json"

	"sentinel/internal/domain/service"

	"github.com/pkg/errors"
)

// eventTypeSilence is the only event published today; consumers filter on it.
const eventTypeSilence = "liveness.silence"

// alertMessage is the payload and attributes shared by every publisher.
type alertMessage struct {
	data       []byte
	attributes map[string]string
}

func newAlertMessage(event *service.AlertEvent) (*alertMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode alert event")
	}

	return &alertMessage{
		data: data,
		attributes: map[string]string{
			"alert_id":   event.AlertID,
			"target":     event.Target,
			"event_type": eventTypeSilence,
		},
	}, nil
}
