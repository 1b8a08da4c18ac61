package alert

import (
	"context"
	"encoding/json"

	"sentinel/internal/domain/entity"
	"sentinel/internal/errors"
	"sentinel/internal/infra/mqtt"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTNotifier publishes the AlertEvent JSON to a broker topic.
type MQTTNotifier struct {
	client pahomqtt.Client
	topic  string
	qos    byte
}

func NewMQTTNotifier(client pahomqtt.Client, topic string, qos byte) *MQTTNotifier {
	return &MQTTNotifier{
		client: client,
		topic:  topic,
		qos:    qos,
	}
}

func (n *MQTTNotifier) Notify(ctx context.Context, alert *entity.Alert) error {
	payload, err := json.Marshal(NewAlertEvent(alert))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrapf(mqtt.Wait(ctx, n.client.Publish(n.topic, n.qos, false, payload)), "publish to %s", n.topic)
}
