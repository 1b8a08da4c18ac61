package alert

import (
	"context"
	"log/slog"
	"slices"

	"sentinel/config"
	"sentinel/internal/domain/constants"
	"sentinel/internal/domain/service"
	"sentinel/internal/errors"
	"sentinel/internal/infra/notification"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/fx"
)

// Sinks are the shared clients alert providers may publish through. Nil
// members are only an error when a provider needs them.
type Sinks struct {
	MQTT      pahomqtt.Client
	Publisher service.EventPublisher
	Push      service.NotificationService
}

// New builds one notifier delivering to every provider listed in
// cfg.Alert.Providers.
func New(cfg *config.Config, sinks Sinks, logger *slog.Logger) (*MultiNotifier, error) {
	notifiers := make([]service.AlertNotifier, 0, len(cfg.Alert.Providers))

	for _, provider := range cfg.Alert.Providers {
		switch provider {
		case constants.AlertProviderWebhook:
			if cfg.Alert.Webhook == nil || cfg.Alert.Webhook.URL == "" {
				return nil, errors.New("webhook url is required for webhook alerts")
			}
			notifiers = append(notifiers, NewWebhookNotifier(cfg.Alert.Webhook.URL, cfg.Alert.Webhook.Timeout, logger))

		case constants.AlertProviderFirebase:
			if sinks.Push == nil || cfg.Alert.Firebase == nil {
				return nil, errors.New("firebase is not configured")
			}
			notifiers = append(notifiers, NewPushNotifier(sinks.Push, cfg.Alert.Firebase.DeviceTokens, logger))

		case constants.AlertProviderPubSub:
			if sinks.Publisher == nil {
				return nil, errors.New("pubsub is not configured")
			}
			notifiers = append(notifiers, NewPubSubNotifier(sinks.Publisher))

		case constants.AlertProviderMQTT:
			if sinks.MQTT == nil || cfg.Alert.MQTTTopic == "" {
				return nil, errors.New("mqtt broker and alert topic are required for mqtt alerts")
			}
			var qos byte
			if cfg.MQTT != nil {
				qos = cfg.MQTT.QoS
			}
			notifiers = append(notifiers, NewMQTTNotifier(sinks.MQTT, cfg.Alert.MQTTTopic, qos))

		default:
			return nil, errors.Errorf("unknown alert provider: %s", provider)
		}

		logger.Info("Alert provider enabled", slog.String("provider", provider))
	}

	return NewMultiNotifier(notifiers...), nil
}

// NewPushService creates the Firebase service when the firebase provider is
// enabled, and returns nil otherwise.
func NewPushService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if !slices.Contains(cfg.Alert.Providers, constants.AlertProviderFirebase) || cfg.Alert.Firebase == nil {
		return nil, nil //nolint:nilnil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Alert.Firebase.ProjectID, cfg.Alert.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

// NotifierParams holds dependencies for the alert notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	MQTT      pahomqtt.Client        `optional:"true"`
	Publisher service.EventPublisher `optional:"true"`
}

// NewNotifier is the Fx constructor for service.AlertNotifier.
func NewNotifier(params NotifierParams) (service.AlertNotifier, error) {
	push, err := NewPushService(params.Ctx, params.Config)
	if err != nil {
		return nil, err
	}

	return New(params.Config, Sinks{
		MQTT:      params.MQTT,
		Publisher: params.Publisher,
		Push:      push,
	}, params.Logger)
}

// Module provides the alert FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
