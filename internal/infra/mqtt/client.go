// Package mqtt connects to the MQTT broker shared by position ingestion and
// the MQTT alert sink.
package mqtt

import (
	"context"
	"log/slog"
	"time"

	"sentinel/config"
	"sentinel/internal/errors"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/fx"
)

const (
	connectTimeout    = 10 * time.Second
	disconnectQuiesce = 250 // milliseconds
)

// Params holds dependencies for the MQTT client, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewClient returns a connected client, or nil when no broker is configured.
func NewClient(params Params) (pahomqtt.Client, error) {
	cfg := params.Config.MQTT
	if cfg == nil || cfg.Broker == "" {
		params.Logger.Info("MQTT not configured")

		return nil, nil //nolint:nilnil
	}

	client, err := Connect(cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Disconnecting MQTT client")
			client.Disconnect(disconnectQuiesce)

			return nil
		},
	})

	return client, nil
}

// Connect dials the broker and waits for the connection to be acknowledged.
func Connect(cfg *config.MQTTConfig, logger *slog.Logger) (pahomqtt.Client, error) {
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "sentinel-" + time.Now().UTC().Format("20060102150405")
	}

	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout).
		SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
			logger.Warn("MQTT connection lost", slog.Any("error", err))
		})
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username).SetPassword(cfg.Password)
	}

	client := pahomqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, errors.Errorf("mqtt connect to %s timed out", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, errors.Wrapf(err, "mqtt connect to %s", cfg.Broker)
	}

	logger.Info("MQTT client connected",
		slog.String("broker", cfg.Broker),
		slog.String("client_id", clientID),
	)

	return client, nil
}

// Wait blocks until token completes or ctx is done.
func Wait(ctx context.Context, token pahomqtt.Token) error {
	select {
	case <-token.Done():
		return errors.WithStack(token.Error())
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// Module provides the MQTT FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewClient),
)
