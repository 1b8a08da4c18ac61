// Package mqtt ingests OwnTracks-style position messages from an MQTT
// broker.
package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sentinel/config"
	"sentinel/internal/delivery"
	"sentinel/internal/domain/constants"
	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/domain/lifecycle"
	"sentinel/internal/errors"
	infraMQTT "sentinel/internal/infra/mqtt"
	"sentinel/internal/usecase"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/fx"
)

const (
	ownTracksLocation = "location"
	handleTimeout     = 30 * time.Second
)

// OwnTracksMessage is the subset of the OwnTracks JSON format the agent
// understands. Other message types are ignored.
type OwnTracksMessage struct {
	Type      string   `json:"_type"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Accuracy  *float64 `json:"acc,omitempty"`
	Timestamp int64    `json:"tst,omitempty"`
	TrackerID string   `json:"tid,omitempty"`
}

// ServerParams holds dependencies for the MQTT ingestion, injected by Fx.
type ServerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	Client     pahomqtt.Client `optional:"true"`
	TrackingUC usecase.TrackingUsecase
}

type mqttServer struct {
	client     pahomqtt.Client
	topic      string
	qos        byte
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewServer creates the MQTT position ingestion. It serves nothing when no
// broker or no position topic is configured.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &mqttServer{
		client:     params.Client,
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
	if cfg := params.Cfg.MQTT; cfg != nil {
		srv.topic = cfg.PositionTopic
		srv.qos = cfg.QoS
	}
	if srv.qos > 2 {
		return nil, domainerrors.ErrInputValidation.WithDetails("mqtt qos must be 0, 1 or 2")
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *mqttServer) enabled() bool {
	return s.client != nil && s.topic != ""
}

// Serve subscribes to the position topic and returns; messages are handled
// on paho's goroutines.
func (s *mqttServer) Serve(ctx context.Context) error {
	if !s.enabled() {
		s.logger.Info("MQTT position ingestion disabled")

		return nil
	}

	subCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	token := s.client.Subscribe(s.topic, s.qos, func(_ pahomqtt.Client, msg pahomqtt.Message) {
		handleCtx, cancel := context.WithTimeout(context.Background(), handleTimeout)
		defer cancel()

		if err := s.HandleMessage(handleCtx, msg.Payload()); err != nil {
			s.logger.Warn("Dropping MQTT position",
				slog.String("topic", msg.Topic()),
				slog.Any("error", err),
			)
		}
	})
	if err := infraMQTT.Wait(subCtx, token); err != nil {
		return errors.Wrapf(err, "subscribe to %s", s.topic)
	}

	s.logger.Info("Listening for MQTT positions", slog.String("topic", s.topic))

	return nil
}

// HandleMessage decodes one message and reports it as the latest position.
// Non-location messages are ignored.
func (s *mqttServer) HandleMessage(ctx context.Context, payload []byte) error {
	var msg OwnTracksMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return domainerrors.ErrInputValidation.WithDetails("payload is not JSON")
	}
	if msg.Type != ownTracksLocation {
		s.logger.Debug("Ignoring MQTT message", slog.String("type", msg.Type))

		return nil
	}
	if msg.Lat == nil || msg.Lon == nil {
		return domainerrors.ErrInputValidation.WithDetails("lat and lon are required")
	}

	pos := &entity.Position{
		Lat:      *msg.Lat,
		Lon:      *msg.Lon,
		Accuracy: msg.Accuracy,
		Source:   constants.PositionSourceMQTT,
	}
	if msg.Timestamp > 0 {
		pos.ObservedAt = time.Unix(msg.Timestamp, 0).UTC()
	}

	result, err := s.trackingUC.ReportPosition(ctx, pos)
	if err != nil {
		return err
	}

	s.logger.Info("Position reported",
		slog.String("source", constants.PositionSourceMQTT),
		slog.String("tracker_id", msg.TrackerID),
		slog.String("geohash", result.Geohash),
	)

	return nil
}

func (s *mqttServer) stop(ctx context.Context) error {
	if !s.enabled() || !s.client.IsConnected() {
		return nil
	}

	s.logger.Info("Unsubscribing MQTT positions")
	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	return infraMQTT.Wait(stopCtx, s.client.Unsubscribe(s.topic))
}
