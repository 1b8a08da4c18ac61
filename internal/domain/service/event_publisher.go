package service

import (
	"context"
)

// AlertEvent is the message published to a message queue when an alert is
// raised, for consumers that fan alerts out further.
type AlertEvent struct {
	AlertID       string `json:"alert_id"`
	Target        string `json:"target"`
	Message       string `json:"message"`
	SilenceSecs   int64  `json:"silence_secs"`
	ThresholdSecs int64  `json:"threshold_secs"`
	LastSeen      int64  `json:"last_seen"` // unix seconds
	RaisedAt      int64  `json:"raised_at"` // unix seconds
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert event
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
