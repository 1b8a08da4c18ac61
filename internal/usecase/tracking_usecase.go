package usecase

import (
	"context"
	"errors"
	"time"

	"sentinel/internal/domain/entity"
)

// ErrNoPosition is returned when there is no fix to publish yet.
var ErrNoPosition = errors.New("no position reported yet")

// PublishResult describes the events carrying one published fix.
type PublishResult struct {
	Kind        int       `json:"kind"`
	Geohash     string    `json:"geohash"`
	EventIDs    []string  `json:"event_ids"`
	PublishedAt time.Time `json:"published_at"`
}

// TrackingUsecase publishes the positions of the local device.
type TrackingUsecase interface {
	// ReportPosition stores pos as the latest fix and publishes it.
	ReportPosition(ctx context.Context, pos *entity.Position) (*PublishResult, error)

	// PublishLatest republishes the latest fix, refreshing its expiration.
	PublishLatest(ctx context.Context) (*PublishResult, error)

	// LatestPosition returns the latest reported fix, if any.
	LatestPosition() (*entity.Position, bool)
}
