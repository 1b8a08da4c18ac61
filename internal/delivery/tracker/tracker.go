// Package tracker republishes the latest position on a fixed interval so
// that followers keep seeing the device while it stands still.
package tracker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"sentinel/internal/delivery"
	"sentinel/internal/domain/entity"
	"sentinel/internal/errors"
	"sentinel/internal/usecase"

	"go.uber.org/fx"
)

// Params holds dependencies for the tracker, injected by Fx.
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Logger     *slog.Logger
	Tracking   entity.TrackingConfig
	TrackingUC usecase.TrackingUsecase
}

type tracker struct {
	interval   time.Duration
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger

	started  atomic.Bool
	quit     chan struct{}
	quitOnce sync.Once
	done     chan struct{}
}

// NewTracker creates the periodic publisher.
func NewTracker(params Params) delivery.Delivery {
	t := newTracker(params.Tracking.Interval(), params.TrackingUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: t.stop,
	})

	return t
}

func newTracker(interval time.Duration, trackingUC usecase.TrackingUsecase, logger *slog.Logger) *tracker {
	return &tracker{
		interval:   interval,
		trackingUC: trackingUC,
		logger:     logger,
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Serve publishes on every tick until ctx is done or the tracker is stopped.
func (t *tracker) Serve(ctx context.Context) error {
	t.started.Store(true)
	defer close(t.done)

	t.logger.Info("Tracker started", slog.Duration("interval", t.interval))

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("Tracker stopped")

			return nil
		case <-t.quit:
			t.logger.Info("Tracker stopped")

			return nil
		case <-ticker.C:
			t.tick(ctx)
		}
	}
}

func (t *tracker) tick(ctx context.Context) {
	result, err := t.trackingUC.PublishLatest(ctx)
	switch {
	case errors.Is(err, usecase.ErrNoPosition):
		t.logger.Debug("No position to publish yet")
	case err != nil:
		t.logger.Warn("Failed to publish latest position", slog.Any("error", err))
	default:
		t.logger.Info("Latest position published",
			slog.String("geohash", result.Geohash),
			slog.Int("events", len(result.EventIDs)),
		)
	}
}

func (t *tracker) stop(ctx context.Context) error {
	t.quitOnce.Do(func() { close(t.quit) })
	if !t.started.Load() {
		return nil
	}

	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
