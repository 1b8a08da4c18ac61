// Package watch follows one identity from the agent and alerts when it goes
// silent. The relay subscription is reopened whenever the feed ends.
package watch

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"sentinel/internal/delivery"
	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/errors"
	"sentinel/internal/location"
	"sentinel/internal/usecase"

	"go.uber.org/fx"
)

const (
	minRetryDelay = time.Second
	maxRetryDelay = time.Minute
)

// Params holds dependencies for the watcher, injected by Fx.
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Logger   *slog.Logger
	Input    *usecase.FollowInput `optional:"true"` // nil disables watching
	FollowUC usecase.FollowUsecase
}

type watcher struct {
	input      *usecase.FollowInput
	followUC   usecase.FollowUsecase
	logger     *slog.Logger
	retryDelay time.Duration

	last *entity.LocationRecord

	started  atomic.Bool
	quit     chan struct{}
	quitOnce sync.Once
	done     chan struct{}
}

// NewWatcher creates the watch delivery.
func NewWatcher(params Params) delivery.Delivery {
	w := newWatcher(params.Input, params.FollowUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w
}

func newWatcher(input *usecase.FollowInput, followUC usecase.FollowUsecase, logger *slog.Logger) *watcher {
	return &watcher{
		input:      input,
		followUC:   followUC,
		logger:     logger,
		retryDelay: minRetryDelay,
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Serve follows the target until stopped. Invalid input ends it with an
// error; anything else is retried with backoff.
func (w *watcher) Serve(ctx context.Context) error {
	w.started.Store(true)
	defer close(w.done)

	if w.input == nil {
		w.logger.Info("No follow target configured, watch disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-w.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	delay := w.retryDelay
	for {
		err := w.followUC.Follow(ctx, w.input, w.onRecord)
		if ctx.Err() != nil {
			return nil
		}
		if domainerrors.IsCategory(err, domainerrors.CategoryInputValidation) {
			return err
		}

		w.logger.Warn("Follow session ended, resubscribing",
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
		delay = min(delay*2, maxRetryDelay)
	}
}

// onRecord is called from a single goroutine per session.
func (w *watcher) onRecord(record *entity.LocationRecord) {
	attrs := []any{
		slog.String("geohash", record.Geohash),
		slog.String("d_tag", record.DTag),
		slog.String("visibility", string(record.Visibility)),
		slog.Time("timestamp", record.Timestamp),
	}
	if w.last != nil && w.last.DTag == record.DTag {
		attrs = append(attrs, slog.Float64("moved_m", location.Distance(w.last, record)))
	}
	w.last = record

	w.logger.Info("Location update", attrs...)
}

func (w *watcher) stop(ctx context.Context) error {
	w.quitOnce.Do(func() { close(w.quit) })
	if !w.started.Load() {
		return nil
	}

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
