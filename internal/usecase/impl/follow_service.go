package impl

import (
	"context"
	"log/slog"
	"time"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/domain/repository"
	"sentinel/internal/domain/service"
	"sentinel/internal/errors"
	"sentinel/internal/monitor"
	"sentinel/internal/usecase"

	"github.com/nbd-wtf/go-nostr"
	"golang.org/x/sync/errgroup"
)

// FollowDeps are the collaborators of the follow service. Cipher, Repo and
// Notifier are optional.
type FollowDeps struct {
	Relay           service.RelayClient
	Cipher          service.Cipher
	Self            string
	Repo            repository.LocationRepository
	Notifier        service.AlertNotifier
	MonitorRecorder monitor.Recorder
	Recorder        EventRecorder
	DispatchTimeout time.Duration
	Logger          *slog.Logger
}

type followService struct {
	deps    FollowDeps
	decoder eventDecoder
	now     func() time.Time
}

// NewFollowService creates a new follow service instance
func NewFollowService(deps FollowDeps) usecase.FollowUsecase {
	deps.Recorder = recorderOrNop(deps.Recorder)

	return &followService{
		deps:    deps,
		decoder: eventDecoder{cipher: deps.Cipher, self: deps.Self},
		now:     time.Now,
	}
}

// Follow subscribes to the target's locations from now on and runs the
// liveness monitor over them.
//
// Every valid location event of the target counts as an update, including
// encrypted ones this key cannot read: liveness is about the target
// publishing, not about what it publishes.
func (s *followService) Follow(ctx context.Context, input *usecase.FollowInput, onRecord func(*entity.LocationRecord)) error {
	if !entity.IsPublicKeyHex(input.Target) {
		return domainerrors.ErrMalformedIdentity.WithDetails("target must be a hex public key")
	}

	display := input.Display
	if display == "" {
		display = input.Target
	}

	watchdog, err := monitor.New(monitor.Params{
		Target:          display,
		Threshold:       input.AlertAfter,
		CheckInterval:   input.CheckInterval,
		DispatchTimeout: s.deps.DispatchTimeout,
		Notifier:        s.deps.Notifier,
		Recorder:        s.deps.MonitorRecorder,
		Logger:          s.deps.Logger,
		Clock:           s.now,
	})
	if err != nil {
		return err
	}

	filter := locationFilter(input.Target, input.DTag)
	since := nostr.Timestamp(s.now().Unix())
	filter.Since = &since

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := s.deps.Relay.Subscribe(ctx, filter)
	if err != nil {
		return errors.Wrap(err, "subscribe to location events")
	}

	s.deps.Logger.Info("Following",
		slog.String("target", display),
		slog.Duration("alert_after", input.AlertAfter),
	)

	updates := make(chan time.Time)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watchdog.Run(ctx, updates)
	})
	g.Go(func() error {
		defer close(updates)

		return s.consume(ctx, input, events, updates, onRecord)
	})

	return g.Wait()
}

func (s *followService) consume(
	ctx context.Context,
	input *usecase.FollowInput,
	events <-chan *nostr.Event,
	updates chan<- time.Time,
	onRecord func(*entity.LocationRecord),
) error {
	for {
		var event *nostr.Event
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				s.deps.Logger.Info("Relay feed ended")

				return nil
			}
			event = ev
		}

		record, err := s.decoder.decode(event, input.Target)
		if err != nil {
			category := categoryOf(err)
			s.deps.Recorder.EventSkipped(category)
			s.deps.Logger.Warn("Skipping location event",
				slog.String("event_id", event.ID),
				slog.String("category", category),
				slog.Any("error", err),
			)
			if !domainerrors.IsCategory(err, domainerrors.CategoryDecryption) {
				continue
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case updates <- s.now():
		}

		if record == nil {
			continue
		}
		if onRecord != nil {
			onRecord(record)
		}
		if input.Record && s.deps.Repo != nil {
			if err := s.deps.Repo.SaveLocation(ctx, record); err != nil {
				s.deps.Logger.Warn("Failed to record location",
					slog.String("event_id", record.EventID),
					slog.Any("error", err),
				)
			}
		}
	}
}
