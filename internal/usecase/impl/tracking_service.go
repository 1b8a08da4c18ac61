package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/domain/service"
	"sentinel/internal/errors"
	"sentinel/internal/location"
	"sentinel/internal/usecase"
)

type trackingService struct {
	cfg      entity.TrackingConfig
	signer   service.Signer
	cipher   service.Cipher
	relay    service.RelayClient
	recorder EventRecorder
	logger   *slog.Logger
	now      func() time.Time

	mu     sync.Mutex
	latest *entity.Position
}

// NewTrackingService creates a new tracking service instance. cipher is only
// used when cfg is encrypted.
func NewTrackingService(
	cfg entity.TrackingConfig,
	signer service.Signer,
	cipher service.Cipher,
	relay service.RelayClient,
	recorder EventRecorder,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	return &trackingService{
		cfg:      cfg,
		signer:   signer,
		cipher:   cipher,
		relay:    relay,
		recorder: recorderOrNop(recorder),
		logger:   logger,
		now:      time.Now,
	}
}

// ReportPosition stores and publishes a new fix. Invalid coordinates are
// rejected before anything is stored.
func (s *trackingService) ReportPosition(ctx context.Context, pos *entity.Position) (*usecase.PublishResult, error) {
	if pos == nil {
		return nil, domainerrors.ErrInputValidation.WithDetails("position is required")
	}
	if _, err := location.Encode(pos.Lat, pos.Lon, s.cfg.Precision()); err != nil {
		return nil, err
	}

	stored := *pos
	if stored.ObservedAt.IsZero() {
		stored.ObservedAt = s.now()
	}

	s.mu.Lock()
	s.latest = &stored
	s.mu.Unlock()

	return s.publish(ctx, &stored)
}

// PublishLatest republishes the latest fix.
func (s *trackingService) PublishLatest(ctx context.Context) (*usecase.PublishResult, error) {
	pos, ok := s.LatestPosition()
	if !ok {
		return nil, usecase.ErrNoPosition
	}

	return s.publish(ctx, pos)
}

// LatestPosition returns a copy of the latest fix.
func (s *trackingService) LatestPosition() (*entity.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest == nil {
		return nil, false
	}
	pos := *s.latest

	return &pos, true
}

func (s *trackingService) publish(ctx context.Context, pos *entity.Position) (*usecase.PublishResult, error) {
	now := s.now()

	hash, err := location.Encode(pos.Lat, pos.Lon, s.cfg.Precision())
	if err != nil {
		return nil, err
	}

	result := &usecase.PublishResult{
		Kind:        s.cfg.Kind(),
		Geohash:     hash,
		PublishedAt: now,
	}

	if !s.cfg.Encrypted() {
		tmpl, err := location.AssemblePublic(pos.Lat, pos.Lon, pos.Accuracy, s.cfg, now)
		if err != nil {
			return nil, err
		}

		id, err := s.signAndPublish(ctx, tmpl, now)
		if err != nil {
			return nil, err
		}
		result.EventIDs = append(result.EventIDs, id)

		return result, nil
	}

	plaintext, err := location.BuildEncryptedPlaintextPayload(pos.Lat, pos.Lon, pos.Accuracy, s.cfg.Precision())
	if err != nil {
		return nil, err
	}

	// One event per recipient, all sharing the d tag.
	var errs []error
	for _, recipient := range s.cfg.Recipients() {
		id, err := s.publishFor(ctx, plaintext, recipient, now)
		if err != nil {
			s.logger.Warn("Failed to publish location for recipient",
				slog.String("recipient", recipient),
				slog.Any("error", err),
			)
			errs = append(errs, err)

			continue
		}
		result.EventIDs = append(result.EventIDs, id)
	}

	if len(result.EventIDs) == 0 {
		return nil, errors.Join(errs...)
	}

	return result, nil
}

func (s *trackingService) publishFor(ctx context.Context, plaintext, recipient string, now time.Time) (string, error) {
	ciphertext, err := s.cipher.Encrypt(recipient, plaintext)
	if err != nil {
		return "", errors.Wrap(err, "encrypt location")
	}

	tmpl, err := location.AssembleEncrypted(ciphertext, recipient, s.cfg, now)
	if err != nil {
		return "", err
	}

	return s.signAndPublish(ctx, tmpl, now)
}

func (s *trackingService) signAndPublish(ctx context.Context, tmpl *entity.EventTemplate, now time.Time) (string, error) {
	event := tmpl.ToEvent(now)
	if err := s.signer.Sign(&event); err != nil {
		return "", errors.Wrap(err, "sign location event")
	}

	if err := s.relay.Publish(ctx, event); err != nil {
		return "", domainerrors.ErrPublishFailed.WithDetails(err.Error())
	}

	s.recorder.EventPublished(event.Kind)
	dTag, _ := tmpl.TagValue(location.TagIdentifier)
	s.logger.Debug("Location event published",
		slog.String("event_id", event.ID),
		slog.Int("kind", event.Kind),
		slog.String("d_tag", dTag),
	)

	return event.ID, nil
}
