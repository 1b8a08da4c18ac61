package impl

import (
	"context"
	"log/slog"
	"slices"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/domain/service"
	"sentinel/internal/errors"
	"sentinel/internal/usecase"

	"github.com/nbd-wtf/go-nostr"
)

type queryService struct {
	relay    service.RelayClient
	decoder  eventDecoder
	recorder EventRecorder
	logger   *slog.Logger
}

// NewQueryService creates a new query service instance. cipher may be nil,
// in which case encrypted events are skipped.
func NewQueryService(relay service.RelayClient, cipher service.Cipher, self string, recorder EventRecorder, logger *slog.Logger) usecase.QueryUsecase {
	return &queryService{
		relay:    relay,
		decoder:  eventDecoder{cipher: cipher, self: self},
		recorder: recorderOrNop(recorder),
		logger:   logger,
	}
}

// Query fetches the stored locations of an author. One bad event never
// aborts the others: it is logged, counted and skipped.
func (s *queryService) Query(ctx context.Context, input *usecase.QueryInput) (*usecase.QueryResult, error) {
	if !entity.IsPublicKeyHex(input.Author) {
		return nil, domainerrors.ErrMalformedIdentity.WithDetails("author must be a hex public key")
	}

	filter := locationFilter(input.Author, input.DTag)
	filter.Limit = input.Limit
	if filter.Limit <= 0 {
		filter.Limit = usecase.DefaultQueryLimit
	}
	if !input.Since.IsZero() {
		since := nostr.Timestamp(input.Since.Unix())
		filter.Since = &since
	}

	events, err := s.relay.Fetch(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "fetch location events")
	}

	result := &usecase.QueryResult{
		Records: make([]*entity.LocationRecord, 0, len(events)),
	}
	for _, event := range events {
		record, err := s.decoder.decode(event, input.Author)
		if err != nil {
			result.Skipped++
			category := categoryOf(err)
			s.recorder.EventSkipped(category)
			s.logger.Warn("Skipping location event",
				slog.String("event_id", event.ID),
				slog.String("category", category),
				slog.Any("error", err),
			)

			continue
		}
		result.Records = append(result.Records, record)
	}

	slices.SortStableFunc(result.Records, func(a, b *entity.LocationRecord) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return result, nil
}
