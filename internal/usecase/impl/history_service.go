package impl

import (
	"context"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/domain/repository"
	"sentinel/internal/usecase"
)

const maxHistoryLimit = 500

type historyService struct {
	repo repository.LocationRepository
}

// NewHistoryService creates a new history service instance. repo may be nil
// when no database is configured; every call then fails with
// ErrHistoryDisabled.
func NewHistoryService(repo repository.LocationRepository) usecase.HistoryUsecase {
	return &historyService{repo: repo}
}

// Recent returns up to limit records, newest first.
func (s *historyService) Recent(ctx context.Context, author, dTag string, limit int) ([]*entity.LocationRecord, error) {
	if err := s.check(author); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = usecase.DefaultQueryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	return s.repo.FindRecentLocations(ctx, author, dTag, limit)
}

// Latest returns the newest record of one device.
func (s *historyService) Latest(ctx context.Context, author, dTag string) (*entity.LocationRecord, error) {
	if err := s.check(author); err != nil {
		return nil, err
	}

	return s.repo.FindLatestLocation(ctx, author, dTag)
}

func (s *historyService) check(author string) error {
	if s.repo == nil {
		return domainerrors.ErrHistoryDisabled
	}
	if !entity.IsPublicKeyHex(author) {
		return domainerrors.ErrMalformedIdentity.WithDetails("author must be a hex public key")
	}

	return nil
}
