package usecase

import (
	"context"

	"sentinel/internal/domain/entity"
)

// HistoryUsecase reads the locations recorded by follow sessions.
type HistoryUsecase interface {
	Recent(ctx context.Context, author, dTag string, limit int) ([]*entity.LocationRecord, error)
	Latest(ctx context.Context, author, dTag string) (*entity.LocationRecord, error)
}
