// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"sentinel/internal/domain/entity"
)

// ErrLocationNotFound is returned when no location is stored for a query.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository stores the history of received locations.
type LocationRepository interface {
	// SaveLocation persists a record. Saving the same event twice is a no-op.
	SaveLocation(ctx context.Context, record *entity.LocationRecord) error

	// FindRecentLocations returns up to limit records of author, newest
	// first. An empty dTag matches every device.
	FindRecentLocations(ctx context.Context, author, dTag string, limit int) ([]*entity.LocationRecord, error)

	// FindLatestLocation returns the newest record of author and dTag.
	FindLatestLocation(ctx context.Context, author, dTag string) (*entity.LocationRecord, error)
}
