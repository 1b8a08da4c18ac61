// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/domain/repository"
	"sentinel/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the domain.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository. It
// returns nil when no database is configured.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	if db == nil {
		return nil
	}

	return &locationRepository{db: db}
}

// SaveLocation persists a record; an event already stored is ignored.
func (repo *locationRepository) SaveLocation(ctx context.Context, record *entity.LocationRecord) error {
	locationM := fromLocationDomain(record)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(locationM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrInputValidation.WithDetails("location record is incomplete")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save location")
	}

	return nil
}

// FindRecentLocations retrieves the newest locations of an author.
func (repo *locationRepository) FindRecentLocations(ctx context.Context, author, dTag string, limit int) ([]*entity.LocationRecord, error) {
	var locationModels []*model.LocationModel

	err := repo.scope(ctx, author, dTag).
		Order("published_at DESC").
		Limit(limit).
		Find(&locationModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent locations")
	}

	records := make([]*entity.LocationRecord, 0, len(locationModels))
	for _, locationM := range locationModels {
		records = append(records, toLocationDomain(locationM))
	}

	return records, nil
}

// FindLatestLocation retrieves the newest location of one device.
func (repo *locationRepository) FindLatestLocation(ctx context.Context, author, dTag string) (*entity.LocationRecord, error) {
	var locationM model.LocationModel

	err := repo.scope(ctx, author, dTag).
		Order("published_at DESC").
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest location")
	}

	return toLocationDomain(&locationM), nil
}

func (repo *locationRepository) scope(ctx context.Context, author, dTag string) *gorm.DB {
	tx := repo.db.WithContext(ctx).Where("author = ?", author)
	if dTag != "" {
		tx = tx.Where("d_tag = ?", dTag)
	}

	return tx
}

func fromLocationDomain(record *entity.LocationRecord) *model.LocationModel {
	return &model.LocationModel{
		EventID:     record.EventID,
		Author:      record.Author,
		DTag:        record.DTag,
		Geohash:     record.Geohash,
		Latitude:    record.Lat,
		Longitude:   record.Lon,
		Accuracy:    record.Accuracy,
		Visibility:  string(record.Visibility),
		Kind:        record.Kind,
		PublishedAt: record.Timestamp.UTC(),
	}
}

func toLocationDomain(locationM *model.LocationModel) *entity.LocationRecord {
	return &entity.LocationRecord{
		EventID:    locationM.EventID,
		Author:     locationM.Author,
		Geohash:    locationM.Geohash,
		Lat:        locationM.Latitude,
		Lon:        locationM.Longitude,
		Accuracy:   locationM.Accuracy,
		DTag:       locationM.DTag,
		Timestamp:  locationM.PublishedAt,
		Visibility: entity.Visibility(locationM.Visibility),
		Kind:       locationM.Kind,
	}
}
