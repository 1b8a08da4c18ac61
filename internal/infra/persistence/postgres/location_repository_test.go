package postgres

import (
	"testing"
	"time"

	"sentinel/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestLocationModelConversion_KeepsOptionalAccuracy(t *testing.T) {
	acc := 12.5
	record := &entity.LocationRecord{
		EventID:    "e1",
		Author:     "a1",
		Geohash:    "u4pruydq",
		Lat:        57.649,
		Lon:        10.407,
		Accuracy:   &acc,
		DTag:       "phone",
		Timestamp:  time.Unix(1_700_000_000, 0).UTC(),
		Visibility: entity.VisibilityEncrypted,
		Kind:       entity.KindEncryptedLocation,
	}

	assert.Equal(t, record, toLocationDomain(fromLocationDomain(record)))

	record.Accuracy = nil
	assert.Nil(t, toLocationDomain(fromLocationDomain(record)).Accuracy)
}

func TestNewLocationRepository_NilWithoutDatabase(t *testing.T) {
	assert.Nil(t, NewLocationRepository(nil))
}
