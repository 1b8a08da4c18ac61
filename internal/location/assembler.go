package location

import (
	"time"

	"sentinel/internal/domain/entity"
)

// AssemblePublic builds the unsigned template of a public location event.
func AssemblePublic(lat, lon float64, accuracy *float64, cfg entity.TrackingConfig, now time.Time) (*entity.EventTemplate, error) {
	content, tags, err := BuildPublicPayload(lat, lon, accuracy, cfg, now)
	if err != nil {
		return nil, err
	}

	return &entity.EventTemplate{
		Kind:    entity.KindPublicLocation,
		Content: content,
		Tags:    tags,
	}, nil
}

// AssembleEncrypted builds the unsigned template of an encrypted location
// event whose content is ciphertext for recipient.
func AssembleEncrypted(ciphertext, recipient string, cfg entity.TrackingConfig, now time.Time) (*entity.EventTemplate, error) {
	content, tags, err := BuildEncryptedEnvelope(ciphertext, recipient, cfg, now)
	if err != nil {
		return nil, err
	}

	return &entity.EventTemplate{
		Kind:    entity.KindEncryptedLocation,
		Content: content,
		Tags:    tags,
	}, nil
}
