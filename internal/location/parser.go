package location

import (
	"encoding/json"
	"math"
	"strconv"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"

	"github.com/nbd-wtf/go-nostr"
)

// ParsePublicRecord extracts the location carried in the tags of a public
// location event.
//
// A missing or malformed geohash fails the whole record. A malformed
// accuracy is treated as absent and a missing identifier as "".
func ParsePublicRecord(event *nostr.Event) (*entity.LocationRecord, error) {
	if event == nil || event.Kind != entity.KindPublicLocation {
		return nil, wrongKind(event, entity.KindPublicLocation)
	}

	hash, ok := entity.FindTagValue(event.Tags, TagGeohash)
	if !ok {
		return nil, domainerrors.ErrMissingTag.WithDetails(TagGeohash)
	}

	var accuracy *float64
	if v, ok := entity.FindTagValue(event.Tags, TagAccuracy); ok {
		accuracy = parseAccuracy(v)
	}

	return newRecord(event, hash, accuracy)
}

// ParseEncryptedRecord extracts the location of an encrypted location event
// from its already decrypted plaintext. It never decrypts.
func ParseEncryptedRecord(event *nostr.Event, plaintext string) (*entity.LocationRecord, error) {
	if event == nil || event.Kind != entity.KindEncryptedLocation {
		return nil, wrongKind(event, entity.KindEncryptedLocation)
	}

	var pairs [][]string
	if err := json.Unmarshal([]byte(plaintext), &pairs); err != nil {
		return nil, domainerrors.ErrMalformedPayload.WithDetails(err.Error())
	}

	hash, ok := findPair(pairs, TagGeohash)
	if !ok {
		return nil, domainerrors.ErrMalformedPayload.WithDetails("no geohash pair")
	}

	var accuracy *float64
	if v, ok := findPair(pairs, TagAccuracy); ok {
		accuracy = parseAccuracy(v)
	}

	return newRecord(event, hash, accuracy)
}

func newRecord(event *nostr.Event, hash string, accuracy *float64) (*entity.LocationRecord, error) {
	visibility, ok := entity.VisibilityForKind(event.Kind)
	if !ok {
		return nil, domainerrors.ErrWrongKind.WithDetails("got " + strconv.Itoa(event.Kind))
	}

	lat, lon, err := Decode(hash)
	if err != nil {
		return nil, err
	}

	dTag, _ := entity.FindTagValue(event.Tags, TagIdentifier)

	return &entity.LocationRecord{
		EventID:    event.ID,
		Author:     event.PubKey,
		Geohash:    hash,
		Lat:        lat,
		Lon:        lon,
		Accuracy:   accuracy,
		DTag:       dTag,
		Timestamp:  event.CreatedAt.Time(),
		Visibility: visibility,
		Kind:       event.Kind,
	}, nil
}

func findPair(pairs [][]string, name string) (string, bool) {
	for _, p := range pairs {
		if len(p) >= 2 && p[0] == name {
			return p[1], true
		}
	}

	return "", false
}

// parseAccuracy returns nil for anything that is not a finite number.
func parseAccuracy(v string) *float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	return &f
}

func wrongKind(event *nostr.Event, want int) error {
	got := "nil event"
	if event != nil {
		got = strconv.Itoa(event.Kind)
	}

	return domainerrors.ErrWrongKind.WithDetails("want " + strconv.Itoa(want) + ", got " + got)
}
