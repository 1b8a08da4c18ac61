// Package location translates positions to and from the nostr location
// event kinds: geohash encoding, payload building and parsing, and event
// assembly ready for signing.
package location

import (
	"math"
	"strconv"
	"strings"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"

	"github.com/mmcloughlin/geohash"
	"github.com/paulmach/orb"
)

// alphabet is the geohash base-32 alphabet.
const alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

const edgeInset = 1e-9

// Encode returns the geohash of (lat, lon) with precision characters.
func Encode(lat, lon float64, precision int) (string, error) {
	if err := entity.ValidatePrecision(precision); err != nil {
		return "", err
	}
	if err := validateCoordinate(lat, lon); err != nil {
		return "", err
	}

	// The library wraps the closed upper edges to the opposite side, so 90
	// and 180 are encoded from just inside the range. The inset is far
	// below the 32-bit cell size the library quantises to.
	if lat == 90 {
		lat -= edgeInset
	}
	if lon == 180 {
		lon -= edgeInset
	}

	return geohash.EncodeWithPrecision(lat, lon, uint(precision)), nil
}

// Decode returns the centre of the cell denoted by hash.
func Decode(hash string) (lat, lon float64, err error) {
	bound, err := Bounds(hash)
	if err != nil {
		return 0, 0, err
	}
	center := bound.Center()

	return center.Lat(), center.Lon(), nil
}

// Bounds returns the cell denoted by hash.
func Bounds(hash string) (orb.Bound, error) {
	if err := validateGeohash(hash); err != nil {
		return orb.Bound{}, err
	}
	box := geohash.BoundingBox(hash)

	return orb.Bound{
		Min: orb.Point{box.MinLng, box.MinLat},
		Max: orb.Point{box.MaxLng, box.MaxLat},
	}, nil
}

func validateGeohash(hash string) error {
	if hash == "" {
		return domainerrors.ErrMalformedGeohash.WithDetails("empty geohash")
	}
	if len(hash) > entity.MaxPrecision {
		return domainerrors.ErrMalformedGeohash.WithDetails("geohash longer than " + strconv.Itoa(entity.MaxPrecision))
	}
	for _, r := range hash {
		if !strings.ContainsRune(alphabet, r) {
			return domainerrors.ErrMalformedGeohash.WithDetails("invalid character " + strconv.QuoteRune(r))
		}
	}

	return nil
}

func validateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return domainerrors.ErrInputValidation.WithDetails("latitude out of range: " + strconv.FormatFloat(lat, 'f', -1, 64))
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return domainerrors.ErrInputValidation.WithDetails("longitude out of range: " + strconv.FormatFloat(lon, 'f', -1, 64))
	}

	return nil
}
