package location

import (
	"fmt"
	"testing"

	domainerrors "sentinel/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_KnownValue(t *testing.T) {
	hash, err := Encode(57.64911, 10.40744, 11)
	require.NoError(t, err)
	assert.Equal(t, "u4pruydqqvj", hash)
}

func TestEncode_LengthMatchesPrecision(t *testing.T) {
	coords := []orb.Point{
		{24.94, 60.17},
		{-122.4194, 37.7749},
		{0, 0},
		{-180, -90},
		{180, 90},
		{0, 90},
		{180, 0},
		{180, 60.17},
	}

	for _, c := range coords {
		for p := 1; p <= 12; p++ {
			t.Run(fmt.Sprintf("%v/%d", c, p), func(t *testing.T) {
				hash, err := Encode(c.Lat(), c.Lon(), p)
				require.NoError(t, err)
				assert.Len(t, hash, p)

				bound, err := Bounds(hash)
				require.NoError(t, err)
				assert.True(t, bound.Contains(c), "cell %v should contain %v", bound, c)

				lat, lon, err := Decode(hash)
				require.NoError(t, err)
				assert.True(t, bound.Contains(orb.Point{lon, lat}))
			})
		}
	}
}

func TestEncode_UpperEdges(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		expected string
	}{
		{name: "north east corner", lat: 90, lon: 180, expected: "zzzzzzzzzzzz"},
		{name: "north pole", lat: 90, lon: 0, expected: "upbpbpbpbpbp"},
		{name: "antimeridian", lat: 0, lon: 180, expected: "xbpbpbpbpbpb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Encode(tt.lat, tt.lon, 12)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hash)

			bound, err := Bounds(hash)
			require.NoError(t, err)
			assert.True(t, bound.Contains(orb.Point{tt.lon, tt.lat}), "cell %v should contain (%v, %v)", bound, tt.lat, tt.lon)
		})
	}
}

func TestEncode_PrecisionIsMonotonic(t *testing.T) {
	var prev orb.Bound
	for p := 1; p <= 12; p++ {
		hash, err := Encode(60.17, 24.94, p)
		require.NoError(t, err)

		bound, err := Bounds(hash)
		require.NoError(t, err)

		if p > 1 {
			assert.GreaterOrEqual(t, bound.Min.Lat(), prev.Min.Lat())
			assert.GreaterOrEqual(t, bound.Min.Lon(), prev.Min.Lon())
			assert.LessOrEqual(t, bound.Max.Lat(), prev.Max.Lat())
			assert.LessOrEqual(t, bound.Max.Lon(), prev.Max.Lon())
			assert.Less(t, bound.Max.Lat()-bound.Min.Lat()+bound.Max.Lon()-bound.Min.Lon(),
				prev.Max.Lat()-prev.Min.Lat()+prev.Max.Lon()-prev.Min.Lon())
		}
		prev = bound
	}
}

func TestEncode_InvalidPrecision(t *testing.T) {
	for _, p := range []int{0, 13, -1} {
		_, err := Encode(60.17, 24.94, p)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPrecision, "precision %d", p)
	}
}

func TestEncode_InvalidCoordinate(t *testing.T) {
	_, err := Encode(91, 0, 8)
	assert.ErrorIs(t, err, domainerrors.ErrInputValidation)

	_, err = Encode(0, -181, 8)
	assert.ErrorIs(t, err, domainerrors.ErrInputValidation)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"letter a is not base32", "u4pa"},
		{"letter i is not base32", "i"},
		{"uppercase", "U4PRUY"},
		{"too long", "u4pruydqqvjuu"},
		{"punctuation", "u4p-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.hash)
			assert.ErrorIs(t, err, domainerrors.ErrMalformedGeohash)
			assert.True(t, domainerrors.IsCategory(err, domainerrors.CategoryCodec))
		})
	}
}

func TestDecode_ReturnsCellCentre(t *testing.T) {
	lat, lon, err := Decode("u4pruydqqvj")
	require.NoError(t, err)
	assert.InDelta(t, 57.64911, lat, 0.0001)
	assert.InDelta(t, 10.40744, lon, 0.0001)
}
