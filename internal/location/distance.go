package location

import (
	"sentinel/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Distance is the great-circle distance in meters between the cell centres
// of two records.
func Distance(a, b *entity.LocationRecord) float64 {
	return geo.Distance(orb.Point{a.Lon, a.Lat}, orb.Point{b.Lon, b.Lat})
}

// CellSize returns the width and height in meters of the cell denoted by
// hash, measured through its centre.
func CellSize(hash string) (width, height float64, err error) {
	bound, err := Bounds(hash)
	if err != nil {
		return 0, 0, err
	}
	center := bound.Center()

	width = geo.Distance(orb.Point{bound.Min.Lon(), center.Lat()}, orb.Point{bound.Max.Lon(), center.Lat()})
	height = geo.Distance(orb.Point{center.Lon(), bound.Min.Lat()}, orb.Point{center.Lon(), bound.Max.Lat()})

	return width, height, nil
}
