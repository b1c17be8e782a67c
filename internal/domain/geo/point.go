package geo

import (
	"fmt"
	"math"
)

const earthRadiusMiles = 3958.8

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64
	Lng float64
}

func (p Point) Validate() error {
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude out of range: %f", p.Lat)
	}
	if p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("longitude out of range: %f", p.Lng)
	}

	return nil
}

// DistanceMiles returns the great-circle distance between two points.
func DistanceMiles(a, b Point) float64 {
	latA := radians(a.Lat)
	latB := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLng*sinLng

	return 2 * earthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Bounds is an axis-aligned lat/lng box used to prefilter radius searches.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

func (b Bounds) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// BoundingBox returns a box that fully covers the circle of radiusMiles around
// center. Near the poles the longitude span degenerates to the full range.
func BoundingBox(center Point, radiusMiles float64) Bounds {
	if radiusMiles < 0 {
		radiusMiles = 0
	}

	dLat := degrees(radiusMiles / earthRadiusMiles)
	b := Bounds{
		MinLat: math.Max(center.Lat-dLat, -90),
		MaxLat: math.Min(center.Lat+dLat, 90),
	}

	cosLat := math.Cos(radians(center.Lat))
	if cosLat <= 1e-9 {
		b.MinLng = -180
		b.MaxLng = 180
		return b
	}

	dLng := degrees(radiusMiles / (earthRadiusMiles * cosLat))
	if dLng >= 180 {
		b.MinLng = -180
		b.MaxLng = 180
		return b
	}
	b.MinLng = center.Lng - dLng
	b.MaxLng = center.Lng + dLng

	return b
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
