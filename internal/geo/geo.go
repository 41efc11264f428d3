// Package geo provides geographic primitives for the transport engine:
// points, great-circle distance, bounding boxes, and a spatial index over
// static transit nodes.
package geo

import "math"

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0
)

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point is a plausible WGS84 coordinate.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// HaversineKm returns the great-circle distance between two points in kilometers.
func HaversineKm(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Bounds is a latitude/longitude bounding box.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Contains reports whether the point falls inside the box (inclusive).
func (b Bounds) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// Interpolate returns the point a fraction t of the way from a to b along the
// straight line in coordinate space. Linear interpolation is a deliberate
// approximation; it does not follow roads.
func Interpolate(a, b Point, t float64) Point {
	return Point{
		Lat: a.Lat + (b.Lat-a.Lat)*t,
		Lng: a.Lng + (b.Lng-a.Lng)*t,
	}
}

// SamplePoints returns count+1 equally spaced points from a to b, inclusive
// of both endpoints.
func SamplePoints(a, b Point, count int) []Point {
	points := make([]Point, 0, count+1)
	for i := 0; i <= count; i++ {
		points = append(points, Interpolate(a, b, float64(i)/float64(count)))
	}
	return points
}
