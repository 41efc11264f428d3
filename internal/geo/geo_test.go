package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointValid(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		valid bool
	}{
		{"Mumbai", Point{Lat: 19.0760, Lng: 72.8777}, true},
		{"Equator origin", Point{Lat: 0, Lng: 0}, true},
		{"North pole", Point{Lat: 90, Lng: 0}, true},
		{"Latitude too high", Point{Lat: 91, Lng: 0}, false},
		{"Latitude too low", Point{Lat: -91, Lng: 0}, false},
		{"Longitude too high", Point{Lat: 0, Lng: 181}, false},
		{"Longitude too low", Point{Lat: 0, Lng: -181}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.point.Valid())
		})
	}
}

func TestHaversineKm(t *testing.T) {
	// Churchgate to Andheri station, roughly 20.5 km apart as the crow flies.
	churchgate := Point{Lat: 18.9357, Lng: 72.8273}
	andheri := Point{Lat: 19.1197, Lng: 72.8464}

	d := HaversineKm(churchgate, andheri)
	assert.InDelta(t, 20.5, d, 1.0)

	// Symmetric.
	assert.InDelta(t, d, HaversineKm(andheri, churchgate), 1e-9)

	// Zero distance to self.
	assert.InDelta(t, 0, HaversineKm(churchgate, churchgate), 1e-9)
}

func TestBoundsContains(t *testing.T) {
	mumbai := Bounds{MinLat: 18.87, MaxLat: 19.32, MinLng: 72.75, MaxLng: 73.05}

	assert.True(t, mumbai.Contains(Point{Lat: 19.07, Lng: 72.87}))
	assert.True(t, mumbai.Contains(Point{Lat: 18.87, Lng: 72.75}), "bounds are inclusive")
	assert.False(t, mumbai.Contains(Point{Lat: 28.61, Lng: 77.20}), "Delhi is outside")
	assert.False(t, mumbai.Contains(Point{Lat: 19.07, Lng: 73.10}))
}

func TestInterpolate(t *testing.T) {
	a := Point{Lat: 10, Lng: 20}
	b := Point{Lat: 20, Lng: 40}

	assert.Equal(t, a, Interpolate(a, b, 0))
	assert.Equal(t, b, Interpolate(a, b, 1))

	mid := Interpolate(a, b, 0.5)
	assert.InDelta(t, 15, mid.Lat, 1e-9)
	assert.InDelta(t, 30, mid.Lng, 1e-9)
}

func TestSamplePoints(t *testing.T) {
	a := Point{Lat: 0, Lng: 0}
	b := Point{Lat: 6, Lng: 12}

	points := SamplePoints(a, b, 6)
	assert.Len(t, points, 7, "count segments produce count+1 points")
	assert.Equal(t, a, points[0])
	assert.Equal(t, b, points[6])
	assert.InDelta(t, 3, points[3].Lat, 1e-9)
}

func TestBoundsAround(t *testing.T) {
	p := Point{Lat: 19.0, Lng: 72.8}
	b := BoundsAround(p, 2.5)

	assert.True(t, b.Contains(p))
	// A point 2 km north should fall inside the box.
	north := Point{Lat: p.Lat + 2.0/EarthRadiusKm*180/3.14159, Lng: p.Lng}
	assert.True(t, b.Contains(north))
}
