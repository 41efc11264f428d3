package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"margdarshak.in/internal/clock"
	"margdarshak.in/internal/geo"
)

func TestMetroFare(t *testing.T) {
	tests := []struct {
		stations int
		fare     int
	}{
		{1, 10}, {3, 10}, {4, 20}, {6, 20}, {7, 30}, {10, 30}, {11, 40}, {15, 40}, {16, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.fare, metroFare(tt.stations), "stations=%d", tt.stations)
	}
}

func TestMetroDurationMinutes(t *testing.T) {
	// 10 stations, 1 interchange, 0.5 km walk each end: 20 + 4 + 12.
	assert.Equal(t, 36, metroDurationMinutes(10, 1, 0.5, 0.5))
	assert.Equal(t, 4, metroDurationMinutes(2, 0, 0, 0))
}

func TestEvaluateMetroSameLine(t *testing.T) {
	e, _ := newTestEngine(14)

	// Versova to Ghatkopar, both on Line 1.
	offer := e.evaluateMetro(
		geo.Point{Lat: 19.1312, Lng: 72.8171},
		geo.Point{Lat: 19.0866, Lng: 72.9085},
		clock.TimeOfDay{Hour: 14})

	require.NotNil(t, offer)
	assert.Equal(t, ModeMetro, offer.Mode)
	assert.Equal(t, "Versova", offer.Boarding)
	assert.Equal(t, "Ghatkopar", offer.Alighting)
	assert.Equal(t, "Line 1 (Blue)", offer.LineName)
	assert.Equal(t, 11, offer.StationCount)
	assert.Equal(t, 40, offer.FareAmount)
	assert.Equal(t, "4-7 min", offer.Frequency)
	assert.Empty(t, offer.Interchange)
	assert.Empty(t, offer.PeakWarning)
}

func TestEvaluateMetroPeakWarning(t *testing.T) {
	e, _ := newTestEngine(9)

	offer := e.evaluateMetro(
		geo.Point{Lat: 19.1312, Lng: 72.8171},
		geo.Point{Lat: 19.0866, Lng: 72.9085},
		clock.TimeOfDay{Hour: 9, IsPeak: true})

	require.NotNil(t, offer)
	assert.Equal(t, "Peak hours — expect high crowd at boarding", offer.PeakWarning)
}

func TestEvaluateMetroNotApplicable(t *testing.T) {
	e, _ := newTestEngine(14)
	tod := clock.TimeOfDay{Hour: 14}

	t.Run("outside coverage", func(t *testing.T) {
		offer := e.evaluateMetro(
			geo.Point{Lat: 28.6139, Lng: 77.2090},
			geo.Point{Lat: 28.5355, Lng: 77.3910},
			tod)
		assert.Nil(t, offer)
	})

	t.Run("same nearest station both ends", func(t *testing.T) {
		versova := geo.Point{Lat: 19.1312, Lng: 72.8171}
		offer := e.evaluateMetro(versova, versova, tod)
		assert.Nil(t, offer)
	})

	t.Run("one end beyond walking reach", func(t *testing.T) {
		// Deep in Navi Mumbai, inside bus bounds but far from any metro line.
		offer := e.evaluateMetro(
			geo.Point{Lat: 19.1312, Lng: 72.8171},
			geo.Point{Lat: 18.9935, Lng: 73.0190},
			tod)
		assert.Nil(t, offer)
	})
}
