package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"margdarshak.in/internal/clock"
	"margdarshak.in/internal/geo"
)

func TestTrainFare(t *testing.T) {
	tests := []struct {
		km   float64
		fare int
	}{
		{5, 5}, {10, 5}, {20, 10}, {40, 15}, {60, 20}, {80, 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.fare, trainFare(tt.km), "km=%v", tt.km)
	}
}

func TestEvaluateTrainWesternLine(t *testing.T) {
	e, _ := newTestEngine(14)

	// Churchgate to Andheri along the Western line.
	offer := e.evaluateTrain(
		geo.Point{Lat: 18.9357, Lng: 72.8273},
		geo.Point{Lat: 19.1197, Lng: 72.8464},
		clock.TimeOfDay{Hour: 14})

	require.NotNil(t, offer)
	assert.Equal(t, ModeTrain, offer.Mode)
	assert.Equal(t, "Western Railway", offer.LineName)
	assert.Equal(t, "Churchgate", offer.Boarding)
	assert.Equal(t, "Andheri", offer.Alighting)
	assert.Equal(t, 15, offer.StationCount)
	assert.Equal(t, CrowdLow, offer.CrowdLevel)
	assert.Empty(t, offer.PeakWarning)
	assert.Greater(t, offer.FareAmount, 0)
}

func TestEvaluateTrainPeakCrowding(t *testing.T) {
	e, _ := newTestEngine(9)

	offer := e.evaluateTrain(
		geo.Point{Lat: 18.9357, Lng: 72.8273},
		geo.Point{Lat: 19.1197, Lng: 72.8464},
		clock.TimeOfDay{Hour: 9, IsPeak: true})

	require.NotNil(t, offer)
	assert.Equal(t, CrowdPacked, offer.CrowdLevel)
	assert.Equal(t, "Peak hours — expect heavy crowding", offer.PeakWarning)
}

func TestEvaluateTrainNotApplicable(t *testing.T) {
	e, _ := newTestEngine(14)
	tod := clock.TimeOfDay{Hour: 14}

	t.Run("outside coverage", func(t *testing.T) {
		offer := e.evaluateTrain(
			geo.Point{Lat: 28.6139, Lng: 77.2090},
			geo.Point{Lat: 28.5355, Lng: 77.3910},
			tod)
		assert.Nil(t, offer)
	})

	t.Run("same nearest station both ends", func(t *testing.T) {
		churchgate := geo.Point{Lat: 18.9357, Lng: 72.8273}
		offer := e.evaluateTrain(churchgate, churchgate, tod)
		assert.Nil(t, offer)
	})
}

func TestLineDistanceKm(t *testing.T) {
	// Distance is symmetric in station order.
	line := mumbaiLine(t, "L1")
	d1 := lineDistanceKm(line, 0, 5)
	d2 := lineDistanceKm(line, 5, 0)
	assert.InDelta(t, d1, d2, 1e-9)
	assert.Greater(t, d1, 0.0)
}
