package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateWalk(t *testing.T) {
	offer := evaluateWalk(1.0)
	assert.Equal(t, ModeWalk, offer.Mode)
	assert.Equal(t, 0, offer.FareAmount)
	assert.Equal(t, 720, offer.DurationSec, "1 km at 5 km/h is 12 minutes")
	assert.Equal(t, 1.0, offer.DistanceKm)
}

func TestEvaluateCab(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		wantFare   int
	}{
		{"short hop", 1.2, 47},
		{"cross town", 10, 170},
		{"minimal", 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := evaluateCab(tt.distanceKm)
			assert.Equal(t, ModeCab, offer.Mode)
			assert.Equal(t, tt.wantFare, offer.FareAmount)
		})
	}

	offer := evaluateCab(25)
	assert.Equal(t, 3600, offer.DurationSec, "25 km at 25 km/h is one hour")
}

func TestEvaluateGenericTransit(t *testing.T) {
	short := evaluateGenericTransit(2.0)
	assert.Equal(t, ModeTransit, short.Mode)
	assert.Equal(t, 10, short.FareAmount, "fare floor applies under 3.33 km")

	long := evaluateGenericTransit(12.0)
	assert.Equal(t, 36, long.FareAmount)
	assert.Equal(t, 2400, long.DurationSec, "12 km at 18 km/h is 40 minutes")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "45s", FormatDuration(45))
	assert.Equal(t, "25 min", FormatDuration(25*60))
	assert.Equal(t, "1h 20m", FormatDuration(80*60))
	assert.Equal(t, "2h", FormatDuration(120*60))

	assert.Equal(t, "850 m", FormatDistanceKm(0.85))
	assert.Equal(t, "4.2 km", FormatDistanceKm(4.2))

	free := &Offer{FareAmount: 0}
	assert.Equal(t, "Free", free.FormatFare())
	paid := &Offer{FareAmount: 47}
	assert.Equal(t, "₹47", paid.FormatFare())
}
