package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateEco(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		km      float64
		co2     int
		score   int
		savings int
		label   string
	}{
		{"walk is zero emission", ModeWalk, 10, 0, 100, 100, "Excellent"},
		{"metro beats the baseline", ModeMetro, 10, 150, 88, 88, "Great"},
		{"train", ModeTrain, 10, 200, 83, 83, "Great"},
		{"bus", ModeTransit, 10, 300, 75, 75, "Great"},
		{"cab is the baseline", ModeCab, 10, 1200, 0, 0, "Baseline"},
		{"auto", ModeAuto, 10, 800, 33, 33, "Fair"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eco := CalculateEco(tt.mode, tt.km)
			assert.Equal(t, tt.co2, eco.CO2Grams)
			assert.Equal(t, tt.score, eco.Score)
			assert.Equal(t, tt.savings, eco.SavingsPercent)
			assert.Equal(t, tt.label, eco.Label)
		})
	}
}

func TestCalculateEcoZeroDistance(t *testing.T) {
	eco := CalculateEco(ModeMetro, 0)
	assert.Equal(t, 0, eco.CO2Grams)
	assert.Equal(t, 0, eco.Score)
	assert.Equal(t, "Baseline", eco.Label)
}

func TestCalculateEcoUnknownMode(t *testing.T) {
	eco := CalculateEco(Mode("rocket"), 10)
	assert.Equal(t, 1200, eco.CO2Grams, "unknown modes fall back to the cab factor")
	assert.Equal(t, 0, eco.Score)
}

func TestApplyEcoUsesTripDistance(t *testing.T) {
	walk := &Offer{Mode: ModeWalk, DistanceKm: 9.5}
	cab := &Offer{Mode: ModeCab, DistanceKm: 10}

	applyEco([]*Offer{walk, cab}, 10)

	assert.Equal(t, 0, walk.CO2Grams)
	assert.Equal(t, 100, walk.EcoScore)
	assert.Equal(t, "Excellent", walk.EcoLabel)
	assert.Equal(t, 1200, cab.CO2Grams)
	assert.Equal(t, 0, cab.EcoScore)
	assert.Equal(t, "Baseline", cab.EcoLabel)
}
