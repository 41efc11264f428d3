package transit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainBestSingleOption(t *testing.T) {
	only := &Offer{Mode: ModeCab, Label: "Cab / Auto"}

	exp := ExplainBest(only, []*Offer{only}, nil, 14)
	assert.Equal(t, []string{"Only available transport option"}, exp.Reasons)
	assert.Equal(t, "Single option available.", exp.Summary)
}

func TestExplainBestFreeWalk(t *testing.T) {
	walk := &Offer{Mode: ModeWalk, Label: "Walk", FareAmount: 0, DurationSec: 10 * 60}
	cab := &Offer{Mode: ModeCab, Label: "Cab / Auto", FareAmount: 60, DurationSec: 5 * 60}

	exp := ExplainBest(walk, []*Offer{walk, cab}, nil, 14)
	assert.Contains(t, exp.Reasons, "Zero cost — completely free")
}

func TestExplainBestTimeAdvantage(t *testing.T) {
	metro := &Offer{Mode: ModeMetro, Label: "Metro Line 1 (Blue)", FareAmount: 30, DurationSec: 25 * 60}
	cab := &Offer{Mode: ModeCab, Label: "Cab / Auto", FareAmount: 250, DurationSec: 55 * 60}

	exp := ExplainBest(metro, []*Offer{metro, cab}, nil, 14)
	assert.Contains(t, exp.Reasons, "30 minutes faster than Cab / Auto")
	assert.Contains(t, exp.Reasons, "Saves ₹220 compared to alternatives")
}

func TestExplainBestPeakHourRules(t *testing.T) {
	metro := &Offer{Mode: ModeMetro, Label: "Metro", FareAmount: 30, DurationSec: 25 * 60}
	cab := &Offer{Mode: ModeCab, Label: "Cab / Auto", FareAmount: 100, DurationSec: 26 * 60}

	peak := ExplainBest(metro, []*Offer{metro, cab}, nil, 9)
	assert.Contains(t, peak.Reasons, "Avoids road traffic during peak hours")
	assert.Contains(t, peak.Reasons, "No peak-hour delays on this mode")

	offPeak := ExplainBest(cab, []*Offer{cab, metro}, nil, 14)
	assert.Contains(t, offPeak.Reasons, "Off-peak traffic — smooth cab ride")
}

func TestExplainBestWeatherRules(t *testing.T) {
	t.Run("good air favors walking", func(t *testing.T) {
		walk := &Offer{Mode: ModeWalk, Label: "Walk", DurationSec: 10 * 60}
		cab := &Offer{Mode: ModeCab, Label: "Cab / Auto", FareAmount: 60, DurationSec: 8 * 60}
		weather := &WeatherContext{AQI: 1, AQILabel: "Good"}

		exp := ExplainBest(walk, []*Offer{walk, cab}, weather, 14)
		assert.Contains(t, exp.Reasons, "Good air quality for outdoor travel (AQI: Good)")
	})

	t.Run("bad air favors enclosed transit", func(t *testing.T) {
		metro := &Offer{Mode: ModeMetro, Label: "Metro", FareAmount: 30, DurationSec: 25 * 60}
		walk := &Offer{Mode: ModeWalk, Label: "Walk", DurationSec: 60 * 60}
		weather := &WeatherContext{AQI: 4, AQILabel: "Unhealthy"}

		exp := ExplainBest(metro, []*Offer{metro, walk}, weather, 14)
		assert.Contains(t, exp.Reasons,
			"Better air quality — enclosed transit avoids outdoor pollution (AQI: Unhealthy)")
	})

	t.Run("rain shelters covered modes", func(t *testing.T) {
		cab := &Offer{Mode: ModeCab, Label: "Cab / Auto", FareAmount: 100, DurationSec: 20 * 60}
		walk := &Offer{Mode: ModeWalk, Label: "Walk", DurationSec: 50 * 60}
		weather := &WeatherContext{RainProbability: 80}

		exp := ExplainBest(cab, []*Offer{cab, walk}, weather, 14)
		assert.Contains(t, exp.Reasons, "Sheltered from 80% rain probability")
	})
}

func TestExplainBestCrowdAndSafety(t *testing.T) {
	train := &Offer{
		Mode: ModeTrain, Label: "Western Railway",
		FareAmount: 10, DurationSec: 40 * 60,
		CrowdLevel: CrowdLow, SafetyScore: 9,
	}
	cab := &Offer{Mode: ModeCab, Label: "Cab / Auto", FareAmount: 300, DurationSec: 60 * 60, SafetyScore: 7}

	exp := ExplainBest(train, []*Offer{train, cab}, nil, 14)
	assert.Contains(t, exp.Reasons, "Less crowded — comfortable journey")
	assert.Contains(t, exp.Reasons, "High safety score (9/10)")
}

func TestExplainBestSummaryIsFirstTwoReasons(t *testing.T) {
	metro := &Offer{Mode: ModeMetro, Label: "Metro", FareAmount: 30, DurationSec: 25 * 60, CrowdLevel: CrowdLow}
	cab := &Offer{Mode: ModeCab, Label: "Cab / Auto", FareAmount: 250, DurationSec: 55 * 60}

	exp := ExplainBest(metro, []*Offer{metro, cab}, nil, 9)
	require.Greater(t, len(exp.Reasons), 2)
	assert.Equal(t, strings.Join(exp.Reasons[:2], " · "), exp.Summary)
}

func TestExplainBestDefaultReason(t *testing.T) {
	a := &Offer{Mode: ModeCab, Label: "Cab / Auto", FareAmount: 50, DurationSec: 20 * 60}
	b := &Offer{Mode: ModeTransit, Label: "Bus 240", FareAmount: 50, DurationSec: 20 * 60}

	exp := ExplainBest(a, []*Offer{a, b}, nil, 14)
	require.NotEmpty(t, exp.Reasons)
	assert.NotEmpty(t, exp.Summary)
}
