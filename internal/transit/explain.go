package transit

import (
	"fmt"
	"math"
	"strings"
)

// WeatherContext is the subset of weather data the explainer consumes.
// Nil means no weather was available; the AQI and rain rules are skipped.
type WeatherContext struct {
	AQI             int    `json:"aqi"`
	AQILabel        string `json:"aqiLabel"`
	RainProbability int    `json:"rainProbability"`
}

// Explanation is the reasoning output for the winning offer.
type Explanation struct {
	Reasons []string `json:"reasons"`
	Summary string   `json:"summary"`
}

// aqiBand maps the 1-5 air quality index to a label and whether outdoor
// travel is reasonable at that level.
var aqiBand = map[int]struct {
	label   string
	outdoor bool
}{
	1: {"Good", true},
	2: {"Moderate", true},
	3: {"Unhealthy (Sensitive)", false},
	4: {"Unhealthy", false},
	5: {"Very Unhealthy", false},
}

// ExplainBest generates the reasons a winning offer beat its alternatives.
// Rules fire in a fixed order so the two-reason summary stays stable for the
// same inputs: time, cost, air quality, peak status, crowding, safety, rain.
// A single-offer comparison gets a stock explanation.
func ExplainBest(best *Offer, all []*Offer, weather *WeatherContext, hour int) Explanation {
	if best == nil || len(all) <= 1 {
		return Explanation{
			Reasons: []string{"Only available transport option"},
			Summary: "Single option available.",
		}
	}

	var others []*Offer
	for _, o := range all {
		if o.Mode != best.Mode {
			others = append(others, o)
		}
	}

	var reasons []string
	bestMin := int(math.Round(float64(best.DurationSec) / 60))

	// Time.
	maxOtherMin := 0
	slowestLabel := ""
	for _, o := range others {
		oMin := int(math.Round(float64(o.DurationSec) / 60))
		if oMin > maxOtherMin {
			maxOtherMin = oMin
			slowestLabel = o.Label
		}
	}
	if diff := maxOtherMin - bestMin; diff >= 5 {
		reasons = append(reasons, fmt.Sprintf("%d minutes faster than %s", diff, slowestLabel))
	} else if diff > 0 {
		reasons = append(reasons, "Faster travel time")
	}

	// Cost.
	maxOtherCost := 0
	for _, o := range others {
		if o.FareAmount > maxOtherCost {
			maxOtherCost = o.FareAmount
		}
	}
	saved := maxOtherCost - best.FareAmount
	if best.FareAmount == 0 {
		reasons = append(reasons, "Zero cost — completely free")
	} else if saved >= 20 {
		reasons = append(reasons, fmt.Sprintf("Saves ₹%d compared to alternatives", saved))
	} else if saved > 0 {
		reasons = append(reasons, "Cost efficient")
	}

	// Air quality.
	if weather != nil && weather.AQI > 0 {
		band, known := aqiBand[weather.AQI]
		label := weather.AQILabel
		if label == "" {
			label = band.label
		}
		switch {
		case best.Mode == ModeWalk && known && band.outdoor:
			reasons = append(reasons, "Good air quality for outdoor travel (AQI: "+label+")")
		case best.Mode == ModeWalk && known && !band.outdoor:
			// Walking in bad air is a caveat, not a selling point.
		case (best.Mode == ModeMetro || best.Mode == ModeTrain) && known && !band.outdoor:
			reasons = append(reasons, "Better air quality — enclosed transit avoids outdoor pollution (AQI: "+label+")")
		case best.Mode == ModeCab && known && !band.outdoor:
			reasons = append(reasons, "AC cab shields from poor outdoor air quality")
		}
	}

	// Peak hours. The explainer uses a narrower peak window than the
	// evaluators' warnings do, matching commuter rush rather than the full
	// crowding band.
	peak := (hour >= 8 && hour < 11) || (hour >= 18 && hour < 21)
	if peak {
		if best.Mode == ModeMetro || best.Mode == ModeTrain {
			reasons = append(reasons, "Avoids road traffic during peak hours")
		} else if best.Mode == ModeWalk && bestMin <= 20 {
			reasons = append(reasons, "Walking avoids peak-hour road congestion")
		}
	} else if best.Mode == ModeCab {
		reasons = append(reasons, "Off-peak traffic — smooth cab ride")
	}
	if peak && best.PeakWarning == "" {
		reasons = append(reasons, "No peak-hour delays on this mode")
	}

	// Crowding.
	switch best.CrowdLevel {
	case CrowdLow:
		reasons = append(reasons, "Less crowded — comfortable journey")
	case CrowdModerate:
		reasons = append(reasons, "Moderate crowd levels")
	}

	// Safety.
	if best.SafetyScore > 0 {
		var sum, n float64
		for _, o := range others {
			if o.SafetyScore > 0 {
				sum += float64(o.SafetyScore)
				n++
			}
		}
		avgOther := 0.0
		if n > 0 {
			avgOther = sum / n
		}
		if best.SafetyScore >= 8 {
			reasons = append(reasons, fmt.Sprintf("High safety score (%d/10)", best.SafetyScore))
		} else if float64(best.SafetyScore) > avgOther+1 {
			reasons = append(reasons, "Safer route than alternatives")
		}
	}

	// Rain.
	if weather != nil && weather.RainProbability > 50 {
		if best.Mode == ModeCab || best.Mode == ModeMetro || best.Mode == ModeTrain {
			reasons = append(reasons, fmt.Sprintf("Sheltered from %d%% rain probability", weather.RainProbability))
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Best overall balance of time, cost, and comfort")
	}

	summary := reasons
	if len(summary) > 2 {
		summary = summary[:2]
	}
	return Explanation{Reasons: reasons, Summary: strings.Join(summary, " · ")}
}
