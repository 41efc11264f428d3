package transit

import "math"

// Emission factors in grams CO2 per passenger-km, Indian averages. Cab is the
// single-occupancy baseline every other mode is scored against.
var co2GramsPerKm = map[Mode]float64{
	ModeWalk:    0,
	ModeMetro:   15,
	ModeTrain:   20,
	ModeBus:     30,
	ModeTransit: 30,
	ModeCab:     120,
	ModeAuto:    80,
}

const cabBaselineGramsPerKm = 120.0

// EcoMetrics grades a mode's emissions on a 0-100 scale where 100 is zero
// emission and 0 matches the cab baseline.
type EcoMetrics struct {
	CO2Grams       int    `json:"co2Grams"`
	Score          int    `json:"ecoScore"`
	SavingsPercent int    `json:"savingsPercent"`
	Label          string `json:"ecoLabel"`
}

// CalculateEco computes emission metrics for a mode over a distance. Unknown
// modes fall back to the cab factor.
func CalculateEco(mode Mode, distanceKm float64) EcoMetrics {
	factor, ok := co2GramsPerKm[mode]
	if !ok {
		factor = cabBaselineGramsPerKm
	}
	co2 := int(math.Round(factor * distanceKm))
	cabCo2 := int(math.Round(cabBaselineGramsPerKm * distanceKm))

	score := 0
	if cabCo2 > 0 {
		score = int(math.Round(float64(cabCo2-co2) / float64(cabCo2) * 100))
	}
	savings := score
	if savings < 0 {
		savings = 0
	}
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	var label string
	switch {
	case score >= 90:
		label = "Excellent"
	case score >= 70:
		label = "Great"
	case score >= 40:
		label = "Good"
	case score > 0:
		label = "Fair"
	default:
		label = "Baseline"
	}

	return EcoMetrics{CO2Grams: co2, Score: score, SavingsPercent: savings, Label: label}
}

// applyEco stamps each offer with emission metrics. The trip's road distance
// is used for every mode so the comparison stays apples to apples.
func applyEco(offers []*Offer, distanceKm float64) {
	for _, o := range offers {
		eco := CalculateEco(o.Mode, distanceKm)
		o.CO2Grams = eco.CO2Grams
		o.EcoScore = eco.Score
		o.EcoSavingsPercent = eco.SavingsPercent
		o.EcoLabel = eco.Label
	}
}
