package transit

import (
	"math"
	"strings"

	"margdarshak.in/internal/dataset"
	"margdarshak.in/internal/geo"
)

const (
	safetyZoneRadiusKm = 2.5
	safetySamplePoints = 6
	lowZoneThreshold   = 5
)

// ZoneScore is a named area with its effective safety score for the trip,
// already night-adjusted where applicable.
type ZoneScore struct {
	Area  string `json:"area"`
	Score int    `json:"safetyScore"`
}

// SafetyAssessment is the route-level safety verdict shared by every mode
// before per-mode adjustments.
type SafetyAssessment struct {
	Score     int         `json:"safetyScore"`
	IsNight   bool        `json:"isNight"`
	LowZones  []ZoneScore `json:"lowSafetyZones"`
	Reasoning string      `json:"reasoning"`
}

func nearestZone(city *dataset.City, p geo.Point) *dataset.SafetyZone {
	var best *dataset.SafetyZone
	bestDist := math.Inf(1)
	for i := range city.SafetyZones {
		z := &city.SafetyZones[i]
		d := geo.HaversineKm(p, z.Center)
		if d < safetyZoneRadiusKm && d < bestDist {
			bestDist = d
			best = z
		}
	}
	return best
}

// AssessRouteSafety samples points along the straight line between the trip
// ends, maps each to its nearest known zone, and averages the zone scores.
// The night penalty lowers the average when any traversed zone carries night
// risk. A route touching no known zone gets a neutral score of 7.
func AssessRouteSafety(city *dataset.City, from, to geo.Point, night bool) SafetyAssessment {
	var zones []*dataset.SafetyZone
	if city != nil {
		seen := make(map[string]bool)
		for _, pt := range geo.SamplePoints(from, to, safetySamplePoints) {
			z := nearestZone(city, pt)
			if z != nil && !seen[z.Area] {
				seen[z.Area] = true
				zones = append(zones, z)
			}
		}
	}

	if len(zones) == 0 {
		reasoning := "No specific safety concerns detected for this route."
		if night {
			reasoning = "Limited area data. Exercise standard night-time caution."
		}
		return SafetyAssessment{Score: 7, IsNight: night, Reasoning: reasoning}
	}

	var sum float64
	hasNightRisk := false
	for _, z := range zones {
		sum += float64(z.BaseScore)
		if z.NightRisk {
			hasNightRisk = true
		}
	}
	adjusted := sum / float64(len(zones))
	if night && hasNightRisk {
		adjusted = math.Max(1, adjusted-2)
	}
	finalScore := int(math.Round(math.Min(10, math.Max(1, adjusted))))

	var lowZones []ZoneScore
	for _, z := range zones {
		s := z.BaseScore
		if night && z.NightRisk {
			s = int(math.Max(1, float64(z.BaseScore-2)))
		}
		if s < lowZoneThreshold {
			lowZones = append(lowZones, ZoneScore{Area: z.Area, Score: s})
		}
	}

	return SafetyAssessment{
		Score:     finalScore,
		IsNight:   night,
		LowZones:  lowZones,
		Reasoning: buildSafetyReasoning(finalScore, night, hasNightRisk, lowZones, zones),
	}
}

func buildSafetyReasoning(score int, night, hasNightRisk bool, lowZones []ZoneScore, zones []*dataset.SafetyZone) string {
	var parts []string

	switch {
	case score >= 8:
		parts = append(parts, "Route passes through well-lit, high-traffic areas.")
	case score >= 6:
		parts = append(parts, "Route is moderately safe with standard precautions.")
	case score >= 4:
		parts = append(parts, "Route adjusted for better lighting and crowd presence.")
	default:
		parts = append(parts, "Caution advised — route passes through low-safety zones.")
	}

	if night && hasNightRisk {
		parts = append(parts, "Night-time penalty applied (after 10 PM). Prefer well-lit main roads.")
	}

	if len(lowZones) > 0 {
		names := make([]string, len(lowZones))
		for i, z := range lowZones {
			names[i] = z.Area
		}
		parts = append(parts, "Low-safety areas on route: "+strings.Join(names, ", ")+".")
		parts = append(parts, "Consider cab/auto over walking through these zones.")
	}

	if len(zones) > 0 && score >= 7 {
		parts = append(parts, "Areas like "+zones[0].Area+" are generally safe for travel.")
	}

	return strings.Join(parts, " ")
}

// applySafety stamps every offer with the route assessment plus per-mode
// adjustments: walking through low zones loses a point, a night cab gains
// one, and metro never drops below 7 since stations are staffed and covered
// by CCTV.
func applySafety(offers []*Offer, safety SafetyAssessment) {
	for _, o := range offers {
		score := safety.Score
		reasoning := safety.Reasoning

		if o.Mode == ModeWalk && len(safety.LowZones) > 0 {
			score = int(math.Max(1, float64(score-1)))
			reasoning += " Walking not recommended through low-safety areas."
		}
		if o.Mode == ModeCab && safety.IsNight {
			score = int(math.Min(10, float64(score+1)))
			reasoning = "Cab/auto is the safest option at night. " + reasoning
		}
		if o.Mode == ModeMetro {
			if score < 7 {
				score = 7
			}
			if safety.IsNight {
				reasoning = "Metro stations are well-lit with CCTV coverage. " + reasoning
			}
		}

		o.SafetyScore = score
		o.SafetyReasoning = reasoning
	}
}
