package transit

import "math"

// Road-speed assumptions per mode, km/h. These feed duration estimates when
// the routing provider does not return a duration of its own.
const (
	walkSpeedKmh    = 5.0
	cabSpeedKmh     = 25.0
	transitSpeedKmh = 18.0
)

// evaluateWalk always produces an offer; eligibility for best-pick is decided
// later by the comparator, which excludes walks over walkBestMaxKm.
func evaluateWalk(distanceKm float64) *Offer {
	return &Offer{
		Mode:        ModeWalk,
		Label:       "Walk",
		DistanceKm:  round2(distanceKm),
		DurationSec: int(math.Round(distanceKm / walkSpeedKmh * 3600)),
		FareAmount:  0,
	}
}

func evaluateCab(distanceKm float64) *Offer {
	return &Offer{
		Mode:        ModeCab,
		Label:       "Cab / Auto",
		DistanceKm:  round2(distanceKm),
		DurationSec: int(math.Round(distanceKm / cabSpeedKmh * 3600)),
		FareAmount:  int(math.Round(30 + 14*distanceKm)),
	}
}

// evaluateGenericTransit is the bus fallback used when no stop pairing can be
// made: a bare road-speed estimate with a distance-linear fare floor.
func evaluateGenericTransit(distanceKm float64) *Offer {
	fare := distanceKm * 3
	if fare < 10 {
		fare = 10
	}
	return &Offer{
		Mode:        ModeTransit,
		Label:       "Bus / Shared Transit",
		DistanceKm:  round2(distanceKm),
		DurationSec: int(math.Round(distanceKm / transitSpeedKmh * 3600)),
		FareAmount:  int(math.Round(fare)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
