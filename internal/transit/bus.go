package transit

import (
	"math"

	"margdarshak.in/internal/clock"
	"margdarshak.in/internal/dataset"
	"margdarshak.in/internal/geo"
)

const (
	busAvgSpeedKmh    = 14.0
	busWaitMinutes    = 5
	minBusRideKm      = 0.5
	stopRoadFactor    = 1.4
	busStopCandidates = 3
)

// busFare follows the BEST slab structure. Each slab continues from the
// previous slab's ceiling, so the fare curve is continuous.
func busFare(distanceKm float64) int {
	switch {
	case distanceKm <= 5:
		return 6
	case distanceKm <= 10:
		return int(math.Round(6 + (distanceKm-5)*2))
	case distanceKm <= 20:
		return int(math.Round(16 + (distanceKm - 10)))
	default:
		return int(math.Round(26 + (distanceKm-20)*0.8))
	}
}

func busDurationMinutes(distanceKm, walkToKm, walkFromKm float64) int {
	ride := int(math.Round(distanceKm / busAvgSpeedKmh * 60))
	walk := int(math.Round((walkToKm + walkFromKm) * 12))
	return ride + walk + busWaitMinutes
}

func busFrequency(hour int) string {
	switch {
	case hour >= 7 && hour <= 11, hour >= 17 && hour <= 21:
		return "Every 8-12 min"
	case hour > 11 && hour <= 17:
		return "Every 12-18 min"
	default:
		return "Every 15-25 min"
	}
}

func busCrowd(hour int) CrowdLevel {
	switch {
	case hour >= 8 && hour <= 10, hour >= 18 && hour <= 20:
		return CrowdHigh
	case hour >= 7 && hour <= 11, hour >= 17 && hour <= 21:
		return CrowdModerate
	default:
		return CrowdLow
	}
}

// evaluateBus pairs the trip ends with nearby stops and builds a bus offer.
// Boarding and alighting are guaranteed to be different stops: the alighting
// candidate closest to the destination with a different name wins, and if
// every destination candidate collides with the nearest origin stop the
// second-nearest origin stop is tried before giving up. roadKm, when positive,
// overrides the stop-to-stop distance estimate.
func (e *Engine) evaluateBus(from, to geo.Point, roadKm float64, tod clock.TimeOfDay) *Offer {
	city := dataset.BusCityAt(from)
	if city == nil || dataset.BusCityAt(to) != city {
		return nil
	}
	idx := e.indexFor(city)
	if idx == nil {
		return nil
	}

	originStops := idx.busStops.Nearest(from, maxBusStopWalkKm, busStopCandidates)
	if len(originStops) == 0 {
		return nil
	}
	destStops := idx.busStops.Nearest(to, maxBusStopWalkKm, busStopCandidates)
	if len(destStops) == 0 {
		return nil
	}

	boarding := originStops[0]
	alighting := pickAlighting(boarding, destStops)
	if alighting == nil && len(originStops) > 1 {
		boarding = originStops[1]
		alighting = pickAlighting(boarding, destStops)
	}
	if alighting == nil {
		return nil
	}

	boardingStop := boarding.Data.(*dataset.BusStop)
	alightingStop := alighting.Data.(*dataset.BusStop)

	rideKm := roadKm
	if rideKm <= 0 {
		rideKm = geo.HaversineKm(boardingStop.Point, alightingStop.Point) * stopRoadFactor
	}
	if rideKm < minBusRideKm {
		return nil
	}

	label, ok := MatchBusRoute(city, boardingStop.Area, alightingStop.Area)
	if !ok {
		label = GenerateRouteLabel(boardingStop.Area, alightingStop.Area)
	}

	minutes := busDurationMinutes(rideKm, boarding.DistanceKm, alighting.DistanceKm)

	var peakWarning string
	if tod.IsPeak {
		peakWarning = "Peak hours — expect crowded buses and traffic delays"
	}

	return &Offer{
		Mode:        ModeTransit,
		Label:       label,
		DistanceKm:  round2(boarding.DistanceKm + rideKm + alighting.DistanceKm),
		DurationSec: minutes * 60,
		FareAmount:  busFare(rideKm),
		Boarding:    boardingStop.Name,
		Alighting:   alightingStop.Name,
		Frequency:   busFrequency(tod.Hour),
		CrowdLevel:  busCrowd(tod.Hour),
		WalkToKm:    round2(boarding.DistanceKm),
		WalkFromKm:  round2(alighting.DistanceKm),
		PeakWarning: peakWarning,
	}
}

func pickAlighting(boarding geo.Match, destStops []geo.Match) *geo.Match {
	boardingName := boarding.Data.(*dataset.BusStop).Name
	for i := range destStops {
		if destStops[i].Data.(*dataset.BusStop).Name != boardingName {
			return &destStops[i]
		}
	}
	return nil
}
