package transit

import (
	"math"

	"margdarshak.in/internal/clock"
	"margdarshak.in/internal/dataset"
	"margdarshak.in/internal/geo"
)

const avgMetroStationGapKm = 1.2

// metroFare is a station-count slab modeled on the Mumbai Metro fare chart.
func metroFare(stationCount int) int {
	switch {
	case stationCount <= 3:
		return 10
	case stationCount <= 6:
		return 20
	case stationCount <= 10:
		return 30
	case stationCount <= 15:
		return 40
	default:
		return 50
	}
}

// metroDurationMinutes estimates trip time: 2 min per station, 4 min per
// interchange, 12 min per km of access walking on each end.
func metroDurationMinutes(stationCount, interchangeCount int, walkToKm, walkFromKm float64) int {
	ride := float64(stationCount * 2)
	change := float64(interchangeCount * 4)
	walk := (walkToKm + walkFromKm) * 12
	return int(math.Round(ride + change + walk))
}

// evaluateMetro returns nil when metro is not applicable for the trip: either
// endpoint outside coverage, no station within walking reach, both endpoints
// served by the same station, or no path within the interchange search.
func (e *Engine) evaluateMetro(from, to geo.Point, tod clock.TimeOfDay) *Offer {
	city := dataset.MetroCityAt(from)
	if city == nil || dataset.MetroCityAt(to) != city {
		return nil
	}
	idx := e.indexFor(city)
	if idx == nil {
		return nil
	}

	origin := idx.metroStations.NearestOne(from, maxStationWalkKm)
	if origin == nil {
		return nil
	}
	dest := idx.metroStations.NearestOne(to, maxStationWalkKm)
	if dest == nil {
		return nil
	}
	originRef := origin.Data.(metroStationRef)
	destRef := dest.Data.(metroStationRef)
	if originRef.station.Name == destRef.station.Name {
		return nil
	}

	path := FindPath(city, originRef.station, originRef.line, destRef.station, destRef.line)
	if path == nil {
		return nil
	}
	// A one-station hop is not worth the access walk.
	if path.StationCount < 2 {
		return nil
	}

	minutes := metroDurationMinutes(path.StationCount, len(path.Interchanges), origin.DistanceKm, dest.DistanceKm)
	rideKm := float64(path.StationCount) * avgMetroStationGapKm
	totalKm := origin.DistanceKm + rideKm + dest.DistanceKm

	frequency := originRef.line.Frequency
	if frequency == "" {
		frequency = "4-8 min"
	}

	var peakWarning string
	if tod.IsPeak {
		peakWarning = "Peak hours — expect high crowd at boarding"
	}

	return &Offer{
		Mode:         ModeMetro,
		Label:        "Metro " + path.LineName,
		DistanceKm:   round2(totalKm),
		DurationSec:  minutes * 60,
		FareAmount:   metroFare(path.StationCount),
		Boarding:     path.Boarding,
		Alighting:    path.Alighting,
		LineName:     path.LineName,
		LineColor:    path.LineColor,
		Interchange:  path.InterchangeText(),
		StationCount: path.StationCount,
		WalkToKm:     round2(origin.DistanceKm),
		WalkFromKm:   round2(dest.DistanceKm),
		Frequency:    frequency,
		PeakWarning:  peakWarning,
	}
}
