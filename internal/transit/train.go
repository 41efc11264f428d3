package transit

import (
	"math"

	"margdarshak.in/internal/clock"
	"margdarshak.in/internal/dataset"
	"margdarshak.in/internal/geo"
)

const (
	trainSpeedKmh    = 33.0
	trackCurveFactor = 1.15
	trainWaitSec     = 5 * 60
)

// trainFare is the second-class suburban fare slab.
func trainFare(distanceKm float64) int {
	switch {
	case distanceKm <= 10:
		return 5
	case distanceKm <= 25:
		return 10
	case distanceKm <= 50:
		return 15
	case distanceKm <= 75:
		return 20
	default:
		return 30
	}
}

type trainCandidate struct {
	station dataset.Station
	index   int
	walkKm  float64
}

// nearestOnLine scans a line's ordered stations for the closest one. Suburban
// lines are small enough that a linear scan beats maintaining an index, and
// the position in the sequence is needed for the leg-sum distance anyway.
func nearestOnLine(line *dataset.Line, p geo.Point) (trainCandidate, bool) {
	best := trainCandidate{walkKm: math.Inf(1)}
	found := false
	for i, s := range line.Stations {
		d := geo.HaversineKm(p, s.Point)
		if d < best.walkKm {
			best = trainCandidate{station: s, index: i, walkKm: d}
			found = true
		}
	}
	return best, found
}

// lineDistanceKm sums the consecutive station legs between two positions on a
// line and applies the track curve factor.
func lineDistanceKm(line *dataset.Line, fromIdx, toIdx int) float64 {
	lo, hi := fromIdx, toIdx
	if lo > hi {
		lo, hi = hi, lo
	}
	var km float64
	for i := lo; i < hi; i++ {
		km += geo.HaversineKm(line.Stations[i].Point, line.Stations[i+1].Point)
	}
	return km * trackCurveFactor
}

// evaluateTrain tries every suburban line independently and keeps the one
// with the lowest fare-plus-minutes score. Lines whose nearest stations are
// out of walking reach, or collapse to a single station, are skipped.
func (e *Engine) evaluateTrain(from, to geo.Point, tod clock.TimeOfDay) *Offer {
	city := dataset.RailCityAt(from)
	if city == nil || dataset.RailCityAt(to) != city {
		return nil
	}

	var best *Offer
	bestScore := math.Inf(1)

	for _, line := range city.RailLines {
		boarding, ok := nearestOnLine(line, from)
		if !ok {
			continue
		}
		alighting, ok := nearestOnLine(line, to)
		if !ok {
			continue
		}
		if boarding.walkKm > maxStationWalkKm || alighting.walkKm > maxStationWalkKm {
			continue
		}
		if boarding.station.Name == alighting.station.Name {
			continue
		}

		stationCount := boarding.index - alighting.index
		if stationCount < 0 {
			stationCount = -stationCount
		}
		if stationCount < 1 {
			continue
		}

		rideKm := lineDistanceKm(line, boarding.index, alighting.index)
		rideSec := rideKm / trainSpeedKmh * 3600
		walkSec := (boarding.walkKm + alighting.walkKm) / walkSpeedKmh * 3600
		totalSec := rideSec + walkSec + trainWaitSec

		fare := trainFare(rideKm)
		score := float64(fare) + totalSec/60
		if score >= bestScore {
			continue
		}
		bestScore = score

		peak := (tod.Hour >= 8 && tod.Hour <= 11) || (tod.Hour >= 17 && tod.Hour <= 21)
		crowd := CrowdLow
		if peak {
			crowd = CrowdPacked
		} else if stationCount > 10 {
			crowd = CrowdModerate
		}
		var peakWarning string
		if peak {
			peakWarning = "Peak hours — expect heavy crowding"
		}

		best = &Offer{
			Mode:         ModeTrain,
			Label:        line.Name,
			DistanceKm:   round2(rideKm + boarding.walkKm + alighting.walkKm),
			DurationSec:  int(math.Round(totalSec)),
			FareAmount:   fare,
			Boarding:     boarding.station.Name,
			Alighting:    alighting.station.Name,
			LineName:     line.Name,
			LineColor:    line.Color,
			StationCount: stationCount,
			WalkToKm:     round2(boarding.walkKm),
			WalkFromKm:   round2(alighting.walkKm),
			Frequency:    line.Frequency,
			CrowdLevel:   crowd,
			PeakWarning:  peakWarning,
		}
	}

	return best
}
