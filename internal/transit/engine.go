// Package transit compares transport modes for a point-to-point trip in a
// supported city. It evaluates walking, cab, bus, metro and local train
// against the same trip, scores each offer for safety and emissions, and
// selects exactly one best option.
package transit

import (
	"context"
	"log/slog"

	"margdarshak.in/internal/clock"
	"margdarshak.in/internal/dataset"
	"margdarshak.in/internal/geo"
)

const (
	// Road routing falls back to straight-line distance scaled by a winding
	// factor when the routing provider is unavailable.
	haversineRoadFactor = 1.3

	maxStationWalkKm = 3.0
	maxBusStopWalkKm = 2.5
	walkBestMaxKm    = 2.0
)

// RoadDistanceResolver supplies road network distance and geometry between
// two points. Implementations live outside this package; the engine only
// needs the distance, and degrades to a haversine estimate on any error.
type RoadDistanceResolver interface {
	RoadDistance(ctx context.Context, from, to geo.Point) (RoadRoute, error)
}

// RoadRoute is a resolved road path.
type RoadRoute struct {
	DistanceKm  float64
	DurationSec float64
	Polyline    []geo.Point
}

// cityIndex holds the per-city spatial indexes built once at startup.
type cityIndex struct {
	city     *dataset.City
	busStops *geo.Index

	// One index across every metro line; entries carry the line so a nearest
	// lookup returns candidate boardings on all lines at once.
	metroStations *geo.Index
}

type metroStationRef struct {
	station dataset.Station
	line    *dataset.Line
}

// Engine evaluates and compares transport modes.
type Engine struct {
	clock   clock.Clock
	logger  *slog.Logger
	roads   RoadDistanceResolver
	indexes map[string]*cityIndex
}

// NewEngine builds spatial indexes for every supported city. roads may be nil,
// in which case all distances use the haversine fallback.
func NewEngine(c clock.Clock, logger *slog.Logger, roads RoadDistanceResolver) *Engine {
	e := &Engine{
		clock:   c,
		logger:  logger,
		roads:   roads,
		indexes: make(map[string]*cityIndex, len(dataset.Cities)),
	}
	for _, city := range dataset.Cities {
		idx := &cityIndex{
			city:          city,
			busStops:      geo.NewIndex(),
			metroStations: geo.NewIndex(),
		}
		for i := range city.BusStops {
			stop := &city.BusStops[i]
			idx.busStops.Insert(stop.Point, stop)
		}
		for _, line := range city.MetroLines {
			for i := range line.Stations {
				idx.metroStations.Insert(line.Stations[i].Point, metroStationRef{
					station: line.Stations[i],
					line:    line,
				})
			}
		}
		e.indexes[city.Name] = idx
		logger.Info("transit city indexed",
			slog.String("city", city.Name),
			slog.Int("bus_stops", idx.busStops.Len()),
			slog.Int("metro_stations", idx.metroStations.Len()))
	}
	return e
}

// roadRoute resolves the road path, degrading to scaled haversine distance
// with no geometry when the resolver is missing or fails. The second return
// reports the fallback.
func (e *Engine) roadRoute(ctx context.Context, from, to geo.Point) (RoadRoute, bool) {
	if e.roads != nil {
		route, err := e.roads.RoadDistance(ctx, from, to)
		if err == nil && route.DistanceKm > 0 {
			return route, false
		}
		if err != nil {
			e.logger.Warn("road distance unavailable, using haversine fallback",
				slog.String("error", err.Error()))
		}
	}
	return RoadRoute{DistanceKm: geo.HaversineKm(from, to) * haversineRoadFactor}, true
}

// NearbyStop is a bus stop returned by a location query.
type NearbyStop struct {
	Name       string    `json:"name"`
	Area       string    `json:"area"`
	Point      geo.Point `json:"location"`
	DistanceKm float64   `json:"distanceKm"`
}

// StopsNear returns bus stops within radiusKm of p, closest first. An empty
// result means no coverage at that location.
func (e *Engine) StopsNear(p geo.Point, radiusKm float64, maxCount int) []NearbyStop {
	city := dataset.BusCityAt(p)
	idx := e.indexFor(city)
	if idx == nil {
		return nil
	}
	matches := idx.busStops.Nearest(p, radiusKm, maxCount)
	stops := make([]NearbyStop, 0, len(matches))
	for _, m := range matches {
		stop := m.Data.(*dataset.BusStop)
		stops = append(stops, NearbyStop{
			Name:       stop.Name,
			Area:       stop.Area,
			Point:      stop.Point,
			DistanceKm: round2(m.DistanceKm),
		})
	}
	return stops
}

func (e *Engine) indexFor(city *dataset.City) *cityIndex {
	if city == nil {
		return nil
	}
	return e.indexes[city.Name]
}
