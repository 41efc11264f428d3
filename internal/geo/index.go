package geo

import (
	"math"
	"sort"

	"github.com/tidwall/rtree"
)

// Index is a read-only spatial index over point data. It is built once at
// dataset load time and safely shareable across concurrent queries.
type Index struct {
	tree *rtree.RTree
}

// Match is a single nearest-query result.
type Match struct {
	Point      Point
	Data       interface{}
	DistanceKm float64
}

// NewIndex creates an empty spatial index.
func NewIndex() *Index {
	return &Index{tree: &rtree.RTree{}}
}

// Insert adds a point with associated data to the index.
func (ix *Index) Insert(p Point, data interface{}) {
	// For points, min and max are the same [lat, lng]
	ix.tree.Insert(
		[2]float64{p.Lat, p.Lng},
		[2]float64{p.Lat, p.Lng},
		data,
	)
}

// Len returns the number of indexed points.
func (ix *Index) Len() int {
	return ix.tree.Len()
}

// Nearest returns up to maxCount indexed entries within maxKm of p, sorted
// ascending by great-circle distance. An empty result means nothing qualifies;
// callers must treat that as "not offerable here", not an error.
func (ix *Index) Nearest(p Point, maxKm float64, maxCount int) []Match {
	if ix == nil || ix.tree == nil {
		return nil
	}

	b := BoundsAround(p, maxKm)

	var matches []Match
	ix.tree.Search(
		[2]float64{b.MinLat, b.MinLng},
		[2]float64{b.MaxLat, b.MaxLng},
		func(min, max [2]float64, data interface{}) bool {
			candidate := Point{Lat: min[0], Lng: min[1]}
			d := HaversineKm(p, candidate)
			if d <= maxKm {
				matches = append(matches, Match{Point: candidate, Data: data, DistanceKm: d})
			}
			return true
		},
	)

	sort.Slice(matches, func(i, j int) bool { return matches[i].DistanceKm < matches[j].DistanceKm })
	if maxCount > 0 && len(matches) > maxCount {
		matches = matches[:maxCount]
	}
	return matches
}

// NearestOne returns the single closest entry within maxKm of p, or nil when
// nothing qualifies.
func (ix *Index) NearestOne(p Point, maxKm float64) *Match {
	matches := ix.Nearest(p, maxKm, 1)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

// BoundsAround returns a bounding box that fully contains the circle of
// radiusKm around p. The box over-covers near the poles; the haversine
// filter in Nearest discards the excess.
func BoundsAround(p Point, radiusKm float64) Bounds {
	latOffset := radiusKm / EarthRadiusKm * 180 / math.Pi

	cosLat := math.Cos(p.Lat * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	lngOffset := radiusKm / (EarthRadiusKm * cosLat) * 180 / math.Pi

	return Bounds{
		MinLat: p.Lat - latOffset,
		MaxLat: p.Lat + latOffset,
		MinLng: p.Lng - lngOffset,
		MaxLng: p.Lng + lngOffset,
	}
}
