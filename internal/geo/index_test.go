package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildStationIndex() *Index {
	ix := NewIndex()
	ix.Insert(Point{Lat: 18.9357, Lng: 72.8273}, "Churchgate")
	ix.Insert(Point{Lat: 18.9440, Lng: 72.8233}, "Marine Lines")
	ix.Insert(Point{Lat: 18.9514, Lng: 72.8194}, "Charni Road")
	ix.Insert(Point{Lat: 19.1197, Lng: 72.8464}, "Andheri")
	return ix
}

func TestIndexNearestOrdering(t *testing.T) {
	ix := buildStationIndex()
	assert.Equal(t, 4, ix.Len())

	// Just south of Churchgate.
	query := Point{Lat: 18.9330, Lng: 72.8280}
	matches := ix.Nearest(query, 5.0, 10)

	require.Len(t, matches, 3, "Andheri is beyond the 5 km radius")
	assert.Equal(t, "Churchgate", matches[0].Data)
	assert.Equal(t, "Marine Lines", matches[1].Data)
	assert.Equal(t, "Charni Road", matches[2].Data)
	assert.Less(t, matches[0].DistanceKm, matches[1].DistanceKm)
}

func TestIndexNearestMaxCount(t *testing.T) {
	ix := buildStationIndex()
	matches := ix.Nearest(Point{Lat: 18.94, Lng: 72.82}, 50, 2)
	assert.Len(t, matches, 2)
}

func TestIndexNearestEmptyResult(t *testing.T) {
	ix := buildStationIndex()
	// Pune is far outside any radius we allow.
	matches := ix.Nearest(Point{Lat: 18.52, Lng: 73.85}, 3.0, 10)
	assert.Empty(t, matches)
}

func TestIndexNearestOne(t *testing.T) {
	ix := buildStationIndex()

	m := ix.NearestOne(Point{Lat: 19.12, Lng: 72.85}, 3.0)
	require.NotNil(t, m)
	assert.Equal(t, "Andheri", m.Data)

	assert.Nil(t, ix.NearestOne(Point{Lat: 18.52, Lng: 73.85}, 3.0))
}

func TestIndexNilSafe(t *testing.T) {
	var ix *Index
	assert.Nil(t, ix.Nearest(Point{}, 1, 1))
}
