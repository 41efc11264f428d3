package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"margdarshak.in/internal/geo"
)

// The evaluators assume the static data is internally consistent; these tests
// pin that down so a data edit cannot silently break path finding.

func TestCityDataIntegrity(t *testing.T) {
	for _, city := range Cities {
		t.Run(city.Name, func(t *testing.T) {
			require.NotEmpty(t, city.MetroLines)
			require.NotEmpty(t, city.RailLines)
			require.NotEmpty(t, city.BusStops)
			require.NotEmpty(t, city.SafetyZones)

			seenLine := map[string]bool{}
			for _, line := range append(append([]*Line{}, city.MetroLines...), city.RailLines...) {
				assert.False(t, seenLine[line.ID], "duplicate line id %s", line.ID)
				seenLine[line.ID] = true
				assert.GreaterOrEqual(t, len(line.Stations), 2, "line %s too short", line.ID)

				seenStation := map[string]bool{}
				for _, s := range line.Stations {
					assert.True(t, s.Point.Valid(), "station %s on %s has invalid coordinates", s.Name, line.ID)
					assert.False(t, seenStation[s.Name], "station %s repeats on %s", s.Name, line.ID)
					seenStation[s.Name] = true
				}
			}

			for _, ic := range city.Interchanges {
				require.GreaterOrEqual(t, len(ic.LineIDs), 2, "interchange %s links fewer than two lines", ic.Station)
				for _, id := range ic.LineIDs {
					line := city.MetroLine(id)
					require.NotNil(t, line, "interchange %s references unknown line %s", ic.Station, id)
					assert.NotEqual(t, -1, line.StationIndex(ic.Station),
						"interchange %s not a station on line %s", ic.Station, id)
				}
			}

			for _, stop := range city.BusStops {
				assert.True(t, stop.Point.Valid(), "bus stop %s has invalid coordinates", stop.Name)
				assert.True(t, city.BusBounds.Contains(stop.Point),
					"bus stop %s outside the city bus bounds", stop.Name)
				assert.NotEmpty(t, stop.Area, "bus stop %s missing area tag", stop.Name)
			}

			areas := map[string]bool{}
			for _, stop := range city.BusStops {
				areas[stop.Area] = true
			}
			for _, route := range city.BusRoutes {
				assert.True(t, areas[route.From], "route %s references unknown area %s", route.Routes, route.From)
				assert.True(t, areas[route.To], "route %s references unknown area %s", route.Routes, route.To)
			}

			for _, zone := range city.SafetyZones {
				assert.True(t, zone.Center.Valid(), "zone %s has invalid coordinates", zone.Area)
				assert.GreaterOrEqual(t, zone.BaseScore, 1, "zone %s score out of range", zone.Area)
				assert.LessOrEqual(t, zone.BaseScore, 10, "zone %s score out of range", zone.Area)
			}
		})
	}
}

func TestLineStationIndex(t *testing.T) {
	line := Mumbai.MetroLine("L1")
	require.NotNil(t, line)

	assert.Equal(t, 0, line.StationIndex("Versova"))
	assert.Equal(t, -1, line.StationIndex("Churchgate"))
}

func TestInterchangeHasLine(t *testing.T) {
	ic := Interchange{Station: "D N Nagar", LineIDs: []string{"L1", "L2A"}}
	assert.True(t, ic.HasLine("L1"))
	assert.False(t, ic.HasLine("L3"))
}

func TestCityAtLookups(t *testing.T) {
	andheri := geo.Point{Lat: 19.1197, Lng: 72.8464}
	delhi := geo.Point{Lat: 28.6139, Lng: 77.2090}

	assert.Equal(t, Mumbai, MetroCityAt(andheri))
	assert.Equal(t, Mumbai, RailCityAt(andheri))
	assert.Equal(t, Mumbai, BusCityAt(andheri))

	assert.Nil(t, MetroCityAt(delhi))
	assert.Nil(t, RailCityAt(delhi))
	assert.Nil(t, BusCityAt(delhi))
}
