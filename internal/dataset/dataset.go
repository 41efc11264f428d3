// Package dataset holds the static transit network topology and safety zone
// data for covered cities. Everything here is read-only configuration: it is
// assembled at package initialization and never mutated at runtime, so it is
// safely shareable across concurrent route comparisons without locking.
package dataset

import "margdarshak.in/internal/geo"

// Station is a named boarding point on a single line. A physical station
// served by multiple lines appears once per line, linked by an Interchange.
type Station struct {
	Name  string
	Point geo.Point
}

// Line is an ordered sequence of stations. The order is the physical
// sequential order along the line and is what stop-counting relies on.
type Line struct {
	ID        string
	Name      string
	Color     string
	Frequency string
	Hours     string
	Stations  []Station
}

// StationIndex returns the position of the named station on the line, or -1.
func (l *Line) StationIndex(name string) int {
	for i, s := range l.Stations {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// Interchange is a station shared by two or more lines, enabling a line change.
type Interchange struct {
	Station string
	LineIDs []string
}

// HasLine reports whether the interchange serves the given line.
func (ic Interchange) HasLine(lineID string) bool {
	for _, id := range ic.LineIDs {
		if id == lineID {
			return true
		}
	}
	return false
}

// BusStop is a bus boarding point. Area is a coarse cluster tag used to look
// up known route numbers between stop pairs.
type BusStop struct {
	Name  string
	Point geo.Point
	Area  string
}

// BusRoutePattern associates a known route label with an area pair.
// Matching is bidirectional.
type BusRoutePattern struct {
	Routes string
	From   string
	To     string
}

// SafetyZone is a named area with a base risk rating. NightRisk zones take an
// additional scoring penalty during the night window.
type SafetyZone struct {
	Area      string
	Center    geo.Point
	BaseScore int
	NightRisk bool
}

// City aggregates every static dataset for one covered city.
type City struct {
	Name         string
	MetroBounds  geo.Bounds
	RailBounds   geo.Bounds
	BusBounds    geo.Bounds
	MetroLines   []*Line
	RailLines    []*Line
	Interchanges []Interchange
	BusStops     []BusStop
	BusRoutes    []BusRoutePattern
	SafetyZones  []SafetyZone
}

// MetroLine returns the metro line with the given ID, or nil.
func (c *City) MetroLine(id string) *Line {
	for _, l := range c.MetroLines {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// Cities lists every covered city. Currently Mumbai only; the evaluators do a
// bounds check per city, so adding a city is a data change, not a code change.
var Cities = []*City{Mumbai}

// MetroCityAt returns the city whose metro bounding box contains p, or nil.
func MetroCityAt(p geo.Point) *City {
	for _, c := range Cities {
		if c.MetroBounds.Contains(p) {
			return c
		}
	}
	return nil
}

// RailCityAt returns the city whose suburban-rail bounding box contains p, or nil.
func RailCityAt(p geo.Point) *City {
	for _, c := range Cities {
		if c.RailBounds.Contains(p) {
			return c
		}
	}
	return nil
}

// BusCityAt returns the city whose bus-network bounding box contains p, or nil.
func BusCityAt(p geo.Point) *City {
	for _, c := range Cities {
		if c.BusBounds.Contains(p) {
			return c
		}
	}
	return nil
}
