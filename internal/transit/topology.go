package transit

import (
	"fmt"
	"strings"

	"margdarshak.in/internal/dataset"
)

// Path is a resolved ride between two stations, possibly spanning line changes.
type Path struct {
	Boarding     string
	Alighting    string
	LineName     string
	LineColor    string
	Interchanges []string
	StationCount int
}

// InterchangeText joins the interchange station names for display, empty when
// the path stays on a single line.
func (p *Path) InterchangeText() string {
	return strings.Join(p.Interchanges, ", ")
}

// StationsBetween returns the number of stops between two stations on a line:
// the absolute difference of their positions in the line's ordered sequence.
// Returns ok=false if either name is not on the line.
func StationsBetween(line *dataset.Line, fromName, toName string) (int, bool) {
	fromIdx := line.StationIndex(fromName)
	toIdx := line.StationIndex(toName)
	if fromIdx < 0 || toIdx < 0 {
		return 0, false
	}
	if fromIdx > toIdx {
		return fromIdx - toIdx, true
	}
	return toIdx - fromIdx, true
}

// FindPath resolves a ride from a boarding station/line to an alighting
// station/line with a fixed three-tier precedence: same line, one shared
// interchange, then a two-hop search through an intermediate line. This is a
// deliberate simplification, not a general shortest-path search; downstream
// behavior depends on the precedence order, so keep it.
func FindPath(city *dataset.City, boarding dataset.Station, boardingLine *dataset.Line, alighting dataset.Station, alightingLine *dataset.Line) *Path {
	// Tier 1: both stations on the same line.
	if boardingLine.ID == alightingLine.ID {
		count, _ := StationsBetween(boardingLine, boarding.Name, alighting.Name)
		return &Path{
			Boarding:     boarding.Name,
			Alighting:    alighting.Name,
			LineName:     boardingLine.Name,
			LineColor:    boardingLine.Color,
			StationCount: count,
		}
	}

	// Tier 2: a single interchange serves both lines.
	for _, ic := range city.Interchanges {
		if ic.HasLine(boardingLine.ID) && ic.HasLine(alightingLine.ID) {
			seg1, ok1 := StationsBetween(boardingLine, boarding.Name, ic.Station)
			seg2, ok2 := StationsBetween(alightingLine, ic.Station, alighting.Name)
			if ok1 && ok2 {
				return &Path{
					Boarding:     boarding.Name,
					Alighting:    alighting.Name,
					LineName:     boardingLine.Name + " → " + alightingLine.Name,
					LineColor:    boardingLine.Color,
					Interchanges: []string{ic.Station},
					StationCount: seg1 + seg2,
				}
			}
		}
	}

	// Tier 3: two hops via an intermediate line.
	for _, ic1 := range city.Interchanges {
		if !ic1.HasLine(boardingLine.ID) {
			continue
		}
		for _, midLineID := range ic1.LineIDs {
			if midLineID == boardingLine.ID {
				continue
			}
			for _, ic2 := range city.Interchanges {
				if ic1.Station == ic2.Station {
					continue
				}
				if !ic2.HasLine(midLineID) || !ic2.HasLine(alightingLine.ID) {
					continue
				}
				midLine := city.MetroLine(midLineID)
				if midLine == nil {
					continue
				}
				seg1, ok1 := StationsBetween(boardingLine, boarding.Name, ic1.Station)
				seg2, ok2 := StationsBetween(midLine, ic1.Station, ic2.Station)
				seg3, ok3 := StationsBetween(alightingLine, ic2.Station, alighting.Name)
				if ok1 && ok2 && ok3 {
					return &Path{
						Boarding:     boarding.Name,
						Alighting:    alighting.Name,
						LineName:     boardingLine.Name + " → " + midLine.Name + " → " + alightingLine.Name,
						LineColor:    boardingLine.Color,
						Interchanges: []string{ic1.Station, ic2.Station},
						StationCount: seg1 + seg2 + seg3,
					}
				}
			}
		}
	}

	// No feasible path within three tiers: the mode is inapplicable for this
	// trip, which is not an error.
	return nil
}

// MatchBusRoute looks up a known route label between two area clusters.
// Matching is bidirectional. Returns ok=false on a miss; callers fall back to
// GenerateRouteLabel.
func MatchBusRoute(city *dataset.City, boardingArea, alightingArea string) (string, bool) {
	for _, r := range city.BusRoutes {
		if (r.From == boardingArea && r.To == alightingArea) ||
			(r.From == alightingArea && r.To == boardingArea) {
			return r.Routes, true
		}
	}
	return "", false
}

// GenerateRouteLabel produces a plausible route number for an area pair with
// no recorded route. The hash is a stable non-cryptographic function of the
// concatenated area tags, so repeated queries between the same areas always
// yield the same label. Repeatability is the only requirement here, not
// uniqueness.
func GenerateRouteLabel(boardingArea, alightingArea string) string {
	var hash int32
	combined := boardingArea + alightingArea
	for _, c := range combined {
		hash = (hash << 5) - hash + int32(c)
	}
	n := hash % 800
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("Bus %d", n+100)
}
