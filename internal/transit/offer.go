// Package transit implements the multi-modal transport comparison engine:
// nearest-node lookup over static network topology, per-mode offer
// construction, safety and eco scoring, best-option selection, and
// human-readable route explanations.
package transit

import (
	"fmt"
	"math"

	"margdarshak.in/internal/geo"
)

// Mode identifies a transport mode.
type Mode string

const (
	ModeWalk    Mode = "walk"
	ModeCab     Mode = "cab"
	ModeTransit Mode = "transit" // bus or generic road transit
	ModeMetro   Mode = "metro"
	ModeTrain   Mode = "train" // suburban local train

	// Emission-only mode keys, never produced as offers.
	ModeBus  Mode = "bus"
	ModeAuto Mode = "auto"
)

// CrowdLevel describes expected onboard crowding.
type CrowdLevel string

const (
	CrowdLow      CrowdLevel = "low"
	CrowdModerate CrowdLevel = "moderate"
	CrowdHigh     CrowdLevel = "high"
	CrowdPacked   CrowdLevel = "packed"
)

// Offer is a computed candidate way to complete a trip by one transport mode.
// Offers are built fresh per comparison, enriched in place by the safety and
// eco scorers, and discarded after the response is written; they carry no
// identity beyond the request.
type Offer struct {
	Mode  Mode   `json:"mode"`
	Label string `json:"label"`

	DistanceKm  float64 `json:"distanceKm"`
	DurationSec int     `json:"durationSec"`
	FareAmount  int     `json:"fareAmount"`

	// Boarding and Alighting are set for transit-based offers only.
	// When both are present they are never equal.
	Boarding  string `json:"boarding,omitempty"`
	Alighting string `json:"alighting,omitempty"`

	LineName     string  `json:"lineName,omitempty"`
	LineColor    string  `json:"lineColor,omitempty"`
	Interchange  string  `json:"interchange,omitempty"`
	StationCount int     `json:"stationCount,omitempty"`
	WalkToKm     float64 `json:"walkToKm,omitempty"`
	WalkFromKm   float64 `json:"walkFromKm,omitempty"`

	Frequency   string     `json:"frequency,omitempty"`
	CrowdLevel  CrowdLevel `json:"crowdLevel,omitempty"`
	PeakWarning string     `json:"peakWarning,omitempty"`

	Polyline []geo.Point `json:"polyline,omitempty"`

	// Set by the safety scorer.
	SafetyScore     int    `json:"safetyScore,omitempty"`
	SafetyReasoning string `json:"safetyReasoning,omitempty"`

	// Set by the eco scorer.
	CO2Grams          int    `json:"co2Grams"`
	EcoScore          int    `json:"ecoScore"`
	EcoSavingsPercent int    `json:"ecoSavingsPercent"`
	EcoLabel          string `json:"ecoLabel,omitempty"`

	// Exactly one offer per comparison carries IsBest.
	IsBest bool `json:"isBest"`
}

// DurationMinutes returns the offer duration rounded to whole minutes.
func (o *Offer) DurationMinutes() int {
	return int(math.Round(float64(o.DurationSec) / 60))
}

// FormatDuration renders the duration as "45s", "25 min", or "1h 20m".
func (o *Offer) FormatDuration() string {
	return FormatDuration(float64(o.DurationSec))
}

// FormatFare renders the fare as "Free" or "₹<n>".
func (o *Offer) FormatFare() string {
	if o.FareAmount == 0 {
		return "Free"
	}
	return fmt.Sprintf("₹%d", o.FareAmount)
}

// FormatDuration renders seconds as a human-readable duration.
func FormatDuration(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", int(math.Round(seconds)))
	}
	mins := int(math.Round(seconds / 60))
	if mins < 60 {
		return fmt.Sprintf("%d min", mins)
	}
	hrs := mins / 60
	rem := mins % 60
	if rem > 0 {
		return fmt.Sprintf("%dh %dm", hrs, rem)
	}
	return fmt.Sprintf("%dh", hrs)
}

// FormatDistanceKm renders kilometers as "850 m" or "4.2 km".
func FormatDistanceKm(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km", km)
}
