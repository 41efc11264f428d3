package transit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"margdarshak.in/internal/clock"
	"margdarshak.in/internal/geo"
)

func assertExactlyOneBest(t *testing.T, c *Comparison) {
	t.Helper()
	bestCount := 0
	for _, o := range c.Offers {
		if o.IsBest {
			bestCount++
		}
	}
	assert.Equal(t, 1, bestCount, "exactly one offer must be best")
	require.NotNil(t, c.Best())
	assert.True(t, c.Best().IsBest)
}

func TestCompareInvalidCoordinates(t *testing.T) {
	e, _ := newTestEngine(14)

	_, err := e.Compare(context.Background(),
		geo.Point{Lat: 95, Lng: 72.8}, geo.Point{Lat: 19.0, Lng: 72.85})
	assert.Error(t, err)
}

func TestCompareShortTripWalkWins(t *testing.T) {
	e, _ := newTestEngine(14)

	// Nariman Point to Mantralaya, well under the walkable ceiling.
	c, err := e.Compare(context.Background(),
		geo.Point{Lat: 18.9255, Lng: 72.8242},
		geo.Point{Lat: 18.9264, Lng: 72.8213})
	require.NoError(t, err)

	assertExactlyOneBest(t, c)
	assert.Equal(t, ModeWalk, c.Best().Mode)
	assert.True(t, c.UsingFallback, "no road resolver configured")
	assert.Less(t, c.DistanceKm, walkBestMaxKm)
}

func TestCompareLongTripExcludesWalk(t *testing.T) {
	mock := clock.NewMockClock(time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := stubResolver{route: RoadRoute{
		DistanceKm:  22.0,
		DurationSec: 3300,
		Polyline:    []geo.Point{{Lat: 18.94, Lng: 72.83}, {Lat: 19.12, Lng: 72.85}},
	}}
	e := NewEngine(mock, logger, resolver)

	// Churchgate to Andheri.
	c, err := e.Compare(context.Background(),
		geo.Point{Lat: 18.9357, Lng: 72.8273},
		geo.Point{Lat: 19.1197, Lng: 72.8464})
	require.NoError(t, err)

	assertExactlyOneBest(t, c)
	assert.False(t, c.UsingFallback)
	assert.Equal(t, 22.0, c.DistanceKm)
	assert.NotEqual(t, ModeWalk, c.Best().Mode, "walks over 2 km never win")

	// Suburban rail dominates this corridor on fare plus time.
	assert.Equal(t, ModeTrain, c.Best().Mode)

	// The cab offer carries the resolved road geometry.
	var cab *Offer
	for _, o := range c.Offers {
		if o.Mode == ModeCab {
			cab = o
		}
	}
	require.NotNil(t, cab)
	assert.Len(t, cab.Polyline, 2)
}

func TestCompareEnrichesAllOffers(t *testing.T) {
	e, _ := newTestEngine(14)

	c, err := e.Compare(context.Background(),
		geo.Point{Lat: 18.9357, Lng: 72.8273},
		geo.Point{Lat: 19.1197, Lng: 72.8464})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(c.Offers), 3, "walk, cab, and at least one transit mode")
	for _, o := range c.Offers {
		assert.Greater(t, o.SafetyScore, 0, "%s must carry a safety score", o.Mode)
		assert.NotEmpty(t, o.SafetyReasoning, "%s must carry safety reasoning", o.Mode)
		assert.NotEmpty(t, o.EcoLabel, "%s must carry an eco label", o.Mode)
	}
	assert.Greater(t, c.Safety.Score, 0)
}

func TestCompareOutsideCoverageStillAnswers(t *testing.T) {
	e, _ := newTestEngine(14)

	// Delhi: no dataset coverage, so only walk, cab, and the generic transit
	// estimate are offered.
	c, err := e.Compare(context.Background(),
		geo.Point{Lat: 28.6139, Lng: 77.2090},
		geo.Point{Lat: 28.5355, Lng: 77.3910})
	require.NoError(t, err)

	assertExactlyOneBest(t, c)
	assert.Len(t, c.Offers, 3)
	modes := map[Mode]bool{}
	for _, o := range c.Offers {
		modes[o.Mode] = true
	}
	assert.True(t, modes[ModeWalk])
	assert.True(t, modes[ModeCab])
	assert.True(t, modes[ModeTransit])
}

func TestPickBestTieGoesToEarlierOffer(t *testing.T) {
	a := &Offer{Mode: ModeCab, FareAmount: 50, DurationSec: 600}
	b := &Offer{Mode: ModeTransit, FareAmount: 50, DurationSec: 600}

	best := pickBest([]*Offer{a, b}, 10)
	assert.Equal(t, 0, best)
}

func TestPickBestMetroBonusWindow(t *testing.T) {
	metro := &Offer{Mode: ModeMetro, FareAmount: 40, DurationSec: 30 * 60}
	cab := &Offer{Mode: ModeCab, FareAmount: 40, DurationSec: 27 * 60}

	// Inside the 5-25 km window the metro's bonus overcomes a small deficit.
	assert.Equal(t, 0, pickBest([]*Offer{metro, cab}, 10))
	// Outside the window the cab's raw score wins.
	assert.Equal(t, 1, pickBest([]*Offer{metro, cab}, 30))
}

func TestPickBestRerunsUnfilteredWhenOnlyWalkRemains(t *testing.T) {
	walk := &Offer{Mode: ModeWalk, FareAmount: 0, DurationSec: 3600}

	best := pickBest([]*Offer{walk}, 5)
	assert.Equal(t, 0, best, "a lone long walk still wins the unfiltered rerun")
}
