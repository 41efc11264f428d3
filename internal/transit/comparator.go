package transit

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"margdarshak.in/internal/clock"
	"margdarshak.in/internal/dataset"
	"margdarshak.in/internal/geo"
)

// Comparison is the full result of evaluating every mode for one trip.
type Comparison struct {
	Offers        []*Offer         `json:"modes"`
	BestIndex     int              `json:"-"`
	DistanceKm    float64          `json:"distanceKm"`
	UsingFallback bool             `json:"usingFallback"`
	Safety        SafetyAssessment `json:"safety"`
}

// Best returns the winning offer.
func (c *Comparison) Best() *Offer {
	if c.BestIndex < 0 || c.BestIndex >= len(c.Offers) {
		return nil
	}
	return c.Offers[c.BestIndex]
}

// Compare evaluates all transport modes between two points and selects the
// single best offer. Walk and cab are always present; bus degrades to a
// generic transit estimate when no stop pairing exists; metro and train are
// omitted when inapplicable. A panic in any one evaluator is contained so the
// rest of the comparison still answers.
func (e *Engine) Compare(ctx context.Context, from, to geo.Point) (*Comparison, error) {
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("compare: invalid coordinates from=%v to=%v", from, to)
	}

	route, usingFallback := e.roadRoute(ctx, from, to)
	distanceKm := route.DistanceKm
	tod := clock.CurrentTimeOfDay(e.clock)

	cab := evaluateCab(distanceKm)
	cab.Polyline = route.Polyline

	offers := []*Offer{
		evaluateWalk(distanceKm),
		cab,
	}

	if metro := e.recoverMetro(from, to, tod); metro != nil {
		offers = append(offers, metro)
	}

	bus := e.recoverBus(from, to, distanceKm, tod)
	if bus == nil {
		bus = evaluateGenericTransit(distanceKm)
	}
	offers = append(offers, bus)

	if train := e.recoverTrain(from, to, tod); train != nil {
		offers = append(offers, train)
	}

	best := pickBest(offers, distanceKm)
	offers[best].IsBest = true

	safety := AssessRouteSafety(dataset.BusCityAt(from), from, to, tod.IsNight)
	applySafety(offers, safety)
	applyEco(offers, distanceKm)

	e.logger.Info("routes compared",
		slog.Float64("distance_km", distanceKm),
		slog.Bool("using_fallback", usingFallback),
		slog.Int("offer_count", len(offers)),
		slog.String("best_mode", string(offers[best].Mode)))

	return &Comparison{
		Offers:        offers,
		BestIndex:     best,
		DistanceKm:    distanceKm,
		UsingFallback: usingFallback,
		Safety:        safety,
	}, nil
}

// pickBest scores each offer by fare plus minutes and returns the index of
// the lowest. Walks longer than walkBestMaxKm are excluded from the first
// pass; if exclusion empties the field the selection reruns unfiltered.
// Metro gets a five point bonus on medium trips where it tends to beat road
// congestion. Strict less-than keeps the winner unique: ties go to the
// earlier offer.
func pickBest(offers []*Offer, distanceKm float64) int {
	best := -1
	bestScore := math.Inf(1)

	for i, o := range offers {
		if o.Mode == ModeWalk && distanceKm > walkBestMaxKm {
			continue
		}
		score := offerScore(o, distanceKm)
		if score < bestScore {
			bestScore = score
			best = i
		}
	}

	if best < 0 {
		for i, o := range offers {
			score := offerScore(o, distanceKm)
			if score < bestScore {
				bestScore = score
				best = i
			}
		}
	}
	return best
}

func offerScore(o *Offer, distanceKm float64) float64 {
	score := float64(o.FareAmount) + float64(o.DurationSec)/60
	if o.Mode == ModeMetro && distanceKm >= 5 && distanceKm <= 25 {
		score -= 5
	}
	return score
}

func (e *Engine) recoverMetro(from, to geo.Point, tod clock.TimeOfDay) (offer *Offer) {
	defer e.recoverEvaluator("metro", &offer)
	return e.evaluateMetro(from, to, tod)
}

func (e *Engine) recoverBus(from, to geo.Point, roadKm float64, tod clock.TimeOfDay) (offer *Offer) {
	defer e.recoverEvaluator("bus", &offer)
	return e.evaluateBus(from, to, roadKm, tod)
}

func (e *Engine) recoverTrain(from, to geo.Point, tod clock.TimeOfDay) (offer *Offer) {
	defer e.recoverEvaluator("train", &offer)
	return e.evaluateTrain(from, to, tod)
}

func (e *Engine) recoverEvaluator(name string, offer **Offer) {
	if r := recover(); r != nil {
		e.logger.Error("mode evaluator panicked",
			slog.String("evaluator", name),
			slog.Any("panic", r))
		*offer = nil
	}
}
