package engine

import (
	"math"
	"time"

	"shipment-pooling-service/internal/domain"
)

// PairScorer judges how well two shipments fit in the same pool, in [0,1].
// It is the injection seam for alternative similarity strategies (e.g. an
// embedding-backed scorer); the default implementation uses only geometry
// and time windows.
type PairScorer interface {
	ScorePair(a, b domain.Shipment) float64
}

// GeoPairScorer is the default PairScorer: a weighted sum of pickup
// proximity, route-direction similarity, time-window overlap, and drop
// proximity. Symmetric in its arguments up to floating-point rounding.
type GeoPairScorer struct {
	cfg Config
}

func NewGeoPairScorer(cfg Config) *GeoPairScorer {
	return &GeoPairScorer{cfg: cfg.normalized()}
}

func (g *GeoPairScorer) ScorePair(a, b domain.Shipment) float64 {
	joinKm := g.cfg.PickupJoinDistanceKm

	pickupKm := DistanceKm(a.Pickup, b.Pickup)
	// Pickups beyond the join distance make the pair incompatible outright;
	// no combination of the remaining factors may pool them.
	if pickupKm >= joinKm {
		return 0
	}

	pickupScore := clamp01(1 - pickupKm/joinKm)

	bearingA := BearingDeg(a.Pickup, a.Drop)
	bearingB := BearingDeg(b.Pickup, b.Drop)
	routeScore := 1 - AngleDiffDeg(bearingA, bearingB)/180

	timeScore := g.windowOverlap(a, b)

	// Delivery points are allowed to diverge more than pickups, hence the
	// looser 2x radius.
	dropScore := clamp01(1 - DistanceKm(a.Drop, b.Drop)/(2*joinKm))

	w := g.cfg.PairWeights
	return clamp01(w.PickupProximity*pickupScore +
		w.RouteSimilarity*routeScore +
		w.TimeOverlap*timeScore +
		w.DropProximity*dropScore)
}

// windowOverlap scores the overlap of the two availability windows as the
// overlapping duration over the longer of the two durations. A shipment
// without a complete window is time-flexible, so the pair falls back to the
// configured flexible default.
func (g *GeoPairScorer) windowOverlap(a, b domain.Shipment) float64 {
	if !a.HasWindow() || !b.HasWindow() {
		return g.cfg.FlexibleWindowScore
	}

	start := maxTime(*a.ReadyAt, *b.ReadyAt)
	end := minTime(*a.DueBy, *b.DueBy)
	overlap := end.Sub(start)
	if overlap < 0 {
		return 0
	}

	longer := a.DueBy.Sub(*a.ReadyAt)
	if d := b.DueBy.Sub(*b.ReadyAt); d > longer {
		longer = d
	}
	if longer <= 0 {
		// Both windows are instants; they overlap only if identical.
		return 1
	}

	return clamp01(float64(overlap) / float64(longer))
}

func maxTime(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

func minTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
