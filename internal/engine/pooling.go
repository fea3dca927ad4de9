package engine

import (
	"strings"

	"shipment-pooling-service/internal/domain"
)

// ClusterShipments partitions a batch of shipments into disjoint pools using
// greedy seed-and-grow clustering.
//
// Each shipment not yet pooled, taken in input order, seeds a new pool. The
// pool then grows by repeatedly admitting the remaining candidate with the
// highest average compatibility against the current members, until the best
// average drops below MinPairScore or the pool reaches MaxPoolSize.
//
// The algorithm is O(n^2) pairwise comparisons up to O(n^2 * maxPoolSize) in
// the worst case; callers bound cost by capping batch size. It does not
// attempt a globally optimal partition (e.g., a VRP solve). The design
// prioritizes determinism and simplicity over optimality.
//
// Every input shipment lands in exactly one pool; singleton pools are the
// expected outcome for shipments with no compatible partner. Inputs are
// never mutated.
func ClusterShipments(shipments []domain.Shipment, scorer PairScorer, cfg Config) []domain.Pool {
	cfg = cfg.normalized()

	pooled := make([]bool, len(shipments))
	pools := make([]domain.Pool, 0, len(shipments))

	for seed := range shipments {
		if pooled[seed] {
			continue
		}
		pooled[seed] = true
		members := []domain.Shipment{shipments[seed]}

		for len(members) < cfg.MaxPoolSize {
			best := -1
			bestScore := 0.0

			for cand := range shipments {
				if pooled[cand] {
					continue
				}
				sum := 0.0
				for _, m := range members {
					sum += scorer.ScorePair(shipments[cand], m)
				}
				avg := sum / float64(len(members))
				// Strict comparison: on equal scores the candidate
				// encountered first in input order wins. Keeps clustering
				// deterministic and testable.
				if avg > bestScore {
					bestScore = avg
					best = cand
				}
			}

			if best < 0 || bestScore < cfg.MinPairScore {
				break
			}
			pooled[best] = true
			members = append(members, shipments[best])
		}

		pools = append(pools, buildPool(members, cfg))
	}

	return pools
}

// buildPool computes the derived attributes of a finished pool.
func buildPool(members []domain.Shipment, cfg Config) domain.Pool {
	ids := make([]string, 0, len(members))
	pickups := make([]domain.Coordinate, 0, len(members))
	drops := make([]domain.Coordinate, 0, len(members))
	bearings := make([]float64, 0, len(members))
	total := 0.0

	for _, s := range members {
		ids = append(ids, s.ID)
		pickups = append(pickups, s.Pickup)
		drops = append(drops, s.Drop)
		bearings = append(bearings, BearingDeg(s.Pickup, s.Drop))
		total += s.WeightKg
	}

	pickupCentroid := centroid(pickups)
	dropCentroid := centroid(drops)

	routeKm := DistanceKm(pickupCentroid, dropCentroid)
	travelMinutes := routeKm * cfg.MinutesPerKm

	// Shipments per travel hour, with the hour floored at 1 so a short hop
	// with several shipments doesn't blow the score up.
	hours := travelMinutes / 60
	if hours < 1 {
		hours = 1
	}

	return domain.Pool{
		ID:                     strings.Join(ids, "+"),
		Shipments:              members,
		TotalWeightKg:          total,
		PickupCentroid:         pickupCentroid,
		DropCentroid:           dropCentroid,
		BearingDeg:             circularMeanDeg(bearings),
		RouteDistanceKm:        routeKm,
		EstimatedTravelMinutes: travelMinutes,
		EfficiencyScore:        float64(len(members)) / hours,
	}
}
