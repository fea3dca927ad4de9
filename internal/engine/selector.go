package engine

import (
	"time"

	"shipment-pooling-service/internal/domain"
)

// SelectBestCarrier scores every carrier against the pool and returns the
// highest-scoring one that clears MinCarrierEligibilityScore. The second
// return value is false when no carrier is eligible: an expected outcome
// the caller handles as a normal branch (e.g. fall back to manual
// assignment), never an error, and never a fabricated low-confidence match.
//
// Ties are broken by position in the carrier slice: the first carrier to
// reach the best score wins. Re-invoking with the same inputs always yields
// the same result.
func SelectBestCarrier(p domain.Pool, carriers []domain.Carrier, at time.Time, cfg Config) (domain.Match, bool) {
	cfg = cfg.normalized()

	var best domain.Match
	found := false

	for _, c := range carriers {
		m := ScoreCarrierForPool(c, p, at, cfg)
		if m.Score < cfg.MinCarrierEligibilityScore {
			continue
		}
		if !found || m.Score > best.Score {
			best = m
			found = true
		}
	}

	return best, found
}
