package engine

import (
	"fmt"
	"time"

	"shipment-pooling-service/internal/domain"
)

// BuildPlan runs one full pooling-and-matching pass over a snapshot of
// pending shipments and available carriers: validate, cluster, then pick the
// best eligible carrier per pool.
//
// Validation failures surface immediately (wrapping domain.ErrInvalidInput);
// the engine never silently skips or coerces a malformed record. A pool with
// no eligible carrier simply produces no match; that is reported through
// the summary, not as an error.
func BuildPlan(
	shipments []domain.Shipment,
	carriers []domain.Carrier,
	at time.Time,
	scorer PairScorer,
	cfg Config,
) (*domain.Plan, error) {
	cfg = cfg.normalized()

	for _, s := range shipments {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("build plan: %w", err)
		}
	}
	for _, c := range carriers {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("build plan: %w", err)
		}
	}

	if scorer == nil {
		scorer = NewGeoPairScorer(cfg)
	}

	pools := ClusterShipments(shipments, scorer, cfg)

	matches := make([]domain.Match, 0, len(pools))
	for _, p := range pools {
		if m, ok := SelectBestCarrier(p, carriers, at, cfg); ok {
			matches = append(matches, m)
		}
	}

	summary := domain.PlanSummary{
		TotalShipments: len(shipments),
		TotalPools:     len(pools),
		MatchedPools:   len(matches),
		UnmatchedPools: len(pools) - len(matches),
	}
	efficiencySum := 0.0
	for _, p := range pools {
		summary.TotalDistanceKm += p.RouteDistanceKm
		summary.TotalTravelTimeHours += p.EstimatedTravelMinutes / 60
		efficiencySum += p.EfficiencyScore
	}
	if len(pools) > 0 {
		summary.AveragePoolSize = float64(len(shipments)) / float64(len(pools))
		summary.AverageEfficiencyScore = efficiencySum / float64(len(pools))
	}

	return &domain.Plan{Pools: pools, Matches: matches, Summary: summary}, nil
}
