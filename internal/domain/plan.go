package domain

// Represents the outcome of one pooling-and-matching run over a snapshot of
// pending shipments and available carriers. It is planning data only; the
// caller is responsible for persisting whichever assignments it accepts.
type Plan struct {
	Pools   []Pool
	Matches []Match
	Summary PlanSummary
}

// Aggregate figures for a plan, surfaced to operators alongside the pools.
// The distance and travel-time totals sum the per-pool centroid legs;
// AverageEfficiencyScore is the mean of the pools' efficiency scores.
type PlanSummary struct {
	TotalShipments         int
	TotalPools             int
	AveragePoolSize        float64
	MatchedPools           int
	UnmatchedPools         int
	TotalDistanceKm        float64
	TotalTravelTimeHours   float64
	AverageEfficiencyScore float64
}
