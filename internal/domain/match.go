package domain

// Represents a scored carrier-for-pool candidate. Score is always finite and
// in [0,1]; Reasons holds one short human-readable line per scoring factor,
// in a stable order, so operators can see what produced the score.
// EstimatedTimeMinutes is a travel-time proxy (haversine distance at an
// average urban speed), not a routed ETA.
type Match struct {
	PoolID               string
	CarrierID            string
	Score                float64
	Reasons              []string
	EstimatedTimeMinutes float64
}
