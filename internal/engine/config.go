package engine

// PairWeights are the relative weights of the pairwise compatibility
// sub-scores. They should sum to 1 for the combined score to stay in [0,1].
type PairWeights struct {
	PickupProximity float64
	RouteSimilarity float64
	TimeOverlap     float64
	DropProximity   float64
}

// CarrierWeights are the relative weights of the carrier-vs-pool sub-scores.
type CarrierWeights struct {
	Distance      float64
	Capacity      float64
	VehicleType   float64
	ServiceRadius float64
}

// Config holds the engine tunables. All values are optional; zero fields are
// replaced with defaults by normalized(), so callers can override just the
// knobs they care about. The exact numbers are tunable configuration, not
// load-bearing constants.
//
// Zero means unset, so thresholds cannot be configured to literal 0; a
// caller that wants a threshold to admit everything should pass a tiny
// positive value (e.g. 1e-9) instead.
type Config struct {
	// MaxPoolSize caps how many shipments may share a pool.
	MaxPoolSize int
	// PickupJoinDistanceKm is the pickup distance beyond which two shipments
	// are considered incompatible outright.
	PickupJoinDistanceKm float64
	// MinPairScore is the minimum average compatibility a candidate must
	// reach against current pool members to be added.
	MinPairScore float64
	// FlexibleWindowScore is the time-overlap sub-score assumed when either
	// shipment of a pair declares no availability window.
	FlexibleWindowScore float64

	PairWeights    PairWeights
	CarrierWeights CarrierWeights

	// DistanceDecayKm is the e-folding distance of the carrier distance
	// score: nearby carriers are strongly preferred, far carriers decay
	// smoothly instead of being zeroed at a hard cutoff.
	DistanceDecayKm float64
	// MinCarrierEligibilityScore is the floor below which a carrier is not
	// offered a pool at all.
	MinCarrierEligibilityScore float64
	// MinutesPerKm converts haversine distance into an urban travel-time
	// proxy.
	MinutesPerKm float64
}

func DefaultConfig() Config {
	return Config{
		MaxPoolSize:          3,
		PickupJoinDistanceKm: 6,
		MinPairScore:         0.45,
		FlexibleWindowScore:  0.8,
		PairWeights: PairWeights{
			PickupProximity: 0.40,
			RouteSimilarity: 0.35,
			TimeOverlap:     0.15,
			DropProximity:   0.10,
		},
		CarrierWeights: CarrierWeights{
			Distance:      0.35,
			Capacity:      0.25,
			VehicleType:   0.25,
			ServiceRadius: 0.15,
		},
		DistanceDecayKm:            15,
		MinCarrierEligibilityScore: 0.35,
		MinutesPerKm:               2.5,
	}
}

// normalized fills zero-valued fields with defaults so a partially populated
// Config behaves sensibly.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.MaxPoolSize <= 0 {
		c.MaxPoolSize = def.MaxPoolSize
	}
	if c.PickupJoinDistanceKm <= 0 {
		c.PickupJoinDistanceKm = def.PickupJoinDistanceKm
	}
	if c.MinPairScore <= 0 {
		c.MinPairScore = def.MinPairScore
	}
	if c.FlexibleWindowScore <= 0 {
		c.FlexibleWindowScore = def.FlexibleWindowScore
	}
	if c.PairWeights == (PairWeights{}) {
		c.PairWeights = def.PairWeights
	}
	if c.CarrierWeights == (CarrierWeights{}) {
		c.CarrierWeights = def.CarrierWeights
	}
	if c.DistanceDecayKm <= 0 {
		c.DistanceDecayKm = def.DistanceDecayKm
	}
	if c.MinCarrierEligibilityScore <= 0 {
		c.MinCarrierEligibilityScore = def.MinCarrierEligibilityScore
	}
	if c.MinutesPerKm <= 0 {
		c.MinutesPerKm = def.MinutesPerKm
	}
	return c
}
