package domain

// Represents a group of 1..maxPoolSize shipments judged compatible enough to
// travel in the same vehicle. Pools are derived fresh on every clustering run
// and have no identity across runs; a shipment may land in a different pool
// the next time pooling executes. Derived attributes are computed once at
// construction and never mutated.
type Pool struct {
	ID             string // joined member shipment ids
	Shipments      []Shipment
	TotalWeightKg  float64
	PickupCentroid Coordinate
	DropCentroid   Coordinate
	BearingDeg     float64 // circular mean of member route bearings, [0,360)

	// Per-pool efficiency figures. RouteDistanceKm is the haversine leg
	// from pickup centroid to drop centroid; EstimatedTravelMinutes is that
	// leg at the configured average urban pace. EfficiencyScore is
	// shipments per travel hour, with the hour floored at 1 so short hops
	// don't produce runaway scores.
	RouteDistanceKm        float64
	EstimatedTravelMinutes float64
	EfficiencyScore        float64
}

// ShipmentIDs returns the member ids in pool order.
func (p Pool) ShipmentIDs() []string {
	ids := make([]string, 0, len(p.Shipments))
	for _, s := range p.Shipments {
		ids = append(ids, s.ID)
	}
	return ids
}
