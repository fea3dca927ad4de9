package engine

import (
	"fmt"
	"math"
	"time"

	"shipment-pooling-service/internal/domain"
)

// vehicleCovers maps a carrier vehicle type to the shipment requirements it
// can satisfy.
var vehicleCovers = map[domain.VehicleType][]domain.VehicleType{
	domain.VehicleLight:     {domain.VehicleLight},
	domain.VehicleMedium:    {domain.VehicleLight, domain.VehicleMedium},
	domain.VehicleHeavy:     {domain.VehicleMedium, domain.VehicleHeavy},
	domain.VehicleContainer: {domain.VehicleHeavy, domain.VehicleContainer},
}

// ScoreCarrierForPool rates how well a carrier fits a pool as a weighted sum
// of distance to the pickup centroid, capacity fit, vehicle-type
// compatibility, and service-radius fit. The returned score is in [0,1] and
// Reasons lists the raw measurement behind each factor, in the weight order
// above, so tests and operators can rely on the sequence.
//
// The departure time feeds the time-of-day congestion factor of the ETA
// proxy only; it never moves the score.
func ScoreCarrierForPool(c domain.Carrier, p domain.Pool, at time.Time, cfg Config) domain.Match {
	cfg = cfg.normalized()

	km := DistanceKm(c.CurrentLocation, p.PickupCentroid)

	// Exponential decay rather than a hard cutoff: nearby carriers are
	// strongly preferred but far ones are not instantly zeroed unless the
	// service radius says so.
	distanceScore := math.Exp(-km / cfg.DistanceDecayKm)

	capacityScore, capacityReason := capacityFit(c, p)
	vehicleScore, vehicleReason := vehicleFit(c, p)
	radiusScore, radiusReason := serviceRadiusFit(c, km)

	w := cfg.CarrierWeights
	score := clamp01(w.Distance*distanceScore +
		w.Capacity*capacityScore +
		w.VehicleType*vehicleScore +
		w.ServiceRadius*radiusScore)

	eta := km * cfg.MinutesPerKm * CongestionFactor(at, c.TrafficAdaptive)

	return domain.Match{
		PoolID:    p.ID,
		CarrierID: c.ID,
		Score:     score,
		Reasons: []string{
			fmt.Sprintf("distance: %.1fkm", km),
			capacityReason,
			vehicleReason,
			radiusReason,
		},
		EstimatedTimeMinutes: eta,
	}
}

// capacityFit returns 1 when the carrier's free capacity covers the pool
// weight, 0 when its total capacity cannot possibly cover it, and the
// free/needed fraction in between (capacity sufficient but partially
// consumed by the current load). Undeclared capacity scores neutral.
func capacityFit(c domain.Carrier, p domain.Pool) (float64, string) {
	if c.CapacityWeightKg == nil {
		return 1, "capacity: undeclared"
	}

	capacity := *c.CapacityWeightKg
	free := capacity - c.CurrentLoadKg
	if free < 0 {
		free = 0
	}

	if p.TotalWeightKg <= 0 {
		return 1, "capacity: 100% available"
	}
	if capacity < p.TotalWeightKg {
		return 0, fmt.Sprintf("capacity: %.0fkg short of %.0fkg pool", p.TotalWeightKg-capacity, p.TotalWeightKg)
	}

	fit := free / p.TotalWeightKg
	if fit >= 1 {
		return 1, "capacity: 100% available"
	}
	return fit, fmt.Sprintf("capacity: %.0f%% available", fit*100)
}

// vehicleFit returns the fraction of pool members whose vehicle requirement
// the carrier can satisfy. Members with no requirement count as compatible;
// a carrier with no declared types is treated as unrestricted.
func vehicleFit(c domain.Carrier, p domain.Pool) (float64, string) {
	total := len(p.Shipments)
	if total == 0 {
		return 1, "vehicle types: 0/0 shipments compatible"
	}

	compatible := 0
	for _, s := range p.Shipments {
		if s.VehicleTypeRequired == "" || len(c.VehicleTypes) == 0 {
			compatible++
			continue
		}
		if carrierSatisfies(c.VehicleTypes, s.VehicleTypeRequired) {
			compatible++
		}
	}

	return float64(compatible) / float64(total),
		fmt.Sprintf("vehicle types: %d/%d shipments compatible", compatible, total)
}

func carrierSatisfies(types []domain.VehicleType, required domain.VehicleType) bool {
	for _, t := range types {
		for _, covered := range vehicleCovers[t] {
			if covered == required {
				return true
			}
		}
	}
	return false
}

// serviceRadiusFit returns 1 when the pickup lies inside the carrier's
// declared service radius, decaying linearly to 0 as the overage grows to
// the radius itself. Undeclared radius scores 1.
func serviceRadiusFit(c domain.Carrier, km float64) (float64, string) {
	if c.ServiceRadiusKm == nil {
		return 1, "service radius: undeclared"
	}

	radius := *c.ServiceRadiusKm
	if km <= radius {
		return 1, fmt.Sprintf("service radius: within %.0fkm radius", radius)
	}
	if radius <= 0 {
		return 0, fmt.Sprintf("service radius: %.1fkm beyond %.0fkm radius", km-radius, radius)
	}

	overage := km - radius
	return clamp01(1 - overage/radius),
		fmt.Sprintf("service radius: %.1fkm beyond %.0fkm radius", overage, radius)
}
