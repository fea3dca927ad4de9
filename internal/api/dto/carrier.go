package dto

type CarrierResponse struct {
	CarrierID        string             `json:"carrier_id"`
	CurrentLocation  CoordinateResponse `json:"current_location"`
	CapacityWeightKg *float64           `json:"capacity_weight_kg,omitempty"`
	CurrentLoadKg    float64            `json:"current_load_kg"`
	ServiceRadiusKm  *float64           `json:"service_radius_km,omitempty"`
	VehicleTypes     []string           `json:"vehicle_types"`
	TrafficAdaptive  bool               `json:"traffic_adaptive"`
	// LiveLocation is true when CurrentLocation came from carrier telemetry
	// rather than the stored record.
	LiveLocation bool `json:"live_location"`
}

type ListCarriersResponse struct {
	Carriers []CarrierResponse `json:"carriers"`
}

type LocationUpdateRequest struct {
	CarrierID string  `json:"carrier_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
