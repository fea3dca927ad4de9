package dto

import "time"

type PlanRequest struct {
	DepartAt     *time.Time `json:"depart_at"`
	MaxPoolSize  int        `json:"max_pool_size"`
	MinPairScore float64    `json:"min_pair_score"`
}

type PoolResponse struct {
	PoolID                 string             `json:"pool_id"`
	ShipmentIDs            []string           `json:"shipment_ids"`
	TotalWeightKg          float64            `json:"total_weight_kg"`
	PickupCentroid         CoordinateResponse `json:"pickup_centroid"`
	DropCentroid           CoordinateResponse `json:"drop_centroid"`
	BearingDeg             float64            `json:"bearing_deg"`
	RouteDistanceKm        float64            `json:"route_distance_km"`
	EstimatedTravelMinutes float64            `json:"estimated_travel_minutes"`
	EfficiencyScore        float64            `json:"efficiency_score"`
}

type MatchResponse struct {
	PoolID               string   `json:"pool_id"`
	CarrierID            string   `json:"carrier_id"`
	Score                float64  `json:"score"`
	Reasons              []string `json:"reasons"`
	EstimatedTimeMinutes float64  `json:"estimated_time_minutes"`
}

type PlanSummaryResponse struct {
	TotalShipments         int     `json:"total_shipments"`
	TotalPools             int     `json:"total_pools"`
	AveragePoolSize        float64 `json:"average_pool_size"`
	MatchedPools           int     `json:"matched_pools"`
	UnmatchedPools         int     `json:"unmatched_pools"`
	TotalDistanceKm        float64 `json:"total_distance_km"`
	TotalTravelTimeHours   float64 `json:"total_travel_time_hours"`
	AverageEfficiencyScore float64 `json:"average_efficiency_score"`
}

type PlanResponse struct {
	Pools   []PoolResponse      `json:"pools"`
	Matches []MatchResponse     `json:"matches"`
	Summary PlanSummaryResponse `json:"summary"`
}

type AssignmentRequest struct {
	ShipmentID string     `json:"shipment_id"`
	DepartAt   *time.Time `json:"depart_at"`
}

type AssignmentResponse struct {
	Assigned bool           `json:"assigned"`
	Reason   string         `json:"reason,omitempty"`
	Match    *MatchResponse `json:"match,omitempty"`
}
