package dto

import "time"

type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ShipmentResponse struct {
	ShipmentID          string             `json:"shipment_id"`
	Pickup              CoordinateResponse `json:"pickup"`
	Drop                CoordinateResponse `json:"drop"`
	WeightKg            float64            `json:"weight_kg"`
	ReadyAt             *time.Time         `json:"ready_at,omitempty"`
	DueBy               *time.Time         `json:"due_by,omitempty"`
	VehicleTypeRequired string             `json:"vehicle_type_required,omitempty"`
	Priority            string             `json:"priority,omitempty"`
}

type ListShipmentsResponse struct {
	Shipments []ShipmentResponse `json:"shipments"`
}
