package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Seed rows mirror the schema; optional columns are pointers so that absent
// JSON fields insert as NULL rather than as zero values.
type ShipmentSeed struct {
	ShipmentID  string   `json:"shipment_id"`
	PickupLat   float64  `json:"pickup_lat"`
	PickupLon   float64  `json:"pickup_lon"`
	DropLat     float64  `json:"drop_lat"`
	DropLon     float64  `json:"drop_lon"`
	WeightKg    float64  `json:"weight_kg"`
	ReadyAt     *string  `json:"ready_at"`
	DueBy       *string  `json:"due_by"`
	VehicleType *string  `json:"vehicle_type"`
	Priority    *string  `json:"priority"`
}

type CarrierSeed struct {
	CarrierID       string   `json:"carrier_id"`
	Lat             float64  `json:"lat"`
	Lon             float64  `json:"lon"`
	CapacityKg      *float64 `json:"capacity_kg"`
	CurrentLoadKg   float64  `json:"current_load_kg"`
	ServiceRadiusKm *float64 `json:"service_radius_km"`
	VehicleTypes    *string  `json:"vehicle_types"`
	TrafficAdaptive bool     `json:"traffic_adaptive"`
}

func loadSeeds(shipmentsPath, carriersPath string) ([]ShipmentSeed, []CarrierSeed, error) {
	shipmentBytes, err := os.ReadFile(shipmentsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("seed shipments: read %q: %w", shipmentsPath, err)
	}

	var shipments []ShipmentSeed
	if err := json.Unmarshal(shipmentBytes, &shipments); err != nil {
		return nil, nil, fmt.Errorf("seed shipments: parse json: %w", err)
	}
	for i, s := range shipments {
		if strings.TrimSpace(s.ShipmentID) == "" {
			return nil, nil, fmt.Errorf("seed shipments: item at index %d: shipment_id cannot be empty", i+1)
		}
	}

	carrierBytes, err := os.ReadFile(carriersPath)
	if err != nil {
		return nil, nil, fmt.Errorf("seed carriers: read %q: %w", carriersPath, err)
	}

	var carriers []CarrierSeed
	if err := json.Unmarshal(carrierBytes, &carriers); err != nil {
		return nil, nil, fmt.Errorf("seed carriers: parse json: %w", err)
	}
	for i, c := range carriers {
		if strings.TrimSpace(c.CarrierID) == "" {
			return nil, nil, fmt.Errorf("seed carriers: item at index %d: carrier_id cannot be empty", i+1)
		}
	}

	return shipments, carriers, nil
}
