package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"shipment-pooling-service/internal/domain"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func writeSeedFiles(t *testing.T, shipments, carriers string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	shipmentsPath := filepath.Join(dir, "shipments.json")
	carriersPath := filepath.Join(dir, "carriers.json")

	if err := os.WriteFile(shipmentsPath, []byte(shipments), 0o600); err != nil {
		t.Fatalf("write shipments seed: %v", err)
	}
	if err := os.WriteFile(carriersPath, []byte(carriers), 0o600); err != nil {
		t.Fatalf("write carriers seed: %v", err)
	}
	return shipmentsPath, carriersPath
}

func TestShipmentRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)

	shipmentsJSON := `[
		{
			"shipment_id": "SHIP-002",
			"pickup_lat": 28.61, "pickup_lon": 77.21,
			"drop_lat": 28.71, "drop_lon": 77.22,
			"weight_kg": 250,
			"ready_at": "2026-03-02T09:00:00Z",
			"due_by": "2026-03-02T12:00:00Z",
			"vehicle_type": "medium",
			"priority": "high"
		},
		{
			"shipment_id": "SHIP-001",
			"pickup_lat": 28.60, "pickup_lon": 77.20,
			"drop_lat": 28.70, "drop_lon": 77.20,
			"weight_kg": 120
		}
	]`
	shipmentsPath, carriersPath := writeSeedFiles(t, shipmentsJSON, `[]`)

	if err := SeedFromJSON(db, shipmentsPath, carriersPath); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewSQLShipmentRepository(db)
	shipments, err := repo.ListPending(context.Background())
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}

	if len(shipments) != 2 {
		t.Fatalf("got %d shipments, want 2", len(shipments))
	}
	// Ordered by id for deterministic clustering input.
	if shipments[0].ID != "SHIP-001" || shipments[1].ID != "SHIP-002" {
		t.Fatalf("order = [%s %s], want [SHIP-001 SHIP-002]", shipments[0].ID, shipments[1].ID)
	}

	bare := shipments[0]
	if bare.HasWindow() || bare.VehicleTypeRequired != "" || bare.Priority != "" {
		t.Fatalf("optional fields not null for bare shipment: %+v", bare)
	}

	full := shipments[1]
	if !full.HasWindow() {
		t.Fatal("window lost in round trip")
	}
	if full.ReadyAt.Format("15:04") != "09:00" {
		t.Errorf("ready_at = %v", full.ReadyAt)
	}
	if full.VehicleTypeRequired != domain.VehicleMedium {
		t.Errorf("vehicle type = %q, want medium", full.VehicleTypeRequired)
	}
	if full.Priority != domain.PriorityHigh {
		t.Errorf("priority = %q, want high", full.Priority)
	}
	if full.WeightKg != 250 {
		t.Errorf("weight = %v, want 250", full.WeightKg)
	}
}

func TestCarrierRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)

	carriersJSON := `[
		{
			"carrier_id": "CARR-001",
			"lat": 28.60, "lon": 77.20,
			"capacity_kg": 1000,
			"current_load_kg": 150,
			"service_radius_km": 25,
			"vehicle_types": "medium,heavy",
			"traffic_adaptive": true
		},
		{
			"carrier_id": "CARR-002",
			"lat": 28.65, "lon": 77.25
		}
	]`
	shipmentsPath, carriersPath := writeSeedFiles(t, `[]`, carriersJSON)

	if err := SeedFromJSON(db, shipmentsPath, carriersPath); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewSQLCarrierRepository(db)
	carriers, err := repo.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("list available: %v", err)
	}

	if len(carriers) != 2 {
		t.Fatalf("got %d carriers, want 2", len(carriers))
	}

	full := carriers[0]
	if full.ID != "CARR-001" {
		t.Fatalf("first carrier = %q, want CARR-001", full.ID)
	}
	if full.CapacityWeightKg == nil || *full.CapacityWeightKg != 1000 {
		t.Errorf("capacity = %v, want 1000", full.CapacityWeightKg)
	}
	if full.CurrentLoadKg != 150 {
		t.Errorf("current load = %v, want 150", full.CurrentLoadKg)
	}
	if full.ServiceRadiusKm == nil || *full.ServiceRadiusKm != 25 {
		t.Errorf("service radius = %v, want 25", full.ServiceRadiusKm)
	}
	if len(full.VehicleTypes) != 2 || full.VehicleTypes[0] != domain.VehicleMedium || full.VehicleTypes[1] != domain.VehicleHeavy {
		t.Errorf("vehicle types = %v, want [medium heavy]", full.VehicleTypes)
	}
	if !full.TrafficAdaptive {
		t.Error("traffic_adaptive flag lost")
	}

	bare := carriers[1]
	if bare.CapacityWeightKg != nil || bare.ServiceRadiusKm != nil || bare.VehicleTypes != nil {
		t.Fatalf("optional fields not null for bare carrier: %+v", bare)
	}
}
