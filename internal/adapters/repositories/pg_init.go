package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema. Column types are kept aligned
// with the SQLite schema (timestamps as RFC3339 text, flags as integers) so
// the shared repositories can read from either driver.
func InitSchemaPG(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createShipmentsQuery := `
	CREATE TABLE IF NOT EXISTS shipments (
		shipment_id TEXT PRIMARY KEY,
		pickup_lat DOUBLE PRECISION NOT NULL,
		pickup_lon DOUBLE PRECISION NOT NULL,
		drop_lat DOUBLE PRECISION NOT NULL,
		drop_lon DOUBLE PRECISION NOT NULL,
		weight_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
		ready_at TEXT,
		due_by TEXT,
		vehicle_type TEXT,
		priority TEXT,
		status TEXT NOT NULL DEFAULT 'pending'
	);
	`

	createCarriersQuery := `
	CREATE TABLE IF NOT EXISTS carriers (
		carrier_id TEXT PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		capacity_kg DOUBLE PRECISION,
		current_load_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
		service_radius_km DOUBLE PRECISION,
		vehicle_types TEXT,
		traffic_adaptive INTEGER NOT NULL DEFAULT 0,
		available INTEGER NOT NULL DEFAULT 1
	);
	`

	createStatusIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_shipments_status
	ON shipments(status, shipment_id);
	`

	statements := []string{
		createShipmentsQuery,
		createCarriersQuery,
		createStatusIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres database with shipment and carrier data from JSON
// seed files.
func SeedFromJSONPG(db *sql.DB, shipmentsPath, carriersPath string) error {
	shipments, carriers, err := loadSeeds(shipmentsPath, carriersPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	shipmentQuery := `
	INSERT INTO shipments (
		shipment_id,
		pickup_lat, pickup_lon,
		drop_lat, drop_lon,
		weight_kg,
		ready_at, due_by,
		vehicle_type, priority,
		status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'pending')
	ON CONFLICT (shipment_id) DO UPDATE
	SET pickup_lat = EXCLUDED.pickup_lat,
		pickup_lon = EXCLUDED.pickup_lon,
		drop_lat = EXCLUDED.drop_lat,
		drop_lon = EXCLUDED.drop_lon,
		weight_kg = EXCLUDED.weight_kg,
		ready_at = EXCLUDED.ready_at,
		due_by = EXCLUDED.due_by,
		vehicle_type = EXCLUDED.vehicle_type,
		priority = EXCLUDED.priority;
	`
	shipmentStmt, err := tx.Prepare(shipmentQuery)
	if err != nil {
		return fmt.Errorf("seed shipments: prepare insert: %w", err)
	}
	defer shipmentStmt.Close()

	for _, s := range shipments {
		_, err := shipmentStmt.Exec(
			s.ShipmentID,
			s.PickupLat, s.PickupLon,
			s.DropLat, s.DropLon,
			s.WeightKg,
			s.ReadyAt, s.DueBy,
			s.VehicleType, s.Priority,
		)
		if err != nil {
			return fmt.Errorf("seed shipments: insert shipment_id=%q: %w", s.ShipmentID, err)
		}
	}

	carrierQuery := `
	INSERT INTO carriers (
		carrier_id,
		lat, lon,
		capacity_kg,
		current_load_kg,
		service_radius_km,
		vehicle_types,
		traffic_adaptive,
		available
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1)
	ON CONFLICT (carrier_id) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		capacity_kg = EXCLUDED.capacity_kg,
		current_load_kg = EXCLUDED.current_load_kg,
		service_radius_km = EXCLUDED.service_radius_km,
		vehicle_types = EXCLUDED.vehicle_types,
		traffic_adaptive = EXCLUDED.traffic_adaptive;
	`
	carrierStmt, err := tx.Prepare(carrierQuery)
	if err != nil {
		return fmt.Errorf("seed carriers: prepare insert: %w", err)
	}
	defer carrierStmt.Close()

	for _, c := range carriers {
		_, err := carrierStmt.Exec(
			c.CarrierID,
			c.Lat, c.Lon,
			c.CapacityKg,
			c.CurrentLoadKg,
			c.ServiceRadiusKm,
			c.VehicleTypes,
			boolToInt(c.TrafficAdaptive),
		)
		if err != nil {
			return fmt.Errorf("seed carriers: insert carrier_id=%q: %w", c.CarrierID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}
