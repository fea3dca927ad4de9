package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shipment-pooling-service/internal/domain"
	"shipment-pooling-service/internal/platform/obs"
)

// SQL-backed implementation of the ShipmentRepository port. The SELECTs are
// placeholder-free, so the same repository serves both the SQLite and the
// Postgres schema.
type SQLShipmentRepository struct{ DB *sql.DB }

func NewSQLShipmentRepository(db *sql.DB) *SQLShipmentRepository {
	return &SQLShipmentRepository{DB: db}
}

// Return all pending shipments ordered by id. The stable order matters: the
// clustering engine's tie-breaks are positional.
func (s *SQLShipmentRepository) ListPending(ctx context.Context) (_ []domain.Shipment, err error) {
	defer obs.Time(ctx, "shipments.ListPending")(&err)

	if s.DB == nil {
		return nil, errors.New("shipment repository: DB is nil")
	}

	query := `
	SELECT
		shipment_id,
		pickup_lat, pickup_lon,
		drop_lat, drop_lon,
		weight_kg,
		ready_at, due_by,
		vehicle_type, priority
	FROM shipments
	WHERE status = 'pending'
	ORDER BY shipment_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pending shipments: query shipments table: %w", err)
	}
	defer rows.Close()

	shipments := make([]domain.Shipment, 0, 64)
	for rows.Next() {
		var (
			sh          domain.Shipment
			readyAt     sql.NullString
			dueBy       sql.NullString
			vehicleType sql.NullString
			priority    sql.NullString
		)
		err := rows.Scan(
			&sh.ID,
			&sh.Pickup.Latitude, &sh.Pickup.Longitude,
			&sh.Drop.Latitude, &sh.Drop.Longitude,
			&sh.WeightKg,
			&readyAt, &dueBy,
			&vehicleType, &priority,
		)
		if err != nil {
			return nil, fmt.Errorf("list pending shipments: scan row: %w", err)
		}

		if sh.ReadyAt, err = parseNullTime(readyAt); err != nil {
			return nil, fmt.Errorf("list pending shipments: shipment %q ready_at: %w", sh.ID, err)
		}
		if sh.DueBy, err = parseNullTime(dueBy); err != nil {
			return nil, fmt.Errorf("list pending shipments: shipment %q due_by: %w", sh.ID, err)
		}
		if vehicleType.Valid {
			sh.VehicleTypeRequired = domain.VehicleType(vehicleType.String)
		}
		if priority.Valid {
			sh.Priority = domain.Priority(priority.String)
		}

		shipments = append(shipments, sh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pending shipments: row iteration: %w", err)
	}

	return shipments, nil
}

// Timestamps are stored as RFC3339 text so the schema stays portable across
// SQLite and Postgres.
func parseNullTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v.String)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp %q: %w", v.String, err)
	}
	return &t, nil
}
