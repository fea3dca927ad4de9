package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shipment-pooling-service/internal/domain"
	"shipment-pooling-service/internal/platform/obs"
)

// SQL-backed implementation of the CarrierRepository port.
type SQLCarrierRepository struct{ DB *sql.DB }

func NewSQLCarrierRepository(db *sql.DB) *SQLCarrierRepository {
	return &SQLCarrierRepository{DB: db}
}

// Return all available carriers ordered by id.
func (s *SQLCarrierRepository) ListAvailable(ctx context.Context) (_ []domain.Carrier, err error) {
	defer obs.Time(ctx, "carriers.ListAvailable")(&err)

	if s.DB == nil {
		return nil, errors.New("carrier repository: DB is nil")
	}

	query := `
	SELECT
		carrier_id,
		lat, lon,
		capacity_kg,
		current_load_kg,
		service_radius_km,
		vehicle_types,
		traffic_adaptive
	FROM carriers
	WHERE available = 1
	ORDER BY carrier_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list available carriers: query carriers table: %w", err)
	}
	defer rows.Close()

	carriers := make([]domain.Carrier, 0, 32)
	for rows.Next() {
		var (
			c            domain.Carrier
			capacity     sql.NullFloat64
			radius       sql.NullFloat64
			vehicleTypes sql.NullString
		)
		err := rows.Scan(
			&c.ID,
			&c.CurrentLocation.Latitude, &c.CurrentLocation.Longitude,
			&capacity,
			&c.CurrentLoadKg,
			&radius,
			&vehicleTypes,
			&c.TrafficAdaptive,
		)
		if err != nil {
			return nil, fmt.Errorf("list available carriers: scan row: %w", err)
		}

		if capacity.Valid {
			v := capacity.Float64
			c.CapacityWeightKg = &v
		}
		if radius.Valid {
			v := radius.Float64
			c.ServiceRadiusKm = &v
		}
		if vehicleTypes.Valid {
			c.VehicleTypes = parseVehicleTypes(vehicleTypes.String)
		}

		carriers = append(carriers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list available carriers: row iteration: %w", err)
	}

	return carriers, nil
}

// Vehicle types are stored as a comma-separated list; a tag table would be
// overkill for four enum values.
func parseVehicleTypes(raw string) []domain.VehicleType {
	parts := strings.Split(raw, ",")
	types := make([]domain.VehicleType, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		types = append(types, domain.VehicleType(p))
	}
	if len(types) == 0 {
		return nil
	}
	return types
}
