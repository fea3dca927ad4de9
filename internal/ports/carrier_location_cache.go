package ports

import (
	"context"

	"shipment-pooling-service/internal/domain"
)

// Port: live carrier telemetry. Carrier apps report positions continuously;
// the snapshot handed to the engine overlays these positions on top of the
// (possibly stale) repository records.
type CarrierLocationCache interface {
	// Record the carrier's latest reported position.
	Upsert(ctx context.Context, carrierID string, loc domain.Coordinate) error
	// Return the last known position for each requested carrier; carriers
	// without telemetry are absent from the result.
	Locations(ctx context.Context, carrierIDs []string) (map[string]domain.Coordinate, error)
	// Drop a carrier that went offline.
	Remove(ctx context.Context, carrierID string) error
}
