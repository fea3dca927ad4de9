package ports

import (
	"context"

	"shipment-pooling-service/internal/domain"
)

// Port: a boundary for retrieving Shipment entities from a data source.
type ShipmentRepository interface {
	// Retrieve all shipments awaiting pooling, in a stable order.
	ListPending(ctx context.Context) ([]domain.Shipment, error)
}
