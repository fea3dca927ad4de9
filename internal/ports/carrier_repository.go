package ports

import (
	"context"

	"shipment-pooling-service/internal/domain"
)

// Port: a boundary for retrieving Carrier entities from a data source.
type CarrierRepository interface {
	// Retrieve all carriers currently accepting work, in a stable order.
	ListAvailable(ctx context.Context) ([]domain.Carrier, error)
}
