package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists status changes. Booking data is immutable and is not rewritten.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get returns errs.ObjectNotFoundError when the shipment does not exist.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// ListDeliveredCOD returns delivered COD shipments with deliveredAt in period,
	// ordered by deliveredAt then id.
	ListDeliveredCOD(ctx context.Context, period kernel.Period) ([]*shipment.Shipment, error)
}
