package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/remittance"
)

// RemittanceRepository stores remittance records. The shipment id is unique.
type RemittanceRepository interface {
	// AddIfAbsent inserts records, skipping any whose shipment already has one
	// (ON CONFLICT DO NOTHING). It returns the records actually inserted.
	AddIfAbsent(ctx context.Context, records []*remittance.Record) ([]*remittance.Record, error)

	Update(ctx context.Context, record *remittance.Record) error

	// Get returns errs.ObjectNotFoundError when the record does not exist.
	Get(ctx context.Context, id kernel.UUID) (*remittance.Record, error)

	// RecordedShipments returns which of shipmentIDs already have a record.
	RecordedShipments(ctx context.Context, shipmentIDs []kernel.UUID) (map[string]struct{}, error)

	// ListDelivered returns the records of shipments delivered within period,
	// ordered by deliveredAt then shipment id.
	ListDelivered(ctx context.Context, period kernel.Period) ([]*remittance.Record, error)
}
