package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/model/warehouse"
)

// WarehouseRepository stores pickup and return warehouses.
type WarehouseRepository interface {
	Add(ctx context.Context, w *warehouse.Warehouse) error

	// Get returns errs.ObjectNotFoundError when the warehouse does not exist.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// List returns warehouses ordered by name.
	List(ctx context.Context) ([]*warehouse.Warehouse, error)
}

// RateCardRepository stores the carrier catalog, keyed by (carrier, service, zone).
type RateCardRepository interface {
	// Upsert inserts the card or replaces the card with the same key.
	Upsert(ctx context.Context, card *ratecard.RateCard) error

	// List returns every card ordered by carrier, service, zone.
	List(ctx context.Context) ([]*ratecard.RateCard, error)
}
