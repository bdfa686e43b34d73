package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ndr"
)

// NDRRepository defines the persistence contract for NDR cases, history included.
type NDRRepository interface {
	Add(ctx context.Context, aggregate *ndr.Case) error

	// Update persists the case state and appends history entries not yet stored.
	Update(ctx context.Context, aggregate *ndr.Case) error

	// Get returns errs.ObjectNotFoundError when the case does not exist.
	Get(ctx context.Context, id kernel.UUID) (*ndr.Case, error)

	// GetOpenByShipment returns the shipment's non-terminal case, or
	// errs.ObjectNotFoundError when there is none.
	GetOpenByShipment(ctx context.Context, shipmentID kernel.UUID) (*ndr.Case, error)

	// List returns cases oldest first, filtered by status unless status is UnknownStatus.
	List(ctx context.Context, status ndr.Status) ([]*ndr.Case, error)
}
