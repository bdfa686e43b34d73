// Package ports defines the contracts between the fulfillment core and its adapters:
// repositories per aggregate, the unit of work that binds them to one transaction, and
// the outbound collaborators (AWB allocation, event publishing).
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. The order must be valid and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The shipped flag is never written;
	// only ClaimForShipment and ReleaseFromShipment change it. Returns
	// errs.ConflictError when the stored shipped flag no longer matches the aggregate's.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Returns errs.ObjectNotFoundError when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and holds it against concurrent writers until
	// the unit of work ends. Use it when the order is read to be updated.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany retrieves orders in the order of ids.
	// Returns errs.ObjectNotFoundError naming the first missing identifier.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// List returns orders newest first.
	List(ctx context.Context, limit, offset int) ([]*order.Order, error)

	// ClaimForShipment flips shipped from false to true for every id, as one
	// compare-and-swap per row guarded by shipped = false AND cancelled = false.
	// If any row was not claimed it returns errs.ConflictError; the caller must roll
	// back so that rows claimed before the failure are released.
	//
	// Example:
	//   if err := uow.OrderRepository().ClaimForShipment(ctx, ids); err != nil {
	//       return err // ConflictError: another booking won the race
	//   }
	ClaimForShipment(ctx context.Context, ids []kernel.UUID) error

	// ReleaseFromShipment sets shipped back to false for every id.
	ReleaseFromShipment(ctx context.Context, ids []kernel.UUID) error
}
