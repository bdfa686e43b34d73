// Package queries contains read-only operations of the CQRS architecture.
// Every query runs inside a unit of work that is always rolled back, so reads see one
// consistent snapshot and never write.
package queries

import (
	"context"

	"fulfillment/internal/core/ports"
)

type (
	// ReadUoW exposes the repositories queries read from.
	ReadUoW interface {
		Begin(ctx context.Context) error
		Rollback(ctx context.Context) error

		OrderRepository() ports.OrderRepository
		ShipmentRepository() ports.ShipmentRepository
		NDRRepository() ports.NDRRepository
		WarehouseRepository() ports.WarehouseRepository
		RateCardRepository() ports.RateCardRepository
		RemittanceRepository() ports.RemittanceRepository
	}

	// ReadUoWFactory creates a read unit of work per query.
	ReadUoWFactory interface {
		Create() ReadUoW
	}
)

// read runs fn in a fresh read transaction and rolls it back afterwards.
func read[T any](ctx context.Context, factory ReadUoWFactory, fn func(uow ReadUoW) (T, error)) (T, error) {
	var zero T

	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return fn(uow)
}
