// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ShipmentRepoFactory provides access to shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// NDRRepoFactory provides access to NDR case repository within a transaction.
	NDRRepoFactory interface {
		NDRRepository() ports.NDRRepository
	}

	// CatalogRepoFactory provides access to reference data within a transaction.
	CatalogRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
		RateCardRepository() ports.RateCardRepository
	}

	// RemittanceRepoFactory provides access to remittance records within a transaction.
	RemittanceRepoFactory interface {
		RemittanceRepository() ports.RemittanceRepository
	}

	// EventsFactory provides the carrier event log and the outbox within a transaction.
	EventsFactory interface {
		CarrierEventLog() ports.CarrierEventLog
		Outbox() ports.Outbox
		OutboxRelay() ports.OutboxRelay
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CatalogUoW manages transactions for warehouse and rate card maintenance.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UoW manages transactions across aggregates: booking, carrier tracking, NDR
	// resolution, settlement and outbox relay.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   shipmentRepo := uow.ShipmentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ShipmentRepoFactory
		NDRRepoFactory
		CatalogRepoFactory
		RemittanceRepoFactory
		EventsFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
