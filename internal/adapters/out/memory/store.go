// Package memory is an in-process implementation of the persistence ports.
//
// A Store holds committed state. Each UnitOfWork acquires the store in Begin and
// holds it until Commit or Rollback, so transactions are serialized; Rollback restores
// the snapshot taken by Begin. Aggregates are copied on every read and write, which
// keeps uncommitted in-memory mutations out of the store exactly like a database would.
//
// The store backs STORAGE_DRIVER=memory and the concurrency tests of the command
// handlers.
package memory

import (
	"context"
	"errors"
	"maps"
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/ndr"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/model/remittance"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/ports"
)

// ErrNoTransaction is returned by repository calls made outside Begin/Commit.
var ErrNoTransaction = errors.New("memory: no active transaction")

type outboxRow struct {
	msg         ports.OutboxMessage
	sentAt      *time.Time
	leasedUntil time.Time
}

type state struct {
	orders        map[string]*order.Order
	shipments     map[string]*shipment.Shipment
	cases         map[string]*ndr.Case
	warehouses    map[string]*warehouse.Warehouse
	rateCards     map[string]*ratecard.RateCard
	remittances   map[string]*remittance.Record
	remittanceFor map[string]string
	carrierEvents map[string]ports.CarrierEvent
	outbox        []outboxRow
}

func newState() state {
	return state{
		orders:        make(map[string]*order.Order),
		shipments:     make(map[string]*shipment.Shipment),
		cases:         make(map[string]*ndr.Case),
		warehouses:    make(map[string]*warehouse.Warehouse),
		rateCards:     make(map[string]*ratecard.RateCard),
		remittances:   make(map[string]*remittance.Record),
		remittanceFor: make(map[string]string),
		carrierEvents: make(map[string]ports.CarrierEvent),
	}
}

// snapshot copies the maps. Values are stored copies that are never mutated in place,
// so a shallow copy is enough.
func (s state) snapshot() state {
	return state{
		orders:        maps.Clone(s.orders),
		shipments:     maps.Clone(s.shipments),
		cases:         maps.Clone(s.cases),
		warehouses:    maps.Clone(s.warehouses),
		rateCards:     maps.Clone(s.rateCards),
		remittances:   maps.Clone(s.remittances),
		remittanceFor: maps.Clone(s.remittanceFor),
		carrierEvents: maps.Clone(s.carrierEvents),
		outbox:        slices.Clone(s.outbox),
	}
}

// Store is the committed state shared by every unit of work it creates.
type Store struct {
	// lock is a one-slot semaphore so that Begin can give up when ctx is done.
	lock  chan struct{}
	state state
}

func NewStore() *Store {
	return &Store{lock: make(chan struct{}, 1), state: newState()}
}

// Create implements ports.UnitOfWorkFactory.
func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

// UnitOfWork is one serialized transaction against a Store.
type UnitOfWork struct {
	store    *Store
	active   bool
	rollback state
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return nil
	}
	select {
	case u.store.lock <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	u.rollback = u.store.state.snapshot()
	u.active = true
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}
	u.finish()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}
	u.store.state = u.rollback
	u.finish()
	return nil
}

func (u *UnitOfWork) finish() {
	u.active = false
	u.rollback = state{}
	<-u.store.lock
}

// tx returns the live state, or ErrNoTransaction.
func (u *UnitOfWork) tx() (*state, error) {
	if !u.active {
		return nil, ErrNoTransaction
	}
	return &u.store.state, nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository { return orderRepository{u} }
func (u *UnitOfWork) ShipmentRepository() ports.ShipmentRepository { return shipmentRepository{u} }
func (u *UnitOfWork) NDRRepository() ports.NDRRepository { return ndrRepository{u} }
func (u *UnitOfWork) WarehouseRepository() ports.WarehouseRepository { return warehouseRepository{u} }
func (u *UnitOfWork) RateCardRepository() ports.RateCardRepository { return rateCardRepository{u} }
func (u *UnitOfWork) RemittanceRepository() ports.RemittanceRepository { return remittanceRepository{u} }
func (u *UnitOfWork) CarrierEventLog() ports.CarrierEventLog { return carrierEventLog{u} }
func (u *UnitOfWork) Outbox() ports.Outbox { return outbox{u} }
func (u *UnitOfWork) OutboxRelay() ports.OutboxRelay { return outbox{u} }
