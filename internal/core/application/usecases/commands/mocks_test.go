package commands_test

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ndr"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/model/remittance"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, limit, offset int) ([]*order.Order, error) {
	args := m.Called(ctx, limit, offset)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ClaimForShipment(ctx context.Context, ids []kernel.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *MockOrderRepository) ReleaseFromShipment(ctx context.Context, ids []kernel.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

func (m *MockShipmentRepository) ListDeliveredCOD(ctx context.Context, p kernel.Period) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).([]*shipment.Shipment)
	return out, args.Error(1)
}

type MockNDRRepository struct{ mock.Mock }

func (m *MockNDRRepository) Add(ctx context.Context, c *ndr.Case) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockNDRRepository) Update(ctx context.Context, c *ndr.Case) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockNDRRepository) Get(ctx context.Context, id kernel.UUID) (*ndr.Case, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*ndr.Case)
	return c, args.Error(1)
}

func (m *MockNDRRepository) GetOpenByShipment(ctx context.Context, shipmentID kernel.UUID) (*ndr.Case, error) {
	args := m.Called(ctx, shipmentID)
	c, _ := args.Get(0).(*ndr.Case)
	return c, args.Error(1)
}

func (m *MockNDRRepository) List(ctx context.Context, status ndr.Status) ([]*ndr.Case, error) {
	args := m.Called(ctx, status)
	out, _ := args.Get(0).([]*ndr.Case)
	return out, args.Error(1)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*warehouse.Warehouse)
	return w, args.Error(1)
}

func (m *MockWarehouseRepository) List(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*warehouse.Warehouse)
	return out, args.Error(1)
}

type MockRateCardRepository struct{ mock.Mock }

func (m *MockRateCardRepository) Upsert(ctx context.Context, card *ratecard.RateCard) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockRateCardRepository) List(ctx context.Context) ([]*ratecard.RateCard, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*ratecard.RateCard)
	return out, args.Error(1)
}

type MockRemittanceRepository struct{ mock.Mock }

func (m *MockRemittanceRepository) AddIfAbsent(ctx context.Context, records []*remittance.Record) ([]*remittance.Record, error) {
	args := m.Called(ctx, records)
	if fn, ok := args.Get(0).(func([]*remittance.Record) []*remittance.Record); ok {
		return fn(records), args.Error(1)
	}
	out, _ := args.Get(0).([]*remittance.Record)
	return out, args.Error(1)
}

func (m *MockRemittanceRepository) Update(ctx context.Context, r *remittance.Record) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRemittanceRepository) Get(ctx context.Context, id kernel.UUID) (*remittance.Record, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*remittance.Record)
	return r, args.Error(1)
}

func (m *MockRemittanceRepository) RecordedShipments(ctx context.Context, ids []kernel.UUID) (map[string]struct{}, error) {
	args := m.Called(ctx, ids)
	out, _ := args.Get(0).(map[string]struct{})
	return out, args.Error(1)
}

func (m *MockRemittanceRepository) ListDelivered(ctx context.Context, p kernel.Period) ([]*remittance.Record, error) {
	args := m.Called(ctx, p)
	if fn, ok := args.Get(0).(func() []*remittance.Record); ok {
		return fn(), args.Error(1)
	}
	out, _ := args.Get(0).([]*remittance.Record)
	return out, args.Error(1)
}

type MockCarrierEventLog struct{ mock.Mock }

func (m *MockCarrierEventLog) Record(ctx context.Context, e ports.CarrierEvent) (bool, error) {
	args := m.Called(ctx, e)
	return args.Bool(0), args.Error(1)
}

type MockOutbox struct{ mock.Mock }

func (m *MockOutbox) Append(ctx context.Context, evts ...events.Event) error {
	return m.Called(ctx, evts).Error(0)
}

type MockOutboxRelay struct{ mock.Mock }

func (m *MockOutboxRelay) Pending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	out, _ := args.Get(0).([]ports.OutboxMessage)
	return out, args.Error(1)
}

func (m *MockOutboxRelay) Lease(ctx context.Context, limit int, now time.Time, ttl time.Duration) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit, now, ttl)
	out, _ := args.Get(0).([]ports.OutboxMessage)
	return out, args.Error(1)
}

func (m *MockOutboxRelay) MarkSent(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

func (m *MockOutboxRelay) Release(ctx context.Context, ids []kernel.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

type MockAWBAllocator struct{ mock.Mock }

func (m *MockAWBAllocator) Allocate(ctx context.Context, carrier string) (string, error) {
	args := m.Called(ctx, carrier)
	return args.String(0), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockTx is the transaction part shared by every unit of work mock.
type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockOrderUoW struct{ MockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockCatalogUoW struct{ MockTx }

func (m *MockCatalogUoW) WarehouseRepository() ports.WarehouseRepository {
	return m.Called().Get(0).(ports.WarehouseRepository)
}

func (m *MockCatalogUoW) RateCardRepository() ports.RateCardRepository {
	return m.Called().Get(0).(ports.RateCardRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

// MockUoW hands out fixed repositories; only the transaction calls are recorded.
type MockUoW struct {
	MockTx

	Orders      *MockOrderRepository
	Shipments   *MockShipmentRepository
	Cases       *MockNDRRepository
	Warehouses  *MockWarehouseRepository
	RateCards   *MockRateCardRepository
	Remittances *MockRemittanceRepository
	Events      *MockCarrierEventLog
	Out         *MockOutbox
	Relay       *MockOutboxRelay
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		Orders:      new(MockOrderRepository),
		Shipments:   new(MockShipmentRepository),
		Cases:       new(MockNDRRepository),
		Warehouses:  new(MockWarehouseRepository),
		RateCards:   new(MockRateCardRepository),
		Remittances: new(MockRemittanceRepository),
		Events:      new(MockCarrierEventLog),
		Out:         new(MockOutbox),
		Relay:       new(MockOutboxRelay),
	}
}

func (m *MockUoW) OrderRepository() ports.OrderRepository { return m.Orders }
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository { return m.Shipments }
func (m *MockUoW) NDRRepository() ports.NDRRepository { return m.Cases }
func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository { return m.Warehouses }
func (m *MockUoW) RateCardRepository() ports.RateCardRepository { return m.RateCards }
func (m *MockUoW) RemittanceRepository() ports.RemittanceRepository { return m.Remittances }
func (m *MockUoW) CarrierEventLog() ports.CarrierEventLog { return m.Events }
func (m *MockUoW) Outbox() ports.Outbox { return m.Out }
func (m *MockUoW) OutboxRelay() ports.OutboxRelay { return m.Relay }

// AssertAll checks the expectations of the transaction and every repository.
func (m *MockUoW) AssertAll(t mock.TestingT) {
	mock.AssertExpectationsForObjects(t,
		&m.MockTx, m.Orders, m.Shipments, m.Cases, m.Warehouses,
		m.RateCards, m.Remittances, m.Events, m.Out, m.Relay,
	)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

func factoryFor(uow commands.UoW) *MockUoWFactory {
	f := new(MockUoWFactory)
	f.On("Create").Return(uow).Once()
	return f
}
