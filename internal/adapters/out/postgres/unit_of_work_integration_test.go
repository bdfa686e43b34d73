package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/awb"
	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ndr"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type uowFactory struct{ f ports.UnitOfWorkFactory }

func (u uowFactory) Create() commands.UoW { return u.f.Create() }

type orderUoWFactory struct{ f ports.UnitOfWorkFactory }

func (u orderUoWFactory) Create() commands.OrderUoW { return u.f.Create() }

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work and the command
// handlers on top of it against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.Require().NoError(postgres_adapter.Migrate(pg.DB))
	suite.pg = pg
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate(
		"orders", "warehouses", "rate_cards", "shipments", "ndr_case_history", "ndr_cases",
		"remittances", "carrier_events", "outbox",
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "commit without begin")
	suite.Require().Error(uow.Rollback(ctx), "rollback without begin")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEveryRepository() {
	ctx := context.Background()
	o := createTestOrder(suite)
	w := createTestWarehouse(suite)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.WarehouseRepository().Add(ctx, w))
	suite.Require().NoError(uow.OrderRepository().ClaimForShipment(ctx, []kernel.UUID{o.ID()}))
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	_, err := check.OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = check.WarehouseRepository().Get(ctx, w.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TracksWrittenAggregates() {
	ctx := context.Background()
	o := createTestOrder(suite)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	gormUoW, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Equal([]kernel.UUID{o.ID(), o.ID()}, gormUoW.TrackedAggregateIDs())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	order1 := createTestOrder(suite)
	order2 := createTestOrder(suite)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "uow1 should not see order2")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	check := suite.factory.Create()
	_, err = check.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err)
	_, err = check.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBookShipment_ConcurrentBookingsClaimOnce() {
	ctx := context.Background()
	o := createTestOrder(suite)
	w := createTestWarehouse(suite)
	suite.seed(w, o)

	quote := createTestQuote(suite)
	h := commands.NewBookShipmentCommandHandler(uowFactory{suite.factory}, awb.NewLocalAllocator("PG"), services.NewZoneClassifier())

	const attempts = 4
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		booked    int
		conflicts int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewBookShipmentCommand(kernel.NewUUID(), []kernel.UUID{o.ID()}, quote, w.ID(), w.ID())
			suite.NoError(cmdErr)
			_, handleErr := h.Handle(ctx, cmd)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case handleErr == nil:
				booked++
			case errors.Is(handleErr, errs.ErrConflict):
				conflicts++
			default:
				suite.Fail("unexpected error", handleErr.Error())
			}
		}()
	}
	wg.Wait()

	suite.Equal(1, booked)
	suite.Equal(attempts-1, conflicts)

	var shipments, outbox int64
	suite.Require().NoError(suite.pg.DB.Table("shipments").Count(&shipments).Error)
	suite.Require().NoError(suite.pg.DB.Table("outbox").Count(&outbox).Error)
	suite.Equal(int64(1), shipments)
	suite.Equal(int64(1), outbox)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCarrierLifecycle_DeliveredThenSettled() {
	ctx := context.Background()
	o := createTestOrder(suite)
	w := createTestWarehouse(suite)
	suite.seed(w, o)

	quote := createTestQuote(suite)
	factory := uowFactory{suite.factory}

	book, err := commands.NewBookShipmentCommand(kernel.NewUUID(), []kernel.UUID{o.ID()}, quote, w.ID(), w.ID())
	suite.Require().NoError(err)
	booking := commands.NewBookShipmentCommandHandler(factory, awb.NewLocalAllocator("PG"), services.NewZoneClassifier())
	s, err := booking.Handle(ctx, book)
	suite.Require().NoError(err)

	track := commands.NewApplyCarrierStatusCommandHandler(factory)
	deliveredAt := time.Date(2026, 8, 5, 14, 0, 0, 0, time.UTC)
	for i, report := range []struct {
		status string
		at     time.Time
	}{
		{"in-transit", deliveredAt.Add(-30 * time.Hour)},
		{"delivery-failed", deliveredAt.Add(-24 * time.Hour)},
		{"delivered", deliveredAt},
	} {
		cmd, cmdErr := commands.NewApplyCarrierStatusCommand(
			"evt-"+string(rune('a'+i)), s.ID(), report.status, "courier update", report.at)
		suite.Require().NoError(cmdErr)
		res, handleErr := track.Handle(ctx, cmd)
		suite.Require().NoError(handleErr)
		suite.True(res.Applied)
	}

	settle, err := commands.NewSettleRemittancesCommand(
		time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC), time.Time{})
	suite.Require().NoError(err)
	h := commands.NewSettleRemittancesCommandHandler(factory)
	records, err := h.Handle(ctx, settle)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal(s.AWB(), records[0].AWB())
	suite.Equal("900.00", records[0].Amount().String())

	again, err := h.Handle(ctx, settle)
	suite.Require().NoError(err)
	suite.Require().Len(again, 1)
	suite.Equal(records[0].ID(), again[0].ID())

	check := suite.factory.Create()
	stored, err := check.ShipmentRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, stored.Status())
	cases, err := check.NDRRepository().List(ctx, ndr.UnknownStatus)
	suite.Require().NoError(err)
	suite.Require().Len(cases, 1)
	suite.True(cases[0].Status().IsTerminal())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBookShipment_ConcurrentBookingsOfTwoOrdersInEitherOrder() {
	ctx := context.Background()
	first := createTestOrder(suite)
	second := createTestOrder(suite)
	w := createTestWarehouse(suite)
	suite.seed(w, first, second)

	quotes, err := services.NewRateCalculator(services.NewZoneClassifier()).
		QuoteShipment([]*order.Order{first, second}, w, []*ratecard.RateCard{createTestRateCard(suite)}, nil)
	suite.Require().NoError(err)
	h := commands.NewBookShipmentCommandHandler(uowFactory{suite.factory}, awb.NewLocalAllocator("PG"), services.NewZoneClassifier())

	const attempts = 6
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		booked    int
		conflicts int
	)
	start := make(chan struct{})
	for i := range attempts {
		ids := []kernel.UUID{first.ID(), second.ID()}
		if i%2 == 1 {
			ids = []kernel.UUID{second.ID(), first.ID()}
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewBookShipmentCommand(kernel.NewUUID(), ids, quotes[0], w.ID(), w.ID())
			suite.NoError(cmdErr)
			<-start
			_, handleErr := h.Handle(ctx, cmd)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case handleErr == nil:
				booked++
			case errors.Is(handleErr, errs.ErrConflict):
				conflicts++
			default:
				suite.Fail("unexpected error", handleErr.Error())
			}
		}()
	}
	close(start)
	wg.Wait()

	suite.Equal(1, booked)
	suite.Equal(attempts-1, conflicts)

	var shipped int64
	suite.Require().NoError(suite.pg.DB.Table("orders").Where("shipped = ?", true).Count(&shipped).Error)
	suite.Equal(int64(2), shipped)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCancelOrder_RacingBookingNeverLosesEitherWrite() {
	ctx := context.Background()
	w := createTestWarehouse(suite)
	suite.seed(w)
	quote := createTestQuote(suite)
	factory := uowFactory{suite.factory}
	book := commands.NewBookShipmentCommandHandler(factory, awb.NewLocalAllocator("PG"), services.NewZoneClassifier())
	cancel := commands.NewCancelOrderCommandHandler(orderUoWFactory{suite.factory})

	const rounds = 10
	for range rounds {
		o := createTestOrder(suite)
		suite.seed(nil, o)
		bookCmd, err := commands.NewBookShipmentCommand(kernel.NewUUID(), []kernel.UUID{o.ID()}, quote, w.ID(), w.ID())
		suite.Require().NoError(err)
		cancelCmd, err := commands.NewCancelOrderCommand(o.ID())
		suite.Require().NoError(err)

		var (
			wg                 sync.WaitGroup
			bookErr, cancelErr error
		)
		start := make(chan struct{})
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			_, bookErr = book.Handle(ctx, bookCmd)
		}()
		go func() {
			defer wg.Done()
			<-start
			cancelErr = cancel.Handle(ctx, cancelCmd)
		}()
		close(start)
		wg.Wait()

		suite.True((bookErr == nil) != (cancelErr == nil), "exactly one of book (%v) and cancel (%v) wins", bookErr, cancelErr)

		stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
		suite.Require().NoError(err)
		suite.Equal(bookErr == nil, stored.IsShipped())
		suite.Equal(cancelErr == nil, stored.IsCancelled())
	}
}

// seed commits w (when not nil), orders and the test rate card.
func (suite *UnitOfWorkIntegrationTestSuite) seed(w *warehouse.Warehouse, orders ...*order.Order) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	for _, o := range orders {
		suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	}
	if w != nil {
		suite.Require().NoError(uow.WarehouseRepository().Add(ctx, w))
	}
	suite.Require().NoError(uow.RateCardRepository().Upsert(ctx, createTestRateCard(suite)))
	suite.Require().NoError(uow.Commit(ctx))
}

// createTestRateCard prices createTestOrder from createTestWarehouse as createTestQuote.
func createTestRateCard(suite *UnitOfWorkIntegrationTestSuite) *ratecard.RateCard {
	card, err := ratecard.NewRateCard("delhivery", "surface", ratecard.MetroToMetro, ratecard.Terms{
		BaseWeightGrams: 500,
		BaseFreight:     kernel.MustMoney("30"),
		SlabGrams:       500,
		SlabFreight:     kernel.MustMoney("30"),
		CODFlatFee:      kernel.MustMoney("30"),
	})
	suite.Require().NoError(err)
	return card
}

func createTestQuote(suite *UnitOfWorkIntegrationTestSuite) ratecard.Quote {
	quote, err := ratecard.NewQuote("delhivery", "surface", ratecard.MetroToMetro, 700,
		kernel.MustMoney("60"), kernel.MustMoney("30"), kernel.ZeroMoney(), kernel.MustMoney("90"))
	suite.Require().NoError(err)
	return quote
}

func createTestOrder(suite *UnitOfWorkIntegrationTestSuite) *order.Order {
	o, fields := services.NewOrderValidator().Validate(kernel.NewUUID(), services.OrderDraft{
		PaymentType:       "cod",
		ConsigneeName:     "Ravi Kumar",
		ConsigneePhone:    "9123456780",
		AddressLine1:      "22 Anna Salai",
		City:              "Chennai",
		State:             "Tamil Nadu",
		Pincode:           "600002",
		DeclaredValue:     decimal.NewFromInt(900),
		CollectableValue:  decimal.NewFromInt(900),
		Length:            20,
		Breadth:           15,
		Height:            10,
		ActualWeightGrams: 700,
		Quantity:          1,
		ProductType:       "books",
	}, time.Now())
	suite.Require().Empty(fields)
	return o
}

func createTestWarehouse(suite *UnitOfWorkIntegrationTestSuite) *warehouse.Warehouse {
	pin, err := kernel.NewPincode("560034")
	suite.Require().NoError(err)
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), "Koramangala FC", "5th Block", "Bengaluru", "Karnataka", pin)
	suite.Require().NoError(err)
	return w
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
