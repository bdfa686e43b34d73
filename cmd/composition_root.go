package cmd

import (
	"time"

	"fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/awb"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CompositionRoot struct {
	cfg        Config
	logger     *zap.Logger
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	awb        ports.AWBAllocator
	zones      services.ZoneClassifier
}

func NewCompositionRoot(
	cfg Config,
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		uowFactory: uowFactory,
		publisher:  publisher,
		awb:        awb.NewLocalAllocator(cfg.AWBPrefix),
		zones:      services.NewZoneClassifier(),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) readUoWFactory() queries.ReadUoWFactory {
	return FuncReadUoWFactory(func() queries.ReadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderDimensionsCommandHandler() commands.UpdateOrderDimensionsCommandHandler {
	return commands.NewUpdateOrderDimensionsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateWarehouseCommandHandler() commands.CreateWarehouseCommandHandler {
	return commands.NewCreateWarehouseCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpsertRateCardCommandHandler() commands.UpsertRateCardCommandHandler {
	return commands.NewUpsertRateCardCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateBookShipmentCommandHandler() commands.BookShipmentCommandHandler {
	return commands.NewBookShipmentCommandHandler(c.crossUoWFactory(), c.awb, c.zones)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	return commands.NewCancelShipmentCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateApplyCarrierStatusCommandHandler() commands.ApplyCarrierStatusCommandHandler {
	return commands.NewApplyCarrierStatusCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateApplyNDRActionCommandHandler() commands.ApplyNDRActionCommandHandler {
	return commands.NewApplyNDRActionCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateSettleRemittancesCommandHandler() commands.SettleRemittancesCommandHandler {
	return commands.NewSettleRemittancesCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateMarkRemittancePaidCommandHandler() commands.MarkRemittancePaidCommandHandler {
	return commands.NewMarkRemittancePaidCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(c.crossUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateHandlers() http.Handlers {
	read := c.readUoWFactory()
	return http.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		UpdateOrderDimensions: c.CreateUpdateOrderDimensionsCommandHandler(),
		CancelOrder:           c.CreateCancelOrderCommandHandler(),
		CreateWarehouse:       c.CreateCreateWarehouseCommandHandler(),
		UpsertRateCard:        c.CreateUpsertRateCardCommandHandler(),
		BookShipment:          c.CreateBookShipmentCommandHandler(),
		CancelShipment:        c.CreateCancelShipmentCommandHandler(),
		ApplyCarrierStatus:    c.CreateApplyCarrierStatusCommandHandler(),
		ApplyNDRAction:        c.CreateApplyNDRActionCommandHandler(),
		SettleRemittances:     c.CreateSettleRemittancesCommandHandler(),
		MarkRemittancePaid:    c.CreateMarkRemittancePaidCommandHandler(),

		GetOrder:       queries.NewGetOrderQueryHandler(read),
		ListOrders:     queries.NewListOrdersQueryHandler(read),
		ListWarehouses: queries.NewListWarehousesQueryHandler(read),
		QuoteRates:     queries.NewQuoteRatesQueryHandler(read, c.zones),
		GetShipment:    queries.NewGetShipmentQueryHandler(read),
		ListNDRCases:   queries.NewListNDRCasesQueryHandler(read),
		GetRemittances: queries.NewGetRemittancesQueryHandler(read),
	}
}

// CreateRouter builds the HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return http.NewRouter(http.NewServer(c.CreateHandlers(), c.logger), c.logger, c.cfg.RequestTimeout)
}

// CreateJobManager builds the outbox relay and settlement jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	relay := c.CreateRelayOutboxCommandHandler()
	settle := c.CreateSettleRemittancesCommandHandler()
	return jobs.NewJobManager(
		jobs.NewOutboxRelayJob(&relay, c.cfg.OutboxSchedule, c.cfg.OutboxBatchSize, c.logger),
		jobs.NewSettlementJob(&settle, c.cfg.SettlementSchedule, c.location(), c.logger),
	)
}

func (c *CompositionRoot) location() *time.Location {
	if c.cfg.SettlementTimezone == nil {
		return time.UTC
	}
	return c.cfg.SettlementTimezone
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}
