package http

import (
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/generated/servers"

	"go.uber.org/zap"
)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	CreateOrder           commands.CreateOrderCommandHandler
	UpdateOrderDimensions commands.UpdateOrderDimensionsCommandHandler
	CancelOrder           commands.CancelOrderCommandHandler
	CreateWarehouse       commands.CreateWarehouseCommandHandler
	UpsertRateCard        commands.UpsertRateCardCommandHandler
	BookShipment          commands.BookShipmentCommandHandler
	CancelShipment        commands.CancelShipmentCommandHandler
	ApplyCarrierStatus    commands.ApplyCarrierStatusCommandHandler
	ApplyNDRAction        commands.ApplyNDRActionCommandHandler
	SettleRemittances     commands.SettleRemittancesCommandHandler
	MarkRemittancePaid    commands.MarkRemittancePaidCommandHandler

	// Query handlers
	GetOrder       queries.GetOrderQueryHandler
	ListOrders     queries.ListOrdersQueryHandler
	ListWarehouses queries.ListWarehousesQueryHandler
	QuoteRates     queries.QuoteRatesQueryHandler
	GetShipment    queries.GetShipmentQueryHandler
	ListNDRCases   queries.ListNDRCasesQueryHandler
	GetRemittances queries.GetRemittancesQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *zap.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *zap.Logger) *Server {
	return &Server{h: h, logger: logger.With(zap.String("component", "http"))}
}
