package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// QuoteRates handles POST /api/v1/rate-quotes.
func (s *Server) QuoteRates(ctx echo.Context) error {
	var body servers.QuoteRatesJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var p fieldParser
	orderID := p.uuid("orderId", body.OrderId)
	warehouseID := p.uuid("warehouseId", body.WarehouseId)
	if err := p.err(); err != nil {
		return s.fail(ctx, err)
	}

	var destination string
	if body.DestinationPincode != nil {
		destination = *body.DestinationPincode
	}
	var carriers []string
	if body.Carriers != nil {
		carriers = *body.Carriers
	}

	query, err := queries.NewQuoteRatesQuery(orderID, warehouseID, destination, carriers)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.h.QuoteRates.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	quotes := make([]servers.Quote, 0, len(resp.Quotes))
	for _, q := range resp.Quotes {
		quotes = append(quotes, toQuote(q))
	}
	return ctx.JSON(http.StatusOK, servers.RateQuoteResponse{
		OrderId:               resp.OrderID.Bytes(),
		Zone:                  resp.Zone.String(),
		ChargeableWeightGrams: float32(resp.ChargeableWeightGrams),
		Quotes:                quotes,
	})
}

// BookShipment handles POST /api/v1/shipments.
func (s *Server) BookShipment(ctx echo.Context) error {
	var body servers.BookShipmentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var p fieldParser
	orderIDs := make([]kernel.UUID, 0, len(body.OrderIds))
	for _, id := range body.OrderIds {
		orderIDs = append(orderIDs, p.uuid("orderIds", id))
	}
	pickupID := p.uuid("pickupWarehouseId", body.PickupWarehouseId)
	returnID := pickupID
	if body.ReturnWarehouseId != nil {
		returnID = p.uuid("returnWarehouseId", *body.ReturnWarehouseId)
	}
	quote := p.quote(body.Quote)
	if err := p.err(); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewBookShipmentCommand(kernel.NewUUID(), orderIDs, quote, pickupID, returnID)
	if err != nil {
		return s.fail(ctx, err)
	}

	booked, err := s.h.BookShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toShipment(booked))
}

// GetShipment handles GET /api/v1/shipments/{shipmentId}.
func (s *Server) GetShipment(ctx echo.Context, shipmentID servers.ShipmentId) error {
	id, err := kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	found, err := s.h.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipment(found))
}

// CancelShipment handles POST /api/v1/shipments/{shipmentId}/cancel.
func (s *Server) CancelShipment(ctx echo.Context, shipmentID servers.ShipmentId) error {
	id, err := kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelShipmentCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cancelled, err := s.h.CancelShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipment(cancelled))
}

// ApplyCarrierStatus handles POST /api/v1/webhooks/carrier-status.
func (s *Server) ApplyCarrierStatus(ctx echo.Context) error {
	var body servers.ApplyCarrierStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var p fieldParser
	shipmentID := p.uuid("shipmentId", body.ShipmentId)
	if err := p.err(); err != nil {
		return s.fail(ctx, err)
	}

	occurredAt := time.Now()
	if body.OccurredAt != nil {
		occurredAt = *body.OccurredAt
	}
	var reason string
	if body.Reason != nil {
		reason = *body.Reason
	}

	cmd, err := commands.NewApplyCarrierStatusCommand(body.EventId, shipmentID, string(body.Status), reason, occurredAt)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.ApplyCarrierStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.CarrierStatusResult{
		Applied:  result.Applied,
		Shipment: toShipment(result.Shipment),
	}
	if result.Case != nil {
		c := toNDRCase(result.Case)
		response.NdrCase = &c
	}
	return ctx.JSON(http.StatusOK, response)
}
