package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateWarehouse handles POST /api/v1/warehouses.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var body servers.CreateWarehouseJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateWarehouseCommand(kernel.NewUUID(),
		body.Name, body.Address, body.City, body.State, body.Pincode)
	if err != nil {
		return s.fail(ctx, err)
	}

	w, err := s.h.CreateWarehouse.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toWarehouse(w))
}

// ListWarehouses handles GET /api/v1/warehouses.
func (s *Server) ListWarehouses(ctx echo.Context) error {
	warehouses, err := s.h.ListWarehouses.Handle(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Warehouse, 0, len(warehouses))
	for _, w := range warehouses {
		response = append(response, toWarehouse(w))
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpsertRateCard handles PUT /api/v1/rate-cards.
func (s *Server) UpsertRateCard(ctx echo.Context) error {
	var body servers.UpsertRateCardJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var p fieldParser
	terms := ratecard.Terms{
		BaseWeightGrams: float64(body.BaseWeightGrams),
		BaseFreight:     p.money("baseFreight", body.BaseFreight),
		SlabGrams:       float64(body.SlabGrams),
		SlabFreight:     p.money("slabFreight", body.SlabFreight),
		CODFlatFee:      p.optionalMoney("codFlatFee", body.CodFlatFee),
		CODPercent:      p.optionalDecimal("codPercent", body.CodPercent),
		RTORiskFee:      p.optionalMoney("rtoRiskFee", body.RtoRiskFee),
	}
	if body.MaxWeightGrams != nil {
		terms.MaxWeightGrams = float64(*body.MaxWeightGrams)
	}
	if body.RiskyProductTypes != nil {
		terms.RiskyProductTypes = *body.RiskyProductTypes
	}
	if err := p.err(); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpsertRateCardCommand(body.Carrier, body.Service, string(body.Zone), terms)
	if err != nil {
		return s.fail(ctx, err)
	}

	card, err := s.h.UpsertRateCard.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRateCard(card))
}
