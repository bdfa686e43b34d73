package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetRemittances handles GET /api/v1/remittances.
func (s *Server) GetRemittances(ctx echo.Context, params servers.GetRemittancesParams) error {
	query, err := queries.NewGetRemittancesQuery(params.From.Time, params.To.Time)
	if err != nil {
		return s.fail(ctx, err)
	}

	records, err := s.h.GetRemittances.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRemittances(records))
}

// SettleRemittances handles POST /api/v1/remittances/settle.
func (s *Server) SettleRemittances(ctx echo.Context) error {
	var body servers.SettleRemittancesJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var settlementDate time.Time
	if body.SettlementDate != nil {
		settlementDate = body.SettlementDate.Time
	}

	cmd, err := commands.NewSettleRemittancesCommand(body.From.Time, body.To.Time, settlementDate)
	if err != nil {
		return s.fail(ctx, err)
	}

	records, err := s.h.SettleRemittances.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRemittances(records))
}

// MarkRemittancePaid handles POST /api/v1/remittances/{recordId}/paid.
func (s *Server) MarkRemittancePaid(ctx echo.Context, recordID openapi_types.UUID) error {
	var body servers.MarkRemittancePaidJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(recordID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkRemittancePaidCommand(id, body.Reference)
	if err != nil {
		return s.fail(ctx, err)
	}

	record, err := s.h.MarkRemittancePaid.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRemittance(record))
}
