package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListNDRCases handles GET /api/v1/ndr.
func (s *Server) ListNDRCases(ctx echo.Context, params servers.ListNDRCasesParams) error {
	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewListNDRCasesQuery(status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cases, err := s.h.ListNDRCases.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.NDRCase, 0, len(cases))
	for _, c := range cases {
		response = append(response, toNDRCase(c))
	}
	return ctx.JSON(http.StatusOK, response)
}

// ApplyNDRAction handles POST /api/v1/ndr/{caseId}/action.
func (s *Server) ApplyNDRAction(ctx echo.Context, caseID openapi_types.UUID) error {
	var body servers.ApplyNDRActionJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(caseID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewApplyNDRActionCommand(id, string(body.Action), body.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.ApplyNDRAction.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toNDRCase(updated))
}
