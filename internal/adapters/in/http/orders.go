package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var p fieldParser
	draft := services.OrderDraft{
		PaymentType:       string(body.PaymentType),
		ConsigneeName:     body.Consignee.Name,
		ConsigneePhone:    body.Consignee.Phone,
		AddressLine1:      body.Consignee.AddressLine1,
		City:              body.Consignee.City,
		State:             body.Consignee.State,
		Pincode:           body.Consignee.Pincode,
		DeclaredValue:     p.decimal("declaredValue", body.DeclaredValue),
		CollectableValue:  p.optionalDecimal("collectableValue", body.CollectableValue),
		Length:            float64(body.Dimensions.Length),
		Breadth:           float64(body.Dimensions.Breadth),
		Height:            float64(body.Dimensions.Height),
		ActualWeightGrams: float64(body.ActualWeightGrams),
		Quantity:          body.Quantity,
	}
	if body.Consignee.AddressLine2 != nil {
		draft.AddressLine2 = *body.Consignee.AddressLine2
	}
	if body.ProductType != nil {
		draft.ProductType = *body.ProductType
	}
	if err := p.err(); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), draft)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(o))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var limit, offset int
	if params.Limit != nil {
		limit = *params.Limit
	}
	if params.Offset != nil {
		offset = *params.Offset
	}

	query, err := queries.NewListOrdersQuery(limit, offset)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrder(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrderDimensions handles PUT /api/v1/orders/{orderId}/dimensions.
func (s *Server) UpdateOrderDimensions(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdateOrderDimensionsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderDimensionsCommand(id,
		float64(body.Length), float64(body.Breadth), float64(body.Height))
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.h.UpdateOrderDimensions.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
