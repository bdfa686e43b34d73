package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// UpdateOrderDimensionsCommandHandler re-measures an open order.
type UpdateOrderDimensionsCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.OrderValidator
}

func NewUpdateOrderDimensionsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderDimensionsCommandHandler {
	return UpdateOrderDimensionsCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewOrderValidator(),
	}
}

// Handle returns errs.InvalidTransitionError for shipped or cancelled orders.
func (h *UpdateOrderDimensionsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderDimensionsCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	dimensions, fields := h.validator.ValidateDimensions(cmd.Length(), cmd.Breadth(), cmd.Height())
	if len(fields) > 0 {
		return nil, errs.NewValidationError(fields...)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.UpdateDimensions(dimensions); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
