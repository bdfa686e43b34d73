package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// CreateOrderCommandHandler validates a draft and stores the resulting open order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), draft)
//
//	o, err := handler.Handle(ctx, cmd)
//	var validation *errs.ValidationError
//	if errors.As(err, &validation) {
//	    // report validation.Fields to the merchant
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.OrderValidator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewOrderValidator(),
	}
}

// Handle validates the draft before opening a transaction; an invalid draft never
// reaches the repository.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, fields := h.validator.Validate(cmd.OrderID(), cmd.Draft(), time.Now())
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

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
