package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/warehouse"
)

// CreateWarehouseCommandHandler stores a new warehouse.
type CreateWarehouseCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateWarehouseCommandHandler(uowFactory CatalogUoWFactory) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{uowFactory: uowFactory}
}

func (h *CreateWarehouseCommandHandler) Handle(
	ctx context.Context,
	cmd CreateWarehouseCommand,
) (*warehouse.Warehouse, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	w, err := warehouse.NewWarehouse(cmd.WarehouseID(), cmd.Name(), cmd.Address(), cmd.City(), cmd.State(), cmd.Pincode())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WarehouseRepository().Add(ctx, w); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return w, nil
}
