package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/ratecard"
)

// UpsertRateCardCommandHandler writes rate cards to the catalog.
type UpsertRateCardCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpsertRateCardCommandHandler(uowFactory CatalogUoWFactory) UpsertRateCardCommandHandler {
	return UpsertRateCardCommandHandler{uowFactory: uowFactory}
}

func (h *UpsertRateCardCommandHandler) Handle(ctx context.Context, cmd UpsertRateCardCommand) (*ratecard.RateCard, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RateCardRepository().Upsert(ctx, cmd.Card()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cmd.Card(), nil
}
