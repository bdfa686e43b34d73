package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/remittance"
)

// MarkRemittancePaidCommandHandler moves a remittance record from pending to paid.
type MarkRemittancePaidCommandHandler struct {
	uowFactory UoWFactory
}

func NewMarkRemittancePaidCommandHandler(uowFactory UoWFactory) MarkRemittancePaidCommandHandler {
	return MarkRemittancePaidCommandHandler{uowFactory: uowFactory}
}

func (h *MarkRemittancePaidCommandHandler) Handle(
	ctx context.Context,
	cmd MarkRemittancePaidCommand,
) (*remittance.Record, error) {
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

	repo := uow.RemittanceRepository()
	r, err := repo.Get(ctx, cmd.RecordID())
	if err != nil {
		return nil, err
	}

	if err = r.MarkPaid(cmd.Reference(), time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Outbox().Append(ctx, events.NewRemittancePaid(r)); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
