package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/ndr"
)

// ApplyNDRActionCommandHandler moves an NDR case from actionRequired to actionRequested.
type ApplyNDRActionCommandHandler struct {
	uowFactory UoWFactory
}

func NewApplyNDRActionCommandHandler(uowFactory UoWFactory) ApplyNDRActionCommandHandler {
	return ApplyNDRActionCommandHandler{uowFactory: uowFactory}
}

func (h *ApplyNDRActionCommandHandler) Handle(ctx context.Context, cmd ApplyNDRActionCommand) (*ndr.Case, error) {
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

	repo := uow.NDRRepository()
	c, err := repo.Get(ctx, cmd.CaseID())
	if err != nil {
		return nil, err
	}

	if err = c.ApplyAction(cmd.Action(), cmd.Reason(), time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Outbox().Append(ctx, events.NewNDRCaseUpdated(c)); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
