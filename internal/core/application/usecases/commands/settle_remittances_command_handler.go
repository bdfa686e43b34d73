package commands

import (
	"context"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/remittance"
	"fulfillment/internal/core/domain/services"
)

// SettleRemittancesCommandHandler creates one remittance record per delivered COD
// shipment of the period and returns every record of that period.
//
// Settling the same period twice returns the same records: shipments that already have
// a record are skipped by the ledger, and the unique shipment id on the record table
// drops anything a concurrent run inserted in between.
type SettleRemittancesCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.RemittanceLedger
}

func NewSettleRemittancesCommandHandler(uowFactory UoWFactory) SettleRemittancesCommandHandler {
	return SettleRemittancesCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewRemittanceLedger(),
	}
}

func (h *SettleRemittancesCommandHandler) Handle(
	ctx context.Context,
	cmd SettleRemittancesCommand,
) ([]*remittance.Record, error) {
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

	candidates, err := uow.ShipmentRepository().ListDeliveredCOD(ctx, cmd.Period())
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(candidates))
	for _, s := range candidates {
		ids = append(ids, s.ID())
	}

	remittanceRepo := uow.RemittanceRepository()
	recorded, err := remittanceRepo.RecordedShipments(ctx, ids)
	if err != nil {
		return nil, err
	}

	drafts, err := h.ledger.Draft(cmd.Period(), candidates, recorded, cmd.SettlementDate(), kernel.NewUUID)
	if err != nil {
		return nil, err
	}

	if len(drafts) > 0 {
		inserted, addErr := remittanceRepo.AddIfAbsent(ctx, drafts)
		if addErr != nil {
			return nil, addErr
		}

		settled := make([]events.Event, 0, len(inserted))
		for _, r := range inserted {
			settled = append(settled, events.NewRemittanceSettled(r))
		}
		if len(settled) > 0 {
			if err = uow.Outbox().Append(ctx, settled...); err != nil {
				return nil, err
			}
		}
	}

	records, err := remittanceRepo.ListDelivered(ctx, cmd.Period())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return records, nil
}
