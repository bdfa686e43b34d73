package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ndr"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CarrierStatusResult reports what a webhook delivery did.
type CarrierStatusResult struct {
	// Applied is false when the event id was seen before; nothing was changed.
	Applied  bool
	Shipment *shipment.Shipment
	// Case is the shipment's NDR case after the event, nil when there is none.
	Case *ndr.Case
}

// ApplyCarrierStatusCommandHandler applies carrier tracking updates to a shipment and
// its NDR case.
//
// Idempotency works on two levels: the event log rejects a repeated event id, and the
// aggregates treat a repeated status as a no-op. A report the shipment cannot accept
// (for example anything after delivered) fails with errs.InvalidTransitionError and the
// event is not recorded.
type ApplyCarrierStatusCommandHandler struct {
	uowFactory UoWFactory
	workflow   services.NDRWorkflow
}

func NewApplyCarrierStatusCommandHandler(uowFactory UoWFactory) ApplyCarrierStatusCommandHandler {
	return ApplyCarrierStatusCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewNDRWorkflow(),
	}
}

func (h *ApplyCarrierStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ApplyCarrierStatusCommand,
) (CarrierStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return CarrierStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CarrierStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return CarrierStatusResult{}, err
	}

	ndrRepo := uow.NDRRepository()
	openCase, err := ndrRepo.GetOpenByShipment(ctx, s.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return CarrierStatusResult{}, err
	}

	fresh, err := uow.CarrierEventLog().Record(ctx, ports.CarrierEvent{
		EventID:    cmd.EventID(),
		ShipmentID: s.ID(),
		Status:     cmd.Status(),
		Reason:     cmd.Reason(),
		ReceivedAt: cmd.ReceivedAt(),
	})
	if err != nil {
		return CarrierStatusResult{}, err
	}
	if !fresh {
		return CarrierStatusResult{Applied: false, Shipment: s, Case: openCase}, nil
	}

	out, err := h.workflow.HandleCarrierReport(s, openCase, cmd.Status(), cmd.Reason(), kernel.NewUUID(), cmd.ReceivedAt())
	if err != nil {
		return CarrierStatusResult{}, err
	}

	if err = h.persist(ctx, uow, s, out); err != nil {
		return CarrierStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CarrierStatusResult{}, err
	}

	return CarrierStatusResult{Applied: true, Shipment: s, Case: out.Case}, nil
}

func (h *ApplyCarrierStatusCommandHandler) persist(
	ctx context.Context,
	uow UoW,
	s *shipment.Shipment,
	out services.CarrierReportOutcome,
) error {
	var pending []events.Event

	if out.ShipmentChanged {
		if err := uow.ShipmentRepository().Update(ctx, s); err != nil {
			return err
		}
		pending = append(pending, events.NewShipmentStatusChanged(s, out.PreviousStatus))
	}

	switch {
	case out.CaseOpened:
		if err := uow.NDRRepository().Add(ctx, out.Case); err != nil {
			return err
		}
	case out.CaseChanged:
		if err := uow.NDRRepository().Update(ctx, out.Case); err != nil {
			return err
		}
	}
	if out.CaseChanged {
		pending = append(pending, events.NewNDRCaseUpdated(out.Case))
	}

	if len(pending) == 0 {
		return nil
	}
	return uow.Outbox().Append(ctx, pending...)
}
