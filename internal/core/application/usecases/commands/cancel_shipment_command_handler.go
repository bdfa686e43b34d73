package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
)

// CancelShipmentCommandHandler cancels a pending shipment and releases its orders so
// they can be booked again. Any other shipment status yields errs.InvalidTransitionError.
type CancelShipmentCommandHandler struct {
	uowFactory UoWFactory
	engine     services.BookingEngine
}

func NewCancelShipmentCommandHandler(uowFactory UoWFactory) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewBookingEngine(),
	}
}

func (h *CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) (*shipment.Shipment, error) {
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

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetMany(ctx, s.OrderIDs())
	if err != nil {
		return nil, err
	}

	if err = h.engine.Cancel(s, orders, time.Now()); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = orderRepo.ReleaseFromShipment(ctx, s.OrderIDs()); err != nil {
		return nil, err
	}

	if err = uow.Outbox().Append(ctx, events.NewShipmentCancelled(s)); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
