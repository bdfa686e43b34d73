package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// BookShipmentCommandHandler turns open orders into a pending shipment.
//
// The whole booking is one transaction:
//  1. load both warehouses and every order, and check the orders can ship together
//  2. re-price the orders against the rate cards; the calculated quote for the
//     submitted carrier service must equal the submitted one and is what gets frozen
//  3. allocate an AWB for the quoted carrier
//  4. let the booking engine build the shipment
//  5. claim the orders with a compare-and-swap on their shipped flag
//  6. store the shipment and append shipment.booked to the outbox
//
// When a concurrent booking wins the claim, step 5 returns errs.ConflictError and the
// deferred rollback releases everything this handler wrote.
type BookShipmentCommandHandler struct {
	uowFactory UoWFactory
	awb        ports.AWBAllocator
	engine     services.BookingEngine
	calculator services.RateCalculator
}

func NewBookShipmentCommandHandler(
	uowFactory UoWFactory,
	awb ports.AWBAllocator,
	zones services.ZoneClassifier,
) BookShipmentCommandHandler {
	return BookShipmentCommandHandler{
		uowFactory: uowFactory,
		awb:        awb,
		engine:     services.NewBookingEngine(),
		calculator: services.NewRateCalculator(zones),
	}
}

func (h *BookShipmentCommandHandler) Handle(ctx context.Context, cmd BookShipmentCommand) (*shipment.Shipment, error) {
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

	pickup, returnTo, err := h.warehouses(ctx, uow.WarehouseRepository(), cmd)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetMany(ctx, cmd.OrderIDs())
	if err != nil {
		return nil, err
	}

	if err = h.engine.Eligible(orders); err != nil {
		return nil, err
	}

	cards, err := uow.RateCardRepository().List(ctx)
	if err != nil {
		return nil, err
	}
	quote, err := h.calculator.Confirm(cmd.Quote(), orders, pickup, cards)
	if err != nil {
		return nil, err
	}

	awb, err := h.awb.Allocate(ctx, quote.Carrier())
	if err != nil {
		return nil, err
	}

	s, err := h.engine.Book(cmd.ShipmentID(), orders, quote, pickup, returnTo, awb, time.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.ClaimForShipment(ctx, cmd.OrderIDs()); err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Outbox().Append(ctx, events.NewShipmentBooked(s)); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (h *BookShipmentCommandHandler) warehouses(
	ctx context.Context,
	repo ports.WarehouseRepository,
	cmd BookShipmentCommand,
) (*warehouse.Warehouse, *warehouse.Warehouse, error) {
	pickup, err := repo.Get(ctx, cmd.PickupWarehouseID())
	if err != nil {
		return nil, nil, err
	}
	if cmd.ReturnWarehouseID().IsEqual(cmd.PickupWarehouseID()) {
		return pickup, pickup, nil
	}
	returnTo, err := repo.Get(ctx, cmd.ReturnWarehouseID())
	if err != nil {
		return nil, nil, err
	}
	return pickup, returnTo, nil
}
