package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrBookShipmentCommandIsNotConstructed = errors.New(
	"BookShipmentCommand must be created via NewBookShipmentCommand constructor",
)

// BookShipmentCommand books one shipment for a set of open orders with a quote the
// merchant chose from the rate calculator's output.
//
// Example:
//
//	cmd, err := NewBookShipmentCommand(kernel.NewUUID(), orderIDs, quotes[0], pickupID, pickupID)
//	if err != nil {
//	    return err
//	}
//	s, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // another booking already claimed one of the orders
//	}
type BookShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID        kernel.UUID
	orderIDs          []kernel.UUID
	quote             ratecard.Quote
	pickupWarehouseID kernel.UUID
	returnWarehouseID kernel.UUID

	guard guard.ConstructorGuard
}

func NewBookShipmentCommand(
	shipmentID kernel.UUID,
	orderIDs []kernel.UUID,
	quote ratecard.Quote,
	pickupWarehouseID, returnWarehouseID kernel.UUID,
) (BookShipmentCommand, error) {
	cmd := BookShipmentCommand{
		quote: quote,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentID.Validate(),
		cmd.setOrderIDs(orderIDs),
		quote.Validate(),
		pickupWarehouseID.Validate(),
		returnWarehouseID.Validate(),
	); err != nil {
		return BookShipmentCommand{}, err
	}

	cmd.shipmentID = shipmentID
	cmd.pickupWarehouseID = pickupWarehouseID
	cmd.returnWarehouseID = returnWarehouseID
	return cmd, nil
}

func (c BookShipmentCommand) Validate() error {
	return c.guard.Validate(ErrBookShipmentCommandIsNotConstructed)
}

func (c BookShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c BookShipmentCommand) Quote() ratecard.Quote { return c.quote }
func (c BookShipmentCommand) PickupWarehouseID() kernel.UUID { return c.pickupWarehouseID }
func (c BookShipmentCommand) ReturnWarehouseID() kernel.UUID { return c.returnWarehouseID }

func (c BookShipmentCommand) OrderIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.orderIDs))
	copy(out, c.orderIDs)
	return out
}

func (c *BookShipmentCommand) setOrderIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id.String()]; dup {
			return errs.NewValidationError(errs.NewFieldError("orderIds", "order "+id.String()+" is listed twice"))
		}
		seen[id.String()] = struct{}{}
	}
	c.orderIDs = make([]kernel.UUID, len(ids))
	copy(c.orderIDs, ids)
	return nil
}
