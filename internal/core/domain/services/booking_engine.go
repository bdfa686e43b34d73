package services

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"
)

// ErrNoOrdersToBook is returned when a booking names no orders.
var ErrNoOrdersToBook = errors.New("at least one order is required to book a shipment")

// BookingEngine converts orders and a confirmed quote into a pending shipment.
//
// Business rules:
//   - every order is constructed, not shipped and not cancelled
//   - all orders share the payment type and the destination pincode
//   - the quote carries no COD charge for prepaid orders
//   - the shipment's COD amount is the sum of the orders' collectable values
//
// The engine freezes the quote it is given. Callers obtain it from
// RateCalculator.Confirm, which re-prices the orders against the catalog.
//
// The engine mutates the aggregates in memory only. Persisting them atomically, with a
// compare-and-swap on each order's shipped flag, is the caller's job; that swap is what
// turns a concurrent second booking into a ConflictError.
type BookingEngine struct{}

func NewBookingEngine() BookingEngine {
	return BookingEngine{}
}

// Eligible checks that orders can ship together in one new shipment.
func (e BookingEngine) Eligible(orders []*order.Order) error {
	if len(orders) == 0 {
		return ErrNoOrdersToBook
	}

	first := orders[0]
	var fields []errs.FieldError
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if o.IsCancelled() {
			return errs.NewInvalidTransitionError("order "+o.ID().String(), "cancelled", "shipped")
		}
		if o.IsShipped() {
			return errs.NewConflictError("order", o.ID().String(), "already attached to an active shipment")
		}
		if o.PaymentType() != first.PaymentType() {
			fields = append(fields, errs.NewFieldError("orderIds",
				fmt.Sprintf("order %s is %s, expected %s", o.ID(), o.PaymentType(), first.PaymentType())))
		}
		if !o.Consignee().Pincode().IsEqual(first.Consignee().Pincode()) {
			fields = append(fields, errs.NewFieldError("orderIds",
				fmt.Sprintf("order %s ships to %s, expected %s", o.ID(), o.Consignee().Pincode(), first.Consignee().Pincode())))
		}
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}
	return nil
}

// Book validates the preconditions, marks the orders shipped and returns the shipment.
// On error no order is modified.
func (e BookingEngine) Book(
	shipmentID kernel.UUID,
	orders []*order.Order,
	quote ratecard.Quote,
	pickup, returnTo *warehouse.Warehouse,
	awb string,
	bookedAt time.Time,
) (*shipment.Shipment, error) {
	if len(orders) == 0 {
		return nil, ErrNoOrdersToBook
	}
	if err := errors.Join(quote.Validate(), pickup.Validate(), returnTo.Validate()); err != nil {
		return nil, err
	}
	if err := e.Eligible(orders); err != nil {
		return nil, err
	}

	first := orders[0]
	if first.PaymentType() == order.Prepaid && !quote.CODCharge().IsZero() {
		return nil, errs.NewValidationError(errs.NewFieldError("quote.codCharge", "must be 0 for prepaid orders"))
	}

	codAmount := kernel.ZeroMoney()
	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		codAmount = codAmount.Add(o.CollectableValue())
		ids = append(ids, o.ID())
	}

	s, err := shipment.NewShipment(shipmentID, shipment.Booking{
		OrderIDs:          ids,
		PaymentType:       first.PaymentType(),
		CODAmount:         codAmount,
		Quote:             quote,
		AWB:               awb,
		PickupWarehouseID: pickup.ID(),
		ReturnWarehouseID: returnTo.ID(),
		Destination:       first.Consignee().Pincode(),
	}, bookedAt)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if err = o.MarkShipped(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Cancel cancels a pending shipment and detaches its orders. orders must be exactly the
// shipment's orders.
func (e BookingEngine) Cancel(s *shipment.Shipment, orders []*order.Order, at time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	owned := make(map[string]struct{}, len(orders))
	for _, id := range s.OrderIDs() {
		owned[id.String()] = struct{}{}
	}
	if len(orders) != len(owned) {
		return errs.NewValueIsInvalidErrorWithCause("orders",
			fmt.Errorf("shipment %s owns %d orders, got %d", s.ID(), len(owned), len(orders)))
	}
	for _, o := range orders {
		if _, ok := owned[o.ID().String()]; !ok {
			return errs.NewValueIsInvalidErrorWithCause("orders",
				fmt.Errorf("order %s does not belong to shipment %s", o.ID(), s.ID()))
		}
	}

	if err := s.Cancel(at); err != nil {
		return err
	}
	for _, o := range orders {
		if err := o.RevertShipment(); err != nil {
			return err
		}
	}
	return nil
}
