package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Booking carries everything fixed at booking time. None of it changes afterwards.
type Booking struct {
	OrderIDs          []kernel.UUID
	PaymentType       order.PaymentType
	CODAmount         kernel.Money
	Quote             ratecard.Quote
	AWB               string
	PickupWarehouseID kernel.UUID
	ReturnWarehouseID kernel.UUID
	Destination       kernel.Pincode
}

// Shipment is a booked consignment of one or more orders with one carrier service.
//
// Lifecycle:
//
//	pending ──carrier──> in-transit ──carrier──> delivered | rto | lost
//	   │  └──────────────carrier──────────────────┘
//	   └──Cancel──> cancelled
//
// The quote is frozen at booking: it is never re-derived from the current rate cards.
type Shipment struct {
	id                kernel.UUID
	orderIDs          []kernel.UUID
	paymentType       order.PaymentType
	codAmount         kernel.Money
	quote             ratecard.Quote
	awb               string
	pickupWarehouseID kernel.UUID
	returnWarehouseID kernel.UUID
	destination       kernel.Pincode
	status            Status
	bookedAt          time.Time
	updatedAt         time.Time
	deliveredAt       *time.Time
	isConstructed     bool
}

// NewShipment creates a pending shipment.
//
// Parameters:
//   - id: unique identifier
//   - b: booking data; OrderIDs must be non-empty and distinct, and CODAmount must be
//     zero for prepaid shipments
//   - bookedAt: booking timestamp, stored in UTC
//
// Returns:
//   - *Shipment: the pending shipment
//   - error: joined validation errors
func NewShipment(id kernel.UUID, b Booking, bookedAt time.Time) (*Shipment, error) {
	s := &Shipment{
		status:        Pending,
		bookedAt:      bookedAt.UTC(),
		updatedAt:     bookedAt.UTC(),
		isConstructed: true,
	}
	if err := errors.Join(
		s.setID(id),
		s.setOrderIDs(b.OrderIDs),
		s.setPayment(b.PaymentType, b.CODAmount),
		s.setQuote(b.Quote),
		s.setAWB(b.AWB),
		s.setWarehouses(b.PickupWarehouseID, b.ReturnWarehouseID),
		s.setDestination(b.Destination),
	); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreShipment rebuilds a shipment from persistence.
func RestoreShipment(
	id kernel.UUID,
	b Booking,
	status Status,
	bookedAt, updatedAt time.Time,
	deliveredAt *time.Time,
) (*Shipment, error) {
	s, err := NewShipment(id, b, bookedAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	s.status = status
	s.updatedAt = updatedAt.UTC()
	if deliveredAt != nil {
		at := deliveredAt.UTC()
		s.deliveredAt = &at
	}
	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() kernel.UUID { return s.id }
func (s *Shipment) PaymentType() order.PaymentType { return s.paymentType }
func (s *Shipment) CODAmount() kernel.Money { return s.codAmount }
func (s *Shipment) Quote() ratecard.Quote { return s.quote }
func (s *Shipment) AWB() string { return s.awb }
func (s *Shipment) PickupWarehouseID() kernel.UUID { return s.pickupWarehouseID }
func (s *Shipment) ReturnWarehouseID() kernel.UUID { return s.returnWarehouseID }
func (s *Shipment) Destination() kernel.Pincode { return s.destination }
func (s *Shipment) Status() Status { return s.status }
func (s *Shipment) BookedAt() time.Time { return s.bookedAt }
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }

// OrderIDs returns a copy of the owning order identifiers in booking order.
func (s *Shipment) OrderIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(s.orderIDs))
	copy(out, s.orderIDs)
	return out
}

// DeliveredAt is nil until the carrier reports delivery.
func (s *Shipment) DeliveredAt() *time.Time {
	if s.deliveredAt == nil {
		return nil
	}
	at := *s.deliveredAt
	return &at
}

// Booking returns the data fixed at booking time.
func (s *Shipment) Booking() Booking {
	return Booking{
		OrderIDs:          s.OrderIDs(),
		PaymentType:       s.paymentType,
		CODAmount:         s.codAmount,
		Quote:             s.quote,
		AWB:               s.awb,
		PickupWarehouseID: s.pickupWarehouseID,
		ReturnWarehouseID: s.returnWarehouseID,
		Destination:       s.destination,
	}
}

// Cancel is allowed only while the shipment is pending, before the carrier has it.
func (s *Shipment) Cancel(at time.Time) error {
	if s.status != Pending {
		return errs.NewInvalidTransitionError(s.entity(), s.status.String(), Cancelled.String())
	}
	s.status = Cancelled
	s.updatedAt = at.UTC()
	return nil
}

// ApplyCarrierStatus moves the shipment to the state a carrier report implies.
// A report that implies the current state is a no-op and returns changed=false, which
// makes webhook replays harmless. Terminal shipments reject any other report.
func (s *Shipment) ApplyCarrierStatus(cs CarrierStatus, at time.Time) (changed bool, err error) {
	if err = cs.Validate(); err != nil {
		return false, err
	}
	to := cs.target()
	if to == s.status {
		return false, nil
	}
	if s.status.IsTerminal() {
		return false, errs.NewInvalidTransitionError(s.entity(), s.status.String(), to.String())
	}

	s.status = to
	s.updatedAt = at.UTC()
	if to == Delivered {
		delivered := at.UTC()
		s.deliveredAt = &delivered
	}
	return true, nil
}

func (s *Shipment) entity() string {
	return "shipment " + s.id.String()
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id.String()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("orderIds", fmt.Errorf("order %s listed twice", id))
		}
		seen[id.String()] = struct{}{}
		out = append(out, id)
	}
	s.orderIDs = out
	return nil
}

func (s *Shipment) setPayment(pt order.PaymentType, codAmount kernel.Money) error {
	if err := pt.Validate(); err != nil {
		return err
	}
	if pt == order.Prepaid && !codAmount.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause(
			"codAmount", fmt.Errorf("%s must be 0 for prepaid shipments", codAmount))
	}
	s.paymentType = pt
	s.codAmount = codAmount
	return nil
}

func (s *Shipment) setQuote(q ratecard.Quote) error {
	if err := q.Validate(); err != nil {
		return err
	}
	s.quote = q
	return nil
}

func (s *Shipment) setAWB(awb string) error {
	awb = strings.TrimSpace(awb)
	if awb == "" {
		return errs.NewValueIsRequiredError("awb")
	}
	s.awb = awb
	return nil
}

func (s *Shipment) setWarehouses(pickup, ret kernel.UUID) error {
	if err := errors.Join(pickup.Validate(), ret.Validate()); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouse", err)
	}
	s.pickupWarehouseID = pickup
	s.returnWarehouseID = ret
	return nil
}

func (s *Shipment) setDestination(p kernel.Pincode) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.destination = p
	return nil
}
