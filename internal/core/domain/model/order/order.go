package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details carries the merchant-supplied attributes of an order. Volumetric weight is not
// part of it: the aggregate always derives that value itself.
type Details struct {
	PaymentType       PaymentType
	Consignee         Consignee
	DeclaredValue     kernel.Money
	CollectableValue  kernel.Money
	Dimensions        kernel.Dimensions
	ActualWeightGrams float64
	Quantity          int
	ProductType       string
}

// Order is a merchant's request to ship goods to a consignee. It is the aggregate root
// guarding the payment and weight invariants listed in the package documentation.
//
// Lifecycle:
//
//	open ──MarkShipped──> shipped ──RevertShipment──> open
//	  │
//	  └──Cancel──> cancelled
//
// Shipped orders are frozen: dimensions cannot change and the order cannot be cancelled
// until the owning shipment is cancelled (which reverts the shipped flag).
type Order struct {
	id                    kernel.UUID
	paymentType           PaymentType
	consignee             Consignee
	declaredValue         kernel.Money
	collectableValue      kernel.Money
	dimensions            kernel.Dimensions
	actualWeightGrams     float64
	volumetricWeightGrams float64
	quantity              int
	productType           string
	shipped               bool
	cancelled             bool
	createdAt             time.Time
	isConstructed         bool
}

// NewOrder creates an open order. All invariants are checked and every violation is
// reported at once.
//
// Parameters:
//   - id: unique identifier (must be a constructed UUID)
//   - details: merchant attributes; CollectableValue must already be zero for prepaid orders
//   - createdAt: creation timestamp, stored in UTC
//
// Returns:
//   - *Order: the open order
//   - error: joined validation errors
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), details, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(o.VolumetricWeightGrams())
func NewOrder(id kernel.UUID, details Details, createdAt time.Time) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}
	if err := o.apply(id, details); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOrder rebuilds an order from persistence with its lifecycle flags.
// The same invariants as NewOrder apply; a row that violates them is rejected.
func RestoreOrder(id kernel.UUID, details Details, shipped, cancelled bool, createdAt time.Time) (*Order, error) {
	o, err := NewOrder(id, details, createdAt)
	if err != nil {
		return nil, err
	}
	if shipped && cancelled {
		return nil, errs.NewValueIsInvalidErrorWithCause("order", errors.New("cannot be both shipped and cancelled"))
	}
	o.shipped = shipped
	o.cancelled = cancelled
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) PaymentType() PaymentType { return o.paymentType }
func (o *Order) Consignee() Consignee { return o.consignee }
func (o *Order) DeclaredValue() kernel.Money { return o.declaredValue }
func (o *Order) CollectableValue() kernel.Money { return o.collectableValue }
func (o *Order) Dimensions() kernel.Dimensions { return o.dimensions }
func (o *Order) ActualWeightGrams() float64 { return o.actualWeightGrams }
func (o *Order) Quantity() int { return o.quantity }
func (o *Order) ProductType() string { return o.productType }
func (o *Order) IsShipped() bool { return o.shipped }
func (o *Order) IsCancelled() bool { return o.cancelled }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// VolumetricWeightGrams is derived from the current dimensions; it is never set directly.
func (o *Order) VolumetricWeightGrams() float64 {
	return o.volumetricWeightGrams
}

// ChargeableWeightGrams is max(actual weight, volumetric weight).
// For a 2x2x2 cm box weighing 10 g this is max(10, 1.6) = 10.
func (o *Order) ChargeableWeightGrams() float64 {
	return math.Max(o.actualWeightGrams, o.volumetricWeightGrams)
}

// Details returns the merchant attributes, e.g. to re-validate after an edit.
func (o *Order) Details() Details {
	return Details{
		PaymentType:       o.paymentType,
		Consignee:         o.consignee,
		DeclaredValue:     o.declaredValue,
		CollectableValue:  o.collectableValue,
		Dimensions:        o.dimensions,
		ActualWeightGrams: o.actualWeightGrams,
		Quantity:          o.quantity,
		ProductType:       o.productType,
	}
}

// UpdateDimensions replaces the package dimensions and recomputes the volumetric weight.
// Shipped and cancelled orders are immutable.
func (o *Order) UpdateDimensions(d kernel.Dimensions) error {
	if err := o.ensureOpen("dimensions changed"); err != nil {
		return err
	}
	return o.setDimensions(d)
}

// MarkShipped attaches the order to a shipment. An already shipped order yields a
// ConflictError so that a losing concurrent booking can be told to re-read.
func (o *Order) MarkShipped() error {
	if o.cancelled {
		return errs.NewInvalidTransitionError("order "+o.id.String(), "cancelled", "shipped")
	}
	if o.shipped {
		return errs.NewConflictError("order", o.id.String(), "already attached to an active shipment")
	}
	o.shipped = true
	return nil
}

// RevertShipment detaches the order after its pending shipment was cancelled.
func (o *Order) RevertShipment() error {
	if !o.shipped {
		return errs.NewInvalidTransitionError("order "+o.id.String(), "open", "open")
	}
	o.shipped = false
	return nil
}

// Cancel withdraws an open order.
func (o *Order) Cancel() error {
	if err := o.ensureOpen("cancelled"); err != nil {
		return err
	}
	o.cancelled = true
	return nil
}

func (o *Order) ensureOpen(to string) error {
	switch {
	case o.cancelled:
		return errs.NewInvalidTransitionError("order "+o.id.String(), "cancelled", to)
	case o.shipped:
		return errs.NewInvalidTransitionError("order "+o.id.String(), "shipped", to)
	}
	return nil
}

func (o *Order) apply(id kernel.UUID, d Details) error {
	return errors.Join(
		o.setID(id),
		o.setConsignee(d.Consignee),
		o.setDimensions(d.Dimensions),
		o.setActualWeight(d.ActualWeightGrams),
		o.setQuantity(d.Quantity),
		o.setValues(d.PaymentType, d.DeclaredValue, d.CollectableValue),
		o.setProductType(d.ProductType),
	)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setConsignee(c Consignee) error {
	if err := c.Validate(); err != nil {
		return err
	}
	o.consignee = c
	return nil
}

func (o *Order) setDimensions(d kernel.Dimensions) error {
	if err := d.Validate(); err != nil {
		return err
	}
	o.dimensions = d
	o.volumetricWeightGrams = d.VolumetricWeightGrams()
	return nil
}

func (o *Order) setActualWeight(grams float64) error {
	if grams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("actualWeight", fmt.Errorf("%g is not greater than 0", grams))
	}
	o.actualWeightGrams = grams
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

// setValues enforces the payment invariant: prepaid collects nothing, COD collects
// at most the declared value.
func (o *Order) setValues(paymentType PaymentType, declared, collectable kernel.Money) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	if !declared.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("declaredValue", fmt.Errorf("%s is not greater than 0", declared))
	}
	switch paymentType {
	case Prepaid:
		if !collectable.IsZero() {
			return errs.NewValueIsInvalidErrorWithCause(
				"collectableValue", fmt.Errorf("%s must be 0 for prepaid orders", collectable))
		}
	case COD:
		if collectable.GreaterThan(declared) {
			return errs.NewValueIsInvalidErrorWithCause(
				"collectableValue", fmt.Errorf("%s exceeds declared value %s", collectable, declared))
		}
	}
	o.paymentType = paymentType
	o.declaredValue = declared
	o.collectableValue = collectable
	return nil
}

func (o *Order) setProductType(productType string) error {
	o.productType = strings.ToLower(strings.TrimSpace(productType))
	return nil
}
