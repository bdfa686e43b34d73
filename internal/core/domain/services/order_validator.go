package services

import (
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderDraft is merchant input before validation. Quantities are raw so that every
// problem can be reported against the field the merchant typed.
type OrderDraft struct {
	PaymentType       string
	ConsigneeName     string
	ConsigneePhone    string
	AddressLine1      string
	AddressLine2      string
	City              string
	State             string
	Pincode           string
	DeclaredValue     decimal.Decimal
	CollectableValue  decimal.Decimal
	Length            float64
	Breadth           float64
	Height            float64
	ActualWeightGrams float64
	Quantity          int
	ProductType       string
}

// OrderValidator turns an OrderDraft into a normalized order.Order.
//
// Business rules:
//   - length, breadth, height, actual weight, declared value and quantity must be positive
//   - pincode must be exactly 6 digits and phone exactly 10 digits
//   - consignee name, address line 1, city and state are required
//   - a prepaid draft with a collectable value is clamped to 0 without an error
//   - a COD draft collecting more than its declared value is rejected, never clamped
//
// Validation is pure: there are no side effects and every failing field is reported.
//
// Example:
//
//	v := services.NewOrderValidator()
//	o, fieldErrs := v.Validate(kernel.NewUUID(), draft, time.Now())
//	if len(fieldErrs) > 0 {
//	    return errs.NewValidationError(fieldErrs...)
//	}
type OrderValidator struct{}

func NewOrderValidator() OrderValidator {
	return OrderValidator{}
}

// Validate returns the normalized order, or nil and the complete list of field errors.
func (v OrderValidator) Validate(id kernel.UUID, d OrderDraft, createdAt time.Time) (*order.Order, []errs.FieldError) {
	var fields []errs.FieldError
	fail := func(field, format string, args ...any) {
		fields = append(fields, errs.NewFieldError(field, fmt.Sprintf(format, args...)))
	}

	paymentType, err := order.ParsePaymentType(strings.ToLower(strings.TrimSpace(d.PaymentType)))
	if err != nil {
		fail("paymentType", "must be prepaid or cod")
	}

	for _, required := range []struct{ field, value string }{
		{"consignee.name", d.ConsigneeName},
		{"consignee.addressLine1", d.AddressLine1},
		{"consignee.city", d.City},
		{"consignee.state", d.State},
	} {
		if strings.TrimSpace(required.value) == "" {
			fail(required.field, "is required")
		}
	}
	phone, err := kernel.NewMobile(strings.TrimSpace(d.ConsigneePhone))
	if err != nil {
		fail("consignee.phone", "must be exactly %d digits", kernel.MobileLength)
	}
	pincode, err := kernel.NewPincode(strings.TrimSpace(d.Pincode))
	if err != nil {
		fail("consignee.pincode", "must be exactly %d digits", kernel.PincodeLength)
	}

	dimensions, dimensionErrs := v.ValidateDimensions(d.Length, d.Breadth, d.Height)
	fields = append(fields, dimensionErrs...)

	if d.ActualWeightGrams <= 0 {
		fail("actualWeight", "must be greater than 0")
	}
	if d.Quantity <= 0 {
		fail("quantity", "must be greater than 0")
	}
	if !d.DeclaredValue.IsPositive() {
		fail("declaredValue", "must be greater than 0")
	}

	collectable := d.CollectableValue
	switch paymentType {
	case order.Prepaid:
		collectable = decimal.Zero
	case order.COD:
		if collectable.IsNegative() {
			fail("collectableValue", "must not be negative")
		} else if collectable.GreaterThan(d.DeclaredValue) {
			fail("collectableValue", "%s exceeds declared value %s",
				collectable.StringFixed(kernel.MoneyScale), d.DeclaredValue.StringFixed(kernel.MoneyScale))
		}
	}

	if len(fields) > 0 {
		return nil, fields
	}

	consignee, err := order.NewConsignee(d.ConsigneeName, phone, d.AddressLine1, d.AddressLine2, d.City, d.State, pincode)
	if err != nil {
		return nil, []errs.FieldError{errs.NewFieldError("consignee", err.Error())}
	}
	declared, err := kernel.NewMoney(d.DeclaredValue)
	if err != nil {
		return nil, []errs.FieldError{errs.NewFieldError("declaredValue", err.Error())}
	}
	collectableMoney, err := kernel.NewMoney(collectable)
	if err != nil {
		return nil, []errs.FieldError{errs.NewFieldError("collectableValue", err.Error())}
	}

	o, err := order.NewOrder(id, order.Details{
		PaymentType:       paymentType,
		Consignee:         consignee,
		DeclaredValue:     declared,
		CollectableValue:  collectableMoney,
		Dimensions:        dimensions,
		ActualWeightGrams: d.ActualWeightGrams,
		Quantity:          d.Quantity,
		ProductType:       d.ProductType,
	}, createdAt)
	if err != nil {
		// Rounding to paise can push a COD value over the declared one (10.005 vs 10.004).
		return nil, []errs.FieldError{errs.NewFieldError("order", err.Error())}
	}
	return o, nil
}

// ValidateDimensions checks package sides independently of the rest of an order, for
// dimension edits on an existing order.
func (v OrderValidator) ValidateDimensions(length, breadth, height float64) (kernel.Dimensions, []errs.FieldError) {
	var fields []errs.FieldError
	for _, side := range []struct {
		field string
		value float64
	}{
		{"length", length},
		{"breadth", breadth},
		{"height", height},
	} {
		if side.value <= 0 {
			fields = append(fields, errs.NewFieldError(side.field, "must be greater than 0"))
		}
	}
	if len(fields) > 0 {
		return kernel.Dimensions{}, fields
	}

	d, err := kernel.NewDimensions(length, breadth, height)
	if err != nil {
		return kernel.Dimensions{}, []errs.FieldError{errs.NewFieldError("dimensions", err.Error())}
	}
	return d, nil
}
