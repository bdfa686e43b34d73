package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// PaymentType tells whether the consignee pays on delivery.
type PaymentType int

const (
	// UnknownPayment catches uninitialized values.
	UnknownPayment PaymentType = iota
	// Prepaid orders are paid before dispatch; nothing is collected at the door.
	Prepaid
	// COD orders collect cash from the consignee, later remitted to the merchant.
	COD
)

var paymentTypeStrings = map[PaymentType]string{
	Prepaid: "prepaid",
	COD:     "cod",
}

// ParsePaymentType maps "prepaid" and "cod" to their PaymentType.
func ParsePaymentType(s string) (PaymentType, error) {
	for p, str := range paymentTypeStrings {
		if str == s {
			return p, nil
		}
	}
	return UnknownPayment, errs.NewValueIsInvalidErrorWithCause(
		"paymentType", fmt.Errorf("%q is not one of prepaid, cod", s))
}

// Validate rejects UnknownPayment and out-of-range values.
func (p PaymentType) Validate() error {
	if _, ok := paymentTypeStrings[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentType", fmt.Errorf("%d is not a valid payment type", p))
	}
	return nil
}

func (p PaymentType) String() string {
	if s, ok := paymentTypeStrings[p]; ok {
		return s
	}
	return "unknown"
}
