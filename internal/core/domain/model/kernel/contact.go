package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// PincodeLength is the number of digits in an Indian postal index number.
	PincodeLength = 6
	// MobileLength is the number of digits in a domestic mobile number.
	MobileLength = 10
)

var (
	ErrPincodeIsNotConstructed = errs.NewValueIsRequiredError("pincode must be created via NewPincode")
	ErrMobileIsNotConstructed  = errs.NewValueIsRequiredError("mobile must be created via NewMobile")
)

// Pincode is a validated six-digit postal code.
type Pincode struct {
	value string
	guard guard.ConstructorGuard
}

// NewPincode accepts exactly PincodeLength ASCII digits.
func NewPincode(value string) (Pincode, error) {
	if !isDigits(value, PincodeLength) {
		return Pincode{}, errs.NewValueIsInvalidErrorWithCause(
			"pincode", fmt.Errorf("%q is not exactly %d digits", value, PincodeLength))
	}
	return Pincode{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (p Pincode) Validate() error {
	return p.guard.Validate(ErrPincodeIsNotConstructed)
}

func (p Pincode) String() string {
	return p.value
}

// Prefix returns the first n digits. The first two identify the postal circle (state),
// the first three the sorting district.
func (p Pincode) Prefix(n int) string {
	if n >= len(p.value) {
		return p.value
	}
	return p.value[:n]
}

func (p Pincode) IsEqual(other Pincode) bool {
	return p.value == other.value
}

// Mobile is a validated ten-digit mobile number without country code.
type Mobile struct {
	value string
	guard guard.ConstructorGuard
}

// NewMobile accepts exactly MobileLength ASCII digits.
func NewMobile(value string) (Mobile, error) {
	if !isDigits(value, MobileLength) {
		return Mobile{}, errs.NewValueIsInvalidErrorWithCause(
			"mobile", fmt.Errorf("%q is not exactly %d digits", value, MobileLength))
	}
	return Mobile{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (m Mobile) Validate() error {
	return m.guard.Validate(ErrMobileIsNotConstructed)
}

func (m Mobile) String() string {
	return m.value
}

func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
