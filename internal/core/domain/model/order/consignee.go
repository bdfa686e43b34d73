package order

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrConsigneeIsNotConstructed = errors.New("Consignee must be created via NewConsignee constructor")

// Consignee is the person and address an order is delivered to.
type Consignee struct { //nolint:recvcheck //using for validation
	name         string
	phone        kernel.Mobile
	addressLine1 string
	addressLine2 string
	city         string
	state        string
	pincode      kernel.Pincode
	guard        guard.ConstructorGuard
}

// NewConsignee requires a name, a first address line, city and state, plus
// constructed phone and pincode values. Surrounding whitespace is trimmed.
func NewConsignee(
	name string,
	phone kernel.Mobile,
	addressLine1, addressLine2, city, state string,
	pincode kernel.Pincode,
) (Consignee, error) {
	c := Consignee{
		addressLine2: strings.TrimSpace(addressLine2),
		guard:        guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		c.setRequired("consignee.name", &c.name, name),
		c.setRequired("consignee.addressLine1", &c.addressLine1, addressLine1),
		c.setRequired("consignee.city", &c.city, city),
		c.setRequired("consignee.state", &c.state, state),
		c.setPhone(phone),
		c.setPincode(pincode),
	); err != nil {
		return Consignee{}, err
	}
	return c, nil
}

func (c Consignee) Validate() error {
	return c.guard.Validate(ErrConsigneeIsNotConstructed)
}

func (c Consignee) Name() string { return c.name }
func (c Consignee) Phone() kernel.Mobile { return c.phone }
func (c Consignee) AddressLine1() string { return c.addressLine1 }
func (c Consignee) AddressLine2() string { return c.addressLine2 }
func (c Consignee) City() string { return c.city }
func (c Consignee) State() string { return c.state }
func (c Consignee) Pincode() kernel.Pincode { return c.pincode }

func (c *Consignee) setRequired(param string, field *string, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	*field = value
	return nil
}

func (c *Consignee) setPhone(phone kernel.Mobile) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Consignee) setPincode(pincode kernel.Pincode) error {
	if err := pincode.Validate(); err != nil {
		return err
	}
	c.pincode = pincode
	return nil
}
