package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateWarehouseCommandIsNotConstructed = errors.New(
	"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
)

// CreateWarehouseCommand registers a pickup or return location.
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	name        string
	address     string
	city        string
	state       string
	pincode     kernel.Pincode

	guard guard.ConstructorGuard
}

// NewCreateWarehouseCommand validates identifiers and the pincode format. Name and
// address presence is enforced by the warehouse aggregate.
func NewCreateWarehouseCommand(
	warehouseID kernel.UUID,
	name, address, city, state, pincode string,
) (CreateWarehouseCommand, error) {
	cmd := CreateWarehouseCommand{
		name:    strings.TrimSpace(name),
		address: strings.TrimSpace(address),
		city:    strings.TrimSpace(city),
		state:   strings.TrimSpace(state),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWarehouseID(warehouseID),
		cmd.setPincode(pincode),
	); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return cmd, nil
}

func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

func (c CreateWarehouseCommand) WarehouseID() kernel.UUID { return c.warehouseID }
func (c CreateWarehouseCommand) Name() string { return c.name }
func (c CreateWarehouseCommand) Address() string { return c.address }
func (c CreateWarehouseCommand) City() string { return c.city }
func (c CreateWarehouseCommand) State() string { return c.state }
func (c CreateWarehouseCommand) Pincode() kernel.Pincode { return c.pincode }

func (c *CreateWarehouseCommand) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.warehouseID = id
	return nil
}

func (c *CreateWarehouseCommand) setPincode(value string) error {
	pincode, err := kernel.NewPincode(strings.TrimSpace(value))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pincode", err)
	}
	c.pincode = pincode
	return nil
}
