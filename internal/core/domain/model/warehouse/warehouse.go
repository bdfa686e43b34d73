// Package warehouse provides the Warehouse reference entity used as a pickup origin,
// a return destination, and the origin side of zone classification.
package warehouse

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Warehouse is immutable reference data.
type Warehouse struct {
	id            kernel.UUID
	name          string
	address       string
	city          string
	state         string
	pincode       kernel.Pincode
	isConstructed bool
}

// NewWarehouse validates identity, name, address and pincode. City and state are optional
// because zone classification falls back to the pincode directory.
func NewWarehouse(id kernel.UUID, name, address, city, state string, pincode kernel.Pincode) (*Warehouse, error) {
	w := &Warehouse{
		city:          strings.TrimSpace(city),
		state:         strings.TrimSpace(state),
		isConstructed: true,
	}
	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setAddress(address),
		w.setPincode(pincode),
	); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

func (w *Warehouse) ID() kernel.UUID { return w.id }
func (w *Warehouse) Name() string { return w.name }
func (w *Warehouse) Address() string { return w.address }
func (w *Warehouse) City() string { return w.city }
func (w *Warehouse) State() string { return w.state }
func (w *Warehouse) Pincode() kernel.Pincode { return w.pincode }

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}

func (w *Warehouse) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	w.address = address
	return nil
}

func (w *Warehouse) setPincode(pincode kernel.Pincode) error {
	if err := pincode.Validate(); err != nil {
		return err
	}
	w.pincode = pincode
	return nil
}
