package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand reverses a booking that the carrier has not picked up yet.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelShipmentCommand(shipmentID kernel.UUID) (CancelShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return CancelShipmentCommand{}, err
	}
	return CancelShipmentCommand{shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

func (c CancelShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}
