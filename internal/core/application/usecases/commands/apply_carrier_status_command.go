package commands

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrApplyCarrierStatusCommandIsNotConstructed = errors.New(
	"ApplyCarrierStatusCommand must be created via NewApplyCarrierStatusCommand constructor",
)

// ApplyCarrierStatusCommand is one carrier webhook delivery. The event id is the
// carrier's own identifier and is what makes redelivery harmless.
type ApplyCarrierStatusCommand struct { //nolint:recvcheck //using for validation
	eventID    string
	shipmentID kernel.UUID
	status     shipment.CarrierStatus
	reason     string
	receivedAt time.Time

	guard guard.ConstructorGuard
}

func NewApplyCarrierStatusCommand(
	eventID string,
	shipmentID kernel.UUID,
	status, reason string,
	receivedAt time.Time,
) (ApplyCarrierStatusCommand, error) {
	cmd := ApplyCarrierStatusCommand{
		eventID:    strings.TrimSpace(eventID),
		shipmentID: shipmentID,
		reason:     strings.TrimSpace(reason),
		receivedAt: receivedAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := shipmentID.Validate(); err != nil {
		return ApplyCarrierStatusCommand{}, err
	}

	var fields []errs.FieldError
	if cmd.eventID == "" {
		fields = append(fields, errs.NewFieldError("eventId", "is required"))
	}
	parsed, err := shipment.ParseCarrierStatus(strings.TrimSpace(status))
	if err != nil {
		fields = append(fields, errs.NewFieldError("status", "must be one of in-transit, delivery-failed, delivered, rto, lost"))
	}
	if len(fields) > 0 {
		return ApplyCarrierStatusCommand{}, errs.NewValidationError(fields...)
	}

	cmd.status = parsed
	return cmd, nil
}

func (c ApplyCarrierStatusCommand) Validate() error {
	return c.guard.Validate(ErrApplyCarrierStatusCommandIsNotConstructed)
}

func (c ApplyCarrierStatusCommand) EventID() string { return c.eventID }
func (c ApplyCarrierStatusCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c ApplyCarrierStatusCommand) Status() shipment.CarrierStatus { return c.status }
func (c ApplyCarrierStatusCommand) Reason() string { return c.reason }
func (c ApplyCarrierStatusCommand) ReceivedAt() time.Time { return c.receivedAt }
