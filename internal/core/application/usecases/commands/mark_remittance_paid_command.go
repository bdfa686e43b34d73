package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkRemittancePaidCommandIsNotConstructed = errors.New(
	"MarkRemittancePaidCommand must be created via NewMarkRemittancePaidCommand constructor",
)

// MarkRemittancePaidCommand records the payout of a remittance to the merchant.
type MarkRemittancePaidCommand struct { //nolint:recvcheck //using for validation
	recordID  kernel.UUID
	reference string

	guard guard.ConstructorGuard
}

func NewMarkRemittancePaidCommand(recordID kernel.UUID, reference string) (MarkRemittancePaidCommand, error) {
	if err := recordID.Validate(); err != nil {
		return MarkRemittancePaidCommand{}, err
	}
	return MarkRemittancePaidCommand{
		recordID:  recordID,
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c MarkRemittancePaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkRemittancePaidCommandIsNotConstructed)
}

func (c MarkRemittancePaidCommand) RecordID() kernel.UUID { return c.recordID }
func (c MarkRemittancePaidCommand) Reference() string { return c.reference }
