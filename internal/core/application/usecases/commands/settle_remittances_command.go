package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSettleRemittancesCommandIsNotConstructed = errors.New(
	"SettleRemittancesCommand must be created via NewSettleRemittancesCommand constructor",
)

// SettleRemittancesCommand books remittance records for COD cash collected on shipments
// delivered within [start, end).
type SettleRemittancesCommand struct { //nolint:recvcheck //using for validation
	period         kernel.Period
	settlementDate time.Time

	guard guard.ConstructorGuard
}

// NewSettleRemittancesCommand builds the command. A zero settlementDate defaults to the
// period end.
func NewSettleRemittancesCommand(start, end, settlementDate time.Time) (SettleRemittancesCommand, error) {
	period, err := kernel.NewPeriod(start, end)
	if err != nil {
		return SettleRemittancesCommand{}, err
	}
	if settlementDate.IsZero() {
		settlementDate = period.End()
	}
	return SettleRemittancesCommand{
		period:         period,
		settlementDate: settlementDate.UTC(),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c SettleRemittancesCommand) Validate() error {
	return c.guard.Validate(ErrSettleRemittancesCommandIsNotConstructed)
}

func (c SettleRemittancesCommand) Period() kernel.Period { return c.period }
func (c SettleRemittancesCommand) SettlementDate() time.Time { return c.settlementDate }
