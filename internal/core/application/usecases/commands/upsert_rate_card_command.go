package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/pkg/guard"
)

var ErrUpsertRateCardCommandIsNotConstructed = errors.New(
	"UpsertRateCardCommand must be created via NewUpsertRateCardCommand constructor",
)

// UpsertRateCardCommand publishes a carrier's tariff for one service and zone, replacing
// any card with the same (carrier, service, zone) key.
//
// Example:
//
//	cmd, err := NewUpsertRateCardCommand("Delhivery", "surface", "metro-to-metro", ratecard.Terms{
//	    BaseWeightGrams: 500,
//	    BaseFreight:     kernel.MustMoney("42"),
//	    SlabGrams:       500,
//	    SlabFreight:     kernel.MustMoney("18"),
//	})
type UpsertRateCardCommand struct { //nolint:recvcheck //using for validation
	card *ratecard.RateCard

	guard guard.ConstructorGuard
}

func NewUpsertRateCardCommand(carrier, service, zone string, terms ratecard.Terms) (UpsertRateCardCommand, error) {
	z, err := ratecard.ParseZone(zone)
	if err != nil {
		return UpsertRateCardCommand{}, err
	}

	card, err := ratecard.NewRateCard(carrier, service, z, terms)
	if err != nil {
		return UpsertRateCardCommand{}, err
	}

	return UpsertRateCardCommand{card: card, guard: guard.NewConstructorGuard()}, nil
}

func (c UpsertRateCardCommand) Validate() error {
	return c.guard.Validate(ErrUpsertRateCardCommandIsNotConstructed)
}

// Card returns the validated rate card.
func (c UpsertRateCardCommand) Card() *ratecard.RateCard {
	return c.card
}
