package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"
)

// RateCalculator produces candidate quotes for an order across the carrier catalog.
//
// For every rate card serving the route's zone at the order's chargeable weight it
// computes freight, COD charge and other charges, and returns the quotes sorted by
// (total, carrier, service). Identical inputs always give identical output.
//
// Example:
//
//	calc := services.NewRateCalculator(services.NewZoneClassifier())
//	quotes, err := calc.Quote(o, pickup, o.Consignee().Pincode(), cards, nil)
//	var unavailable *errs.RateUnavailableError
//	if errors.As(err, &unavailable) {
//	    // No carrier serves this zone and weight
//	}
type RateCalculator struct {
	zones ZoneClassifier
}

func NewRateCalculator(zones ZoneClassifier) RateCalculator {
	return RateCalculator{zones: zones}
}

// Quote rates o from origin to destination.
//
// Parameters:
//   - o: a constructed order
//   - origin: the pickup warehouse
//   - destination: destination pincode; when it equals the consignee's pincode the
//     consignee's city and state are used as hints
//   - cards: the carrier catalog
//   - carrierFilter: carriers to consider (case-insensitive); empty means all
//
// Returns:
//   - []ratecard.Quote: at least one quote, sorted
//   - error: errs.RateUnavailableError when no card matches; never a zero-price quote
func (c RateCalculator) Quote(
	o *order.Order,
	origin *warehouse.Warehouse,
	destination kernel.Pincode,
	cards []*ratecard.RateCard,
	carrierFilter []string,
) ([]ratecard.Quote, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	return c.rate(c.Zone(o, origin, destination), parcelOf([]*order.Order{o}), cards, carrierFilter)
}

// QuoteShipment rates the combined parcel of orders bound for one consignee from
// origin. Chargeable weights and collectable values are summed, and a card's RTO risk
// fee applies once when any order carries a product type it lists as risky.
func (c RateCalculator) QuoteShipment(
	orders []*order.Order,
	origin *warehouse.Warehouse,
	cards []*ratecard.RateCard,
	carrierFilter []string,
) ([]ratecard.Quote, error) {
	zone, p, err := c.shipmentParcel(orders, origin)
	if err != nil {
		return nil, err
	}
	return c.rate(zone, p, cards, carrierFilter)
}

// Confirm re-prices orders against the catalog and returns the calculated quote for the
// submitted carrier service. That quote, not the submitted one, is what a booking
// freezes.
//
// Returns:
//   - errs.RateUnavailableError when no card prices the submitted carrier service
//   - errs.ConflictError when the submitted figures differ from the calculated ones
func (c RateCalculator) Confirm(
	submitted ratecard.Quote,
	orders []*order.Order,
	origin *warehouse.Warehouse,
	cards []*ratecard.RateCard,
) (ratecard.Quote, error) {
	if err := submitted.Validate(); err != nil {
		return ratecard.Quote{}, err
	}
	zone, p, err := c.shipmentParcel(orders, origin)
	if err != nil {
		return ratecard.Quote{}, err
	}
	unavailable := errs.NewRateUnavailableError(zone.String(),
		normalizeCarriers([]string{submitted.Carrier()}), p.chargeable)

	quotes, err := c.rate(zone, p, cards, []string{submitted.Carrier()})
	if errors.Is(err, errs.ErrRateUnavailable) {
		return ratecard.Quote{}, unavailable
	}
	if err != nil {
		return ratecard.Quote{}, err
	}

	for _, q := range quotes {
		if !strings.EqualFold(q.Service(), submitted.Service()) {
			continue
		}
		if !q.SamePrice(submitted) {
			return ratecard.Quote{}, errs.NewConflictError("quote", q.Carrier()+"/"+q.Service(),
				fmt.Sprintf("submitted %s for %s at %g g, current price is %s for %s at %g g",
					submitted.Total(), submitted.Zone(), submitted.ChargeableWeightGrams(),
					q.Total(), q.Zone(), q.ChargeableWeightGrams()))
		}
		return q, nil
	}
	return ratecard.Quote{}, unavailable
}

// parcel is what pricing needs to know about the goods of a quote.
type parcel struct {
	cod          bool
	chargeable   float64
	collectable  kernel.Money
	productTypes []string
}

func parcelOf(orders []*order.Order) parcel {
	p := parcel{cod: orders[0].PaymentType() == order.COD, collectable: kernel.ZeroMoney()}
	for _, o := range orders {
		p.chargeable += o.ChargeableWeightGrams()
		p.collectable = p.collectable.Add(o.CollectableValue())
		p.productTypes = append(p.productTypes, o.ProductType())
	}
	return p
}

func (c RateCalculator) shipmentParcel(orders []*order.Order, origin *warehouse.Warehouse) (ratecard.Zone, parcel, error) {
	if len(orders) == 0 {
		return ratecard.UnknownZone, parcel{}, ErrNoOrdersToBook
	}
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return ratecard.UnknownZone, parcel{}, err
		}
	}
	if err := origin.Validate(); err != nil {
		return ratecard.UnknownZone, parcel{}, err
	}
	first := orders[0]
	return c.Zone(first, origin, first.Consignee().Pincode()), parcelOf(orders), nil
}

func (c RateCalculator) rate(zone ratecard.Zone, p parcel, cards []*ratecard.RateCard, carrierFilter []string) ([]ratecard.Quote, error) {
	filter := normalizeCarriers(carrierFilter)

	quotes := make([]ratecard.Quote, 0, len(cards))
	for _, card := range cards {
		if card.Validate() != nil || !card.Matches(zone, p.chargeable) {
			continue
		}
		if len(filter) > 0 && !slices.Contains(filter, strings.ToLower(card.Carrier())) {
			continue
		}
		q, err := c.price(p, card, zone)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	if len(quotes) == 0 {
		return nil, errs.NewRateUnavailableError(zone.String(), filter, p.chargeable)
	}

	slices.SortFunc(quotes, func(a, b ratecard.Quote) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return quotes, nil
}

// Zone classifies the route of o from origin to destination.
func (c RateCalculator) Zone(o *order.Order, origin *warehouse.Warehouse, destination kernel.Pincode) ratecard.Zone {
	from := c.zones.Locate(origin.Pincode(), origin.City(), origin.State())

	var to Locality
	if consignee := o.Consignee(); consignee.Pincode().IsEqual(destination) {
		to = c.zones.Locate(destination, consignee.City(), consignee.State())
	} else {
		to = c.zones.Locate(destination, "", "")
	}
	return c.zones.Classify(from, to)
}

func (c RateCalculator) price(p parcel, card *ratecard.RateCard, zone ratecard.Zone) (ratecard.Quote, error) {
	freight := card.Freight(p.chargeable)
	codCharge := kernel.ZeroMoney()
	if p.cod {
		codCharge = card.CODCharge(p.collectable)
	}
	other := kernel.ZeroMoney()
	for _, pt := range p.productTypes {
		other = other.Max(card.OtherCharges(pt))
	}
	total := freight.Add(codCharge).Add(other)

	return ratecard.NewQuote(card.Carrier(), card.Service(), zone, p.chargeable, freight, codCharge, other, total)
}

func normalizeCarriers(carriers []string) []string {
	out := make([]string, 0, len(carriers))
	for _, c := range carriers {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}
