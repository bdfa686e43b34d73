package ratecard

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrQuoteIsNotConstructed is returned for a zero-value Quote.
var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")

// Quote is the charge breakdown of one carrier service for one order. It is a pure
// value: the only place it is stored is the frozen snapshot on a booked shipment.
type Quote struct {
	carrier               string
	service               string
	zone                  Zone
	chargeableWeightGrams float64
	freight               kernel.Money
	codCharge             kernel.Money
	otherCharges          kernel.Money
	total                 kernel.Money
	guard                 guard.ConstructorGuard
}

// NewQuote checks that a breakdown is self-consistent: carrier and service are named,
// the zone is known, and total equals freight + COD charge + other charges. Money is
// non-negative by construction.
//
// Example:
//
//	q, err := ratecard.NewQuote("delhivery", "surface", ratecard.Regional, 500,
//	    kernel.MustMoney("45"), kernel.MustMoney("30"), kernel.ZeroMoney(), kernel.MustMoney("75"))
func NewQuote(
	carrier, service string,
	zone Zone,
	chargeableWeightGrams float64,
	freight, codCharge, otherCharges, total kernel.Money,
) (Quote, error) {
	carrier = strings.TrimSpace(carrier)
	service = strings.TrimSpace(service)

	var problems []error
	if carrier == "" {
		problems = append(problems, errs.NewValueIsRequiredError("quote.carrier"))
	}
	if service == "" {
		problems = append(problems, errs.NewValueIsRequiredError("quote.service"))
	}
	if err := zone.Validate(); err != nil {
		problems = append(problems, err)
	}
	if chargeableWeightGrams <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"quote.chargeableWeight", fmt.Errorf("%g is not greater than 0", chargeableWeightGrams)))
	}
	if sum := freight.Add(codCharge).Add(otherCharges); !sum.Equal(total) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"quote.total", fmt.Errorf("%s does not equal freight + cod + other = %s", total, sum)))
	}
	if err := errors.Join(problems...); err != nil {
		return Quote{}, err
	}

	return Quote{
		carrier:               carrier,
		service:               service,
		zone:                  zone,
		chargeableWeightGrams: chargeableWeightGrams,
		freight:               freight,
		codCharge:             codCharge,
		otherCharges:          otherCharges,
		total:                 total,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

func (q Quote) Validate() error {
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

func (q Quote) Carrier() string { return q.carrier }
func (q Quote) Service() string { return q.service }
func (q Quote) Zone() Zone { return q.zone }
func (q Quote) ChargeableWeightGrams() float64 { return q.chargeableWeightGrams }
func (q Quote) Freight() kernel.Money { return q.freight }
func (q Quote) CODCharge() kernel.Money { return q.codCharge }
func (q Quote) OtherCharges() kernel.Money { return q.otherCharges }
func (q Quote) Total() kernel.Money { return q.total }

// weightTolerance is how far apart two chargeable weights, in grams, may be and still
// price the same quote. Clients send weights as single-precision JSON numbers.
const weightTolerance = 0.05

// SamePrice reports whether other names the same carrier service (case-insensitive),
// zone and chargeable weight, with identical charges.
func (q Quote) SamePrice(other Quote) bool {
	return strings.EqualFold(q.carrier, other.carrier) &&
		strings.EqualFold(q.service, other.service) &&
		q.zone == other.zone &&
		math.Abs(q.chargeableWeightGrams-other.chargeableWeightGrams) <= weightTolerance &&
		q.freight.Equal(other.freight) &&
		q.codCharge.Equal(other.codCharge) &&
		q.otherCharges.Equal(other.otherCharges) &&
		q.total.Equal(other.total)
}

// Less orders quotes by total, then carrier, then service.
func (q Quote) Less(other Quote) bool {
	if !q.total.Equal(other.total) {
		return other.total.GreaterThan(q.total)
	}
	if q.carrier != other.carrier {
		return q.carrier < other.carrier
	}
	return q.service < other.service
}
