package ratecard

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrRateCardIsNotConstructed = errors.New("RateCard must be created via NewRateCard constructor")

var hundred = decimal.NewFromInt(100)

// Terms are the commercial parameters of a rate card.
//
// MaxWeightGrams of zero means the card has no upper weight limit. CODPercent is
// expressed in percent, so 1.5 means 1.5% of the collectable value.
type Terms struct {
	BaseWeightGrams   float64
	BaseFreight       kernel.Money
	SlabGrams         float64
	SlabFreight       kernel.Money
	MaxWeightGrams    float64
	CODFlatFee        kernel.Money
	CODPercent        decimal.Decimal
	RTORiskFee        kernel.Money
	RiskyProductTypes []string
}

// RateCard prices shipments of one carrier service within one zone.
// A card is identified by its (carrier, service, zone) key.
type RateCard struct {
	carrier       string
	service       string
	zone          Zone
	terms         Terms
	isConstructed bool
}

// NewRateCard validates the key and the terms. Risky product types are normalized
// to lower case, de-duplicated and sorted so that stored cards compare equal.
func NewRateCard(carrier, service string, zone Zone, terms Terms) (*RateCard, error) {
	rc := &RateCard{isConstructed: true}
	if err := errors.Join(
		rc.setCarrier(carrier),
		rc.setService(service),
		rc.setZone(zone),
		rc.setTerms(terms),
	); err != nil {
		return nil, err
	}
	return rc, nil
}

func (rc *RateCard) Validate() error {
	if rc == nil || !rc.isConstructed {
		return ErrRateCardIsNotConstructed
	}
	return nil
}

func (rc *RateCard) Carrier() string { return rc.carrier }
func (rc *RateCard) Service() string { return rc.service }
func (rc *RateCard) Zone() Zone { return rc.zone }

// Terms returns a copy of the commercial parameters.
func (rc *RateCard) Terms() Terms {
	t := rc.terms
	t.RiskyProductTypes = slices.Clone(rc.terms.RiskyProductTypes)
	return t
}

// Matches reports whether the card serves zone for the given chargeable weight.
func (rc *RateCard) Matches(zone Zone, chargeableGrams float64) bool {
	if rc.zone != zone {
		return false
	}
	return rc.terms.MaxWeightGrams == 0 || chargeableGrams <= rc.terms.MaxWeightGrams
}

// Freight is the base freight plus one slab freight for every started slab beyond the
// base weight. Weights go through decimal so that 1000.1 g over a 500 g base with
// 500 g slabs is always exactly two slabs.
func (rc *RateCard) Freight(chargeableGrams float64) kernel.Money {
	chargeable := decimal.NewFromFloat(chargeableGrams)
	base := decimal.NewFromFloat(rc.terms.BaseWeightGrams)
	if !chargeable.GreaterThan(base) {
		return rc.terms.BaseFreight
	}
	slabs := chargeable.Sub(base).Div(decimal.NewFromFloat(rc.terms.SlabGrams)).Ceil()
	return rc.terms.BaseFreight.Add(rc.terms.SlabFreight.Times(slabs.IntPart()))
}

// CODCharge is max(flat fee, percent of collectable).
func (rc *RateCard) CODCharge(collectable kernel.Money) kernel.Money {
	return rc.terms.CODFlatFee.Max(collectable.Percent(rc.terms.CODPercent))
}

// OtherCharges applies the RTO risk fee to product types the card lists as risky.
func (rc *RateCard) OtherCharges(productType string) kernel.Money {
	pt := strings.ToLower(strings.TrimSpace(productType))
	if pt != "" && slices.Contains(rc.terms.RiskyProductTypes, pt) {
		return rc.terms.RTORiskFee
	}
	return kernel.ZeroMoney()
}

func (rc *RateCard) setCarrier(carrier string) error {
	carrier = strings.TrimSpace(carrier)
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	rc.carrier = carrier
	return nil
}

func (rc *RateCard) setService(service string) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errs.NewValueIsRequiredError("service")
	}
	rc.service = service
	return nil
}

func (rc *RateCard) setZone(zone Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	rc.zone = zone
	return nil
}

func (rc *RateCard) setTerms(t Terms) error {
	var problems []error
	if t.BaseWeightGrams <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"baseWeight", fmt.Errorf("%g is not greater than 0", t.BaseWeightGrams)))
	}
	if t.SlabGrams <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"slab", fmt.Errorf("%g is not greater than 0", t.SlabGrams)))
	}
	if t.MaxWeightGrams < 0 || (t.MaxWeightGrams > 0 && t.MaxWeightGrams < t.BaseWeightGrams) {
		problems = append(problems, errs.NewValueIsOutOfRangeError(
			"maxWeight", t.MaxWeightGrams, t.BaseWeightGrams, "unbounded"))
	}
	if t.CODPercent.IsNegative() || t.CODPercent.GreaterThan(hundred) {
		problems = append(problems, errs.NewValueIsOutOfRangeError(
			"codPercent", t.CODPercent.String(), 0, 100))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	risky := make([]string, 0, len(t.RiskyProductTypes))
	for _, pt := range t.RiskyProductTypes {
		pt = strings.ToLower(strings.TrimSpace(pt))
		if pt != "" {
			risky = append(risky, pt)
		}
	}
	slices.Sort(risky)
	t.RiskyProductTypes = slices.Compact(risky)
	rc.terms = t
	return nil
}
