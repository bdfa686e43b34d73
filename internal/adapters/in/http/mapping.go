package http

import (
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ndr"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/model/remittance"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// fieldParser collects every malformed request field so a request is rejected once
// with the full list.
type fieldParser struct {
	fields []errs.FieldError
}

func (p *fieldParser) decimal(field, value string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		p.fields = append(p.fields, errs.NewFieldError(field, "must be a decimal amount"))
		return decimal.Zero
	}
	return d
}

func (p *fieldParser) optionalDecimal(field string, value *string) decimal.Decimal {
	if value == nil || strings.TrimSpace(*value) == "" {
		return decimal.Zero
	}
	return p.decimal(field, *value)
}

func (p *fieldParser) money(field, value string) kernel.Money {
	m, err := kernel.NewMoney(p.decimal(field, value))
	if err != nil {
		p.fields = append(p.fields, errs.NewFieldError(field, "must not be negative"))
	}
	return m
}

func (p *fieldParser) optionalMoney(field string, value *string) kernel.Money {
	if value == nil || strings.TrimSpace(*value) == "" {
		return kernel.ZeroMoney()
	}
	return p.money(field, *value)
}

func (p *fieldParser) uuid(field string, id openapi_types.UUID) kernel.UUID {
	u, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		p.fields = append(p.fields, errs.NewFieldError(field, "must be a non-nil UUID"))
	}
	return u
}

// err returns a ValidationError when any field failed to parse.
func (p *fieldParser) err() error {
	if len(p.fields) == 0 {
		return nil
	}
	return errs.NewValidationError(p.fields...)
}

func (p *fieldParser) quote(q servers.Quote) ratecard.Quote {
	zone, err := ratecard.ParseZone(q.Zone)
	if err != nil {
		p.fields = append(p.fields, errs.NewFieldError("quote.zone", "unknown zone"))
	}
	freight := p.money("quote.freight", q.Freight)
	codCharge := p.money("quote.codCharge", q.CodCharge)
	other := p.money("quote.otherCharges", q.OtherCharges)
	total := p.money("quote.total", q.Total)
	if len(p.fields) > 0 {
		return ratecard.Quote{}
	}

	quote, err := ratecard.NewQuote(q.Carrier, q.Service, zone, float64(q.ChargeableWeightGrams),
		freight, codCharge, other, total)
	if err != nil {
		p.fields = append(p.fields, errs.NewFieldError("quote", err.Error()))
	}
	return quote
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func uuidsOf(ids []kernel.UUID) []openapi_types.UUID {
	out := make([]openapi_types.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}

func toOrder(o *order.Order) servers.Order {
	c := o.Consignee()
	d := o.Dimensions()
	return servers.Order{
		Id:          o.ID().Bytes(),
		PaymentType: o.PaymentType().String(),
		Consignee: servers.Consignee{
			Name:         c.Name(),
			Phone:        c.Phone().String(),
			AddressLine1: c.AddressLine1(),
			AddressLine2: optional(c.AddressLine2()),
			City:         c.City(),
			State:        c.State(),
			Pincode:      c.Pincode().String(),
		},
		DeclaredValue:    o.DeclaredValue().String(),
		CollectableValue: o.CollectableValue().String(),
		Dimensions: servers.Dimensions{
			Length:  float32(d.Length()),
			Breadth: float32(d.Breadth()),
			Height:  float32(d.Height()),
		},
		ActualWeightGrams:     float32(o.ActualWeightGrams()),
		VolumetricWeightGrams: float32(o.VolumetricWeightGrams()),
		ChargeableWeightGrams: float32(o.ChargeableWeightGrams()),
		Quantity:              o.Quantity(),
		ProductType:           o.ProductType(),
		Shipped:               o.IsShipped(),
		Cancelled:             o.IsCancelled(),
		CreatedAt:             o.CreatedAt(),
	}
}

func toWarehouse(w *warehouse.Warehouse) servers.Warehouse {
	return servers.Warehouse{
		Id:      w.ID().Bytes(),
		Name:    w.Name(),
		Address: w.Address(),
		City:    w.City(),
		State:   w.State(),
		Pincode: w.Pincode().String(),
	}
}

func toRateCard(rc *ratecard.RateCard) servers.RateCard {
	t := rc.Terms()
	codFlat := t.CODFlatFee.String()
	codPercent := t.CODPercent.String()
	rtoFee := t.RTORiskFee.String()
	maxWeight := float32(t.MaxWeightGrams)
	risky := append([]string{}, t.RiskyProductTypes...)
	return servers.RateCard{
		Carrier:           rc.Carrier(),
		Service:           rc.Service(),
		Zone:              servers.RateCardZone(rc.Zone().String()),
		BaseWeightGrams:   float32(t.BaseWeightGrams),
		BaseFreight:       t.BaseFreight.String(),
		SlabGrams:         float32(t.SlabGrams),
		SlabFreight:       t.SlabFreight.String(),
		MaxWeightGrams:    &maxWeight,
		CodFlatFee:        &codFlat,
		CodPercent:        &codPercent,
		RtoRiskFee:        &rtoFee,
		RiskyProductTypes: &risky,
	}
}

func toQuote(q ratecard.Quote) servers.Quote {
	return servers.Quote{
		Carrier:               q.Carrier(),
		Service:               q.Service(),
		Zone:                  q.Zone().String(),
		ChargeableWeightGrams: float32(q.ChargeableWeightGrams()),
		Freight:               q.Freight().String(),
		CodCharge:             q.CODCharge().String(),
		OtherCharges:          q.OtherCharges().String(),
		Total:                 q.Total().String(),
	}
}

func toShipment(s *shipment.Shipment) servers.Shipment {
	return servers.Shipment{
		Id:                 s.ID().Bytes(),
		OrderIds:           uuidsOf(s.OrderIDs()),
		PaymentType:        s.PaymentType().String(),
		CodAmount:          s.CODAmount().String(),
		Quote:              toQuote(s.Quote()),
		Awb:                s.AWB(),
		PickupWarehouseId:  s.PickupWarehouseID().Bytes(),
		ReturnWarehouseId:  s.ReturnWarehouseID().Bytes(),
		DestinationPincode: s.Destination().String(),
		Status:             servers.ShipmentStatus(s.Status().String()),
		BookedAt:           s.BookedAt(),
		UpdatedAt:          s.UpdatedAt(),
		DeliveredAt:        s.DeliveredAt(),
	}
}

func toNDRCase(c *ndr.Case) servers.NDRCase {
	history := make([]servers.NDRTransition, 0, len(c.History()))
	for _, t := range c.History() {
		history = append(history, servers.NDRTransition{
			From:   t.From.String(),
			To:     t.To.String(),
			Action: optional(t.Action.String()),
			Reason: t.Reason,
			At:     t.At,
		})
	}
	return servers.NDRCase{
		Id:            c.ID().Bytes(),
		ShipmentId:    c.ShipmentID().Bytes(),
		FailureReason: c.FailureReason(),
		Attempts:      c.Attempts(),
		Status:        c.Status().String(),
		Action:        optional(c.Action().String()),
		ActionReason:  optional(c.ActionReason()),
		OpenedAt:      c.OpenedAt(),
		UpdatedAt:     c.UpdatedAt(),
		History:       history,
	}
}

func toRemittance(r *remittance.Record) servers.Remittance {
	return servers.Remittance{
		Id:               r.ID().Bytes(),
		ShipmentId:       r.ShipmentID().Bytes(),
		Awb:              r.AWB(),
		Amount:           r.Amount().String(),
		Status:           servers.RemittanceStatus(r.Status().String()),
		DeliveredAt:      r.DeliveredAt(),
		SettlementDate:   openapi_types.Date{Time: r.SettlementDate()},
		PaidAt:           r.PaidAt(),
		PaymentReference: optional(r.PaymentReference()),
	}
}

func toRemittances(records []*remittance.Record) []servers.Remittance {
	out := make([]servers.Remittance, 0, len(records))
	for _, r := range records {
		out = append(out, toRemittance(r))
	}
	return out
}
