package services

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/remittance"
	"fulfillment/internal/core/domain/model/shipment"
)

// RemittanceLedger decides which delivered COD shipments become remittance records.
//
// A shipment qualifies when it is COD, delivered, delivered within the period and not
// yet recorded. Each qualifying shipment yields exactly one record carrying the
// shipment's COD amount; there is no batching per merchant.
type RemittanceLedger struct{}

func NewRemittanceLedger() RemittanceLedger {
	return RemittanceLedger{}
}

// Draft returns new pending records for the qualifying shipments, in the order given.
// recorded holds the IDs of shipments that already have a record. newID supplies record
// identifiers.
func (l RemittanceLedger) Draft(
	period kernel.Period,
	candidates []*shipment.Shipment,
	recorded map[string]struct{},
	settlementDate time.Time,
	newID func() kernel.UUID,
) ([]*remittance.Record, error) {
	records := make([]*remittance.Record, 0, len(candidates))
	for _, s := range candidates {
		if !l.Qualifies(period, s) {
			continue
		}
		if _, done := recorded[s.ID().String()]; done {
			continue
		}
		r, err := remittance.NewRecord(newID(), s.ID(), s.AWB(), s.CODAmount(), *s.DeliveredAt(), settlementDate)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// Qualifies reports whether s is a COD shipment delivered within period.
func (l RemittanceLedger) Qualifies(period kernel.Period, s *shipment.Shipment) bool {
	if s.Validate() != nil || s.PaymentType() != order.COD || s.Status() != shipment.Delivered {
		return false
	}
	at := s.DeliveredAt()
	return at != nil && period.Contains(*at) && s.CODAmount().IsPositive()
}
