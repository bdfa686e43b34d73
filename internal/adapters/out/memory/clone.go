package memory

import (
	"fulfillment/internal/core/domain/model/ndr"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/remittance"
	"fulfillment/internal/core/domain/model/shipment"
)

// The clone functions go through the Restore constructors, the same path a row read
// from postgres takes.

func cloneOrder(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(o.ID(), o.Details(), o.IsShipped(), o.IsCancelled(), o.CreatedAt())
}

func cloneShipment(s *shipment.Shipment) (*shipment.Shipment, error) {
	return shipment.RestoreShipment(s.ID(), s.Booking(), s.Status(), s.BookedAt(), s.UpdatedAt(), s.DeliveredAt())
}

func cloneCase(c *ndr.Case) (*ndr.Case, error) {
	return ndr.RestoreCase(
		c.ID(), c.ShipmentID(), c.FailureReason(), c.Attempts(), c.Status(),
		c.Action(), c.ActionReason(), c.History(), c.OpenedAt(), c.UpdatedAt(),
	)
}

func cloneRecord(r *remittance.Record) (*remittance.Record, error) {
	return remittance.RestoreRecord(
		r.ID(), r.ShipmentID(), r.AWB(), r.Amount(), r.Status(),
		r.DeliveredAt(), r.SettlementDate(), r.PaidAt(), r.PaymentReference(),
	)
}
