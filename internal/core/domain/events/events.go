// Package events defines the domain events written to the outbox and relayed to Kafka.
// Each event is a flat JSON document; AggregateID is used as the Kafka message key so
// that events of one aggregate stay ordered within a partition.
package events

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ndr"
	"fulfillment/internal/core/domain/model/remittance"
	"fulfillment/internal/core/domain/model/shipment"
)

const (
	TypeShipmentBooked        = "shipment.booked"
	TypeShipmentCancelled     = "shipment.cancelled"
	TypeShipmentStatusChanged = "shipment.status_changed"
	TypeNDRCaseUpdated        = "ndr.case_updated"
	TypeRemittanceSettled     = "remittance.settled"
	TypeRemittancePaid        = "remittance.paid"
)

// Event is implemented by every domain event.
type Event interface {
	EventType() string
	AggregateID() string
}

type ShipmentBooked struct {
	ShipmentID string    `json:"shipmentId"`
	AWB        string    `json:"awb"`
	OrderIDs   []string  `json:"orderIds"`
	Carrier    string    `json:"carrier"`
	Service    string    `json:"service"`
	Total      string    `json:"total"`
	CODAmount  string    `json:"codAmount"`
	BookedAt   time.Time `json:"bookedAt"`
}

func (e ShipmentBooked) EventType() string { return TypeShipmentBooked }
func (e ShipmentBooked) AggregateID() string { return e.ShipmentID }

// NewShipmentBooked snapshots a freshly booked shipment.
func NewShipmentBooked(s *shipment.Shipment) ShipmentBooked {
	q := s.Quote()
	return ShipmentBooked{
		ShipmentID: s.ID().String(),
		AWB:        s.AWB(),
		OrderIDs:   idStrings(s.OrderIDs()),
		Carrier:    q.Carrier(),
		Service:    q.Service(),
		Total:      q.Total().String(),
		CODAmount:  s.CODAmount().String(),
		BookedAt:   s.BookedAt(),
	}
}

type ShipmentCancelled struct {
	ShipmentID  string    `json:"shipmentId"`
	AWB         string    `json:"awb"`
	OrderIDs    []string  `json:"orderIds"`
	CancelledAt time.Time `json:"cancelledAt"`
}

func (e ShipmentCancelled) EventType() string { return TypeShipmentCancelled }
func (e ShipmentCancelled) AggregateID() string { return e.ShipmentID }

func NewShipmentCancelled(s *shipment.Shipment) ShipmentCancelled {
	return ShipmentCancelled{
		ShipmentID:  s.ID().String(),
		AWB:         s.AWB(),
		OrderIDs:    idStrings(s.OrderIDs()),
		CancelledAt: s.UpdatedAt(),
	}
}

type ShipmentStatusChanged struct {
	ShipmentID string    `json:"shipmentId"`
	AWB        string    `json:"awb"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	ChangedAt  time.Time `json:"changedAt"`
}

func (e ShipmentStatusChanged) EventType() string { return TypeShipmentStatusChanged }
func (e ShipmentStatusChanged) AggregateID() string { return e.ShipmentID }

func NewShipmentStatusChanged(s *shipment.Shipment, from shipment.Status) ShipmentStatusChanged {
	return ShipmentStatusChanged{
		ShipmentID: s.ID().String(),
		AWB:        s.AWB(),
		From:       from.String(),
		To:         s.Status().String(),
		ChangedAt:  s.UpdatedAt(),
	}
}

// NDRCaseUpdated is emitted for every case transition, including the opening one.
type NDRCaseUpdated struct {
	CaseID     string    `json:"caseId"`
	ShipmentID string    `json:"shipmentId"`
	Status     string    `json:"status"`
	Action     string    `json:"action,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	Attempts   int       `json:"attempts"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (e NDRCaseUpdated) EventType() string { return TypeNDRCaseUpdated }
func (e NDRCaseUpdated) AggregateID() string { return e.ShipmentID }

func NewNDRCaseUpdated(c *ndr.Case) NDRCaseUpdated {
	e := NDRCaseUpdated{
		CaseID:     c.ID().String(),
		ShipmentID: c.ShipmentID().String(),
		Status:     c.Status().String(),
		Attempts:   c.Attempts(),
		UpdatedAt:  c.UpdatedAt(),
	}
	if h := c.History(); len(h) > 0 {
		last := h[len(h)-1]
		e.Action = last.Action.String()
		e.Reason = last.Reason
	}
	return e
}

type RemittanceSettled struct {
	RecordID       string    `json:"recordId"`
	ShipmentID     string    `json:"shipmentId"`
	AWB            string    `json:"awb"`
	Amount         string    `json:"amount"`
	SettlementDate time.Time `json:"settlementDate"`
}

func (e RemittanceSettled) EventType() string { return TypeRemittanceSettled }
func (e RemittanceSettled) AggregateID() string { return e.ShipmentID }

func NewRemittanceSettled(r *remittance.Record) RemittanceSettled {
	return RemittanceSettled{
		RecordID:       r.ID().String(),
		ShipmentID:     r.ShipmentID().String(),
		AWB:            r.AWB(),
		Amount:         r.Amount().String(),
		SettlementDate: r.SettlementDate(),
	}
}

type RemittancePaid struct {
	RecordID   string    `json:"recordId"`
	ShipmentID string    `json:"shipmentId"`
	Amount     string    `json:"amount"`
	Reference  string    `json:"reference"`
	PaidAt     time.Time `json:"paidAt"`
}

func (e RemittancePaid) EventType() string { return TypeRemittancePaid }
func (e RemittancePaid) AggregateID() string { return e.ShipmentID }

func NewRemittancePaid(r *remittance.Record) RemittancePaid {
	e := RemittancePaid{
		RecordID:   r.ID().String(),
		ShipmentID: r.ShipmentID().String(),
		Amount:     r.Amount().String(),
		Reference:  r.PaymentReference(),
	}
	if at := r.PaidAt(); at != nil {
		e.PaidAt = *at
	}
	return e
}

func idStrings(ids []kernel.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
