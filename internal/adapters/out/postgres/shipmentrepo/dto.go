// Package shipmentrepo persists shipments with their frozen booking quote.
package shipmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ShipmentDTO stores one shipment row. Order ids are a text[] column so a shipment and
// its membership are written in a single statement.
type ShipmentDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderIDs          pq.StringArray  `gorm:"type:text[];not null"`
	PaymentType       int             `gorm:"type:smallint;not null"`
	CODAmount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quote             QuoteDTO        `gorm:"embedded;embeddedPrefix:quote_"`
	AWB               string          `gorm:"uniqueIndex;not null"`
	PickupWarehouseID uuid.UUID       `gorm:"type:uuid;not null"`
	ReturnWarehouseID uuid.UUID       `gorm:"type:uuid;not null"`
	Destination       string          `gorm:"type:char(6);not null"`
	Status            int             `gorm:"type:smallint;not null;index"`
	BookedAt          time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null;autoUpdateTime:false"`
	DeliveredAt       *time.Time      `gorm:"index"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

// QuoteDTO is the price breakdown frozen at booking.
type QuoteDTO struct {
	Carrier               string          `gorm:"not null"`
	Service               string          `gorm:"not null"`
	Zone                  int             `gorm:"type:smallint;not null"`
	ChargeableWeightGrams float64         `gorm:"not null"`
	Freight               decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CODCharge             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OtherCharges          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total                 decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	q := s.Quote()
	orderIDs := s.OrderIDs()
	ids := make(pq.StringArray, len(orderIDs))
	for i, id := range orderIDs {
		ids[i] = id.String()
	}
	var deliveredAt *time.Time
	if at := s.DeliveredAt(); at != nil {
		utc := at.UTC()
		deliveredAt = &utc
	}

	return ShipmentDTO{
		ID:          s.ID().Bytes(),
		OrderIDs:    ids,
		PaymentType: int(s.PaymentType()),
		CODAmount:   s.CODAmount().Decimal(),
		Quote: QuoteDTO{
			Carrier:               q.Carrier(),
			Service:               q.Service(),
			Zone:                  int(q.Zone()),
			ChargeableWeightGrams: q.ChargeableWeightGrams(),
			Freight:               q.Freight().Decimal(),
			CODCharge:             q.CODCharge().Decimal(),
			OtherCharges:          q.OtherCharges().Decimal(),
			Total:                 q.Total().Decimal(),
		},
		AWB:               s.AWB(),
		PickupWarehouseID: s.PickupWarehouseID().Bytes(),
		ReturnWarehouseID: s.ReturnWarehouseID().Bytes(),
		Destination:       s.Destination().String(),
		Status:            int(s.Status()),
		BookedAt:          s.BookedAt().UTC(),
		UpdatedAt:         s.UpdatedAt().UTC(),
		DeliveredAt:       deliveredAt,
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderIDs, err := kernel.UUIDsFromStrings(dto.OrderIDs)
	if err != nil {
		return nil, err
	}
	pickup, err := kernel.UUIDFromBytes(dto.PickupWarehouseID[:])
	if err != nil {
		return nil, err
	}
	ret, err := kernel.UUIDFromBytes(dto.ReturnWarehouseID[:])
	if err != nil {
		return nil, err
	}
	destination, err := kernel.NewPincode(dto.Destination)
	if err != nil {
		return nil, err
	}
	cod, err := kernel.NewMoney(dto.CODAmount)
	if err != nil {
		return nil, err
	}
	quote, err := quoteToDomain(dto.Quote)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, shipment.Booking{
		OrderIDs:          orderIDs,
		PaymentType:       order.PaymentType(dto.PaymentType),
		CODAmount:         cod,
		Quote:             quote,
		AWB:               dto.AWB,
		PickupWarehouseID: pickup,
		ReturnWarehouseID: ret,
		Destination:       destination,
	}, shipment.Status(dto.Status), dto.BookedAt, dto.UpdatedAt, dto.DeliveredAt)
}

func quoteToDomain(dto QuoteDTO) (ratecard.Quote, error) {
	amounts := make([]kernel.Money, 0, 4)
	for _, d := range []decimal.Decimal{dto.Freight, dto.CODCharge, dto.OtherCharges, dto.Total} {
		m, err := kernel.NewMoney(d)
		if err != nil {
			return ratecard.Quote{}, err
		}
		amounts = append(amounts, m)
	}
	return ratecard.NewQuote(
		dto.Carrier, dto.Service, ratecard.Zone(dto.Zone), dto.ChargeableWeightGrams,
		amounts[0], amounts[1], amounts[2], amounts[3],
	)
}
