// Package remittancerepo persists the COD remittance ledger. The unique index on
// shipment_id is what makes settlement idempotent across concurrent runs.
package remittancerepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/remittance"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecordDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShipmentID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	AWB              string          `gorm:"not null"`
	Amount           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status           int             `gorm:"type:smallint;not null"`
	DeliveredAt      time.Time       `gorm:"not null;index"`
	SettlementDate   time.Time       `gorm:"not null"`
	PaidAt           *time.Time
	PaymentReference string
}

func (RecordDTO) TableName() string {
	return "remittances"
}

func fromDomain(r *remittance.Record) RecordDTO {
	var paidAt *time.Time
	if at := r.PaidAt(); at != nil {
		utc := at.UTC()
		paidAt = &utc
	}
	return RecordDTO{
		ID:               r.ID().Bytes(),
		ShipmentID:       r.ShipmentID().Bytes(),
		AWB:              r.AWB(),
		Amount:           r.Amount().Decimal(),
		Status:           int(r.Status()),
		DeliveredAt:      r.DeliveredAt().UTC(),
		SettlementDate:   r.SettlementDate().UTC(),
		PaidAt:           paidAt,
		PaymentReference: r.PaymentReference(),
	}
}

func toDomain(dto RecordDTO) (*remittance.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}
	return remittance.RestoreRecord(
		id, shipmentID, dto.AWB, amount, remittance.Status(dto.Status),
		dto.DeliveredAt, dto.SettlementDate, dto.PaidAt, dto.PaymentReference,
	)
}
