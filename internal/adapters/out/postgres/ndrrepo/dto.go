// Package ndrrepo persists NDR cases. The audit trail lives in its own append-only table,
// keyed by (case_id, seq), so an update only inserts the transitions not yet stored.
package ndrrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ndr"

	"github.com/google/uuid"
)

type CaseDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FailureReason string
	Attempts      int `gorm:"not null"`
	Status        int `gorm:"type:smallint;not null;index"`
	Action        int `gorm:"type:smallint;not null"`
	ActionReason  string
	OpenedAt      time.Time       `gorm:"not null;index"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime:false"`
	History       []TransitionDTO `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE"`
}

func (CaseDTO) TableName() string {
	return "ndr_cases"
}

type TransitionDTO struct {
	CaseID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey;autoIncrement:false"`
	FromStatus int       `gorm:"type:smallint;not null"`
	ToStatus   int       `gorm:"type:smallint;not null"`
	Action     int       `gorm:"type:smallint;not null"`
	Reason     string
	At         time.Time `gorm:"not null"`
}

func (TransitionDTO) TableName() string {
	return "ndr_case_history"
}

func fromDomain(c *ndr.Case) CaseDTO {
	id := c.ID().Bytes()
	history := c.History()
	transitions := make([]TransitionDTO, len(history))
	for i, t := range history {
		transitions[i] = TransitionDTO{
			CaseID:     id,
			Seq:        i,
			FromStatus: int(t.From),
			ToStatus:   int(t.To),
			Action:     int(t.Action),
			Reason:     t.Reason,
			At:         t.At.UTC(),
		}
	}
	return CaseDTO{
		ID:            id,
		ShipmentID:    c.ShipmentID().Bytes(),
		FailureReason: c.FailureReason(),
		Attempts:      c.Attempts(),
		Status:        int(c.Status()),
		Action:        int(c.Action()),
		ActionReason:  c.ActionReason(),
		OpenedAt:      c.OpenedAt().UTC(),
		UpdatedAt:     c.UpdatedAt().UTC(),
		History:       transitions,
	}
}

// toDomain expects History sorted by Seq.
func toDomain(dto CaseDTO) (*ndr.Case, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}
	history := make([]ndr.Transition, len(dto.History))
	for i, t := range dto.History {
		history[i] = ndr.Transition{
			From:   ndr.Status(t.FromStatus),
			To:     ndr.Status(t.ToStatus),
			Action: ndr.Action(t.Action),
			Reason: t.Reason,
			At:     t.At,
		}
	}
	return ndr.RestoreCase(
		id, shipmentID, dto.FailureReason, dto.Attempts,
		ndr.Status(dto.Status), ndr.Action(dto.Action), dto.ActionReason,
		history, dto.OpenedAt, dto.UpdatedAt,
	)
}
