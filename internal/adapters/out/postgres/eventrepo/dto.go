// Package eventrepo stores the two event tables: carrier webhook events, deduplicated by
// the carrier's event id, and the transactional outbox relayed to Kafka.
package eventrepo

import (
	"time"

	"github.com/google/uuid"
)

type CarrierEventDTO struct {
	EventID    string    `gorm:"primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     int       `gorm:"type:smallint;not null"`
	Reason     string
	ReceivedAt time.Time `gorm:"not null"`
}

func (CarrierEventDTO) TableName() string {
	return "carrier_events"
}

// OutboxDTO is one pending or relayed domain event. Seq gives a total order for relay.
// LeasedUntil hides the row from other relays while one of them publishes it.
type OutboxDTO struct {
	Seq         int64      `gorm:"primaryKey;autoIncrement"`
	ID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Key         string     `gorm:"column:message_key;not null"`
	EventType   string     `gorm:"not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false"`
	SentAt      *time.Time `gorm:"index"`
	LeasedUntil *time.Time
}

func (OutboxDTO) TableName() string {
	return "outbox"
}
