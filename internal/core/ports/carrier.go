package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// CarrierEvent is one webhook delivery, identified by the carrier-assigned event id.
type CarrierEvent struct {
	EventID    string
	ShipmentID kernel.UUID
	Status     shipment.CarrierStatus
	Reason     string
	ReceivedAt time.Time
}

// CarrierEventLog deduplicates webhook deliveries.
type CarrierEventLog interface {
	// Record stores the event. It returns false, without error, when an event with the
	// same id was already recorded.
	Record(ctx context.Context, event CarrierEvent) (bool, error)
}

// AWBAllocator assigns carrier tracking numbers.
type AWBAllocator interface {
	Allocate(ctx context.Context, carrier string) (string, error)
}
