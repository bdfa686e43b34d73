package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
)

// Outbox collects domain events inside the transaction that produced them.
type Outbox interface {
	Append(ctx context.Context, evts ...events.Event) error
}

// OutboxMessage is a stored, not yet relayed, event.
type OutboxMessage struct {
	ID        kernel.UUID
	Key       string
	EventType string
	Payload   []byte
	CreatedAt time.Time
}

// OutboxRelay is the reading side of the outbox used by the relay job.
type OutboxRelay interface {
	// Pending returns up to limit unsent messages, oldest first.
	Pending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// Lease returns up to limit unsent messages, oldest first, that no other relay holds
	// at now, and hides them from other relays for ttl. The lease outlives the unit of
	// work, so publishing can happen after commit.
	Lease(ctx context.Context, limit int, now time.Time, ttl time.Duration) ([]OutboxMessage, error)

	// MarkSent stamps messages as relayed.
	MarkSent(ctx context.Context, ids []kernel.UUID, at time.Time) error

	// Release drops the lease of messages that were not relayed.
	Release(ctx context.Context, ids []kernel.UUID) error
}

// EventPublisher delivers relayed messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
	Close() error
}
