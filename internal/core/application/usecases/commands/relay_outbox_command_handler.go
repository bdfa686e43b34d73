package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// RelayOutboxCommandHandler publishes pending outbox messages in creation order.
//
// Delivery is at-least-once: messages are marked sent only after the broker accepted
// them, and the batch stops at the first publish failure so ordering is kept. Messages
// published before the failure are still marked.
//
// No transaction is open while publishing. A short unit of work leases the batch, the
// broker is called, and a second unit of work marks what was sent and releases the rest.
// A relay that dies mid-batch leaves its lease to expire after relayLease.
type RelayOutboxCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

const relayLease = time.Minute

func NewRelayOutboxCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle returns the number of messages relayed.
func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	messages, err := h.lease(ctx, cmd.BatchSize())
	if err != nil || len(messages) == 0 {
		return 0, err
	}

	sent := make([]kernel.UUID, 0, len(messages))
	var publishErr error
	for _, msg := range messages {
		if publishErr = h.publisher.Publish(ctx, msg); publishErr != nil {
			publishErr = fmt.Errorf("publish %s %s: %w", msg.EventType, msg.ID, publishErr)
			break
		}
		sent = append(sent, msg.ID)
	}

	unsent := make([]kernel.UUID, 0, len(messages)-len(sent))
	for _, msg := range messages[len(sent):] {
		unsent = append(unsent, msg.ID)
	}
	if err = h.settle(ctx, sent, unsent); err != nil {
		return 0, err
	}

	return len(sent), publishErr
}

func (h *RelayOutboxCommandHandler) lease(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	messages, err := uow.OutboxRelay().Lease(ctx, limit, time.Now(), relayLease)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return messages, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return messages, nil
}

func (h *RelayOutboxCommandHandler) settle(ctx context.Context, sent, unsent []kernel.UUID) error {
	// Publishing may have used up ctx; the marks must still be written.
	ctx = context.WithoutCancel(ctx)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	relay := uow.OutboxRelay()
	if err := relay.MarkSent(ctx, sent, time.Now()); err != nil {
		return err
	}
	if err := relay.Release(ctx, unsent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
