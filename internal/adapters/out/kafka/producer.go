// Package kafka relays outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
)

// Writer is the subset of skafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// EventPublisher writes outbox messages keyed by aggregate id, so every event of one
// shipment lands on the same partition in order.
type EventPublisher struct {
	writer Writer
}

var _ ports.EventPublisher = (*EventPublisher)(nil)

// NewEventPublisher creates a publisher writing to topic on the given broker.
// Writes are synchronous and wait for all in-sync replicas.
func NewEventPublisher(brokerURL, topic string) *EventPublisher {
	return &EventPublisher{writer: &skafka.Writer{
		Addr:         skafka.TCP(brokerURL),
		Topic:        topic,
		Balancer:     &skafka.Hash{},
		RequiredAcks: skafka.RequireAll,
		WriteTimeout: 10 * time.Second,
	}}
}

// NewEventPublisherWithWriter allows injecting a test writer.
func NewEventPublisherWithWriter(w Writer) *EventPublisher {
	return &EventPublisher{writer: w}
}

func (p *EventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	err := p.writer.WriteMessages(ctx, skafka.Message{
		Key:   []byte(msg.Key),
		Value: msg.Payload,
		Time:  msg.CreatedAt,
		Headers: []skafka.Header{
			{Key: "event-type", Value: []byte(msg.EventType)},
			{Key: "message-id", Value: []byte(msg.ID.String())},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
