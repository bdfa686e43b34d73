package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []skafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...skafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestEventPublisher_Publish(t *testing.T) {
	fw := &fakeWriter{}
	p := kafka.NewEventPublisherWithWriter(fw)
	msg := ports.OutboxMessage{
		ID:        kernel.NewUUID(),
		Key:       "shipment-1",
		EventType: "shipment.booked",
		Payload:   []byte(`{"awb":"DLV000001"}`),
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.Publish(context.Background(), msg))
	require.Len(t, fw.msgs, 1)

	got := fw.msgs[0]
	assert.Equal(t, "shipment-1", string(got.Key))
	assert.JSONEq(t, `{"awb":"DLV000001"}`, string(got.Value))
	assert.Equal(t, msg.CreatedAt, got.Time)
	require.Len(t, got.Headers, 2)
	assert.Equal(t, "event-type", got.Headers[0].Key)
	assert.Equal(t, "shipment.booked", string(got.Headers[0].Value))
	assert.Equal(t, msg.ID.String(), string(got.Headers[1].Value))
}

func TestEventPublisher_WrapsWriterError(t *testing.T) {
	brokerDown := errors.New("broker unavailable")
	p := kafka.NewEventPublisherWithWriter(&fakeWriter{err: brokerDown})

	err := p.Publish(context.Background(), ports.OutboxMessage{ID: kernel.NewUUID()})
	require.ErrorIs(t, err, brokerDown)
}

func TestEventPublisher_Close(t *testing.T) {
	fw := &fakeWriter{}
	require.NoError(t, kafka.NewEventPublisherWithWriter(fw).Close())
	assert.True(t, fw.closed)
}
