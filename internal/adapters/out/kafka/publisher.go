// Package kafka publishes shipment status changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"shipments/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
)

const DefaultStatusTopic = "shipment.status-changed"

// Writer is the part of *kafka.Writer the publisher uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// statusChangedMessage is the wire payload, versioned for consumers.
type statusChangedMessage struct {
	Version    string    `json:"version"`
	EventID    string    `json:"eventId"`
	OrderID    string    `json:"orderId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	AWBNumber  string    `json:"awbNumber,omitempty"`
	Source     string    `json:"source"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher writes StatusChangedEvents keyed by order id, so events of one
// order stay on one partition in order.
type Publisher struct {
	writer Writer
	logger *slog.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

func NewPublisher(broker, topic string, logger *slog.Logger) *Publisher {
	return NewPublisherWithWriter(NewWriter(broker, topic), logger)
}

// NewWriter builds the topic writer. Messages are partitioned by a hash of
// their key, the order id.
func NewWriter(broker, topic string) *kafkago.Writer {
	if topic == "" {
		topic = DefaultStatusTopic
	}
	return &kafkago.Writer{
		Addr:         kafkago.TCP(broker),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
	}
}

func NewPublisherWithWriter(w Writer, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{writer: w, logger: logger.With("component", "status-publisher")}
}

func (p *Publisher) PublishStatusChanged(ctx context.Context, event ports.StatusChangedEvent) error {
	value, err := json.Marshal(statusChangedMessage{
		Version:    "v1",
		EventID:    event.EventID.String(),
		OrderID:    event.OrderID,
		From:       event.From.String(),
		To:         event.To.String(),
		AWBNumber:  event.AWBNumber,
		Source:     string(event.Source),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("encode status event: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "event-type", Value: []byte("shipment.status_changed")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write status event: %w", err)
	}

	p.logger.DebugContext(ctx, "status event published",
		"order_id", event.OrderID,
		"from", event.From.String(),
		"to", event.To.String(),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishStatusChanged(context.Context, ports.StatusChangedEvent) error {
	return nil
}
