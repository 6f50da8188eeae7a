package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const eventSource = "shareit-server"

// Publisher sends booking lifecycle events to Kafka. With no brokers
// configured it degrades to a no-op, so a broker is never a hard
// dependency of the request path.
type Publisher struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

// NewPublisher creates a Publisher for the given brokers. An empty broker
// list yields a disabled publisher.
func NewPublisher(brokers []string, logger *zap.Logger) *Publisher {
	if len(brokers) == 0 {
		logger.Info("event publishing disabled: no kafka brokers configured")
		return &Publisher{logger: logger}
	}
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        TopicBookingEvents,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &Publisher{writer: writer, logger: logger}
}

// Publish wraps the payload in a CloudEvent and writes it keyed by key.
// Failures are logged, not returned: event delivery is best-effort and
// must not fail the originating request.
func (p *Publisher) Publish(ctx context.Context, eventType, key string, data interface{}) {
	if p.writer == nil {
		return
	}

	ce, err := NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		p.logger.Error("failed to build event", zap.String("type", eventType), zap.Error(err))
		return
	}
	value, err := json.Marshal(ce)
	if err != nil {
		p.logger.Error("failed to marshal event", zap.String("type", eventType), zap.Error(err))
		return
	}

	msg := kafkago.Message{Key: []byte(key), Value: value}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("type", eventType),
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}
	p.logger.Debug("event published", zap.String("type", eventType), zap.String("key", key))
}

// Close closes the underlying Kafka writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}
	return nil
}
