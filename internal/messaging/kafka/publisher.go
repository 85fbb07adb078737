package kafka

import (
	"context"
	"encoding/json"
	"time"

	"go-ems/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher emits employee lifecycle events. It is best-effort: a publish
// failure is logged and never propagated into the request that caused it.
type Publisher struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

func NewPublisher(brokers []string, logger ...*zap.Logger) *Publisher {
	l := zap.L().Named("kafka.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.publisher")
	}
	return &Publisher{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        events.EmployeeLifecycleTopic,
			Balancer:     &kafkago.LeastBytes{},
			RequiredAcks: kafkago.RequireOne,
		},
		logger: l,
	}
}

// PublishEmployeeLifecycle writes a single event keyed by employee id.
// A nil receiver is a no-op so callers do not have to branch on whether
// eventing is configured.
func (p *Publisher) PublishEmployeeLifecycle(ctx context.Context, event events.EmployeeLifecycleEvent) {
	if p == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal lifecycle event failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	msg := kafkago.Message{
		Key:   []byte(event.EmployeeID),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish lifecycle event failed",
			zap.String("event_type", event.EventType),
			zap.String("employee_id", event.EmployeeID),
			zap.Error(err),
		)
		return
	}

	p.logger.Debug("lifecycle event published",
		zap.String("event_type", event.EventType),
		zap.String("employee_id", event.EmployeeID),
	)
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
