package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const EventStatusChanged = "portfolio_status_changed"

type StatusChangedEvent struct {
	PortfolioID     string    `json:"portfolio_id"`
	OwnerID         string    `json:"owner_id"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	ChangedBy       string    `json:"changed_by"`
	SubmissionCount int       `json:"submission_count"`
	At              time.Time `json:"at"`
	EventType       string    `json:"event_type"`
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type EventSender struct {
	writer MessageWriter
}

func NewEventSender(brokers []string, topic string) *EventSender {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return NewEventSenderWithWriter(writer)
}

func NewEventSenderWithWriter(writer MessageWriter) *EventSender {
	return &EventSender{writer: writer}
}

func (s *EventSender) Close() error {
	return s.writer.Close()
}

func (s *EventSender) SendStatusChanged(ctx context.Context, event StatusChangedEvent) error {
	event.EventType = EventStatusChanged
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(event.PortfolioID),
		Value: data,
		Time:  time.Now(),
	}
	if err := s.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to send status event: %w", err)
	}
	return nil
}

// NoopSender is used when no brokers are configured.
type NoopSender struct{}

func (NoopSender) SendStatusChanged(context.Context, StatusChangedEvent) error { return nil }

func (NoopSender) Close() error { return nil }
