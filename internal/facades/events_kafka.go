package facades

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/sbilibin2017/gw-support-ledger/internal/logger"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventsKafkaFacade publishes directory and ledger events to Kafka.
type EventsKafkaFacade struct {
	writer KafkaWriter
}

// NewEventsKafkaFacade creates a new facade over a Kafka writer.
func NewEventsKafkaFacade(writer KafkaWriter) *EventsKafkaFacade {
	return &EventsKafkaFacade{writer: writer}
}

// Publish writes one event. Events about a note thread are keyed by the
// thread key, everything else by the subject pid, so a consumer sees the
// changes to one record in order.
func (f *EventsKafkaFacade) Publish(ctx context.Context, event models.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(messageKey(event)),
		Value: data,
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event to Kafka", "event_id", event.EventID, "kind", event.Kind, "error", err)
		return err
	}

	logger.Log.Infow("event published to Kafka", "event_id", event.EventID, "kind", event.Kind)
	return nil
}

// Close closes the underlying writer.
func (f *EventsKafkaFacade) Close() error {
	return f.writer.Close()
}

func messageKey(event models.Event) string {
	if event.NoteKey != "" {
		return event.NoteKey
	}
	return strconv.FormatInt(event.Subject, 10)
}
