package facades

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sbilibin2017/gw-support-ledger/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fake Kafka writer ---
type fakeKafkaWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeKafkaWriter) Close() error {
	f.closed = true
	return nil
}

// --- Tests ---
func TestEventsKafkaFacade_Publish(t *testing.T) {
	tests := []struct {
		name    string
		event   models.Event
		wantKey string
	}{
		{
			name:    "user_event_keyed_by_subject",
			event:   models.Event{EventID: "e1", Kind: models.EventUserCreated, Timestamp: 1714557600, Subject: 42},
			wantKey: "42",
		},
		{
			name:    "note_event_keyed_by_note",
			event:   models.Event{EventID: "e2", Kind: models.EventNoteAppended, Timestamp: 1714557601, Subject: 42, Actor: 7, NoteKey: "42-1714557600"},
			wantKey: "42-1714557600",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := &fakeKafkaWriter{}
			facade := NewEventsKafkaFacade(writer)

			require.NoError(t, facade.Publish(context.Background(), tt.event))
			require.Len(t, writer.msgs, 1)
			assert.Equal(t, tt.wantKey, string(writer.msgs[0].Key))

			var got models.Event
			require.NoError(t, json.Unmarshal(writer.msgs[0].Value, &got))
			assert.Equal(t, tt.event, got)
		})
	}
}

func TestEventsKafkaFacade_Publish_Error(t *testing.T) {
	writer := &fakeKafkaWriter{err: errors.New("kafka unavailable")}
	facade := NewEventsKafkaFacade(writer)

	err := facade.Publish(context.Background(), models.Event{EventID: "e1", Subject: 1})
	assert.EqualError(t, err, "kafka unavailable")
}

func TestEventsKafkaFacade_Close(t *testing.T) {
	writer := &fakeKafkaWriter{}
	facade := NewEventsKafkaFacade(writer)

	assert.NoError(t, facade.Close())
	assert.True(t, writer.closed)
}
