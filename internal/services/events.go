package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-support-ledger/internal/logger"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// EventPublisher ships change events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event) error
}

// publish sends an event for a committed change. Failures are logged and
// never undo or fail the change itself.
func publish(ctx context.Context, pub EventPublisher, kind string, subject, actor int64, noteKey string) {
	event := models.Event{
		EventID:   uuid.NewString(),
		Kind:      kind,
		Timestamp: time.Now().Unix(),
		Subject:   subject,
		Actor:     actor,
		NoteKey:   noteKey,
	}

	if pub == nil {
		logger.Log.Debugw("event publisher not configured, skipping", "kind", kind, "event_id", event.EventID)
		return
	}

	if err := pub.Publish(ctx, event); err != nil {
		logger.Log.Errorw("failed to publish event", "kind", kind, "event_id", event.EventID, "error", err)
	}
}
