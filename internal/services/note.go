package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-support-ledger/internal/logger"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
)

//go:generate mockgen -source=note.go -destination=note_mock.go -package=services

// NoteReader defines read-only operations for note threads.
type NoteReader interface {
	Get(ctx context.Context, key models.NoteKey) (*models.Note, error)
	ListBySubject(ctx context.Context, pid int64) ([]models.Note, error)
}

// NoteWriter defines write operations for note threads.
type NoteWriter interface {
	// Put stores a thread under its key, replacing whatever is there.
	Put(ctx context.Context, note models.Note) (*models.Note, error)
	// Replace stores a thread only if the stored version equals expected.
	Replace(ctx context.Context, note models.Note, expected int) (*models.Note, error)
}

// NoteService implements the note ledger.
type NoteService struct {
	guard  Guard
	reader NoteReader
	writer NoteWriter
	events EventPublisher
	now    func() time.Time
}

// NewNoteService creates a new NoteService. events may be nil.
func NewNoteService(guard Guard, reader NoteReader, writer NoteWriter, events EventPublisher) *NoteService {
	return &NoteService{
		guard:  guard,
		reader: reader,
		writer: writer,
		events: events,
		now:    time.Now,
	}
}

// Create opens a thread about subject, seeded with one entry by creator.
// The thread is keyed by subject pid and the current second; a second
// thread opened in the same second replaces the first.
func (svc *NoteService) Create(ctx context.Context, token string, creator, subject models.User, noteType models.NoteType, content string) (*models.Note, error) {
	if _, err := models.ParseNoteType(string(noteType)); err != nil {
		return nil, err
	}

	now := svc.now().UTC()
	note := models.Note{
		Pid:       subject.Pid,
		CreatedAt: now,
		NoteType:  noteType,
		Notes:     []models.ContentNote{newEntry(creator, now, content)},
	}

	var stored *models.Note
	err := svc.guard.Run(ctx, token, func(ctx context.Context) error {
		var err error
		stored, err = svc.writer.Put(ctx, note)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to create note", "subject", subject.Pid, "creator", creator.Pid, "err", err)
		return nil, err
	}

	publish(ctx, svc.events, models.EventNoteCreated, subject.Pid, creator.Pid, note.Key().String())
	return stored, nil
}

// Add appends an entry by creator to note and writes the whole thread back.
// note must be the version last read: if the stored thread has moved on,
// Add fails with models.ErrConflict and the caller should re-read.
func (svc *NoteService) Add(ctx context.Context, token string, creator, subject models.User, note models.Note, content string) (*models.Note, error) {
	if subject.Pid != note.Pid {
		return nil, fmt.Errorf("%w: note %s is not about user %d", models.ErrValidation, note.Key(), subject.Pid)
	}

	at := svc.now().UTC()
	if n := len(note.Notes); n > 0 && !at.After(note.Notes[n-1].CreatedAt) {
		// entry timestamps address entries, keep them strictly increasing
		at = note.Notes[n-1].CreatedAt.Add(time.Nanosecond)
	}

	next := note
	next.Notes = make([]models.ContentNote, 0, len(note.Notes)+1)
	next.Notes = append(next.Notes, note.Notes...)
	next.Notes = append(next.Notes, newEntry(creator, at, content))
	next.Version = note.Version + 1

	stored, err := svc.replace(ctx, token, next, note.Version)
	if err != nil {
		logger.Log.Errorw("failed to add note", "note", note.Key().String(), "creator", creator.Pid, "err", err)
		return nil, err
	}

	publish(ctx, svc.events, models.EventNoteAppended, note.Pid, creator.Pid, note.Key().String())
	return stored, nil
}

// Edit replaces the content of the entry written exactly at entryAt.
// No matching entry fails with models.ErrEntryNotFound.
func (svc *NoteService) Edit(ctx context.Context, token string, creator models.User, entryAt time.Time, note models.Note, content string) (*models.Note, error) {
	var stored *models.Note
	err := svc.guard.Run(ctx, token, func(ctx context.Context) error {
		idx := note.Entry(entryAt)
		if idx < 0 {
			return fmt.Errorf("%s at %s: %w", note.Key(), entryAt.Format(time.RFC3339Nano), models.ErrEntryNotFound)
		}

		editedAt := svc.now().UTC()
		editedBy := creator.Pid

		next := note
		next.Notes = make([]models.ContentNote, len(note.Notes))
		copy(next.Notes, note.Notes)
		next.Notes[idx].Content = content
		next.Notes[idx].EditedBy = &editedBy
		next.Notes[idx].EditedAt = &editedAt
		next.Version = note.Version + 1

		var err error
		stored, err = svc.writer.Replace(ctx, next, note.Version)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to edit note", "note", note.Key().String(), "creator", creator.Pid, "err", err)
		return nil, err
	}

	publish(ctx, svc.events, models.EventNoteEdited, note.Pid, creator.Pid, note.Key().String())
	return stored, nil
}

// Get returns the thread stored under key.
func (svc *NoteService) Get(ctx context.Context, token string, key models.NoteKey) (*models.Note, error) {
	var note *models.Note
	err := svc.guard.Run(ctx, token, func(ctx context.Context) error {
		var err error
		note, err = svc.reader.Get(ctx, key)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to get note", "note", key.String(), "err", err)
		return nil, err
	}
	return note, nil
}

// List returns every thread about pid; none is an empty slice.
func (svc *NoteService) List(ctx context.Context, token string, pid int64) ([]models.Note, error) {
	var notes []models.Note
	err := svc.guard.Run(ctx, token, func(ctx context.Context) error {
		var err error
		notes, err = svc.reader.ListBySubject(ctx, pid)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to list notes", "subject", pid, "err", err)
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (svc *NoteService) replace(ctx context.Context, token string, next models.Note, expected int) (*models.Note, error) {
	var stored *models.Note
	err := svc.guard.Run(ctx, token, func(ctx context.Context) error {
		var err error
		stored, err = svc.writer.Replace(ctx, next, expected)
		return err
	})
	return stored, err
}

func newEntry(author models.User, at time.Time, content string) models.ContentNote {
	return models.ContentNote{
		CreatedAt:     at,
		CreatedBy:     author.Pid,
		CreatedByName: author.Name,
		Content:       content,
	}
}
