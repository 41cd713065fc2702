package repositories

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/sbilibin2017/gw-support-ledger/internal/logger"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
)

// noteRecord is a note thread as stored under note:⟨pid-unixSeconds⟩.
// Times are kept as CustomDateTime: a plain time.Time goes over the wire
// as an RFC3339 string and loses everything below the second.
type noteRecord struct {
	ID        *surrealmodels.RecordID      `json:"id,omitempty"`
	Pid       int64                        `json:"pid"`
	CreatedAt surrealmodels.CustomDateTime `json:"created_at"`
	NoteType  models.NoteType              `json:"note_type"`
	Notes     []entryRecord                `json:"notes"`
	Version   int                          `json:"version"`
}

type entryRecord struct {
	CreatedAt     surrealmodels.CustomDateTime  `json:"created_at"`
	CreatedBy     int64                         `json:"created_by"`
	CreatedByName string                        `json:"created_by_name"`
	Content       string                        `json:"content"`
	EditedBy      *int64                        `json:"edited_by,omitempty"`
	EditedAt      *surrealmodels.CustomDateTime `json:"edited_at,omitempty"`
}

func newNoteRecord(n models.Note) noteRecord {
	entries := make([]entryRecord, 0, len(n.Notes))
	for _, e := range n.Notes {
		rec := entryRecord{
			CreatedAt:     surrealmodels.CustomDateTime{Time: e.CreatedAt},
			CreatedBy:     e.CreatedBy,
			CreatedByName: e.CreatedByName,
			Content:       e.Content,
			EditedBy:      e.EditedBy,
		}
		if e.EditedAt != nil {
			rec.EditedAt = &surrealmodels.CustomDateTime{Time: *e.EditedAt}
		}
		entries = append(entries, rec)
	}

	return noteRecord{
		Pid:       n.Pid,
		CreatedAt: surrealmodels.CustomDateTime{Time: n.CreatedAt},
		NoteType:  n.NoteType,
		Notes:     entries,
		Version:   n.Version,
	}
}

func (r *noteRecord) toModel() *models.Note {
	notes := make([]models.ContentNote, 0, len(r.Notes))
	for _, e := range r.Notes {
		entry := models.ContentNote{
			CreatedAt:     e.CreatedAt.Time,
			CreatedBy:     e.CreatedBy,
			CreatedByName: e.CreatedByName,
			Content:       e.Content,
			EditedBy:      e.EditedBy,
		}
		if e.EditedAt != nil && !e.EditedAt.IsZero() {
			at := e.EditedAt.Time
			entry.EditedAt = &at
		}
		notes = append(notes, entry)
	}

	return &models.Note{
		Pid:       r.Pid,
		CreatedAt: r.CreatedAt.Time,
		NoteType:  r.NoteType,
		Notes:     notes,
		Version:   r.Version,
	}
}

func noteID(key models.NoteKey) surrealmodels.RecordID {
	return surrealmodels.NewRecordID(noteTable, key.String())
}

type NoteReadRepository struct {
	db *surrealdb.DB
}

func NewNoteReadRepository(db *surrealdb.DB) *NoteReadRepository {
	return &NoteReadRepository{db: db}
}

// Get returns the thread stored under key or models.ErrNotFound.
func (r *NoteReadRepository) Get(ctx context.Context, key models.NoteKey) (*models.Note, error) {
	id := noteID(key)
	rec, err := surrealdb.Select[noteRecord](ctx, r.db, id)

	logger.Log.Infow(
		"query", "select",
		"args", []any{id.String()},
		"result", rec,
		"error", err,
	)

	if err != nil {
		return nil, &models.StoreError{Op: "select note", Err: err}
	}
	if rec == nil {
		return nil, fmt.Errorf("note %s: %w", key, models.ErrNotFound)
	}
	return rec.toModel(), nil
}

// ListBySubject returns every thread about pid, oldest first. A subject
// without notes yields an empty slice.
func (r *NoteReadRepository) ListBySubject(ctx context.Context, pid int64) ([]models.Note, error) {
	const query = `SELECT * FROM note WHERE pid = $pid ORDER BY created_at ASC`

	res, err := surrealdb.Query[[]noteRecord](ctx, r.db, query, map[string]any{"pid": pid})

	logger.Log.Infow(
		"query", query,
		"args", []any{pid},
		"error", err,
	)

	if err != nil {
		return nil, &models.StoreError{Op: "select notes", Err: err}
	}

	notes := []models.Note{}
	if res == nil || len(*res) == 0 {
		return notes, nil
	}
	for i := range (*res)[0].Result {
		notes = append(notes, *(*res)[0].Result[i].toModel())
	}
	return notes, nil
}

type NoteWriteRepository struct {
	db *surrealdb.DB
}

func NewNoteWriteRepository(db *surrealdb.DB) *NoteWriteRepository {
	return &NoteWriteRepository{db: db}
}

// Put writes note under its key, replacing any thread already stored there.
func (r *NoteWriteRepository) Put(ctx context.Context, note models.Note) (*models.Note, error) {
	const query = `UPSERT $id CONTENT $note RETURN AFTER`

	vars := map[string]any{
		"id":   noteID(note.Key()),
		"note": newNoteRecord(note),
	}
	return r.write(ctx, query, vars, note.Key(), models.ErrNotFound)
}

// Replace overwrites the stored thread only if its version still equals
// expected. Otherwise nothing is written and models.ErrConflict is returned.
func (r *NoteWriteRepository) Replace(ctx context.Context, note models.Note, expected int) (*models.Note, error) {
	const query = `UPDATE $id CONTENT $note WHERE version = $expected RETURN AFTER`

	vars := map[string]any{
		"id":       noteID(note.Key()),
		"note":     newNoteRecord(note),
		"expected": expected,
	}
	return r.write(ctx, query, vars, note.Key(), models.ErrConflict)
}

func (r *NoteWriteRepository) write(ctx context.Context, query string, vars map[string]any, key models.NoteKey, onEmpty error) (*models.Note, error) {
	res, err := surrealdb.Query[[]noteRecord](ctx, r.db, query, vars)

	logger.Log.Infow(
		"query", query,
		"args", []any{key.String(), vars["expected"]},
		"error", err,
	)

	if err != nil {
		return nil, &models.StoreError{Op: "write note", Err: err}
	}
	if res == nil || len(*res) == 0 || len((*res)[0].Result) == 0 {
		return nil, fmt.Errorf("note %s: %w", key, onEmpty)
	}
	return (*res)[0].Result[0].toModel(), nil
}
