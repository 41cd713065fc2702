package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-support-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
)

//go:generate mockgen -source=notes.go -destination=notes_mock.go -package=handlers

// NoteLister lists the threads about a user.
type NoteLister interface {
	List(ctx context.Context, token string, pid int64) ([]models.Note, error)
}

// NoteGetter fetches one thread.
type NoteGetter interface {
	Get(ctx context.Context, token string, key models.NoteKey) (*models.Note, error)
}

// NoteCreator opens a thread.
type NoteCreator interface {
	Create(ctx context.Context, token string, creator, subject models.User, noteType models.NoteType, content string) (*models.Note, error)
}

// NoteAppender appends an entry to a thread.
type NoteAppender interface {
	Add(ctx context.Context, token string, creator, subject models.User, note models.Note, content string) (*models.Note, error)
}

// NoteEditor rewrites an entry of a thread.
type NoteEditor interface {
	Edit(ctx context.Context, token string, creator models.User, entryAt time.Time, note models.Note, content string) (*models.Note, error)
}

// NewListNotesHandler returns an HTTP handler listing the threads about a user.
// @Summary List notes
// @Tags notes
// @Produce json
// @Param pid path int true "Subject pid"
// @Success 200 {object} models.DataResponse{data=[]models.Note}
// @Failure 400 {object} models.ErrorResponse
// @Router /notes/{pid} [get]
// @Security XAuth
func NewListNotesHandler(svc NoteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		pid, err := pathInt(r, "pid")
		if err != nil {
			writeError(w, r, err)
			return
		}

		notes, err := svc.List(ctx, jwt.TokenFromContext(ctx), pid)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, notes)
	}
}

// NewGetNoteHandler returns an HTTP handler fetching one thread.
// @Summary Get note
// @Tags notes
// @Produce json
// @Param pid path int true "Subject pid"
// @Param created path int true "Thread creation time, unix seconds"
// @Success 200 {object} models.DataResponse{data=models.Note}
// @Failure 400 {object} models.ErrorResponse
// @Router /notes/{pid}/{created} [get]
// @Security XAuth
func NewGetNoteHandler(svc NoteGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		key, err := pathNoteKey(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		note, err := svc.Get(ctx, jwt.TokenFromContext(ctx), key)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, note)
	}
}

// NewCreateNoteHandler returns an HTTP handler opening a thread about a user.
// @Summary Create note
// @Description Opens a thread seeded with one entry. Creator and subject must exist.
// @Tags notes
// @Accept json
// @Produce json
// @Param pid path int true "Subject pid"
// @Param request body models.CreateNoteRequest true "Thread"
// @Success 200 {object} models.DataResponse{data=models.Note}
// @Failure 400 {object} models.ErrorResponse
// @Router /notes/{pid} [post]
// @Security XAuth
func NewCreateNoteHandler(users UserGetter, svc NoteCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := jwt.TokenFromContext(ctx)

		pid, err := pathInt(r, "pid")
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req models.CreateNoteRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		creator, subject, err := resolvePair(ctx, users, token, req.Creator, pid)
		if err != nil {
			writeError(w, r, err)
			return
		}

		note, err := svc.Create(ctx, token, *creator, *subject, req.NoteType, req.Content)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, note)
	}
}

// NewAddNoteHandler returns an HTTP handler appending an entry to a thread.
// @Summary Add note entry
// @Description Appends an entry. Fails with ModelError if the thread changed since it was read; retry.
// @Tags notes
// @Accept json
// @Produce json
// @Param pid path int true "Subject pid"
// @Param created path int true "Thread creation time, unix seconds"
// @Param request body models.AddNoteRequest true "Entry"
// @Success 200 {object} models.DataResponse{data=models.Note}
// @Failure 400 {object} models.ErrorResponse
// @Router /notes/{pid}/{created}/entries [post]
// @Security XAuth
func NewAddNoteHandler(users UserGetter, notes NoteGetter, svc NoteAppender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := jwt.TokenFromContext(ctx)

		key, err := pathNoteKey(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req models.AddNoteRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		creator, subject, err := resolvePair(ctx, users, token, req.Creator, key.Pid)
		if err != nil {
			writeError(w, r, err)
			return
		}

		note, err := notes.Get(ctx, token, key)
		if err != nil {
			writeError(w, r, err)
			return
		}

		updated, err := svc.Add(ctx, token, *creator, *subject, *note, req.Content)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, updated)
	}
}

// NewEditNoteHandler returns an HTTP handler rewriting one entry of a thread.
// @Summary Edit note entry
// @Description Replaces the content of the entry whose created_at equals entry_created_at exactly (RFC 3339, nanoseconds).
// @Tags notes
// @Accept json
// @Produce json
// @Param pid path int true "Subject pid"
// @Param created path int true "Thread creation time, unix seconds"
// @Param request body models.EditNoteRequest true "Edit"
// @Success 200 {object} models.DataResponse{data=models.Note}
// @Failure 400 {object} models.ErrorResponse
// @Router /notes/{pid}/{created}/entries [patch]
// @Security XAuth
func NewEditNoteHandler(users UserGetter, notes NoteGetter, svc NoteEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := jwt.TokenFromContext(ctx)

		key, err := pathNoteKey(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req models.EditNoteRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		entryAt, err := time.Parse(time.RFC3339Nano, req.EntryCreatedAt)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: entry_created_at: %v", models.ErrValidation, err))
			return
		}

		creator, err := users.Get(ctx, token, req.Creator)
		if err != nil {
			writeError(w, r, err)
			return
		}

		note, err := notes.Get(ctx, token, key)
		if err != nil {
			writeError(w, r, err)
			return
		}

		updated, err := svc.Edit(ctx, token, *creator, entryAt, *note, req.Content)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, updated)
	}
}

func resolvePair(ctx context.Context, users UserGetter, token string, creatorPid, subjectPid int64) (*models.User, *models.User, error) {
	creator, err := users.Get(ctx, token, creatorPid)
	if err != nil {
		return nil, nil, err
	}
	subject, err := users.Get(ctx, token, subjectPid)
	if err != nil {
		return nil, nil, err
	}
	return creator, subject, nil
}
