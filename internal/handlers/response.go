package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-support-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-support-ledger/internal/logger"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
)

// writeData writes v wrapped in the {"data": ...} envelope.
func writeData(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(models.DataResponse{Data: v}); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeError reports err as 400 with its category. Clients never see the
// underlying message; it only goes to the log, tagged with the caller's
// token claims when they were readable.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	category := models.Category(err)
	fields := []any{"category", category, "error", err}
	logger.Log.Warnw("request failed", append(fields, jwt.ClaimsFromContext(r.Context()).LogFields()...)...)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{ErrorMessage: category})
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode body: %v", models.ErrValidation, err)
	}
	return nil
}

func pathInt(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: path parameter %s=%q", models.ErrValidation, name, raw)
	}
	return v, nil
}

// pathNoteKey reads {pid}/{created}, created being unix seconds.
func pathNoteKey(r *http.Request) (models.NoteKey, error) {
	pid, err := pathInt(r, "pid")
	if err != nil {
		return models.NoteKey{}, err
	}
	created, err := pathInt(r, "created")
	if err != nil {
		return models.NoteKey{}, err
	}
	return models.NoteKey{Pid: pid, CreatedAt: time.Unix(created, 0).UTC()}, nil
}
