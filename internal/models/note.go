package models

import (
	"fmt"
	"time"
)

// NoteType classifies a note thread. It is fixed at creation.
type NoteType string

// Note types.
const (
	NoteTypeInformational NoteType = "Informational"
	NoteTypeWarning       NoteType = "Warning"
	NoteTypeRemoval       NoteType = "Removal"
	NoteTypeBlacklist     NoteType = "Blacklist"
)

var noteTypes = []NoteType{
	NoteTypeInformational,
	NoteTypeWarning,
	NoteTypeRemoval,
	NoteTypeBlacklist,
}

// ParseNoteType converts s into a NoteType, failing with ErrValidation for unknown values.
func ParseNoteType(s string) (NoteType, error) {
	for _, t := range noteTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown note type %q", ErrValidation, s)
}

// UnmarshalText rejects values outside the note type enumeration.
func (t *NoteType) UnmarshalText(text []byte) error {
	parsed, err := ParseNoteType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// NoteKey addresses a note thread: the subject pid and the thread creation time.
type NoteKey struct {
	Pid       int64
	CreatedAt time.Time
}

// String returns the storage id "<pid>-<unix seconds>". Threads created for
// the same subject within the same second share a key.
func (k NoteKey) String() string {
	return fmt.Sprintf("%d-%d", k.Pid, k.CreatedAt.Unix())
}

// ContentNote is one entry of a note thread
// swagger:model ContentNote
type ContentNote struct {
	// Time the entry was written; identifies the entry within its thread
	// example: 2024-05-01T10:00:00.123456789Z
	CreatedAt time.Time `json:"created_at"`

	// Pid of the author
	// example: 7
	CreatedBy int64 `json:"created_by"`

	// Author name at the time of writing
	// example: John Smith
	CreatedByName string `json:"created_by_name"`

	// Free text
	// example: Warned about spam in general chat
	Content string `json:"content"`

	// Pid of the last editor, if the entry was edited
	EditedBy *int64 `json:"edited_by,omitempty"`

	// Time of the last edit
	EditedAt *time.Time `json:"edited_at,omitempty"`
}

// Note is an append-only thread of entries about one subject
// swagger:model Note
type Note struct {
	// Pid of the subject user
	// example: 42
	Pid int64 `json:"pid"`

	// Thread creation time; part of the storage key
	// example: 2024-05-01T10:00:00.123456789Z
	CreatedAt time.Time `json:"created_at"`

	// Thread classification
	// example: Warning
	NoteType NoteType `json:"note_type"`

	// Entries in insertion order
	Notes []ContentNote `json:"notes"`

	// Write counter used to detect concurrent modification
	// example: 2
	Version int `json:"version"`
}

// Key returns the storage key of n.
func (n Note) Key() NoteKey {
	return NoteKey{Pid: n.Pid, CreatedAt: n.CreatedAt}
}

// Entry returns the index of the entry written exactly at at, or -1.
func (n Note) Entry(at time.Time) int {
	for i := range n.Notes {
		if n.Notes[i].CreatedAt.Equal(at) {
			return i
		}
	}
	return -1
}
