package models

// Event kinds published after successful mutations.
const (
	EventUserCreated     = "user.created"
	EventUserRankUpdated = "user.rank_updated"
	EventUserNameUpdated = "user.name_updated"
	EventUserRemoved     = "user.removed"
	EventNoteCreated     = "note.created"
	EventNoteAppended    = "note.appended"
	EventNoteEdited      = "note.edited"
)

// Event records a directory or ledger change for downstream audit consumers.
type Event struct {
	// EventID is a unique identifier for the event.
	EventID string `json:"event_id"`
	// Kind is one of the Event* constants.
	Kind string `json:"kind"`
	// Timestamp is the Unix timestamp (in seconds) of the change.
	Timestamp int64 `json:"timestamp"`
	// Subject is the pid of the user the change concerns.
	Subject int64 `json:"subject"`
	// Actor is the pid of the staff member who wrote a ledger entry.
	Actor int64 `json:"actor,omitempty"`
	// NoteKey is the storage key of the affected note thread.
	NoteKey string `json:"note_key,omitempty"`
}
