package models

// Error categories reported to HTTP clients.
const (
	CategoryWeb      = "WebError"
	CategoryModel    = "ModelError"
	CategorySecurity = "SecurityError"
	CategoryUnknown  = "Unknown error"
)

// DataResponse wraps every successful API payload
// swagger:model DataResponse
type DataResponse struct {
	// Payload
	Data any `json:"data"`
}

// ErrorResponse is the body of every failed API call
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error category
	// example: ModelError
	ErrorMessage string `json:"errorMessage:"`
}

// SignInRequest carries database-level credentials
// swagger:model SignInRequest
type SignInRequest struct {
	// Login name
	// required: true
	// example: johndoe
	User string `json:"user"`

	// Password
	// required: true
	// example: password123
	Pass string `json:"pass"`
}

// SignInResponse carries the token to send as x-auth
// swagger:model SignInResponse
type SignInResponse struct {
	// Session token
	Token string `json:"token"`
}

// CreateNoteRequest is the body for opening a note thread
// swagger:model CreateNoteRequest
type CreateNoteRequest struct {
	// Pid of the author
	// required: true
	// example: 7
	Creator int64 `json:"creator"`

	// Thread classification
	// required: true
	// example: Warning
	NoteType NoteType `json:"note_type"`

	// First entry
	// required: true
	// example: Spamming in general chat
	Content string `json:"content"`
}

// AddNoteRequest is the body for appending an entry
// swagger:model AddNoteRequest
type AddNoteRequest struct {
	// Pid of the author
	// required: true
	// example: 7
	Creator int64 `json:"creator"`

	// Entry text
	// required: true
	// example: Second warning issued
	Content string `json:"content"`
}

// EditNoteRequest is the body for rewriting an entry
// swagger:model EditNoteRequest
type EditNoteRequest struct {
	// Pid of the editor
	// required: true
	// example: 7
	Creator int64 `json:"creator"`

	// Exact timestamp of the entry to edit
	// required: true
	// example: 2024-05-01T10:00:00.123456789Z
	EntryCreatedAt string `json:"entry_created_at"`

	// Replacement text
	// required: true
	// example: Warned about spam (corrected)
	Content string `json:"content"`
}
