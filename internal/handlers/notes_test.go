package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	staff     = models.User{Pid: 7, Name: "Support Seven", Rank: models.RankSupportTeam2}
	created   = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	threadKey = models.NoteKey{Pid: 42, CreatedAt: created}
	thread    = models.Note{
		Pid:       42,
		CreatedAt: created,
		NoteType:  models.NoteTypeWarning,
		Notes: []models.ContentNote{
			{CreatedAt: created, CreatedBy: 7, CreatedByName: "Support Seven", Content: "spam"},
		},
	}
)

func TestListNotesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockNoteLister(ctrl)
	svc.EXPECT().List(gomock.Any(), testToken, int64(42)).Return([]models.Note{}, nil)

	rr := serve(http.MethodGet, "/api/notes/{pid}", "/api/notes/42", "", NewListNotesHandler(svc))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[]}`, rr.Body.String())
}

func TestGetNoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockNoteGetter(ctrl)
	svc.EXPECT().Get(gomock.Any(), testToken, gomock.Any()).DoAndReturn(
		func(_ interface{}, _ string, key models.NoteKey) (*models.Note, error) {
			assert.Equal(t, "42-1714557600", key.String())
			return &thread, nil
		})

	rr := serve(http.MethodGet, "/api/notes/{pid}/{created}", "/api/notes/42/1714557600", "", NewGetNoteHandler(svc))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"note_type":"Warning"`)

	rr = serve(http.MethodGet, "/api/notes/{pid}/{created}", "/api/notes/42/yesterday", "", NewGetNoteHandler(svc))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"errorMessage:":"WebError"}`, rr.Body.String())
}

func TestCreateNoteHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMocks   func(users *MockUserGetter, svc *MockNoteCreator)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "created",
			body: `{"creator":7,"note_type":"Warning","content":"spam"}`,
			setupMocks: func(users *MockUserGetter, svc *MockNoteCreator) {
				users.EXPECT().Get(gomock.Any(), testToken, int64(7)).Return(&staff, nil)
				users.EXPECT().Get(gomock.Any(), testToken, int64(42)).Return(&john, nil)
				svc.EXPECT().Create(gomock.Any(), testToken, staff, john, models.NoteTypeWarning, "spam").Return(&thread, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "unknown note type",
			body:         `{"creator":7,"note_type":"Praise","content":"nice"}`,
			setupMocks:   func(*MockUserGetter, *MockNoteCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  `{"errorMessage:":"WebError"}`,
		},
		{
			name: "unknown creator",
			body: `{"creator":9,"note_type":"Warning","content":"spam"}`,
			setupMocks: func(users *MockUserGetter, svc *MockNoteCreator) {
				users.EXPECT().Get(gomock.Any(), testToken, int64(9)).Return(nil, models.ErrNotFound)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  `{"errorMessage:":"ModelError"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := NewMockUserGetter(ctrl)
			svc := NewMockNoteCreator(ctrl)
			tt.setupMocks(users, svc)

			rr := serve(http.MethodPost, "/api/notes/{pid}", "/api/notes/42", tt.body, NewCreateNoteHandler(users, svc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.JSONEq(t, tt.expectedErr, rr.Body.String())
			}
		})
	}
}

func TestAddNoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appended := thread
	appended.Notes = append(append([]models.ContentNote{}, thread.Notes...),
		models.ContentNote{CreatedAt: created.Add(time.Second), CreatedBy: 7, CreatedByName: "Support Seven", Content: "again"})
	appended.Version = 1

	users := NewMockUserGetter(ctrl)
	notes := NewMockNoteGetter(ctrl)
	svc := NewMockNoteAppender(ctrl)

	gomock.InOrder(
		users.EXPECT().Get(gomock.Any(), testToken, int64(7)).Return(&staff, nil),
		users.EXPECT().Get(gomock.Any(), testToken, int64(42)).Return(&john, nil),
		notes.EXPECT().Get(gomock.Any(), testToken, threadKey).Return(&thread, nil),
		svc.EXPECT().Add(gomock.Any(), testToken, staff, john, thread, "again").Return(&appended, nil),
	)

	rr := serve(http.MethodPost, "/api/notes/{pid}/{created}/entries", "/api/notes/42/1714557600/entries",
		`{"creator":7,"content":"again"}`, NewAddNoteHandler(users, notes, svc))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"content":"again"`)
	assert.Contains(t, rr.Body.String(), `"version":1`)
}

func TestAddNoteHandler_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserGetter(ctrl)
	notes := NewMockNoteGetter(ctrl)
	svc := NewMockNoteAppender(ctrl)

	users.EXPECT().Get(gomock.Any(), testToken, int64(7)).Return(&staff, nil)
	users.EXPECT().Get(gomock.Any(), testToken, int64(42)).Return(&john, nil)
	notes.EXPECT().Get(gomock.Any(), testToken, threadKey).Return(&thread, nil)
	svc.EXPECT().Add(gomock.Any(), testToken, staff, john, thread, "again").Return(nil, models.ErrConflict)

	rr := serve(http.MethodPost, "/api/notes/{pid}/{created}/entries", "/api/notes/42/1714557600/entries",
		`{"creator":7,"content":"again"}`, NewAddNoteHandler(users, notes, svc))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"errorMessage:":"ModelError"}`, rr.Body.String())
}

func TestEditNoteHandler(t *testing.T) {
	entryAt := time.Date(2024, 5, 1, 10, 0, 0, 123456789, time.UTC)

	tests := []struct {
		name         string
		body         string
		setupMocks   func(users *MockUserGetter, notes *MockNoteGetter, svc *MockNoteEditor)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "edited",
			body: `{"creator":7,"entry_created_at":"2024-05-01T10:00:00.123456789Z","content":"fixed"}`,
			setupMocks: func(users *MockUserGetter, notes *MockNoteGetter, svc *MockNoteEditor) {
				users.EXPECT().Get(gomock.Any(), testToken, int64(7)).Return(&staff, nil)
				notes.EXPECT().Get(gomock.Any(), testToken, threadKey).Return(&thread, nil)
				svc.EXPECT().Edit(gomock.Any(), testToken, staff, gomock.Any(), thread, "fixed").DoAndReturn(
					func(_ interface{}, _ string, _ models.User, at time.Time, _ models.Note, _ string) (*models.Note, error) {
						assert.True(t, at.Equal(entryAt))
						return &thread, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "bad timestamp",
			body:         `{"creator":7,"entry_created_at":"yesterday","content":"fixed"}`,
			setupMocks:   func(*MockUserGetter, *MockNoteGetter, *MockNoteEditor) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  `{"errorMessage:":"WebError"}`,
		},
		{
			name: "no such entry",
			body: `{"creator":7,"entry_created_at":"2024-05-01T11:00:00Z","content":"fixed"}`,
			setupMocks: func(users *MockUserGetter, notes *MockNoteGetter, svc *MockNoteEditor) {
				users.EXPECT().Get(gomock.Any(), testToken, int64(7)).Return(&staff, nil)
				notes.EXPECT().Get(gomock.Any(), testToken, threadKey).Return(&thread, nil)
				svc.EXPECT().Edit(gomock.Any(), testToken, staff, gomock.Any(), thread, "fixed").Return(nil, models.ErrEntryNotFound)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  `{"errorMessage:":"ModelError"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := NewMockUserGetter(ctrl)
			notes := NewMockNoteGetter(ctrl)
			svc := NewMockNoteEditor(ctrl)
			tt.setupMocks(users, notes, svc)

			rr := serve(http.MethodPatch, "/api/notes/{pid}/{created}/entries", "/api/notes/42/1714557600/entries",
				tt.body, NewEditNoteHandler(users, notes, svc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.JSONEq(t, tt.expectedErr, rr.Body.String())
			}
		})
	}
}
