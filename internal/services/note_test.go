package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	staff   = models.User{Pid: 7, Name: "Support Seven", Rank: models.RankSupportTeam2}
	senior  = models.User{Pid: 8, Name: "Senior Eight", Rank: models.RankSeniorSupportTeam}
	subject = models.User{Pid: 42, Name: "John Smith", Rank: models.RankNoWhiteList}
)

// fixedClock returns successive instants starting at start, step apart.
func fixedClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

func newTestNoteService(store *memStore, pub EventPublisher, clock func() time.Time) *NoteService {
	svc := NewNoteService(NewAuthService(store, nil), store, store, pub)
	svc.now = clock
	return svc
}

func TestNoteService_Create(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 5, 1, 10, 0, 0, 123, time.UTC)
	store := newMemStore("tok")
	pub := &recordingPublisher{}
	svc := newTestNoteService(store, pub, fixedClock(start, time.Millisecond))

	note, err := svc.Create(ctx, "tok", staff, subject, models.NoteTypeWarning, "spam in chat")
	require.NoError(t, err)

	assert.Equal(t, subject.Pid, note.Pid)
	assert.Equal(t, models.NoteTypeWarning, note.NoteType)
	assert.True(t, note.CreatedAt.Equal(start))
	require.Len(t, note.Notes, 1)
	assert.Equal(t, models.ContentNote{
		CreatedAt:     start,
		CreatedBy:     staff.Pid,
		CreatedByName: staff.Name,
		Content:       "spam in chat",
	}, note.Notes[0])

	stored, err := svc.Get(ctx, "tok", models.NoteKey{Pid: 42, CreatedAt: start})
	require.NoError(t, err)
	assert.Equal(t, note, stored)

	assert.Equal(t, []string{models.EventNoteCreated}, pub.kinds())
	assert.Equal(t, "42-1714557600", pub.events[0].NoteKey)
	assert.Equal(t, staff.Pid, pub.events[0].Actor)
}

func TestNoteService_Create_InvalidType(t *testing.T) {
	store := newMemStore("tok")
	svc := newTestNoteService(store, nil, time.Now)

	_, err := svc.Create(context.Background(), "tok", staff, subject, "Praise", "well done")
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Zero(t, store.storeCalls())
}

func TestNoteService_Create_SameSecondOverwrites(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := newMemStore("tok")
	svc := newTestNoteService(store, nil, fixedClock(start, 100*time.Millisecond))

	_, err := svc.Create(ctx, "tok", staff, subject, models.NoteTypeWarning, "first")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "tok", senior, subject, models.NoteTypeBlacklist, "second")
	require.NoError(t, err)

	notes, err := svc.List(ctx, "tok", subject.Pid)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, models.NoteTypeBlacklist, notes[0].NoteType)
	assert.Equal(t, "second", notes[0].Notes[0].Content)
}

func TestNoteService_Add(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := newMemStore("tok")
	svc := newTestNoteService(store, nil, fixedClock(start, time.Second))

	note, err := svc.Create(ctx, "tok", staff, subject, models.NoteTypeInformational, "first")
	require.NoError(t, err)

	note, err = svc.Add(ctx, "tok", senior, subject, *note, "second")
	require.NoError(t, err)
	note, err = svc.Add(ctx, "tok", staff, subject, *note, "third")
	require.NoError(t, err)

	require.Len(t, note.Notes, 3)
	assert.Equal(t, "first", note.Notes[0].Content)
	assert.Equal(t, "second", note.Notes[1].Content)
	assert.Equal(t, senior.Pid, note.Notes[1].CreatedBy)
	assert.Equal(t, senior.Name, note.Notes[1].CreatedByName)
	assert.Equal(t, "third", note.Notes[2].Content)
	assert.Equal(t, 2, note.Version)

	// порядок и неизменность ранних записей
	for i := 1; i < len(note.Notes); i++ {
		assert.True(t, note.Notes[i].CreatedAt.After(note.Notes[i-1].CreatedAt))
	}

	stored, err := svc.Get(ctx, "tok", note.Key())
	require.NoError(t, err)
	assert.Equal(t, note, stored)
}

func TestNoteService_Add_StrictlyIncreasingEntries(t *testing.T) {
	ctx := context.Background()
	frozen := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := newMemStore("tok")
	svc := newTestNoteService(store, nil, func() time.Time { return frozen })

	note, err := svc.Create(ctx, "tok", staff, subject, models.NoteTypeInformational, "a")
	require.NoError(t, err)
	note, err = svc.Add(ctx, "tok", staff, subject, *note, "b")
	require.NoError(t, err)

	require.Len(t, note.Notes, 2)
	assert.Equal(t, frozen.Add(time.Nanosecond), note.Notes[1].CreatedAt)
}

func TestNoteService_Add_SubjectMismatch(t *testing.T) {
	ctx := context.Background()
	store := newMemStore("tok")
	svc := newTestNoteService(store, nil, time.Now)

	note, err := svc.Create(ctx, "tok", staff, subject, models.NoteTypeInformational, "a")
	require.NoError(t, err)

	other := models.User{Pid: 99, Name: "Other", Rank: models.RankNoWhiteList}
	_, err = svc.Add(ctx, "tok", staff, other, *note, "b")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestNoteService_Add_StaleCopyConflicts(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := newMemStore("tok")
	svc := newTestNoteService(store, nil, fixedClock(start, time.Second))

	note, err := svc.Create(ctx, "tok", staff, subject, models.NoteTypeInformational, "a")
	require.NoError(t, err)

	read := *note
	_, err = svc.Add(ctx, "tok", staff, subject, read, "from staff")
	require.NoError(t, err)

	// вторая запись по устаревшей копии не должна затереть первую
	_, err = svc.Add(ctx, "tok", senior, subject, read, "from senior")
	assert.ErrorIs(t, err, models.ErrConflict)

	stored, err := svc.Get(ctx, "tok", note.Key())
	require.NoError(t, err)
	require.Len(t, stored.Notes, 2)
	assert.Equal(t, "from staff", stored.Notes[1].Content)
}

func TestNoteService_Edit(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := newMemStore("tok")
	pub := &recordingPublisher{}
	svc := newTestNoteService(store, pub, fixedClock(start, time.Second))

	note, err := svc.Create(ctx, "tok", staff, subject, models.NoteTypeWarning, "first")
	require.NoError(t, err)
	note, err = svc.Add(ctx, "tok", staff, subject, *note, "second")
	require.NoError(t, err)

	target := note.Notes[1].CreatedAt
	edited, err := svc.Edit(ctx, "tok", senior, target, *note, "second, corrected")
	require.NoError(t, err)

	require.Len(t, edited.Notes, 2)
	assert.Equal(t, note.Notes[0], edited.Notes[0])
	assert.Equal(t, "second, corrected", edited.Notes[1].Content)
	assert.True(t, edited.Notes[1].CreatedAt.Equal(target))
	assert.Equal(t, staff.Pid, edited.Notes[1].CreatedBy)
	require.NotNil(t, edited.Notes[1].EditedBy)
	assert.Equal(t, senior.Pid, *edited.Notes[1].EditedBy)
	require.NotNil(t, edited.Notes[1].EditedAt)

	// запись хранится под ключом самой заметки
	stored, err := svc.Get(ctx, "tok", note.Key())
	require.NoError(t, err)
	assert.Equal(t, edited, stored)

	assert.Equal(t, []string{
		models.EventNoteCreated,
		models.EventNoteAppended,
		models.EventNoteEdited,
	}, pub.kinds())
}

func TestNoteService_Edit_EntryNotFound(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := newMemStore("tok")
	svc := newTestNoteService(store, nil, fixedClock(start, time.Second))

	note, err := svc.Create(ctx, "tok", staff, subject, models.NoteTypeWarning, "first")
	require.NoError(t, err)

	_, err = svc.Edit(ctx, "tok", staff, start.Add(time.Hour), *note, "nope")
	assert.ErrorIs(t, err, models.ErrEntryNotFound)
	assert.ErrorIs(t, err, models.ErrNotFound)

	stored, err := svc.Get(ctx, "tok", note.Key())
	require.NoError(t, err)
	assert.Equal(t, "first", stored.Notes[0].Content)
}

func TestNoteService_Edit_AuthBeforeLookup(t *testing.T) {
	ctx := context.Background()
	note := models.Note{Pid: 42, CreatedAt: time.Now(), NoteType: models.NoteTypeWarning}

	svc := newTestNoteService(newMemStore("tok"), nil, time.Now)
	_, err := svc.Edit(ctx, "bad", staff, time.Now(), note, "x")
	assert.ErrorIs(t, err, models.ErrAuthenticationRejected)
}

func TestNoteService_List(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := newMemStore("tok")
	svc := newTestNoteService(store, nil, fixedClock(start, time.Minute))

	notes, err := svc.List(ctx, "tok", subject.Pid)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)

	_, err = svc.Create(ctx, "tok", staff, subject, models.NoteTypeWarning, "one")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "tok", staff, subject, models.NoteTypeRemoval, "two")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "tok", staff, senior, models.NoteTypeInformational, "other subject")
	require.NoError(t, err)

	notes, err = svc.List(ctx, "tok", subject.Pid)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, models.NoteTypeWarning, notes[0].NoteType)
	assert.Equal(t, models.NoteTypeRemoval, notes[1].NoteType)
}

func TestNoteService_WriterErrorsPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	reader := NewMockNoteReader(ctrl)
	writer := NewMockNoteWriter(ctrl)
	writer.EXPECT().Put(ctx, gomock.Any()).Return(nil, models.ErrConflict)

	svc := NewNoteService(passGuard(ctrl, "tok"), reader, writer, nil)
	_, err := svc.Create(ctx, "tok", staff, subject, models.NoteTypeWarning, "x")
	assert.ErrorIs(t, err, models.ErrConflict)
}
