package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passGuard returns a Guard mock that accepts token and runs the operation.
func passGuard(ctrl *gomock.Controller, token string) *MockGuard {
	guard := NewMockGuard(ctrl)
	guard.EXPECT().
		Run(gomock.Any(), token, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, op func(context.Context) error) error {
			return op(ctx)
		}).
		AnyTimes()
	return guard
}

func TestParseDuplicatePolicy(t *testing.T) {
	p, err := ParseDuplicatePolicy("reject")
	require.NoError(t, err)
	assert.Equal(t, DuplicateReject, p)

	p, err = ParseDuplicatePolicy("delegate")
	require.NoError(t, err)
	assert.Equal(t, DuplicateDelegate, p)

	_, err = ParseDuplicatePolicy("ignore")
	assert.Error(t, err)
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	user := models.User{Pid: 42, Name: "John Smith", Rank: models.RankSupportTeam1}

	tests := []struct {
		name      string
		user      models.User
		policy    DuplicatePolicy
		mockSetup func(reader *MockUserReader, writer *MockUserWriter, events *MockEventPublisher)
		wantErr   error
	}{
		{
			name:   "success",
			user:   user,
			policy: DuplicateDelegate,
			mockSetup: func(reader *MockUserReader, writer *MockUserWriter, events *MockEventPublisher) {
				writer.EXPECT().Create(ctx, user).Return(&user, nil)
				events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:      "invalid_rank",
			user:      models.User{Pid: 42, Name: "John Smith", Rank: "Admin"},
			policy:    DuplicateDelegate,
			mockSetup: func(*MockUserReader, *MockUserWriter, *MockEventPublisher) {},
			wantErr:   models.ErrValidation,
		},
		{
			name:   "reject_existing",
			user:   user,
			policy: DuplicateReject,
			mockSetup: func(reader *MockUserReader, writer *MockUserWriter, events *MockEventPublisher) {
				reader.EXPECT().GetByPid(ctx, int64(42)).Return(&user, nil)
			},
			wantErr: models.ErrUserExists,
		},
		{
			name:   "reject_policy_new_user",
			user:   user,
			policy: DuplicateReject,
			mockSetup: func(reader *MockUserReader, writer *MockUserWriter, events *MockEventPublisher) {
				reader.EXPECT().GetByPid(ctx, int64(42)).Return(nil, models.ErrNotFound)
				writer.EXPECT().Create(ctx, user).Return(&user, nil)
				events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:   "store_error",
			user:   user,
			policy: DuplicateDelegate,
			mockSetup: func(reader *MockUserReader, writer *MockUserWriter, events *MockEventPublisher) {
				writer.EXPECT().Create(ctx, user).Return(nil, errors.New("already exists"))
			},
			wantErr: errors.New("already exists"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockUserReader(ctrl)
			writer := NewMockUserWriter(ctrl)
			events := NewMockEventPublisher(ctrl)
			tt.mockSetup(reader, writer, events)

			svc := NewUserService(passGuard(ctrl, "tok"), reader, writer, events, tt.policy)
			got, err := svc.Create(ctx, "tok", tt.user)

			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				assert.Equal(t, &tt.user, got)
			case errors.Is(tt.wantErr, models.ErrValidation) || errors.Is(tt.wantErr, models.ErrUserExists):
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestUserService_UpdateRank(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)

	updated := models.User{Pid: 42, Name: "John Smith", Rank: models.RankSupportTeam2}
	gomock.InOrder(
		writer.EXPECT().UpdateRank(ctx, int64(42), models.RankSupportTeam2).Return(nil),
		reader.EXPECT().GetByPid(ctx, int64(42)).Return(&updated, nil),
	)

	svc := NewUserService(passGuard(ctrl, "tok"), reader, writer, nil, DuplicateDelegate)
	got, err := svc.UpdateRank(ctx, "tok", 42, models.RankSupportTeam2)

	require.NoError(t, err)
	assert.Equal(t, &updated, got)

	// неизвестный ранг не доходит до хранилища
	_, err = svc.UpdateRank(ctx, "tok", 42, "Boss")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUserService_UpdateName_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	writer := NewMockUserWriter(ctrl)
	writer.EXPECT().UpdateName(ctx, int64(7), "Jane").Return(models.ErrNotFound)

	svc := NewUserService(passGuard(ctrl, "tok"), NewMockUserReader(ctrl), writer, nil, DuplicateDelegate)
	_, err := svc.UpdateName(ctx, "tok", 7, "Jane")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUserService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := models.User{Pid: 42, Name: "John Smith", Rank: models.RankLeadSupportTeam}

	writer := NewMockUserWriter(ctrl)
	writer.EXPECT().Delete(ctx, int64(42)).Return(&user, nil)
	events := NewMockEventPublisher(ctrl)
	events.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e models.Event) error {
		assert.Equal(t, models.EventUserRemoved, e.Kind)
		assert.Equal(t, int64(42), e.Subject)
		assert.NotEmpty(t, e.EventID)
		return nil
	})

	svc := NewUserService(passGuard(ctrl, "tok"), NewMockUserReader(ctrl), writer, events, DuplicateDelegate)
	got, err := svc.Remove(ctx, "tok", 42)

	require.NoError(t, err)
	assert.Equal(t, &user, got)
}

func TestUserService_PublishFailureDoesNotFailCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := models.User{Pid: 1, Name: "A", Rank: models.RankNoWhiteList}

	writer := NewMockUserWriter(ctrl)
	writer.EXPECT().Create(ctx, user).Return(&user, nil)
	events := NewMockEventPublisher(ctrl)
	events.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("broker down"))

	svc := NewUserService(passGuard(ctrl, "tok"), NewMockUserReader(ctrl), writer, events, DuplicateDelegate)
	_, err := svc.Create(ctx, "tok", user)
	assert.NoError(t, err)
}

func TestUserService_RejectedTokenNeverReachesStore(t *testing.T) {
	ctx := context.Background()
	store := newMemStore("good")
	auth := NewAuthService(store, nil)
	svc := NewUserService(auth, store, store, nil, DuplicateDelegate)

	user := models.User{Pid: 1, Name: "A", Rank: models.RankSupportTeam1}

	_, err := svc.Create(ctx, "", user)
	assert.ErrorIs(t, err, models.ErrMissingToken)

	_, err = svc.Create(ctx, "bad", user)
	assert.ErrorIs(t, err, models.ErrAuthenticationRejected)

	_, err = svc.List(ctx, "bad")
	assert.ErrorIs(t, err, models.ErrAuthenticationRejected)

	_, err = svc.Remove(ctx, "bad", 1)
	assert.ErrorIs(t, err, models.ErrAuthenticationRejected)

	assert.Zero(t, store.storeCalls())
}

func TestUserService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMemStore("tok")
	pub := &recordingPublisher{}
	svc := NewUserService(NewAuthService(store, nil), store, store, pub, DuplicateDelegate)

	created, err := svc.Create(ctx, "tok", models.User{Pid: 42, Name: "John Smith", Rank: models.RankSupportTeam1})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "tok", 42)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// смена ранга не трогает имя
	got, err = svc.UpdateRank(ctx, "tok", 42, models.RankSeniorSupportTeam)
	require.NoError(t, err)
	assert.Equal(t, models.User{Pid: 42, Name: "John Smith", Rank: models.RankSeniorSupportTeam}, *got)

	got, err = svc.UpdateName(ctx, "tok", 42, "John Q. Smith")
	require.NoError(t, err)
	assert.Equal(t, models.User{Pid: 42, Name: "John Q. Smith", Rank: models.RankSeniorSupportTeam}, *got)

	_, err = svc.Create(ctx, "tok", models.User{Pid: 42, Name: "Other", Rank: models.RankSupportTeam1})
	assert.Error(t, err)

	removed, err := svc.Remove(ctx, "tok", 42)
	require.NoError(t, err)
	assert.Equal(t, "John Q. Smith", removed.Name)

	_, err = svc.Get(ctx, "tok", 42)
	assert.ErrorIs(t, err, models.ErrNotFound)

	users, err := svc.List(ctx, "tok")
	require.NoError(t, err)
	assert.Empty(t, users)

	assert.Equal(t, []string{
		models.EventUserCreated,
		models.EventUserRankUpdated,
		models.EventUserNameUpdated,
		models.EventUserRemoved,
	}, pub.kinds())
}
