package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-support-ledger/internal/logger"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

// Guard runs an operation under a validated session token.
type Guard interface {
	Run(ctx context.Context, token string, op func(ctx context.Context) error) error
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByPid(ctx context.Context, pid int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user models.User) (*models.User, error)
	UpdateRank(ctx context.Context, pid int64, rank models.Rank) error
	UpdateName(ctx context.Context, pid int64, name string) error
	Delete(ctx context.Context, pid int64) (*models.User, error)
}

// DuplicatePolicy decides what Create does when the pid is already taken.
type DuplicatePolicy string

const (
	// DuplicateDelegate leaves the decision to the store.
	DuplicateDelegate DuplicatePolicy = "delegate"
	// DuplicateReject looks the pid up first and fails with models.ErrUserExists.
	DuplicateReject DuplicatePolicy = "reject"
)

// ParseDuplicatePolicy validates a policy name from configuration.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch p := DuplicatePolicy(s); p {
	case DuplicateDelegate, DuplicateReject:
		return p, nil
	}
	return "", fmt.Errorf("unknown duplicate policy %q", s)
}

// UserService implements the user directory.
type UserService struct {
	guard  Guard
	reader UserReader
	writer UserWriter
	events EventPublisher
	policy DuplicatePolicy
}

// NewUserService creates a new UserService. events may be nil.
func NewUserService(guard Guard, reader UserReader, writer UserWriter, events EventPublisher, policy DuplicatePolicy) *UserService {
	if policy == "" {
		policy = DuplicateDelegate
	}
	return &UserService{
		guard:  guard,
		reader: reader,
		writer: writer,
		events: events,
		policy: policy,
	}
}

// Create stores a new user.
func (svc *UserService) Create(ctx context.Context, token string, user models.User) (*models.User, error) {
	if !user.Rank.Valid() {
		return nil, fmt.Errorf("%w: unknown rank %q", models.ErrValidation, user.Rank)
	}

	var created *models.User
	err := svc.guard.Run(ctx, token, func(ctx context.Context) error {
		if svc.policy == DuplicateReject {
			existing, err := svc.reader.GetByPid(ctx, user.Pid)
			switch {
			case err == nil && existing != nil:
				return fmt.Errorf("user %d: %w", user.Pid, models.ErrUserExists)
			case err != nil && !errors.Is(err, models.ErrNotFound):
				return err
			}
		}

		var err error
		created, err = svc.writer.Create(ctx, user)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to create user", "pid", user.Pid, "err", err)
		return nil, err
	}

	publish(ctx, svc.events, models.EventUserCreated, created.Pid, 0, "")
	return created, nil
}

// Get returns one user.
func (svc *UserService) Get(ctx context.Context, token string, pid int64) (*models.User, error) {
	var user *models.User
	err := svc.guard.Run(ctx, token, func(ctx context.Context) error {
		var err error
		user, err = svc.reader.GetByPid(ctx, pid)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to get user", "pid", pid, "err", err)
		return nil, err
	}
	return user, nil
}

// List returns every user in store order.
func (svc *UserService) List(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	err := svc.guard.Run(ctx, token, func(ctx context.Context) error {
		var err error
		users, err = svc.reader.List(ctx)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// UpdateRank changes only the rank and returns the user as read back
// from the store afterwards.
func (svc *UserService) UpdateRank(ctx context.Context, token string, pid int64, rank models.Rank) (*models.User, error) {
	if !rank.Valid() {
		return nil, fmt.Errorf("%w: unknown rank %q", models.ErrValidation, rank)
	}

	user, err := svc.updateThenRead(ctx, token, pid, func(ctx context.Context) error {
		return svc.writer.UpdateRank(ctx, pid, rank)
	})
	if err != nil {
		logger.Log.Errorw("failed to update rank", "pid", pid, "rank", rank, "err", err)
		return nil, err
	}

	publish(ctx, svc.events, models.EventUserRankUpdated, pid, 0, "")
	return user, nil
}

// UpdateName changes only the name and returns the user as read back
// from the store afterwards.
func (svc *UserService) UpdateName(ctx context.Context, token string, pid int64, name string) (*models.User, error) {
	user, err := svc.updateThenRead(ctx, token, pid, func(ctx context.Context) error {
		return svc.writer.UpdateName(ctx, pid, name)
	})
	if err != nil {
		logger.Log.Errorw("failed to update name", "pid", pid, "err", err)
		return nil, err
	}

	publish(ctx, svc.events, models.EventUserNameUpdated, pid, 0, "")
	return user, nil
}

func (svc *UserService) updateThenRead(ctx context.Context, token string, pid int64, update func(ctx context.Context) error) (*models.User, error) {
	var user *models.User
	err := svc.guard.Run(ctx, token, func(ctx context.Context) error {
		if err := update(ctx); err != nil {
			return err
		}
		var err error
		user, err = svc.reader.GetByPid(ctx, pid)
		return err
	})
	return user, err
}

// Remove deletes a user and returns its last stored value.
func (svc *UserService) Remove(ctx context.Context, token string, pid int64) (*models.User, error) {
	var removed *models.User
	err := svc.guard.Run(ctx, token, func(ctx context.Context) error {
		var err error
		removed, err = svc.writer.Delete(ctx, pid)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to remove user", "pid", pid, "err", err)
		return nil, err
	}

	publish(ctx, svc.events, models.EventUserRemoved, pid, 0, "")
	return removed, nil
}
