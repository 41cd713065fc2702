package repositories

import (
	"context"
	"fmt"
	"strconv"

	surrealdb "github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/sbilibin2017/gw-support-ledger/internal/logger"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
)

// userRecord is a user as stored under user:⟨pid⟩.
type userRecord struct {
	ID   *surrealmodels.RecordID `json:"id,omitempty"`
	Pid  int64                   `json:"pid"`
	Name string                  `json:"name"`
	Rank models.Rank             `json:"rank"`
}

func (r *userRecord) toModel() *models.User {
	return &models.User{Pid: r.Pid, Name: r.Name, Rank: r.Rank}
}

func userID(pid int64) surrealmodels.RecordID {
	return surrealmodels.NewRecordID(userTable, strconv.FormatInt(pid, 10))
}

type UserReadRepository struct {
	db *surrealdb.DB
}

func NewUserReadRepository(db *surrealdb.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByPid returns the user stored under pid or models.ErrNotFound.
func (r *UserReadRepository) GetByPid(ctx context.Context, pid int64) (*models.User, error) {
	id := userID(pid)
	rec, err := surrealdb.Select[userRecord](ctx, r.db, id)

	logger.Log.Infow(
		"query", "select",
		"args", []any{id.String()},
		"result", rec,
		"error", err,
	)

	if err != nil {
		return nil, &models.StoreError{Op: "select user", Err: err}
	}
	if rec == nil {
		return nil, fmt.Errorf("user %d: %w", pid, models.ErrNotFound)
	}
	return rec.toModel(), nil
}

// List returns every user in store order.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	recs, err := surrealdb.Select[[]userRecord](ctx, r.db, surrealmodels.Table(userTable))

	var count int
	if recs != nil {
		count = len(*recs)
	}
	logger.Log.Infow(
		"query", "select",
		"args", []any{userTable},
		"result", count,
		"error", err,
	)

	if err != nil {
		return nil, &models.StoreError{Op: "select users", Err: err}
	}

	users := make([]models.User, 0, count)
	if recs != nil {
		for i := range *recs {
			users = append(users, *(*recs)[i].toModel())
		}
	}
	return users, nil
}

type UserWriteRepository struct {
	db *surrealdb.DB
}

func NewUserWriteRepository(db *surrealdb.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create stores user under user:⟨pid⟩. SurrealDB refuses to create a
// record id that already exists.
func (r *UserWriteRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	id := userID(user.Pid)
	rec, err := surrealdb.Create[userRecord](ctx, r.db, id, userRecord{
		Pid:  user.Pid,
		Name: user.Name,
		Rank: user.Rank,
	})

	logger.Log.Infow(
		"query", "create",
		"args", []any{id.String(), user},
		"result", rec,
		"error", err,
	)

	if err != nil {
		return nil, &models.StoreError{Op: "create user", Err: err}
	}
	if rec == nil {
		return nil, fmt.Errorf("create user %d: empty result", user.Pid)
	}
	return rec.toModel(), nil
}

// UpdateRank sets only the rank field. Updating a missing user is a no-op.
func (r *UserWriteRepository) UpdateRank(ctx context.Context, pid int64, rank models.Rank) error {
	return r.set(ctx, `UPDATE $id SET rank = $value`, pid, rank)
}

// UpdateName sets only the name field. Updating a missing user is a no-op.
func (r *UserWriteRepository) UpdateName(ctx context.Context, pid int64, name string) error {
	return r.set(ctx, `UPDATE $id SET name = $value`, pid, name)
}

func (r *UserWriteRepository) set(ctx context.Context, query string, pid int64, value any) error {
	vars := map[string]any{
		"id":    userID(pid),
		"value": value,
	}
	_, err := surrealdb.Query[[]userRecord](ctx, r.db, query, vars)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{pid, value},
		"error", err,
	)

	if err != nil {
		return &models.StoreError{Op: "update user", Err: err}
	}
	return nil
}

// Delete removes the user and returns its last stored value, or
// models.ErrNotFound if there was nothing to remove.
func (r *UserWriteRepository) Delete(ctx context.Context, pid int64) (*models.User, error) {
	id := userID(pid)
	rec, err := surrealdb.Delete[userRecord](ctx, r.db, id)

	logger.Log.Infow(
		"query", "delete",
		"args", []any{id.String()},
		"result", rec,
		"error", err,
	)

	if err != nil {
		return nil, &models.StoreError{Op: "delete user", Err: err}
	}
	if rec == nil {
		return nil, fmt.Errorf("user %d: %w", pid, models.ErrNotFound)
	}
	return rec.toModel(), nil
}
