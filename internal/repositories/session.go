package repositories

import (
	"context"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"github.com/sbilibin2017/gw-support-ledger/internal/logger"
)

// SessionRepository forwards credentials and tokens to SurrealDB. It keeps
// no state of its own: the session lives on the shared connection.
type SessionRepository struct {
	db        *surrealdb.DB
	namespace string
	database  string
}

func NewSessionRepository(db *surrealdb.DB, namespace, database string) *SessionRepository {
	return &SessionRepository{db: db, namespace: namespace, database: database}
}

// Authenticate makes token the identity of the shared connection.
func (r *SessionRepository) Authenticate(ctx context.Context, token string) error {
	err := r.db.Authenticate(ctx, token)

	logger.Log.Infow(
		"query", "authenticate",
		"error", err,
	)

	return err
}

// SignIn exchanges database-level credentials for a session token.
func (r *SessionRepository) SignIn(ctx context.Context, username, password string) (string, error) {
	token, err := r.db.SignIn(ctx, surrealdb.Auth{
		Namespace: r.namespace,
		Database:  r.database,
		Username:  username,
		Password:  password,
	})

	logger.Log.Infow(
		"query", "signin",
		"args", []any{r.namespace, r.database, username},
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return token, nil
}
