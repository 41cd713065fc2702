package repositories

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/connection"
	"github.com/surrealdb/surrealdb.go/pkg/connection/gorillaws"
	"github.com/surrealdb/surrealdb.go/surrealcbor"

	"github.com/sbilibin2017/gw-support-ledger/internal/logger"
)

// Table names.
const (
	userTable = "user"
	noteTable = "note"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options describes how to reach SurrealDB and, optionally, how to prepare
// a development namespace on first run.
type Options struct {
	URL       string // e.g. ws://127.0.0.1:8000/rpc
	Namespace string
	Database  string

	// Bootstrap signs in as root and defines the namespace, database and a
	// database-level login. Development only.
	Bootstrap bool
	RootUser  string
	RootPass  string
	LoginUser string
	LoginPass string
}

// Connect opens a websocket connection using the surrealcbor codec, so
// record ids and CustomDateTime values round-trip unchanged, then selects the
// namespace and database.
func Connect(ctx context.Context, opts Options) (*surrealdb.DB, error) {
	u, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("parse surreal url: %w", err)
	}

	conf := connection.NewConfig(u)
	codec := surrealcbor.New()
	conf.Marshaler = codec
	conf.Unmarshaler = codec

	db, err := surrealdb.FromConnection(ctx, gorillaws.New(conf))
	if err != nil {
		return nil, fmt.Errorf("connect to surreal: %w", err)
	}

	if opts.Bootstrap {
		if err := Bootstrap(ctx, db, opts); err != nil {
			_ = db.Close(ctx)
			return nil, err
		}
	}

	if err := db.Use(ctx, opts.Namespace, opts.Database); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("use %s/%s: %w", opts.Namespace, opts.Database, err)
	}

	logger.Log.Infow("connected to surreal",
		"url", opts.URL,
		"namespace", opts.Namespace,
		"database", opts.Database,
	)
	return db, nil
}

// Bootstrap defines the namespace, database and login named in opts.
// Existing definitions are left alone.
func Bootstrap(ctx context.Context, db *surrealdb.DB, opts Options) error {
	for _, ident := range []string{opts.Namespace, opts.Database, opts.LoginUser} {
		if !identRe.MatchString(ident) {
			return fmt.Errorf("bootstrap: invalid identifier %q", ident)
		}
	}

	if _, err := db.SignIn(ctx, surrealdb.Auth{
		Username: opts.RootUser,
		Password: opts.RootPass,
	}); err != nil {
		return fmt.Errorf("bootstrap: root signin: %w", err)
	}

	query := fmt.Sprintf(`
		DEFINE NAMESPACE IF NOT EXISTS %[1]s;
		USE NS %[1]s;
		DEFINE DATABASE IF NOT EXISTS %[2]s;
		USE DB %[2]s;
		DEFINE USER IF NOT EXISTS %[3]s ON DATABASE PASSWORD '%[4]s' ROLES EDITOR;
	`, opts.Namespace, opts.Database, opts.LoginUser, quote(opts.LoginPass))

	_, err := surrealdb.Query[any](ctx, db, query, nil)

	logger.Log.Infow(
		"query", "bootstrap",
		"namespace", opts.Namespace,
		"database", opts.Database,
		"login", opts.LoginUser,
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	return nil
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// oneLine collapses whitespace so multi-line queries log on a single line.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
