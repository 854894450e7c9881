package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store/drivers/sqlstore"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Store is the sqlite flavoured store.Store. All queries live in sqlstore.
type Store struct {
	*sqlstore.Repos

	db  *sql.DB
	dsn string
}

var _ store.Store = (*Store)(nil)

// Dialect reports sqlite constraint failures through the driver error code.
var Dialect = sqlstore.Dialect{
	Name:                  "sqlite",
	IsUniqueViolation:     constraint("UNIQUE constraint failed", sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY),
	IsForeignKeyViolation: constraint("FOREIGN KEY constraint failed", sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY),
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", withDefaults(dsn))
	if err != nil {
		return nil, err
	}

	// Every connection to :memory: is its own database, so pin the pool to
	// one connection or the tables vanish between queries.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		Repos: sqlstore.New(db, Dialect),
		db:    db,
		dsn:   dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// withDefaults adds the modernc connection parameters we rely on: FKs on for
// every pooled connection (not just the one that ran the PRAGMA above) and
// times written in a layout that sorts as text.
func withDefaults(dsn string) string {
	defaults := []struct{ key, param string }{
		{"foreign_keys", "_pragma=foreign_keys(1)"},
		{"_time_format", "_time_format=sqlite"},
	}
	for _, d := range defaults {
		if strings.Contains(dsn, d.key) {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + d.param
	}
	return dsn
}

// constraint matches on the extended result code, falling back to the
// message text when the code was not surfaced.
func constraint(msg string, codes ...int) func(error) bool {
	return func(err error) bool {
		var se *sqlite.Error
		if !errors.As(err, &se) {
			return false
		}
		for _, c := range codes {
			if se.Code() == c {
				return true
			}
		}
		return strings.Contains(se.Error(), msg)
	}
}
