package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store/drivers/sqlstore"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Store is the postgres flavoured store.Store, going through pgx's
// database/sql adapter so it can share every query with sqlite.
type Store struct {
	*sqlstore.Repos

	db *sql.DB
}

var _ store.Store = (*Store)(nil)

var Dialect = sqlstore.Dialect{
	Name:                  "postgres",
	Numbered:              true,
	IsUniqueViolation:     pgCode(codeUniqueViolation),
	IsForeignKeyViolation: pgCode(codeForeignKeyViolation),
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return &Store{
		Repos: sqlstore.New(db, Dialect),
		db:    db,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func pgCode(code string) func(error) bool {
	return func(err error) bool {
		var pgErr *pgconn.PgError
		return errors.As(err, &pgErr) && pgErr.Code == code
	}
}
