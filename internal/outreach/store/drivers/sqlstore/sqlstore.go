// Package sqlstore holds the hand written SQL shared by the sqlite and
// postgres drivers. Queries are written with "?" placeholders and rebound for
// the target dialect. Every repository method is a single statement or a
// read followed by a write; there are no transactions.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
)

// Dialect captures the handful of places the two databases disagree.
type Dialect struct {
	Name string

	// Numbered switches placeholders from "?" to "$1, $2, ...".
	Numbered bool

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation func(error) bool

	// IsForeignKeyViolation reports whether err is a FK constraint failure.
	IsForeignKeyViolation func(error) bool
}

// Repos implements every sub-repository of store.Store on top of a *sql.DB.
// Drivers embed it and add migrations and lifecycle.
type Repos struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

func New(db *sql.DB, d Dialect) *Repos {
	if d.IsUniqueViolation == nil {
		d.IsUniqueViolation = func(error) bool { return false }
	}
	if d.IsForeignKeyViolation == nil {
		d.IsForeignKeyViolation = func(error) bool { return false }
	}
	return &Repos{
		db:      db,
		dialect: d,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *Repos) Users() store.Users             { return &usersRepo{r} }
func (r *Repos) Preferences() store.Preferences { return &preferencesRepo{r} }
func (r *Repos) Jobs() store.Jobs               { return &jobsRepo{r} }
func (r *Repos) Employees() store.Employees     { return &employeesRepo{r} }
func (r *Repos) Mutuals() store.Mutuals         { return &mutualsRepo{r} }
func (r *Repos) Messages() store.Messages       { return &messagesRepo{r} }
func (r *Repos) Sessions() store.Sessions       { return &sessionsRepo{r} }
func (r *Repos) Stats() store.Stats             { return &statsRepo{r} }

// rebind rewrites "?" placeholders for dialects that number them. None of
// our SQL has a literal "?" so a plain scan is enough.
func (r *Repos) rebind(query string) string {
	if !r.dialect.Numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func (r *Repos) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return r.db.ExecContext(ctx, r.rebind(query), args...)
}

func (r *Repos) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return r.db.QueryContext(ctx, r.rebind(query), args...)
}

func (r *Repos) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return r.db.QueryRowContext(ctx, r.rebind(query), args...)
}

// insert runs an INSERT ... RETURNING id and returns the new id.
func (r *Repos) insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	if err := r.queryRow(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
		return 0, r.mapErr(err)
	}
	return id, nil
}

// updateSet collects "col = ?" pairs for a shallow merge update.
type updateSet struct {
	cols []string
	args []any
}

func (u *updateSet) add(col string, v any) {
	u.cols = append(u.cols, col+" = ?")
	u.args = append(u.args, v)
}

// apply runs the update against one row. An empty set touches nothing, which
// still reports ErrNotFound for a missing row via the caller's reload.
func (r *Repos) apply(ctx context.Context, table string, id int64, u updateSet) error {
	if len(u.cols) == 0 {
		return nil
	}

	q := "UPDATE " + table + " SET " + strings.Join(u.cols, ", ") + " WHERE id = ?"
	res, err := r.exec(ctx, q, append(u.args, id)...)
	if err != nil {
		return r.mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *Repos) mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNotFound
	case r.dialect.IsUniqueViolation(err):
		return store.ErrAlreadyExists
	case r.dialect.IsForeignKeyViolation(err):
		return store.ErrConflict
	}
	return err
}

// limitClause appends a LIMIT when one was asked for.
func limitClause(q string, args []any, limit int) (string, []any) {
	if limit > 0 {
		return q + " LIMIT ?", append(args, limit)
	}
	return q, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func encodeList(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func decodeList(s string) []string {
	out := []string{}
	if s == "" {
		return out
	}
	_ = json.Unmarshal([]byte(s), &out)
	return out
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}

func nullInt(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func intPtr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}
