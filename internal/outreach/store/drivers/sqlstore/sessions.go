package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
)

type sessionsRepo struct{ r *Repos }

func (s *sessionsRepo) CreateSession(ctx context.Context, in domain.Session) error {
	created := in.CreatedAt
	if created.IsZero() {
		created = s.r.now()
	}
	_, err := s.r.exec(ctx, `INSERT INTO sessions (id, user_id, expires_at, revoked_at, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		in.ID, in.UserID, in.ExpiresAt.UTC(), nullTime(in.RevokedAt), created.UTC(),
	)
	return s.r.mapErr(err)
}

func (s *sessionsRepo) GetSession(ctx context.Context, id string) (domain.Session, error) {
	var (
		out     domain.Session
		revoked sql.NullTime
	)
	err := s.r.queryRow(ctx, `SELECT id, user_id, expires_at, revoked_at, created_at
		FROM sessions WHERE id = ?`, id,
	).Scan(&out.ID, &out.UserID, &out.ExpiresAt, &revoked, &out.CreatedAt)
	if err != nil {
		return domain.Session{}, s.r.mapErr(err)
	}

	out.ExpiresAt = out.ExpiresAt.UTC()
	out.CreatedAt = out.CreatedAt.UTC()
	out.RevokedAt = timePtr(revoked)
	return out, nil
}

// RevokeSession is idempotent, revoking twice keeps the first timestamp.
func (s *sessionsRepo) RevokeSession(ctx context.Context, id string, at time.Time) error {
	res, err := s.r.exec(ctx, `UPDATE sessions SET revoked_at = COALESCE(revoked_at, ?) WHERE id = ?`, at.UTC(), id)
	if err != nil {
		return err
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

func (s *sessionsRepo) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.r.exec(ctx, `DELETE FROM sessions WHERE expires_at < ? OR revoked_at < ?`, before.UTC(), before.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
