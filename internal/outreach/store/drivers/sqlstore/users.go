package sqlstore

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
)

type usersRepo struct{ r *Repos }

const userColumns = `id, username, password_hash, name, job_title, photo_url, linkedin_url,
	linkedin_connected, linkedin_session, created_at, updated_at`

func scanUser(s rowScanner) (domain.User, error) {
	var (
		u       domain.User
		session sql.NullString
	)
	err := s.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.JobTitle, &u.PhotoURL, &u.LinkedInURL,
		&u.LinkedInConnected, &session, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	u.LinkedInSession = stringPtr(session)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func (u *usersRepo) CreateUser(ctx context.Context, in domain.User) (domain.User, error) {
	now := u.r.now()
	id, err := u.r.insert(ctx, `INSERT INTO users
		(username, password_hash, name, job_title, photo_url, linkedin_url, linkedin_connected, linkedin_session, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Username, in.PasswordHash, in.Name, in.JobTitle, in.PhotoURL, in.LinkedInURL,
		in.LinkedInConnected, nullString(in.LinkedInSession), now, now,
	)
	if err != nil {
		return domain.User{}, err
	}
	return u.GetUserByID(ctx, id)
}

func (u *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := u.r.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	user, err := scanUser(row)
	return user, u.r.mapErr(err)
}

func (u *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := u.r.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(username) = lower(?)`, username)
	user, err := scanUser(row)
	return user, u.r.mapErr(err)
}

func (u *usersRepo) UpdateUser(ctx context.Context, id int64, p store.UserPatch) (domain.User, error) {
	var set updateSet
	if p.Name != nil {
		set.add("name", *p.Name)
	}
	if p.JobTitle != nil {
		set.add("job_title", *p.JobTitle)
	}
	if p.PhotoURL != nil {
		set.add("photo_url", *p.PhotoURL)
	}
	if p.LinkedInURL != nil {
		set.add("linkedin_url", *p.LinkedInURL)
	}
	if p.LinkedInConnected != nil {
		set.add("linkedin_connected", *p.LinkedInConnected)
	}
	switch {
	case p.ClearLinkedInSession:
		set.add("linkedin_session", sql.NullString{})
	case p.LinkedInSession != nil:
		set.add("linkedin_session", *p.LinkedInSession)
	}
	if !p.Empty() {
		set.add("updated_at", u.r.now())
	}

	if err := u.r.apply(ctx, "users", id, set); err != nil {
		return domain.User{}, err
	}
	return u.GetUserByID(ctx, id)
}
