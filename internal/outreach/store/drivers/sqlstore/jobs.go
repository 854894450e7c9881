package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
)

type jobsRepo struct{ r *Repos }

const jobColumns = `id, user_id, title, company, location, job_url, posted_date, logo_url, is_new, created_at`

func scanJob(s rowScanner) (domain.Job, error) {
	var j domain.Job
	err := s.Scan(&j.ID, &j.UserID, &j.Title, &j.Company, &j.Location, &j.JobURL,
		&j.PostedDate, &j.LogoURL, &j.IsNew, &j.CreatedAt)
	j.CreatedAt = j.CreatedAt.UTC()
	return j, err
}

func (j *jobsRepo) CreateJob(ctx context.Context, in domain.Job) (domain.Job, error) {
	id, err := j.r.insert(ctx, `INSERT INTO jobs
		(user_id, title, company, location, job_url, posted_date, logo_url, is_new, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Title, in.Company, in.Location, in.JobURL, in.PostedDate, in.LogoURL, in.IsNew, j.r.now(),
	)
	if err != nil {
		return domain.Job{}, err
	}
	return j.GetJob(ctx, id)
}

func (j *jobsRepo) GetJob(ctx context.Context, id int64) (domain.Job, error) {
	job, err := scanJob(j.r.queryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id))
	return job, j.r.mapErr(err)
}

func (j *jobsRepo) ListJobs(ctx context.Context, f store.JobFilter) ([]domain.Job, error) {
	q := `SELECT ` + jobColumns + ` FROM jobs WHERE 1 = 1`
	var args []any
	if f.UserID != 0 {
		q += ` AND user_id = ?`
		args = append(args, f.UserID)
	}
	q += ` ORDER BY id DESC`
	q, args = limitClause(q, args, f.Limit)

	rows, err := j.r.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

// DeleteJob leans on ON DELETE CASCADE for employees and mutuals. Messages
// are not cascaded, so we refuse up front when any hang off the job.
func (j *jobsRepo) DeleteJob(ctx context.Context, id int64) error {
	var n int
	err := j.r.queryRow(ctx, `SELECT COUNT(*) FROM messages
		WHERE job_id = ? OR employee_id IN (SELECT id FROM employees WHERE job_id = ?)`, id, id,
	).Scan(&n)
	if err != nil {
		return err
	}
	if n > 0 {
		return store.ErrConflict
	}

	res, err := j.r.exec(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return j.r.mapErr(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
