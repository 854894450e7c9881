package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
)

type mutualsRepo struct{ r *Repos }

const mutualColumns = `m.id, m.user_id, m.employee_id, m.name, m.title, m.company, m.linkedin_url,
	m.connected_since, m.rated_strength, m.connection_context, m.created_at, m.updated_at`

func scanMutual(s rowScanner) (domain.Mutual, error) {
	var m domain.Mutual
	err := s.Scan(&m.ID, &m.UserID, &m.EmployeeID, &m.Name, &m.Title, &m.Company, &m.LinkedInURL,
		&m.ConnectedSince, &m.RatedStrength, &m.ConnectionContext, &m.CreatedAt, &m.UpdatedAt)
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return m, err
}

func (m *mutualsRepo) CreateMutual(ctx context.Context, in domain.Mutual) (domain.Mutual, error) {
	now := m.r.now()
	id, err := m.r.insert(ctx, `INSERT INTO mutuals
		(user_id, employee_id, name, title, company, linkedin_url, connected_since,
		 rated_strength, connection_context, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.EmployeeID, in.Name, in.Title, in.Company, in.LinkedInURL, in.ConnectedSince,
		in.RatedStrength, in.ConnectionContext, now, now,
	)
	if err != nil {
		return domain.Mutual{}, err
	}
	return m.GetMutual(ctx, id)
}

func (m *mutualsRepo) GetMutual(ctx context.Context, id int64) (domain.Mutual, error) {
	mu, err := scanMutual(m.r.queryRow(ctx, `SELECT `+mutualColumns+` FROM mutuals m WHERE m.id = ?`, id))
	return mu, m.r.mapErr(err)
}

func (m *mutualsRepo) ListMutuals(ctx context.Context, f store.MutualFilter) ([]domain.Mutual, error) {
	q := `SELECT ` + mutualColumns + ` FROM mutuals m`
	var args []any
	if f.JobID != 0 {
		q += ` JOIN employees e ON e.id = m.employee_id AND e.job_id = ?`
		args = append(args, f.JobID)
	}
	q += ` WHERE 1 = 1`
	if f.UserID != 0 {
		q += ` AND m.user_id = ?`
		args = append(args, f.UserID)
	}
	if f.EmployeeID != 0 {
		q += ` AND m.employee_id = ?`
		args = append(args, f.EmployeeID)
	}
	q += ` ORDER BY m.rated_strength DESC, m.id`
	q, args = limitClause(q, args, f.Limit)

	rows, err := m.r.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Mutual{}
	for rows.Next() {
		mu, err := scanMutual(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, mu)
	}
	return out, rows.Err()
}

func (m *mutualsRepo) UpdateMutual(ctx context.Context, id int64, p store.MutualPatch) (domain.Mutual, error) {
	var set updateSet
	if p.Name != nil {
		set.add("name", *p.Name)
	}
	if p.Title != nil {
		set.add("title", *p.Title)
	}
	if p.Company != nil {
		set.add("company", *p.Company)
	}
	if p.LinkedInURL != nil {
		set.add("linkedin_url", *p.LinkedInURL)
	}
	if p.ConnectedSince != nil {
		set.add("connected_since", *p.ConnectedSince)
	}
	if p.RatedStrength != nil {
		set.add("rated_strength", *p.RatedStrength)
	}
	if p.ConnectionContext != nil {
		set.add("connection_context", *p.ConnectionContext)
	}
	if !p.Empty() {
		set.add("updated_at", m.r.now())
	}

	if err := m.r.apply(ctx, "mutuals", id, set); err != nil {
		return domain.Mutual{}, err
	}
	return m.GetMutual(ctx, id)
}
