package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
)

type employeesRepo struct{ r *Repos }

const employeeColumns = `id, job_id, name, title, linkedin_url, department, created_at`

func scanEmployee(s rowScanner) (domain.Employee, error) {
	var e domain.Employee
	err := s.Scan(&e.ID, &e.JobID, &e.Name, &e.Title, &e.LinkedInURL, &e.Department, &e.CreatedAt)
	e.CreatedAt = e.CreatedAt.UTC()
	return e, err
}

func (e *employeesRepo) CreateEmployee(ctx context.Context, in domain.Employee) (domain.Employee, error) {
	id, err := e.r.insert(ctx, `INSERT INTO employees
		(job_id, name, title, linkedin_url, department, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		in.JobID, in.Name, in.Title, in.LinkedInURL, in.Department, e.r.now(),
	)
	if err != nil {
		return domain.Employee{}, err
	}
	return e.GetEmployee(ctx, id)
}

func (e *employeesRepo) GetEmployee(ctx context.Context, id int64) (domain.Employee, error) {
	emp, err := scanEmployee(e.r.queryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id))
	return emp, e.r.mapErr(err)
}

func (e *employeesRepo) ListEmployeesByJob(ctx context.Context, jobID int64) ([]domain.Employee, error) {
	rows, err := e.r.query(ctx, `SELECT `+employeeColumns+` FROM employees WHERE job_id = ? ORDER BY id`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}
