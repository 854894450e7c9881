package service

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
)

type EmployeeService struct {
	Store store.Store
	Guard Guard
}

type EmployeeInput struct {
	Name        string
	Title       string
	LinkedInURL string
	Department  string
}

func (s *EmployeeService) ListByJob(ctx context.Context, userID, jobID int64) ([]domain.Employee, error) {
	if _, err := s.Guard.Job(ctx, userID, jobID); err != nil {
		return nil, err
	}
	return s.Store.Employees().ListEmployeesByJob(ctx, jobID)
}

func (s *EmployeeService) Get(ctx context.Context, userID, employeeID int64) (domain.Employee, error) {
	emp, _, err := s.Guard.Employee(ctx, userID, employeeID)
	return emp, err
}

func (s *EmployeeService) Create(ctx context.Context, userID, jobID int64, in EmployeeInput) (domain.Employee, error) {
	if _, err := s.Guard.Job(ctx, userID, jobID); err != nil {
		return domain.Employee{}, err
	}

	var v validator
	v.check(strings.TrimSpace(in.Name) != "", "name", "is required")
	v.check(in.LinkedInURL == "" || isHTTPURL(in.LinkedInURL), "linkedInUrl", "must be an http(s) URL")
	if err := v.err(); err != nil {
		return domain.Employee{}, err
	}

	emp, err := s.Store.Employees().CreateEmployee(ctx, domain.Employee{
		JobID:       jobID,
		Name:        strings.TrimSpace(in.Name),
		Title:       strings.TrimSpace(in.Title),
		LinkedInURL: in.LinkedInURL,
		Department:  strings.TrimSpace(in.Department),
	})
	return emp, mapStoreErr(err)
}
