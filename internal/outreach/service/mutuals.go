package service

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/aussiebroadwan/mutuals/internal/outreach/template"
)

type MutualService struct {
	Store store.Store
	Guard Guard
}

type MutualQuery struct {
	EmployeeID int64
	JobID      int64
	Limit      int
}

type MutualInput struct {
	EmployeeID        int64
	Name              string
	Title             string
	Company           string
	LinkedInURL       string
	ConnectedSince    string
	RatedStrength     int
	ConnectionContext string
}

// List only ever returns the caller's mutuals, the other filters narrow it.
func (s *MutualService) List(ctx context.Context, userID int64, q MutualQuery) ([]domain.Mutual, error) {
	return s.Store.Mutuals().ListMutuals(ctx, store.MutualFilter{
		UserID:     userID,
		EmployeeID: q.EmployeeID,
		JobID:      q.JobID,
		Limit:      q.Limit,
	})
}

func (s *MutualService) Get(ctx context.Context, userID, mutualID int64) (domain.Mutual, error) {
	return s.Guard.Mutual(ctx, userID, mutualID)
}

func (s *MutualService) Create(ctx context.Context, userID int64, in MutualInput) (domain.Mutual, error) {
	var v validator
	v.check(in.EmployeeID > 0, "employeeId", "is required")
	v.check(strings.TrimSpace(in.Name) != "", "name", "is required")
	v.check(domain.ValidStrength(in.RatedStrength), "ratedStrength", "must be between 0 and 5")
	v.check(in.LinkedInURL == "" || isHTTPURL(in.LinkedInURL), "linkedInUrl", "must be an http(s) URL")
	if err := v.err(); err != nil {
		return domain.Mutual{}, err
	}

	if _, _, err := s.Guard.Employee(ctx, userID, in.EmployeeID); err != nil {
		return domain.Mutual{}, referenced(err)
	}

	m, err := s.Store.Mutuals().CreateMutual(ctx, domain.Mutual{
		UserID:            userID,
		EmployeeID:        in.EmployeeID,
		Name:              strings.TrimSpace(in.Name),
		Title:             strings.TrimSpace(in.Title),
		Company:           strings.TrimSpace(in.Company),
		LinkedInURL:       in.LinkedInURL,
		ConnectedSince:    strings.TrimSpace(in.ConnectedSince),
		RatedStrength:     in.RatedStrength,
		ConnectionContext: in.ConnectionContext,
	})
	return m, mapStoreErr(err)
}

// Update is a shallow merge. The ownership check runs before anything is
// written, so a forbidden update leaves the row as it was.
func (s *MutualService) Update(ctx context.Context, userID, mutualID int64, p store.MutualPatch) (domain.Mutual, error) {
	current, err := s.Guard.Mutual(ctx, userID, mutualID)
	if err != nil {
		return domain.Mutual{}, err
	}

	var v validator
	if p.Name != nil {
		v.check(strings.TrimSpace(*p.Name) != "", "name", "must not be empty")
	}
	if p.RatedStrength != nil {
		v.check(domain.ValidStrength(*p.RatedStrength), "ratedStrength", "must be between 0 and 5")
	}
	if p.LinkedInURL != nil {
		v.check(*p.LinkedInURL == "" || isHTTPURL(*p.LinkedInURL), "linkedInUrl", "must be an http(s) URL")
	}
	if err := v.err(); err != nil {
		return domain.Mutual{}, err
	}

	if p.Empty() {
		return current, nil
	}

	m, err := s.Store.Mutuals().UpdateMutual(ctx, mutualID, p)
	return m, mapStoreErr(err)
}

// TemplatePreview is the message the user would get for this mutual today.
type TemplatePreview struct {
	MutualID int64
	Strength int
	Band     template.Band
	Text     string
}

func (s *MutualService) Preview(ctx context.Context, userID, mutualID int64, calendarURL string) (TemplatePreview, error) {
	m, err := s.Guard.Mutual(ctx, userID, mutualID)
	if err != nil {
		return TemplatePreview{}, err
	}

	tctx, err := templateContext(ctx, s.Store, userID, m, calendarURL)
	if err != nil {
		return TemplatePreview{}, err
	}

	band, text := template.Select(m.RatedStrength, tctx)
	return TemplatePreview{MutualID: m.ID, Strength: m.RatedStrength, Band: band, Text: text}, nil
}

// templateContext gathers the names the templates interpolate.
func templateContext(ctx context.Context, st store.Store, userID int64, m domain.Mutual, calendarURL string) (template.Context, error) {
	user, err := st.Users().GetUserByID(ctx, userID)
	if err != nil {
		return template.Context{}, mapStoreErr(err)
	}

	tctx := template.Context{
		FriendName:      firstName(m.Name),
		UserName:        user.Name,
		UserLinkedInURL: user.LinkedInURL,
		CalendarURL:     calendarURL,
	}

	emp, err := st.Employees().GetEmployee(ctx, m.EmployeeID)
	if err != nil {
		return template.Context{}, mapStoreErr(err)
	}
	tctx.EmployeeName = emp.Name

	job, err := st.Jobs().GetJob(ctx, emp.JobID)
	if err != nil {
		return template.Context{}, mapStoreErr(err)
	}
	tctx.JobTitle = job.Title
	tctx.JobURL = job.JobURL
	tctx.TargetCompany = job.Company
	return tctx, nil
}

func firstName(full string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(full), " ")
	return first
}
