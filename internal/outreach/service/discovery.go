package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/linkedin"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/aussiebroadwan/mutuals/pkg/metrics"
	"github.com/aussiebroadwan/mutuals/pkg/slogx"
)

// DiscoveryService fills the store from the LinkedIn directory. Each row is
// its own write; when something fails part way the rows already written are
// kept and reported through a *PartialError.
type DiscoveryService struct {
	Store     store.Store
	Guard     Guard
	Directory linkedin.Directory
}

type DiscoveryResult struct {
	Employees []domain.Employee
	Mutuals   []domain.Mutual
}

// linkedUser loads the caller and makes sure they have linked an account.
func (s *DiscoveryService) linkedUser(ctx context.Context, userID int64) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, mapStoreErr(err)
	}
	if !user.LinkedInConnected || user.LinkedInSession == nil {
		return domain.User{}, ErrLinkedInRequired
	}
	return user, nil
}

// ImportJobs searches with the user's saved preferences and adds every
// listing not already tracked (matched on job URL).
func (s *DiscoveryService) ImportJobs(ctx context.Context, userID int64, limit int) ([]domain.Job, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.linkedUser(ctx, userID); err != nil {
		return nil, err
	}

	prefs, err := s.Store.Preferences().GetPreferences(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	listings, err := s.Directory.SearchJobs(ctx, linkedin.JobQuery{
		Titles:     prefs.JobTitles,
		Locations:  prefs.Locations,
		Industries: prefs.Industries,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}

	existing, err := s.Store.Jobs().ListJobs(ctx, store.JobFilter{UserID: userID})
	if err != nil {
		return nil, err
	}
	tracked := make(map[string]bool, len(existing))
	for _, j := range existing {
		if j.JobURL != "" {
			tracked[j.JobURL] = true
		}
	}

	created := []domain.Job{}
	for _, l := range listings {
		if l.URL != "" && tracked[l.URL] {
			continue
		}

		job, err := s.Store.Jobs().CreateJob(ctx, domain.Job{
			UserID:     userID,
			Title:      l.Title,
			Company:    l.Company,
			Location:   l.Location,
			JobURL:     l.URL,
			PostedDate: l.PostedDate,
			LogoURL:    l.LogoURL,
			IsNew:      true,
		})
		if err != nil {
			metrics.AddDiscoveredRows("job", len(created))
			log.Error("job import stopped", slog.Int("created", len(created)), slog.Any("error", err))
			return created, &PartialError{Created: map[string]int{"jobs": len(created)}, Err: err}
		}
		tracked[job.JobURL] = true
		created = append(created, job)
	}

	metrics.AddDiscoveredRows("job", len(created))
	log.Info("jobs imported", slog.Int("created", len(created)), slog.Int("listings", len(listings)))
	return created, nil
}

// Discover finds the people at the job's company and the user's mutual
// connections to each of them. Employees and mutuals already on record are
// reused, so running it twice does not duplicate rows.
func (s *DiscoveryService) Discover(ctx context.Context, userID, jobID int64) (DiscoveryResult, error) {
	log := slogx.FromContext(ctx)

	job, err := s.Guard.Job(ctx, userID, jobID)
	if err != nil {
		return DiscoveryResult{}, err
	}
	user, err := s.linkedUser(ctx, userID)
	if err != nil {
		return DiscoveryResult{}, err
	}

	people, err := s.Directory.FindEmployees(ctx, job.Company)
	if err != nil {
		return DiscoveryResult{}, fmt.Errorf("find employees: %w", err)
	}

	known, err := s.Store.Employees().ListEmployeesByJob(ctx, job.ID)
	if err != nil {
		return DiscoveryResult{}, err
	}

	res := DiscoveryResult{Employees: []domain.Employee{}, Mutuals: []domain.Mutual{}}
	newEmployees, newMutuals := 0, 0
	stop := func(err error) (DiscoveryResult, error) {
		metrics.AddDiscoveredRows("employee", newEmployees)
		metrics.AddDiscoveredRows("mutual", newMutuals)
		log.Error("discovery stopped",
			slog.Int64("job_id", job.ID),
			slog.Int("employees_created", newEmployees),
			slog.Int("mutuals_created", newMutuals),
			slog.Any("error", err),
		)
		return res, &PartialError{
			Created: map[string]int{"employees": newEmployees, "mutuals": newMutuals},
			Err:     err,
		}
	}

	for _, p := range people {
		emp, isNew, err := s.ensureEmployee(ctx, job.ID, known, p)
		if err != nil {
			return stop(err)
		}
		if isNew {
			newEmployees++
			known = append(known, emp)
		}
		res.Employees = append(res.Employees, emp)

		conns, err := s.Directory.FindMutuals(ctx, linkedin.LookupRequest{
			Session:  *user.LinkedInSession,
			Company:  job.Company,
			Employee: p,
		})
		if err != nil {
			return stop(fmt.Errorf("find mutuals for %s: %w", p.Name, err))
		}

		existing, err := s.Store.Mutuals().ListMutuals(ctx, store.MutualFilter{UserID: userID, EmployeeID: emp.ID})
		if err != nil {
			return stop(err)
		}

		for _, c := range conns {
			if m, ok := findMutual(existing, c); ok {
				res.Mutuals = append(res.Mutuals, m)
				continue
			}

			m, err := s.Store.Mutuals().CreateMutual(ctx, domain.Mutual{
				UserID:            userID,
				EmployeeID:        emp.ID,
				Name:              c.Name,
				Title:             c.Title,
				Company:           c.Company,
				LinkedInURL:       c.LinkedInURL,
				ConnectedSince:    c.ConnectedSince,
				RatedStrength:     c.Strength,
				ConnectionContext: c.Context,
			})
			if err != nil {
				return stop(err)
			}
			newMutuals++
			res.Mutuals = append(res.Mutuals, m)
		}
	}

	metrics.AddDiscoveredRows("employee", newEmployees)
	metrics.AddDiscoveredRows("mutual", newMutuals)
	log.Info("discovery finished",
		slog.Int64("job_id", job.ID),
		slog.Int("employees_created", newEmployees),
		slog.Int("mutuals_created", newMutuals),
	)
	return res, nil
}

func (s *DiscoveryService) ensureEmployee(ctx context.Context, jobID int64, known []domain.Employee, p linkedin.Person) (domain.Employee, bool, error) {
	for _, e := range known {
		if samePerson(e.LinkedInURL, e.Name, p.LinkedInURL, p.Name) {
			return e, false, nil
		}
	}

	emp, err := s.Store.Employees().CreateEmployee(ctx, domain.Employee{
		JobID:       jobID,
		Name:        p.Name,
		Title:       p.Title,
		LinkedInURL: p.LinkedInURL,
		Department:  p.Department,
	})
	if err != nil {
		return domain.Employee{}, false, err
	}
	return emp, true, nil
}

func findMutual(existing []domain.Mutual, c linkedin.Connection) (domain.Mutual, bool) {
	for _, m := range existing {
		if samePerson(m.LinkedInURL, m.Name, c.LinkedInURL, c.Name) {
			return m, true
		}
	}
	return domain.Mutual{}, false
}

// samePerson prefers the profile URL and falls back to the name.
func samePerson(urlA, nameA, urlB, nameB string) bool {
	if urlA != "" && urlB != "" {
		return strings.EqualFold(urlA, urlB)
	}
	return strings.EqualFold(strings.TrimSpace(nameA), strings.TrimSpace(nameB))
}
