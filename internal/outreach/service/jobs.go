package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/aussiebroadwan/mutuals/pkg/slogx"
)

type JobService struct {
	Store store.Store
	Guard Guard
}

type JobInput struct {
	Title      string
	Company    string
	Location   string
	JobURL     string
	PostedDate string
	LogoURL    string
}

func (in JobInput) validate() error {
	var v validator
	v.check(strings.TrimSpace(in.Title) != "", "title", "is required")
	v.check(strings.TrimSpace(in.Company) != "", "company", "is required")
	v.check(in.JobURL == "" || isHTTPURL(in.JobURL), "jobUrl", "must be an http(s) URL")
	v.check(in.LogoURL == "" || isHTTPURL(in.LogoURL), "logoUrl", "must be an http(s) URL")
	return v.err()
}

func (s *JobService) List(ctx context.Context, userID int64, limit int) ([]domain.Job, error) {
	return s.Store.Jobs().ListJobs(ctx, store.JobFilter{UserID: userID, Limit: limit})
}

func (s *JobService) Get(ctx context.Context, userID, jobID int64) (domain.Job, error) {
	return s.Guard.Job(ctx, userID, jobID)
}

// Create adds a job by hand. The user id always comes from the session.
func (s *JobService) Create(ctx context.Context, userID int64, in JobInput) (domain.Job, error) {
	if err := in.validate(); err != nil {
		return domain.Job{}, err
	}

	job, err := s.Store.Jobs().CreateJob(ctx, domain.Job{
		UserID:     userID,
		Title:      strings.TrimSpace(in.Title),
		Company:    strings.TrimSpace(in.Company),
		Location:   strings.TrimSpace(in.Location),
		JobURL:     in.JobURL,
		PostedDate: in.PostedDate,
		LogoURL:    in.LogoURL,
		IsNew:      true,
	})
	return job, mapStoreErr(err)
}

// Delete removes the job with its employees and mutuals. Jobs with outreach
// history are kept, messages are never hard deleted.
func (s *JobService) Delete(ctx context.Context, userID, jobID int64) error {
	if _, err := s.Guard.Job(ctx, userID, jobID); err != nil {
		return err
	}

	err := s.Store.Jobs().DeleteJob(ctx, jobID)
	if errors.Is(err, store.ErrConflict) {
		return ErrConflict
	}
	if err != nil {
		return mapStoreErr(err)
	}

	slogx.FromContext(ctx).Info("job deleted", slog.Int64("job_id", jobID))
	return nil
}
