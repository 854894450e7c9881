package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/generator"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/aussiebroadwan/mutuals/pkg/metrics"
	"github.com/aussiebroadwan/mutuals/pkg/slogx"
)

const maxJobDescription = 20000

const (
	resumeSystem      = "Generate a SMART (Specific, Measurable, Achievable, Relevant, Time-bound) format resume that will pass ATS systems."
	coverLetterSystem = "Generate a personalized cover letter that will pass ATS systems."
	profileSystem     = "Improve LinkedIn profile using SMART method to optimize visibility and pass screening algorithms."
)

// ToolsService runs the career tools. Generator may be nil, in which case
// every tool answers ErrGeneratorUnavailable.
type ToolsService struct {
	Store     store.Store
	Generator generator.Generator
}

func (s *ToolsService) Resume(ctx context.Context, userID int64, jobDescription string) (string, error) {
	return s.withJob(ctx, "resume", resumeSystem, userID, jobDescription)
}

func (s *ToolsService) CoverLetter(ctx context.Context, userID int64, jobDescription string) (string, error) {
	return s.withJob(ctx, "cover_letter", coverLetterSystem, userID, jobDescription)
}

func (s *ToolsService) LinkedInProfile(ctx context.Context, userID int64) (string, error) {
	if s.Generator == nil {
		return "", ErrGeneratorUnavailable
	}
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.run(ctx, "linkedin_profile", generator.Prompt{
		System: profileSystem,
		User:   "User Profile:\n" + profile,
	})
}

func (s *ToolsService) withJob(ctx context.Context, tool, system string, userID int64, jobDescription string) (string, error) {
	if s.Generator == nil {
		return "", ErrGeneratorUnavailable
	}

	jobDescription = strings.TrimSpace(jobDescription)
	var v validator
	v.check(jobDescription != "", "jobDescription", "is required")
	v.check(len(jobDescription) <= maxJobDescription, "jobDescription", fmt.Sprintf("must be at most %d bytes", maxJobDescription))
	if err := v.err(); err != nil {
		return "", err
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.run(ctx, tool, generator.Prompt{
		System: system,
		User:   "Job Description: " + jobDescription + "\nUser Profile:\n" + profile,
	})
}

func (s *ToolsService) run(ctx context.Context, tool string, p generator.Prompt) (string, error) {
	start := time.Now()
	out, err := s.Generator.Generate(ctx, p)
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.RecordGeneratorLatency(tool, status, time.Since(start))

	if err != nil {
		slogx.FromContext(ctx).Error("generation failed", slog.String("tool", tool), slog.Any("error", err))
		return "", fmt.Errorf("%s: %w", tool, err)
	}
	return out, nil
}

// profile describes the user for the model. Credentials and the LinkedIn
// session never go into a prompt.
func (s *ToolsService) profile(ctx context.Context, userID int64) (string, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return "", mapStoreErr(err)
	}
	prefs, err := s.Store.Preferences().GetPreferences(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", err
	}
	return describe(user, prefs), nil
}

func describe(u domain.User, p domain.JobPreferences) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", u.Name)
	fmt.Fprintf(&b, "Current title: %s\n", u.JobTitle)
	if len(p.JobTitles) > 0 {
		fmt.Fprintf(&b, "Target titles: %s\n", strings.Join(p.JobTitles, ", "))
	}
	if len(p.Locations) > 0 {
		fmt.Fprintf(&b, "Preferred locations: %s\n", strings.Join(p.Locations, ", "))
	}
	if len(p.Industries) > 0 {
		fmt.Fprintf(&b, "Industries: %s\n", strings.Join(p.Industries, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
