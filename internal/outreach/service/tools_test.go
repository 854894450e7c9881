package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aussiebroadwan/mutuals/internal/outreach/generator"
	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/stretchr/testify/require"
)

type recordingGenerator struct {
	prompts []generator.Prompt
	out     string
	err     error
}

func (g *recordingGenerator) Generate(_ context.Context, p generator.Prompt) (string, error) {
	g.prompts = append(g.prompts, p)
	return g.out, g.err
}

func TestToolsWithoutGenerator(t *testing.T) {
	s := newServices(t)
	u := s.register(t, "alice")
	tools := &service.ToolsService{Store: s.store}

	_, err := tools.Resume(context.Background(), u.ID, "Build things")
	require.ErrorIs(t, err, service.ErrGeneratorUnavailable)
	_, err = tools.LinkedInProfile(context.Background(), u.ID)
	require.ErrorIs(t, err, service.ErrGeneratorUnavailable)
}

func TestToolsPrompts(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	u := s.register(t, "alice")
	_, err := s.users.ConnectLinkedIn(ctx, u.ID, "li_at=secret-cookie")
	require.NoError(t, err)
	_, _, err = s.prefs.Save(ctx, u.ID, []string{"Product Manager"}, []string{"Remote"}, nil)
	require.NoError(t, err)

	gen := &recordingGenerator{out: "generated"}
	tools := &service.ToolsService{Store: s.store, Generator: gen}

	out, err := tools.CoverLetter(ctx, u.ID, "  Lead the payments team  ")
	require.NoError(t, err)
	require.Equal(t, "generated", out)

	_, err = tools.LinkedInProfile(ctx, u.ID)
	require.NoError(t, err)

	require.Len(t, gen.prompts, 2)
	require.Contains(t, gen.prompts[0].System, "cover letter")
	require.Contains(t, gen.prompts[0].User, "Job Description: Lead the payments team")
	require.Contains(t, gen.prompts[0].User, "Target titles: Product Manager")
	require.Contains(t, gen.prompts[1].System, "LinkedIn profile")
	for _, p := range gen.prompts {
		require.NotContains(t, p.User, "secret-cookie")
		require.NotContains(t, p.User, "argon2")
	}
}

func TestToolsValidationAndFailure(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	u := s.register(t, "alice")

	gen := &recordingGenerator{err: errors.New("rate limited")}
	tools := &service.ToolsService{Store: s.store, Generator: gen}

	_, err := tools.Resume(ctx, u.ID, "   ")
	requireFieldError(t, err, "jobDescription")
	require.Empty(t, gen.prompts)

	_, err = tools.Resume(ctx, u.ID, "Ship it")
	require.Error(t, err)
	require.ErrorIs(t, err, gen.err)
}
