package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/stretchr/testify/require"
)

func TestCreateJobValidation(t *testing.T) {
	s := newServices(t)
	u := s.register(t, "alice")

	_, err := s.jobs.Create(context.Background(), u.ID, service.JobInput{JobURL: "not a url"})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "title")
	require.Contains(t, verr.Fields, "company")
	require.Contains(t, verr.Fields, "jobUrl")
}

func TestJobListLimit(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	u := s.register(t, "alice")

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := s.jobs.Create(ctx, u.ID, service.JobInput{Title: title, Company: "Acme"})
		require.NoError(t, err)
	}

	jobs, err := s.jobs.List(ctx, u.ID, 2)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	require.Equal(t, "Three", jobs[0].Title)
}

func TestDeleteJob(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	t.Run("cascades employees and mutuals", func(t *testing.T) {
		c := s.chain(t, "alice", 3)
		require.NoError(t, s.jobs.Delete(ctx, c.user.ID, c.job.ID))

		_, err := s.jobs.Get(ctx, c.user.ID, c.job.ID)
		require.ErrorIs(t, err, service.ErrNotFound)
		_, err = s.mutuals.Get(ctx, c.user.ID, c.mutual.ID)
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("refused with outreach history", func(t *testing.T) {
		c := s.chain(t, "bob", 3)
		_, err := s.messages.Create(ctx, c.user.ID, service.CreateMessageInput{MutualID: c.mutual.ID})
		require.NoError(t, err)

		require.ErrorIs(t, s.jobs.Delete(ctx, c.user.ID, c.job.ID), service.ErrConflict)

		_, err = s.jobs.Get(ctx, c.user.ID, c.job.ID)
		require.NoError(t, err)
	})

	t.Run("owner only", func(t *testing.T) {
		c := s.chain(t, "carol", 3)
		other := s.register(t, "dave")
		require.ErrorIs(t, s.jobs.Delete(ctx, other.ID, c.job.ID), service.ErrForbidden)
	})
}

func TestUpdateMutual(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	c := s.chain(t, "alice", 2)

	got, err := s.mutuals.Update(ctx, c.user.ID, c.mutual.ID, store.MutualPatch{
		RatedStrength:     ptr(5),
		ConnectionContext: ptr("College roommates"),
	})
	require.NoError(t, err)
	require.Equal(t, 5, got.RatedStrength)
	require.Equal(t, "College roommates", got.ConnectionContext)
	require.Equal(t, c.mutual.Name, got.Name)

	_, err = s.mutuals.Update(ctx, c.user.ID, c.mutual.ID, store.MutualPatch{RatedStrength: ptr(6)})
	requireFieldError(t, err, "ratedStrength")
}

func TestEmptyMutualPatchIsIdempotent(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	c := s.chain(t, "alice", 2)

	first, err := s.mutuals.Update(ctx, c.user.ID, c.mutual.ID, store.MutualPatch{})
	require.NoError(t, err)
	second, err := s.mutuals.Update(ctx, c.user.ID, c.mutual.ID, store.MutualPatch{})
	require.NoError(t, err)

	require.Equal(t, c.mutual, first)
	require.Equal(t, first, second)
}

func TestTemplatePreview(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	tests := []struct {
		strength int
		band     string
	}{
		{0, "weak"},
		{2, "weak"},
		{3, "medium"},
		{4, "strong"},
		{5, "strong"},
	}
	for _, tt := range tests {
		c := s.chain(t, "user"+string(rune('a'+tt.strength)), tt.strength)

		p, err := s.mutuals.Preview(ctx, c.user.ID, c.mutual.ID, "https://cal.example/me")
		require.NoError(t, err)
		require.Equal(t, tt.band, string(p.Band), "strength %d", tt.strength)
		require.Contains(t, p.Text, "Alex")
		require.Contains(t, p.Text, "TechCorp")
		require.Contains(t, p.Text, "https://cal.example/me")
	}
}
