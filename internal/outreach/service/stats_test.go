package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/stretchr/testify/require"
)

func TestStatsCounts(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	c := s.chain(t, "alice", 5)

	for _, title := range []string{"Second", "Third"} {
		_, err := s.jobs.Create(ctx, c.user.ID, service.JobInput{Title: title, Company: "Acme"})
		require.NoError(t, err)
	}
	second, err := s.mutuals.Create(ctx, c.user.ID, service.MutualInput{EmployeeID: c.employee.ID, Name: "Bo Pal", RatedStrength: 3})
	require.NoError(t, err)

	_, err = s.messages.Create(ctx, c.user.ID, service.CreateMessageInput{MutualID: c.mutual.ID, Status: "Sent"})
	require.NoError(t, err)
	draft, err := s.messages.Create(ctx, c.user.ID, service.CreateMessageInput{MutualID: second.ID})
	require.NoError(t, err)

	got, err := s.stats.Stats(ctx, c.user.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.JobsCount)
	require.Equal(t, 2, got.MutualsCount)
	require.Equal(t, 1, got.MessagesSentCount)
	require.Equal(t, 0, got.IntroductionsMadeCount)
	require.Equal(t, 1, got.ByStatus[domain.StatusDraft])

	_, err = s.messages.Delete(ctx, c.user.ID, draft.ID)
	require.NoError(t, err)

	got, err = s.stats.Stats(ctx, c.user.ID)
	require.NoError(t, err)
	require.Zero(t, got.ByStatus[domain.StatusDraft])
	require.Zero(t, got.ByStatus[domain.StatusDeleted])

	// Other users see nothing of this
	bob := s.register(t, "bob")
	empty, err := s.stats.Stats(ctx, bob.ID)
	require.NoError(t, err)
	require.Zero(t, empty.JobsCount)
	require.Zero(t, empty.MessagesSentCount)
}

func TestActivity(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	c := s.chain(t, "alice", 5)

	m, err := s.messages.Create(ctx, c.user.ID, service.CreateMessageInput{MutualID: c.mutual.ID, Status: "Sent"})
	require.NoError(t, err)
	_, err = s.messages.Update(ctx, c.user.ID, m.ID, service.MessagePatch{Outcome: ptr("IntroMade")})
	require.NoError(t, err)
	_, err = s.messages.Create(ctx, c.user.ID, service.CreateMessageInput{
		MutualID: c.mutual.ID,
		Status:   "Sent",
		Outcome:  "Interview",
	})
	require.NoError(t, err)

	days, err := s.stats.Activity(ctx, c.user.ID, 0)
	require.NoError(t, err)
	require.Len(t, days, service.DefaultActivityDays)

	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	require.True(t, today.AddDate(0, 0, -6).Equal(days[0].Date))
	last := days[len(days)-1]
	require.True(t, today.Equal(last.Date))
	require.Equal(t, 2, last.Sent)
	require.Equal(t, 1, last.Intros) // the interview is not an intro
	require.Zero(t, days[0].Sent)

	days, err = s.stats.Activity(ctx, c.user.ID, 30)
	require.NoError(t, err)
	require.Len(t, days, 30)

	_, err = s.stats.Activity(ctx, c.user.ID, 14)
	requireFieldError(t, err, "days")
}
